package board

import "github.com/augurmate/chessproblem/internal/assert"

// assertPlayable checks s is not a border square before a Place call would
// silently corrupt the sentinel ring.
func assertPlayable(s Square, current Figure) {
	assert.Assertf(current != NoFigure, "square %v is off-board, got figure %v", s, current)
}

// assertColoured checks fig is an occupying piece, used before operations
// that only make sense on an occupied square (e.g. MovePiece's source).
func assertColoured(fig Figure) {
	assert.Assertf(fig.IsColoured(), "expected a coloured figure, got %v", fig)
}
