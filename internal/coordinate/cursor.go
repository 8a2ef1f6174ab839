package coordinate

import (
	"sync/atomic"

	"github.com/augurmate/chessproblem/internal/board"
)

// Cursor hands out a fixed move slice's elements one at a time to
// however many goroutines call Take concurrently. The fast path is a
// single atomic fetch-and-add; there is no slow path to speak of
// because the moves slice itself never mutates after the cursor is
// built, so no lock is needed to make the index-then-read safe.
type Cursor struct {
	moves []board.Move
	next  atomic.Int64
}

// NewCursor wraps moves for shared, order-preserving consumption.
func NewCursor(moves []board.Move) *Cursor {
	return &Cursor{moves: moves}
}

// Take returns the next unclaimed move, or ok=false once exhausted.
func (c *Cursor) Take() (board.Move, bool) {
	i := c.next.Add(1) - 1
	if i >= int64(len(c.moves)) {
		return board.Move{}, false
	}
	return c.moves[i], true
}
