package problem

import (
	"github.com/samber/lo"

	"github.com/augurmate/chessproblem/internal/assert"
	"github.com/augurmate/chessproblem/internal/board"
	cperrors "github.com/augurmate/chessproblem/internal/errors"
	"github.com/augurmate/chessproblem/internal/search"
)

// Builder provides a fluent API for assembling a Problem, mirroring how
// the rest of this codebase builds immutable configuration: accumulate
// on a mutable receiver, validate everything together in Build.
type Builder struct {
	placements  []Placement
	modeSet     bool
	mode        search.Mode
	n           int
	sideSet     bool
	side        board.Colour
	epFile      int
	epSet       bool
	retired     []board.Square
	workers     int
	callbacks   search.Callbacks
}

// NewBuilder returns a Builder with no placements and one worker (no
// parallelism) by default.
func NewBuilder() *Builder {
	return &Builder{workers: 1}
}

// Place adds one square/figure pair to the starting diagram.
func (b *Builder) Place(sq board.Square, fig board.Figure) *Builder {
	b.placements = append(b.placements, Placement{Square: sq, Figure: fig})
	return b
}

// Goal sets the goal mode and its "in N" count.
func (b *Builder) Goal(mode search.Mode, n int) *Builder {
	b.mode, b.n, b.modeSet = mode, n, true
	return b
}

// SideToMove overrides the default side to move (White, except
// help-mate's conventional Black-moves-first).
func (b *Builder) SideToMove(c board.Colour) *Builder {
	b.side, b.sideSet = c, true
	return b
}

// EnPassantFile records that the side NOT to move just double-pushed a
// pawn on the given file, making it capturable en passant.
func (b *Builder) EnPassantFile(file int) *Builder {
	b.epFile, b.epSet = file, true
	return b
}

// Castling retires the castling right tied to each given square: a king
// or rook reported as "moved" there (even if the diagram shows it back
// on its home square, a classic problem-composition wrinkle). A right
// is never granted by this call, only taken away -- whether it starts
// available at all still depends on whether the matching king and rook
// actually sit on their home squares.
func (b *Builder) Castling(movedSquares ...board.Square) *Builder {
	b.retired = append(b.retired, movedSquares...)
	return b
}

// Workers sets how many goroutines (including the caller's own) may
// work the search concurrently. 1 (the default) disables
// internal/coordinate entirely.
func (b *Builder) Workers(n int) *Builder {
	b.workers = n
	return b
}

// Output sets the per-solution callback.
func (b *Builder) Output(fn search.OutputFunc) *Builder {
	b.callbacks.Output = fn
	return b
}

// ProgressList sets the per-node move-list callback.
func (b *Builder) ProgressList(fn search.ProgressListFunc) *Builder {
	b.callbacks.ProgressList = fn
	return b
}

// ProgressMove sets the per-move callback.
func (b *Builder) ProgressMove(fn search.ProgressMoveFunc) *Builder {
	b.callbacks.ProgressMove = fn
	return b
}

// Build validates the accumulated configuration and returns the
// resulting Problem, or the first config error it finds.
func (b *Builder) Build() (*Problem, error) {
	if !b.modeSet {
		return nil, cperrors.Config(cperrors.ErrNoGoal, "goal")
	}
	if b.n < 1 {
		return nil, cperrors.Config(cperrors.ErrNonPositiveDepth, "goal")
	}

	pos, err := b.buildPosition()
	if err != nil {
		return nil, err
	}

	side := board.White
	if b.sideSet {
		side = b.side
	} else if b.mode == search.HelpMate {
		side = board.Black
	}
	pos.SetSideToMove(side)

	if b.epSet {
		ep, err := epSquare(side, b.epFile)
		if err != nil {
			return nil, err
		}
		if err := validateEnPassant(pos, side, ep); err != nil {
			return nil, err
		}
		pos.SetEnPassant(ep)
	}

	rights, err := resolveCastling(pos, lo.Uniq(b.retired))
	if err != nil {
		return nil, err
	}
	pos.SetCastling(rights)

	if !pos.HaveKings() {
		return nil, cperrors.Config(cperrors.ErrMissingKing, "placement")
	}

	assert.Assert(pos.Validate(), "problem builder produced an inconsistent position")

	return &Problem{
		initial:   pos,
		mode:      b.mode,
		n:         b.n,
		halfMoves: b.mode.HalfMoves(b.n),
		workers:   b.workers,
		callbacks: b.callbacks,
	}, nil
}

func (b *Builder) buildPosition() (*board.Position, error) {
	seen := make(map[board.Square]bool, len(b.placements))
	for _, pl := range b.placements {
		if seen[pl.Square] {
			return nil, cperrors.Config(cperrors.ErrDuplicateSquare, pl.Square.String())
		}
		seen[pl.Square] = true
	}
	pos := board.New()
	for _, pl := range b.placements {
		pos.Place(pl.Square, pl.Figure)
	}
	return pos, nil
}

// epSquare resolves an en-passant file into the target square: rank 6
// if White is to move (Black just double-pushed from rank 7 to rank 5,
// passing over rank 6), rank 3 the other way around.
func epSquare(sideToMove board.Colour, file int) (board.Square, error) {
	if file < 0 || file >= board.BoardSize {
		return board.NoSquare, cperrors.Config(cperrors.ErrBadEnPassant, "en_passant")
	}
	if sideToMove == board.White {
		return board.Index(file, 5), nil
	}
	return board.Index(file, 2), nil
}

// validateEnPassant checks that the double-pushed pawn implied by ep is
// actually present, and that the squares it passed over are empty.
func validateEnPassant(pos *board.Position, sideToMove board.Colour, ep board.Square) error {
	mover := sideToMove.Opposite()
	file := ep.File()
	startRank, passRank, landRank := 1, 2, 3
	if sideToMove == board.White {
		startRank, passRank, landRank = 6, 5, 4
	}
	pawn := board.Coloured(mover, board.Pawn)
	if pos.Get(board.Index(file, landRank)) != pawn {
		return cperrors.Config(cperrors.ErrBadEnPassant, "en_passant")
	}
	if pos.Get(board.Index(file, startRank)) != board.Empty || pos.Get(board.Index(file, passRank)) != board.Empty {
		return cperrors.Config(cperrors.ErrBadEnPassant, "en_passant")
	}
	return nil
}

// castlingHomeSquares pairs each right with the king/rook home squares
// that must both be occupied by the matching piece for the right to be
// physically available at all.
var castlingHomeSquares = []struct {
	bit            board.CastleRights
	colour         board.Colour
	kingSq, rookSq board.Square
}{
	{board.WhiteShort, board.White, board.Index(4, 0), board.Index(7, 0)},
	{board.WhiteLong, board.White, board.Index(4, 0), board.Index(0, 0)},
	{board.BlackShort, board.Black, board.Index(4, 7), board.Index(7, 7)},
	{board.BlackLong, board.Black, board.Index(4, 7), board.Index(0, 7)},
}

// squareCastlingBits maps one of the six retirement squares to the
// right(s) it retires: e1/e8 retire both of that side's rights
// (the king square matters to both), a1/a8 retire only the long right,
// h1/h8 only the short right.
func squareCastlingBits(sq board.Square) (board.CastleRights, bool) {
	switch sq {
	case board.Index(4, 0):
		return board.WhiteShort | board.WhiteLong, true
	case board.Index(0, 0):
		return board.WhiteLong, true
	case board.Index(7, 0):
		return board.WhiteShort, true
	case board.Index(4, 7):
		return board.BlackShort | board.BlackLong, true
	case board.Index(0, 7):
		return board.BlackLong, true
	case board.Index(7, 7):
		return board.BlackShort, true
	default:
		return 0, false
	}
}

// resolveCastling computes the starting castling rights: a right starts
// available iff its king and rook are both physically on their home
// squares, then any right named by a retirement square is cleared.
func resolveCastling(pos *board.Position, retired []board.Square) (board.CastleRights, error) {
	var rights board.CastleRights
	for _, c := range castlingHomeSquares {
		if pos.Get(c.kingSq) == board.Coloured(c.colour, board.King) && pos.Get(c.rookSq) == board.Coloured(c.colour, board.Rook) {
			rights |= c.bit
		}
	}
	for _, sq := range retired {
		bit, ok := squareCastlingBits(sq)
		if !ok {
			return 0, cperrors.Config(cperrors.ErrImpossibleCastling, "castling")
		}
		rights &^= bit
	}
	return rights, nil
}
