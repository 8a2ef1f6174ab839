package board

import "github.com/augurmate/chessproblem/internal/assert"

// CastleRights is a bitmask over the four castling rights.
type CastleRights uint8

const (
	WhiteShort CastleRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// Has reports whether all bits of want are set.
func (c CastleRights) Has(want CastleRights) bool { return c&want == want }

// rightsFor returns the (short, long) castling bits for a colour.
func rightsFor(c Colour) (short, long CastleRights) {
	if c == White {
		return WhiteShort, WhiteLong
	}
	return BlackShort, BlackLong
}

// Position is the full mutable game state: the mailbox board, the two
// piece lists, king squares, side to move, castling rights, the
// en-passant target, and the stack of applied-but-not-retracted moves.
//
// A zero-value Position is not usable. Side to move is "unknown" until
// explicitly set, and SideToMove asserts that it was set. Castling rights
// and the en-passant target are not tracked as unset: until set they read
// as no rights and NoSquare.
type Position struct {
	squares [NumSquares]Figure

	pieces [2]*PieceList
	king   [2]Square

	sideToMove  Colour
	sideToMoveSet bool
	castling    CastleRights
	enPassant   Square

	undo []UndoRecord
}

// New returns an empty, sentinel-initialised position with empty piece
// lists. Metadata (side to move, castling, en-passant) must still be set
// before the position is usable.
func New() *Position {
	p := &Position{
		pieces: [2]*PieceList{NewPieceList(), NewPieceList()},
	}
	for s := 0; s < NumSquares; s++ {
		p.squares[s] = NoFigure
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p.squares[Index(file, rank)] = Empty
		}
	}
	return p
}

// Clear resets the position to the state New() returns.
func (p *Position) Clear() {
	*p = *New()
}

// Get returns the figure occupying square s (NoFigure off board).
func (p *Position) Get(s Square) Figure { return p.squares[s] }

// SideToMove returns whose move it is. Panics via assert if never set --
// see SetSideToMove.
func (p *Position) SideToMove() Colour {
	assert.Assert(p.sideToMoveSet, "side to move was never set")
	return p.sideToMove
}

// SetSideToMove sets whose move it is.
func (p *Position) SetSideToMove(c Colour) {
	p.sideToMove = c
	p.sideToMoveSet = true
}

// Castling returns the current castling rights mask.
func (p *Position) Castling() CastleRights { return p.castling }

// SetCastling overwrites the castling rights mask.
func (p *Position) SetCastling(c CastleRights) { p.castling = c }

// RevokeCastling clears the given rights (e.g. because the rook or king
// square was reported as "already moved" at setup time).
func (p *Position) RevokeCastling(c CastleRights) { p.castling &^= c }

// EnPassant returns the current en-passant target square, or NoSquare.
func (p *Position) EnPassant() Square { return p.enPassant }

// SetEnPassant sets the en-passant target square.
func (p *Position) SetEnPassant(s Square) { p.enPassant = s }

// King returns the king square for a colour.
func (p *Position) King(c Colour) Square { return p.king[c] }

// Pieces returns the piece list for a colour, most-recently-placed first.
func (p *Position) Pieces(c Colour) *PieceList { return p.pieces[c] }

// MoveStackLen reports how many moves are currently applied but not
// retracted -- the root of a search is stack length 0, depth 1 is stack
// length 1, and so on.
func (p *Position) MoveStackLen() int { return len(p.undo) }

// LastMove returns the most recently applied, not-yet-retracted move.
// Ok is false if the stack is empty.
func (p *Position) LastMove() (Move, bool) {
	if len(p.undo) == 0 {
		return Move{}, false
	}
	return p.undo[len(p.undo)-1].Move, true
}

// History returns the sequence of applied moves, oldest first.
func (p *Position) History() []Move {
	out := make([]Move, len(p.undo))
	for i, u := range p.undo {
		out[i] = u.Move
	}
	return out
}

// Place puts fig on square s, asserting s is a playable square. If s was
// occupied the former occupant is unlinked from its colour's list first.
func (p *Position) Place(s Square, fig Figure) {
	assertPlayable(s, p.squares[s])
	if prev := p.squares[s]; prev.IsColoured() {
		p.pieces[prev.Colour()].Erase(s)
	}
	p.squares[s] = fig
	if fig.IsColoured() {
		p.pieces[fig.Colour()].Insert(s)
		if fig.Piece() == King {
			p.king[fig.Colour()] = s
		}
	}
}

// Remove clears square s, unlinking any occupant from its piece list.
func (p *Position) Remove(s Square) {
	if fig := p.squares[s]; fig.IsColoured() {
		p.pieces[fig.Colour()].Erase(s)
	}
	p.squares[s] = Empty
}

// MovePiece relocates the occupant of `from` to `to`, reusing its list
// node (Rename) so the list's insertion-order position is preserved. If
// `to` held an opposing piece, that piece is unlinked from its own list
// (a capture). It is an error to call MovePiece on an empty `from`.
func (p *Position) MovePiece(from, to Square) {
	fig := p.squares[from]
	assertColoured(fig)
	if captured := p.squares[to]; captured.IsColoured() {
		p.pieces[captured.Colour()].Erase(to)
	}
	p.squares[to] = fig
	p.squares[from] = Empty
	p.pieces[fig.Colour()].Rename(from, to)
	if fig.Piece() == King {
		p.king[fig.Colour()] = to
	}
}

// Clone deep-copies the position: the board array is value-copied, the
// piece lists and their per-square node maps are rebuilt from scratch
// (pointers cannot be shared with the original across concurrent
// workers), and the undo stack is copied so the clone's history is
// independent. This is what the parallel coordinator uses to hand a
// worker its own position before forking.
func (p *Position) Clone() *Position {
	out := &Position{
		squares:     p.squares,
		king:        p.king,
		sideToMove:  p.sideToMove,
		sideToMoveSet: p.sideToMoveSet,
		castling:    p.castling,
		enPassant:   p.enPassant,
	}
	out.pieces[White] = p.pieces[White].Clone()
	out.pieces[Black] = p.pieces[Black].Clone()
	out.undo = make([]UndoRecord, len(p.undo))
	copy(out.undo, p.undo)
	return out
}

// Validate checks the piece-list/board invariants: every listed square
// holds a matching-coloured piece, and every coloured square on the board
// appears exactly once in the matching list. It is used only from debug
// assertions (internal/assert), never production control flow -- a
// failure here is a programmer error, not recoverable.
func (p *Position) Validate() bool {
	seen := make(map[Square]bool, 32)
	for _, c := range [2]Colour{White, Black} {
		ok := true
		p.pieces[c].Each(func(s Square) bool {
			fig := p.squares[s]
			if !fig.IsColoured() || fig.Colour() != c || seen[s] {
				ok = false
				return false
			}
			seen[s] = true
			return true
		})
		if !ok {
			return false
		}
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			s := Index(file, rank)
			fig := p.squares[s]
			if fig.IsColoured() && !seen[s] {
				return false
			}
		}
	}
	return true
}

// Fingerprint is an exported, comparable snapshot of a Position's full
// observable state, for property tests that need a structured cmp.Diff
// rather than a hand-rolled equality check of a push/pop round trip.
type Fingerprint struct {
	Squares    [NumSquares]Figure
	SideToMove Colour
	Castling   CastleRights
	EnPassant  Square
	WhiteKing  Square
	BlackKing  Square
}

// Fingerprint captures p's current state.
func (p *Position) Fingerprint() Fingerprint {
	return Fingerprint{
		Squares:    p.squares,
		SideToMove: p.sideToMove,
		Castling:   p.castling,
		EnPassant:  p.enPassant,
		WhiteKing:  p.king[White],
		BlackKing:  p.king[Black],
	}
}

// HaveKings reports whether both sides' tracked king squares actually
// point at a king of the matching colour on the board.
func (p *Position) HaveKings() bool {
	for _, c := range [2]Colour{White, Black} {
		fig := p.squares[p.king[c]]
		if !fig.IsColoured() || fig.Piece() != King || fig.Colour() != c {
			return false
		}
	}
	return true
}
