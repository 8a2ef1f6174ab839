package movegen

import (
	"testing"

	"github.com/augurmate/chessproblem/internal/board"
	"github.com/augurmate/chessproblem/internal/testutil"
)

func newPos(side board.Colour) *board.Position {
	p := board.New()
	p.SetSideToMove(side)
	return p
}

func countKind(moves []board.Move, kind board.MoveKind) int {
	n := 0
	for _, m := range moves {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Boundary behaviour: a pawn push to the last rank must fan out into all
// four promotion kinds, not a single move.
func TestGeneratePromotionFanOut(t *testing.T) {
	p := newPos(board.White)
	p.Place(board.Index(0, 6), board.Coloured(board.White, board.Pawn))
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))

	var moves []board.Move
	Generate(p, &moves)

	n := countKind(moves, board.PromoteQueen) + countKind(moves, board.PromoteKnight) +
		countKind(moves, board.PromoteRook) + countKind(moves, board.PromoteBishop)
	if n != 4 {
		t.Fatalf("got %d promotion moves, want 4", n)
	}
	for _, m := range moves {
		if m.Kind.IsPromotion() && (m.From != board.Index(0, 6) || m.To != board.Index(0, 7)) {
			t.Errorf("promotion move %+v has wrong squares", m)
		}
	}
}

// Boundary behaviour: with an en-passant target set, the generator must
// emit the en-passant capture, landing on the target square itself.
func TestGenerateEnPassantTarget(t *testing.T) {
	p := newPos(board.White)
	p.Place(board.Index(4, 4), board.Coloured(board.White, board.Pawn))
	p.Place(board.Index(3, 4), board.Coloured(board.Black, board.Pawn))
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))
	p.SetEnPassant(board.Index(3, 5))

	var moves []board.Move
	Generate(p, &moves)

	found := false
	for _, m := range moves {
		if m.Kind == board.EnPassant {
			found = true
			if m.To != board.Index(3, 5) {
				t.Errorf("en passant lands on %v, want d6", m.To)
			}
		}
	}
	if !found {
		t.Fatal("en passant capture not generated")
	}
}

// Boundary behaviour: castling while in check is illegal, even with full
// rights and an otherwise clear path.
func TestGenerateNoCastlingWhileInCheck(t *testing.T) {
	p := newPos(board.White)
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(0, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(7, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(1, 4), board.Coloured(board.Black, board.King)) // b5
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.Rook)) // e8, checks the white king along the e-file
	p.SetCastling(board.WhiteShort | board.WhiteLong)

	if !p.IsInCheck(board.White) {
		t.Fatal("test setup is wrong: white should be in check from Re8")
	}

	var moves []board.Move
	Generate(p, &moves)
	for _, m := range moves {
		if m.Kind == board.ShortCastle || m.Kind == board.LongCastle {
			t.Errorf("castling move %+v generated while in check", m)
		}
	}
}

func TestIsCheckmateAndIsStalemate(t *testing.T) {
	// Kc6, Qb7 vs Ka8: the queen mates from b7, defended by the king.
	mate := newPos(board.Black)
	mate.Place(board.Index(2, 5), board.Coloured(board.White, board.King))  // c6
	mate.Place(board.Index(1, 6), board.Coloured(board.White, board.Queen)) // b7
	mate.Place(board.Index(0, 7), board.Coloured(board.Black, board.King))  // a8
	if !IsCheckmate(mate) {
		t.Error("expected checkmate")
	}
	if IsStalemate(mate) {
		t.Error("checkmate position should not also report stalemate")
	}
}

// Property test: for every legal move generated from a sample of
// hand-built positions, Push followed by Pop must restore the position's
// full Fingerprint exactly, reported as a structured cmp.Diff rather than
// a single pass/fail bit.
func TestPushPopRoundTripsAcrossGeneratedMoves(t *testing.T) {
	samples := []*board.Position{
		openingLikePosition(),
		castlingRightsPosition(),
		enPassantPosition(),
		promotionPosition(),
	}

	for i, p := range samples {
		var moves []board.Move
		Generate(p, &moves)
		if len(moves) == 0 {
			t.Fatalf("sample %d: no legal moves generated", i)
		}
		for _, m := range moves {
			before := p.Fingerprint()
			p.Push(m)
			p.Pop()
			after := p.Fingerprint()
			testutil.AssertEqual(t, after, before, "sample %d move %+v", i, m)
		}
	}
}

func openingLikePosition() *board.Position {
	p := newPos(board.White)
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(3, 0), board.Coloured(board.White, board.Queen))
	p.Place(board.Index(0, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(7, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(1, 0), board.Coloured(board.White, board.Knight))
	p.Place(board.Index(2, 1), board.Coloured(board.White, board.Pawn))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))
	p.Place(board.Index(3, 7), board.Coloured(board.Black, board.Queen))
	p.Place(board.Index(4, 6), board.Coloured(board.Black, board.Pawn))
	return p
}

func castlingRightsPosition() *board.Position {
	p := newPos(board.White)
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(0, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(7, 0), board.Coloured(board.White, board.Rook))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))
	p.SetCastling(board.WhiteShort | board.WhiteLong)
	return p
}

func enPassantPosition() *board.Position {
	p := newPos(board.White)
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))
	p.Place(board.Index(4, 4), board.Coloured(board.White, board.Pawn))
	p.Place(board.Index(3, 4), board.Coloured(board.Black, board.Pawn))
	p.SetEnPassant(board.Index(3, 5))
	return p
}

func promotionPosition() *board.Position {
	p := newPos(board.White)
	p.Place(board.Index(4, 0), board.Coloured(board.White, board.King))
	p.Place(board.Index(4, 7), board.Coloured(board.Black, board.King))
	p.Place(board.Index(0, 6), board.Coloured(board.White, board.Pawn))
	p.Place(board.Index(1, 7), board.Coloured(board.Black, board.Rook))
	return p
}
