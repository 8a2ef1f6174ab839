package board

import "testing"

func emptyPosition() *Position {
	p := New()
	p.SetSideToMove(White)
	return p
}

func TestIndexRoundTrip(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			sq := Index(file, rank)
			if sq.File() != file || sq.Rank() != rank {
				t.Errorf("Index(%d,%d) round-trip = (%d,%d)", file, rank, sq.File(), sq.Rank())
			}
		}
	}
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Index(0, 0), "a1"},
		{Index(7, 7), "h8"},
		{Index(4, 3), "e4"},
		{NoSquare, "-"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, ok := ParseSquare("e4")
	if !ok || sq != Index(4, 3) {
		t.Fatalf("ParseSquare(e4) = %v, %v", sq, ok)
	}
	if _, ok := ParseSquare("z9"); ok {
		t.Error("ParseSquare(z9) should fail")
	}
}

func TestPlaceAndRemoveUpdatesPieceListAndKingSquare(t *testing.T) {
	p := emptyPosition()
	e1 := Index(4, 0)
	p.Place(e1, Coloured(White, King))

	if p.King(White) != e1 {
		t.Errorf("king square = %v, want %v", p.King(White), e1)
	}
	found := false
	p.Pieces(White).Each(func(s Square) bool {
		if s == e1 {
			found = true
		}
		return true
	})
	if !found {
		t.Error("king square missing from white piece list")
	}

	p.Remove(e1)
	if p.Get(e1) != Empty {
		t.Errorf("square after Remove = %v, want Empty", p.Get(e1))
	}
	p.Pieces(White).Each(func(s Square) bool {
		if s == e1 {
			t.Error("removed square still in piece list")
		}
		return true
	})
}

func TestPushPopRoundTrip(t *testing.T) {
	p := emptyPosition()
	p.Place(Index(4, 0), Coloured(White, King))
	p.Place(Index(4, 7), Coloured(Black, King))
	p.Place(Index(4, 1), Coloured(White, Pawn))

	before := snapshot(p)
	p.Push(Move{Kind: DoublePawnPush, From: Index(4, 1), To: Index(4, 3)})
	if p.Get(Index(4, 1)) != Empty || p.Get(Index(4, 3)) != Coloured(White, Pawn) {
		t.Fatal("double push did not move the pawn")
	}
	if p.EnPassant() != Index(4, 2) {
		t.Errorf("en passant square = %v, want e3", p.EnPassant())
	}
	p.Pop()
	after := snapshot(p)
	if before != after {
		t.Errorf("Pop did not restore position: before=%q after=%q", before, after)
	}
}

func TestPushPopCastleRoundTrip(t *testing.T) {
	p := emptyPosition()
	p.Place(Index(4, 0), Coloured(White, King))
	p.Place(Index(7, 0), Coloured(White, Rook))
	p.Place(Index(4, 7), Coloured(Black, King))
	p.SetCastling(WhiteShort | WhiteLong | BlackShort | BlackLong)

	before := snapshot(p)
	move := p.CastleMove(White, true)
	p.Push(move)
	if p.King(White) != Index(6, 0) {
		t.Errorf("king after short castle = %v, want g1", p.King(White))
	}
	if p.Get(Index(5, 0)) != Coloured(White, Rook) {
		t.Error("rook did not land on f1")
	}
	if p.Castling()&(WhiteShort|WhiteLong) != 0 {
		t.Error("castling rights not revoked after castling")
	}
	p.Pop()
	after := snapshot(p)
	if before != after {
		t.Errorf("Pop did not restore castled position: before=%q after=%q", before, after)
	}
}

func TestPushPopPromotionRoundTrip(t *testing.T) {
	p := emptyPosition()
	p.Place(Index(4, 0), Coloured(White, King))
	p.Place(Index(4, 7), Coloured(Black, King))
	p.Place(Index(0, 6), Coloured(White, Pawn))

	before := snapshot(p)
	p.Push(Move{Kind: PromoteQueen, From: Index(0, 6), To: Index(0, 7)})
	if p.Get(Index(0, 7)) != Coloured(White, Queen) {
		t.Fatal("promotion did not produce a queen")
	}
	p.Pop()
	if p.Get(Index(0, 6)) != Coloured(White, Pawn) {
		t.Error("Pop did not restore the pawn")
	}
	after := snapshot(p)
	if before != after {
		t.Errorf("Pop did not restore pre-promotion position: before=%q after=%q", before, after)
	}
}

func TestPushPopEnPassantRoundTrip(t *testing.T) {
	p := emptyPosition()
	p.Place(Index(4, 0), Coloured(White, King))
	p.Place(Index(4, 7), Coloured(Black, King))
	p.Place(Index(4, 4), Coloured(White, Pawn))
	p.Place(Index(3, 4), Coloured(Black, Pawn))
	p.SetEnPassant(Index(3, 5))

	before := snapshot(p)
	p.Push(Move{Kind: EnPassant, From: Index(4, 4), To: Index(3, 5)})
	if p.Get(Index(3, 4)) != Empty {
		t.Fatal("en passant capture did not remove the captured pawn")
	}
	p.Pop()
	if p.Get(Index(3, 4)) != Coloured(Black, Pawn) {
		t.Error("Pop did not restore the captured pawn")
	}
	after := snapshot(p)
	if before != after {
		t.Errorf("Pop did not restore pre-en-passant position: before=%q after=%q", before, after)
	}
}

func TestHaveKings(t *testing.T) {
	p := emptyPosition()
	if p.HaveKings() {
		t.Error("HaveKings true with no kings placed")
	}
	p.Place(Index(4, 0), Coloured(White, King))
	p.Place(Index(4, 7), Coloured(Black, King))
	if !p.HaveKings() {
		t.Error("HaveKings false with both kings placed")
	}
}

// snapshot renders enough of the position's observable state to detect
// any discrepancy a Push/Pop round trip should never introduce.
func snapshot(p *Position) string {
	out := make([]byte, 0, NumSquares+16)
	for s := 0; s < NumSquares; s++ {
		out = append(out, byte(p.squares[s])+64)
	}
	out = append(out, byte(p.sideToMove), byte(p.castling))
	out = append(out, []byte(p.enPassant.String())...)
	out = append(out, []byte(p.King(White).String())...)
	out = append(out, []byte(p.King(Black).String())...)
	return string(out)
}
