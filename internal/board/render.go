package board

// RenderMove produces a short algebraic-like form:
// uncolored letter for the mover (omitted for pawns), source square,
// "-" for quiet or "*" for capture, destination square, "=Q|N|R|B" for
// promotion, "ep" for en passant, "0-0"/"0-0-0" for castling.
//
// mover and captured are the figures involved, supplied by the caller
// rather than read off the live board, because rendering history from the
// undo stack needs the figures as they were at the time -- they may no
// longer be on the board.
func RenderMove(move Move, mover, captured Figure) string {
	switch move.Kind {
	case ShortCastle:
		return "0-0"
	case LongCastle:
		return "0-0-0"
	}

	var sep byte = '-'
	isCapture := captured.IsColoured() || move.Kind == EnPassant
	if isCapture {
		sep = '*'
	}

	letter := mover.Piece().Letter()
	var sb []byte
	if letter != 0 {
		sb = append(sb, letter)
	}
	sb = append(sb, []byte(move.From.String())...)
	sb = append(sb, sep)
	sb = append(sb, []byte(move.To.String())...)

	if move.Kind.IsPromotion() {
		sb = append(sb, '=', move.Kind.PromotedPiece().Letter())
	}
	if move.Kind == EnPassant {
		sb = append(sb, 'e', 'p')
	}
	return string(sb)
}

// Render renders move using the figures currently on the board, i.e.
// before the move has been applied. Equivalent to computing mover and
// captured from p.Get and calling RenderMove.
func (p *Position) Render(move Move) string {
	mover := p.squares[move.From]
	captured := p.squares[move.To]
	if move.Kind == EnPassant {
		captured = Coloured(mover.Colour().Opposite(), Pawn)
	} else if move.Kind == ShortCastle || move.Kind == LongCastle {
		mover = p.squares[move.From]
		captured = Empty
	}
	return RenderMove(move, mover, captured)
}

// RenderHistory renders every move currently on the undo stack, oldest
// first, using the figures recorded in each UndoRecord rather than the
// live board -- the board reflects only the final position, but each
// move's mover/captured figures are exactly what was recorded when it was
// pushed, so this is correct regardless of how many moves have since been
// applied on top.
func (p *Position) RenderHistory() []string {
	out := make([]string, 0, len(p.undo))
	for _, rec := range p.undo {
		mover := rec.PrevFromFigure
		captured := rec.PrevToFigure
		switch rec.Move.Kind {
		case EnPassant:
			captured = Coloured(mover.Colour().Opposite(), Pawn)
		case ShortCastle, LongCastle:
			captured = Empty
		}
		out = append(out, RenderMove(rec.Move, mover, captured))
	}
	return out
}
