package board

// rayAttacker walks from s in direction dir until it hits a non-empty
// square, relying on the sentinel border to terminate the walk without
// any bounds check. It reports whether that square holds an
// attacker-coloured piece of one of the given types.
func (p *Position) rayAttacker(s Square, dir int, attacker Colour, pieces ...Piece) bool {
	cur := s + Square(dir)
	for p.squares[cur] == Empty {
		cur += Square(dir)
	}
	fig := p.squares[cur]
	if !fig.IsColoured() || fig.Colour() != attacker {
		return false
	}
	for _, pc := range pieces {
		if fig.Piece() == pc {
			return true
		}
	}
	return false
}

// IsThreatened reports whether square s is attacked by the opponent of
// victim. Walks bishop rays then rook rays, probes the eight knight
// offsets, the eight king offsets, and the two pawn capture offsets.
func (p *Position) IsThreatened(s Square, victim Colour) bool {
	attacker := victim.Opposite()

	df := Square(forward(attacker))
	pawn := Coloured(attacker, Pawn)
	if p.squares[s-df-1] == pawn || p.squares[s-df+1] == pawn {
		return true
	}

	knight := Coloured(attacker, Knight)
	for _, d := range KnightDeltas {
		if p.squares[s+Square(d)] == knight {
			return true
		}
	}

	king := Coloured(attacker, King)
	for _, d := range KingDirs {
		if p.squares[s+Square(d)] == king {
			return true
		}
	}

	for _, d := range BishopDirs {
		if p.rayAttacker(s, d, attacker, Bishop, Queen) {
			return true
		}
	}
	for _, d := range RookDirs {
		if p.rayAttacker(s, d, attacker, Rook, Queen) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether colour's king is currently attacked.
func (p *Position) IsInCheck(colour Colour) bool {
	return p.IsThreatened(p.king[colour], colour)
}

// IsLegalAfter reports whether applying move would leave the mover's own
// king out of check (true means the move is legal). It uses a fast path: swap the two affected squares in
// place (without touching piece lists, since the attack query only reads
// the board array), test, then restore -- safe because no piece-list
// metadata is consulted by IsThreatened.
//
// En-passant is handled specially since it vacates a third square.
func (p *Position) IsLegalAfter(move Move, mover Colour) bool {
	from, to := move.From, move.To
	savedFrom, savedTo := p.squares[from], p.squares[to]
	kingSquare := p.king[mover]
	if savedFrom.Piece() == King {
		kingSquare = to
	}

	p.squares[to] = savedFrom
	p.squares[from] = Empty

	var capturedSquare Square
	var savedCaptured Figure
	if move.Kind == EnPassant {
		capturedSquare = to - Square(forward(mover))
		savedCaptured = p.squares[capturedSquare]
		p.squares[capturedSquare] = Empty
	}

	legal := !p.IsThreatened(kingSquare, mover)

	p.squares[from] = savedFrom
	p.squares[to] = savedTo
	if move.Kind == EnPassant {
		p.squares[capturedSquare] = savedCaptured
	}
	return legal
}
