package movegen

import "github.com/augurmate/chessproblem/internal/board"

// IsCheckmate reports whether the side to move has no legal move and is
// in check.
func IsCheckmate(p *board.Position) bool {
	return p.IsInCheck(p.SideToMove()) && !HasLegalMove(p)
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func IsStalemate(p *board.Position) bool {
	return !p.IsInCheck(p.SideToMove()) && !HasLegalMove(p)
}
