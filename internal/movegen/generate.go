// Package movegen implements pseudo-legal and legal move generation over
// an internal/board Position: castling, then sliders, leapers, and pawns
// (including double push, en passant and promotion fan-out) in piece-list
// order, each candidate filtered through the pinned-piece test.
package movegen

import "github.com/augurmate/chessproblem/internal/board"

var promotionKinds = [4]board.MoveKind{
	board.PromoteQueen, board.PromoteKnight, board.PromoteRook, board.PromoteBishop,
}

// emitter receives a pseudo-legal candidate and decides whether to keep
// collecting. It returns false to signal "stop generating" only when the
// caller wants existence and a legal move was just found; a candidate
// rejected by the pinned-piece test returns true so generation goes on.
type emitter func(board.Move) bool

// Generate produces legal moves for the side to move.
//
// If into is non-nil, every legal move is appended to it (collection
// mode) and Generate returns whether any were found. If into is nil,
// Generate returns true as soon as a single legal move exists, without
// building a list (existence-only mode).
func Generate(p *board.Position, into *[]board.Move) bool {
	colour := p.SideToMove()
	found := false

	emit := func(m board.Move) bool {
		if !p.IsLegalAfter(m, colour) {
			return true
		}
		found = true
		if into == nil {
			return false
		}
		*into = append(*into, m)
		return true
	}

	if p.CanCastleKingside(colour) {
		found = true
		if into == nil {
			return true
		}
		*into = append(*into, p.CastleMove(colour, true))
	}
	if p.CanCastleQueenside(colour) {
		found = true
		if into == nil {
			return true
		}
		*into = append(*into, p.CastleMove(colour, false))
	}

	keepGoing := true
	p.Pieces(colour).Each(func(sq board.Square) bool {
		fig := p.Get(sq)
		switch fig.Piece() {
		case board.Pawn:
			keepGoing = genPawn(p, sq, colour, emit)
		case board.Knight:
			keepGoing = genLeaper(p, sq, colour, board.KnightDeltas[:], emit)
		case board.King:
			keepGoing = genLeaper(p, sq, colour, board.KingDirs[:], emit)
		case board.Bishop:
			keepGoing = genSlider(p, sq, colour, board.BishopDirs[:], emit)
		case board.Rook:
			keepGoing = genSlider(p, sq, colour, board.RookDirs[:], emit)
		case board.Queen:
			keepGoing = genSlider(p, sq, colour, board.BishopDirs[:], emit) &&
				genSlider(p, sq, colour, board.RookDirs[:], emit)
		}
		if into == nil && found {
			return false
		}
		return keepGoing
	})

	return found
}

// HasLegalMove is the existence-only convenience form of Generate.
func HasLegalMove(p *board.Position) bool {
	return Generate(p, nil)
}

func genSlider(p *board.Position, from board.Square, colour board.Colour, dirs []int, emit emitter) bool {
	for _, d := range dirs {
		to := from + board.Square(d)
		for {
			target := p.Get(to)
			if !target.IsColoured() {
				if target == board.Empty {
					if !emit(board.Move{Kind: board.Normal, From: from, To: to}) {
						return false
					}
					to += board.Square(d)
					continue
				}
				break // NoFigure: ray left the board
			}
			if target.Colour() != colour {
				if !emit(board.Move{Kind: board.Normal, From: from, To: to}) {
					return false
				}
			}
			break // own or opposing piece: ray stops either way
		}
	}
	return true
}

func genLeaper(p *board.Position, from board.Square, colour board.Colour, deltas []int, emit emitter) bool {
	for _, d := range deltas {
		to := from + board.Square(d)
		target := p.Get(to)
		if target == board.Empty || (target.IsColoured() && target.Colour() != colour) {
			if !emit(board.Move{Kind: board.Normal, From: from, To: to}) {
				return false
			}
		}
	}
	return true
}

func genPawn(p *board.Position, from board.Square, colour board.Colour, emit emitter) bool {
	file, rank := from.File(), from.Rank()
	dir, startRank, lastRank := 1, 1, 7
	if colour == board.Black {
		dir, startRank, lastRank = -1, 6, 0
	}

	oneStep := board.Index(file, rank+dir)
	if p.Get(oneStep) == board.Empty {
		if !emitPawnTo(from, oneStep, rank+dir == lastRank, emit) {
			return false
		}
		if rank == startRank {
			twoStep := board.Index(file, rank+2*dir)
			if p.Get(twoStep) == board.Empty {
				if !emit(board.Move{Kind: board.DoublePawnPush, From: from, To: twoStep}) {
					return false
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := board.Index(file+df, rank+dir)
		target := p.Get(to)
		switch {
		case target.IsColoured() && target.Colour() != colour:
			if !emitPawnTo(from, to, rank+dir == lastRank, emit) {
				return false
			}
		case p.EnPassant() != board.NoSquare && to == p.EnPassant():
			if !emit(board.Move{Kind: board.EnPassant, From: from, To: to}) {
				return false
			}
		}
	}
	return true
}

func emitPawnTo(from, to board.Square, promotes bool, emit emitter) bool {
	if !promotes {
		return emit(board.Move{Kind: board.Normal, From: from, To: to})
	}
	for _, k := range promotionKinds {
		if !emit(board.Move{Kind: k, From: from, To: to}) {
			return false
		}
	}
	return true
}
