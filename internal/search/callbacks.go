package search

import "github.com/augurmate/chessproblem/internal/board"

// OutputFunc is called with the position at every reported solution.
// For help-mate the move stack holds the full mating line; for mate and
// self-mate it holds only the solving first move.
// Returning false cancels the whole search.
type OutputFunc func(pos *board.Position) bool

// ProgressListFunc is called with the legal moves generated at a node,
// before any of them is tried. Returning false cancels the search.
type ProgressListFunc func(moves []board.Move, pos *board.Position) bool

// ProgressMoveFunc is called before a specific move is pushed. Returning
// false cancels the search.
type ProgressMoveFunc func(m board.Move, pos *board.Position) bool

// Callbacks bundles the three optional reporting hooks a front end may
// register. A nil field behaves as "always continue".
type Callbacks struct {
	Output       OutputFunc
	ProgressList ProgressListFunc
	ProgressMove ProgressMoveFunc
}

func (c Callbacks) output(pos *board.Position) bool {
	if c.Output == nil {
		return true
	}
	return c.Output(pos)
}

func (c Callbacks) progressList(moves []board.Move, pos *board.Position) bool {
	if c.ProgressList == nil {
		return true
	}
	return c.ProgressList(moves, pos)
}

func (c Callbacks) progressMove(m board.Move, pos *board.Position) bool {
	if c.ProgressMove == nil {
		return true
	}
	return c.ProgressMove(m, pos)
}
