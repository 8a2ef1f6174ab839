// Package problem assembles a validated starting position and goal
// into an immutable Problem, and runs it to completion.
package problem

import (
	"github.com/augurmate/chessproblem/internal/board"
	"github.com/augurmate/chessproblem/internal/coordinate"
	"github.com/augurmate/chessproblem/internal/search"
)

// Placement is one square/figure pair for a problem's starting diagram.
type Placement struct {
	Square board.Square
	Figure board.Figure
}

// Problem is an immutable, validated problem ready to solve: a starting
// position, a goal mode and move count, and the reporting callbacks.
// Build it with Builder; there is no exported constructor, since every
// field needs the cross-checks Builder.Build performs.
type Problem struct {
	initial   *board.Position
	mode      search.Mode
	n         int
	halfMoves int
	workers   int
	callbacks search.Callbacks
}

// Mode returns the goal family this problem poses.
func (p *Problem) Mode() search.Mode { return p.mode }

// N returns the problem's "in N" count (moves, not plies).
func (p *Problem) N() int { return p.n }

// Solve runs the problem to completion and returns how many solutions
// were reported through the output callback. With Builder.Workers left
// at its default of 1, this runs single-threaded via search.Searcher;
// with more workers it runs through internal/coordinate instead.
func Solve(p *Problem) uint64 {
	s := search.NewSearcher(p.mode, p.halfMoves, p.callbacks)
	pos := p.initial.Clone()
	if p.workers <= 1 {
		return s.Solve(pos)
	}
	c := coordinate.New(s, coordinate.DefaultOptions(p.workers-1))
	return c.Solve(pos)
}
