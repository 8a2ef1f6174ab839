package search

import (
	"sync"
	"sync/atomic"

	"github.com/augurmate/chessproblem/internal/board"
	"github.com/augurmate/chessproblem/internal/movegen"
)

// Outcome is what a node's evaluated child tells the parent to do next.
type Outcome int

const (
	// ChildContinue means the child didn't decide this node; try the
	// next sibling move.
	ChildContinue Outcome = iota
	// ChildPrune means this node has found a move that loses for the
	// opponent; its own value is Win and no further siblings matter.
	ChildPrune
	// ChildCancelled means the search was cancelled while exploring
	// this child; unwind without looking at further siblings.
	ChildCancelled
)

// Searcher runs the goal-dependent mini-max recursion for one problem.
// It is safe to share read-only fields (Mode, TargetHalfMoves,
// Callbacks) across goroutines; Cancelled and Solutions are atomics for
// exactly that reason -- internal/coordinate runs many Searcher.Recurse
// calls concurrently against independent Position clones, all sharing
// one Searcher.
type Searcher struct {
	Mode            Mode
	TargetHalfMoves int
	Callbacks       Callbacks

	Cancelled *atomic.Bool
	Solutions *atomic.Uint64

	// outputMu serializes every callback invocation: with workers alive,
	// several goroutines may reach a callback at once, and
	// a front end must see a single serialized stream. A callback's
	// cancellation is committed to Cancelled while still holding this
	// lock, so no sibling worker's output can race in behind it.
	outputMu sync.Mutex
}

// NewSearcher builds a Searcher with fresh shared cancellation/solution
// counters.
func NewSearcher(mode Mode, targetHalfMoves int, cb Callbacks) *Searcher {
	return &Searcher{
		Mode:            mode,
		TargetHalfMoves: targetHalfMoves,
		Callbacks:       cb,
		Cancelled:       new(atomic.Bool),
		Solutions:       new(atomic.Uint64),
	}
}

func (s *Searcher) isCancelled() bool { return s.Cancelled.Load() }
func (s *Searcher) cancel()           { s.Cancelled.Store(true) }

// callOutput invokes the output callback under outputMu, committing a
// cancellation before releasing the lock.
func (s *Searcher) callOutput(pos *board.Position) bool {
	s.outputMu.Lock()
	defer s.outputMu.Unlock()
	if s.isCancelled() {
		return false
	}
	if s.Callbacks.output(pos) {
		return true
	}
	s.cancel()
	return false
}

// callProgressList invokes the progress-list callback under outputMu.
func (s *Searcher) callProgressList(moves []board.Move, pos *board.Position) bool {
	s.outputMu.Lock()
	defer s.outputMu.Unlock()
	if s.Callbacks.progressList(moves, pos) {
		return true
	}
	s.cancel()
	return false
}

// callProgressMove invokes the progress-move callback under outputMu.
func (s *Searcher) callProgressMove(m board.Move, pos *board.Position) bool {
	s.outputMu.Lock()
	defer s.outputMu.Unlock()
	if s.Callbacks.progressMove(m, pos) {
		return true
	}
	s.cancel()
	return false
}

// reportHelpMateLeaf counts and reports a help-mate leaf: every
// cooperating mating line is a solution, not just the first found, so
// this is called from both help-mate checkmate branches in EvaluateNode.
func (s *Searcher) reportHelpMateLeaf(pos *board.Position) {
	s.Solutions.Add(1)
	s.callOutput(pos)
}

// EvaluateNode runs the r=0 terminal test and the empty-move-list
// early-terminal test. If the node is terminal
// (isTerminal true), value is its final result and moves is nil. If not,
// moves holds the generated legal moves (the progress-list callback has
// already been consulted and, if it declined, the search is cancelled
// and isTerminal reports true with the mode's default value).
//
// depth is the move-stack length at pos (0 at the root); remaining is
// TargetHalfMoves-depth.
func (s *Searcher) EvaluateNode(pos *board.Position, depth, remaining int) (moves []board.Move, value Value, isTerminal bool) {
	if s.isCancelled() {
		return nil, s.Mode.defaultValue(), true
	}

	if remaining == 0 {
		mate := movegen.IsCheckmate(pos)
		value = s.Mode.terminalValue(mate)
		if mate && s.Mode.isHelpMate() {
			s.reportHelpMateLeaf(pos)
		}
		return nil, value, true
	}

	var gen []board.Move
	if !movegen.Generate(pos, &gen) {
		if remaining%2 == 1 {
			return nil, s.Mode.terminalValue(true), true
		}
		if !pos.IsInCheck(pos.SideToMove()) {
			return nil, s.Mode.terminalValue(false), true
		}
		if s.Mode.isHelpMate() {
			s.reportHelpMateLeaf(pos)
		}
		return nil, s.Mode.terminalValue(true), true
	}

	if !s.callProgressList(gen, pos) {
		return nil, s.Mode.defaultValue(), true
	}

	return gen, Lose, false
}

// DecideChild applies the per-child decision once a child's value has
// been computed by recursing one ply deeper. depth is the
// pre-move depth of the node doing the deciding (0 at the root, so
// depth==0 means the move just tried was the very first ply).
func (s *Searcher) DecideChild(pos *board.Position, depth int, childValue Value) Outcome {
	if s.isCancelled() {
		return ChildCancelled
	}
	if !s.Mode.prunes() {
		return ChildContinue
	}
	if childValue == Win {
		// The opponent (mover at the child) reached their own goal
		// there, so this move didn't work; try the next one.
		return ChildContinue
	}
	if depth == 0 {
		// A solution, not a prune: report it and keep searching the
		// root's remaining moves for cooks.
		s.Solutions.Add(1)
		if !s.callOutput(pos) {
			return ChildCancelled
		}
		return ChildContinue
	}
	return ChildPrune
}

// Recurse is the full sequential walk: evaluate the node, and if not
// terminal, try each legal move in turn, recursing one ply
// deeper for each and applying DecideChild to its result. It is both the
// entry point when the problem has no parallel workers and the
// subtree executor internal/coordinate falls back to below its
// new-thread depth bound.
func (s *Searcher) Recurse(pos *board.Position, depth, remaining int) Value {
	moves, value, terminal := s.EvaluateNode(pos, depth, remaining)
	if terminal {
		return value
	}
	return s.RecurseMoves(pos, depth, remaining, moves)
}

// RecurseMoves runs the per-child decision loop over an already-generated,
// already-progress-list-approved move set. internal/coordinate calls
// this directly for the sequential portion of a node it has already run
// through EvaluateNode itself, so the progress-list callback isn't fired
// twice.
func (s *Searcher) RecurseMoves(pos *board.Position, depth, remaining int, moves []board.Move) Value {
	for _, m := range moves {
		if s.isCancelled() {
			break
		}
		if !s.callProgressMove(m, pos) {
			break
		}
		pos.Push(m)
		child := s.Recurse(pos, depth+1, remaining-1)
		// Pop is delayed past DecideChild: at the root, a solution is
		// reported from DecideChild's output callback, and the solving
		// move must still be on the stack for that callback to see it.
		outcome := s.DecideChild(pos, depth, child)
		pos.Pop()

		switch outcome {
		case ChildPrune:
			return Win
		case ChildCancelled:
			return s.Mode.defaultValue()
		}
	}
	return s.Mode.defaultValue()
}

// Solve runs Recurse from the empty move stack and returns the number
// of solutions reported through Callbacks.Output.
func (s *Searcher) Solve(pos *board.Position) uint64 {
	s.Recurse(pos, 0, s.TargetHalfMoves)
	return s.Solutions.Load()
}

// DefaultValue exposes the goal mode's step-4 default value.
func (s *Searcher) DefaultValue() Value { return s.Mode.defaultValue() }

// IsCancelled reports whether the search has been cancelled (an output
// or progress callback returned false somewhere in the tree).
func (s *Searcher) IsCancelled() bool { return s.isCancelled() }

// Cancel marks the whole search cancelled.
func (s *Searcher) Cancel() { s.cancel() }

// CallProgressMove invokes the progress-move callback under outputMu, for
// internal/coordinate's worker goroutines -- output is serialized for
// them exactly as it is for the sequential walk.
func (s *Searcher) CallProgressMove(m board.Move, pos *board.Position) bool {
	return s.callProgressMove(m, pos)
}
