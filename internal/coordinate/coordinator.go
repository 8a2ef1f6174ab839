package coordinate

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/augurmate/chessproblem/internal/board"
	"github.com/augurmate/chessproblem/internal/search"
)

// Options configures how aggressively the coordinator forks. Forking is
// considered at every node from the root down to NewThreadDepth
// inclusive; nodes deeper than that always run on whichever goroutine
// reached them, via search.Searcher.RecurseMoves directly.
type Options struct {
	// NewThreadDepth bounds how deep (in plies from the root) forking
	// is attempted. 0 means only the root ply ever forks.
	NewThreadDepth int
	// MaxWorkers caps how many extra goroutines may be running at once
	// across the whole tree, beyond the one driving the walk.
	MaxWorkers int
	// MinForkMoves is the minimum number of legal moves a node must
	// have before forking is worth considering at all.
	MinForkMoves int
}

// DefaultOptions returns reasonable settings: fork the top three plies
// (depths 0 through 2), cap extra goroutines at maxWorkers, require at
// least two moves to bother splitting.
func DefaultOptions(maxWorkers int) Options {
	if maxWorkers < 0 {
		maxWorkers = 0
	}
	return Options{NewThreadDepth: 2, MaxWorkers: maxWorkers, MinForkMoves: 2}
}

// Coordinator drives search.Searcher.Recurse over a tree of SignalNodes,
// forking additional goroutines near the root and falling back to plain
// sequential recursion below Options.NewThreadDepth.
type Coordinator struct {
	Searcher *search.Searcher
	Opts     Options

	gate *workerGate
}

// New builds a Coordinator bound to s.
func New(s *search.Searcher, opts Options) *Coordinator {
	return &Coordinator{Searcher: s, Opts: opts, gate: newWorkerGate(opts.MaxWorkers)}
}

// Solve runs the coordinated search from the empty move stack and
// returns the number of solutions reported via the Searcher's output
// callback. If Opts.MaxWorkers is 0 this degenerates to a single
// sequential walk.
func (c *Coordinator) Solve(pos *board.Position) uint64 {
	root := NewSignalNode(nil)
	c.evaluate(pos, root, 0, c.Searcher.TargetHalfMoves)
	return c.Searcher.Solutions.Load()
}

// evaluate is the coordinator's analogue of Searcher.Recurse: it runs
// the node through the same terminal/empty-list test, then either forks
// its children across a shared cursor or falls back to plain sequential
// recursion, depending on depth, move count, and gate availability.
func (c *Coordinator) evaluate(pos *board.Position, node *SignalNode, depth, remaining int) search.Value {
	if node.Killed() {
		return c.Searcher.DefaultValue()
	}

	moves, value, terminal := c.Searcher.EvaluateNode(pos, depth, remaining)
	if terminal {
		return value
	}

	if !c.shouldFork(depth, len(moves)) {
		return c.Searcher.RecurseMoves(pos, depth, remaining, moves)
	}
	return c.forkEvaluate(pos, node, depth, remaining, moves)
}

func (c *Coordinator) shouldFork(depth, numMoves int) bool {
	return depth <= c.Opts.NewThreadDepth && numMoves >= c.Opts.MinForkMoves
}

// forkEvaluate distributes moves over a shared cursor: it spawns as
// many extra workers as the gate allows (each on its own position
// clone), drains the rest of the cursor itself on pos, and joins every
// spawned worker with an errgroup before returning.
func (c *Coordinator) forkEvaluate(pos *board.Position, node *SignalNode, depth, remaining int, moves []board.Move) search.Value {
	cursor := NewCursor(moves)

	var g errgroup.Group
	spawned := 0
	for spawned < len(moves)-1 && c.gate.acquire() {
		spawned++
		workerPos := pos.Clone()
		g.Go(func() error {
			defer c.gate.release()
			c.drainCursor(workerPos, node, depth, remaining, cursor)
			return nil
		})
	}
	log.Debug().Int("depth", depth).Int("workers", spawned).Msg("coordinate-fork")

	c.drainCursor(pos, node, depth, remaining, cursor)
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("coordinate-worker-error")
	}

	if node.Won() {
		return search.Win
	}
	return c.Searcher.DefaultValue()
}

// drainCursor repeatedly takes a move from cursor and evaluates the
// child it leads to, stopping as soon as the node is killed (by a
// sibling's prune or a global cancellation) or the cursor runs dry.
func (c *Coordinator) drainCursor(pos *board.Position, node *SignalNode, depth, remaining int, cursor *Cursor) {
	for {
		if node.Killed() || c.Searcher.IsCancelled() {
			return
		}
		m, ok := cursor.Take()
		if !ok {
			return
		}
		if !c.Searcher.CallProgressMove(m, pos) {
			c.Searcher.Cancel()
			node.Kill()
			return
		}

		pos.Push(m)
		child := c.evaluate(pos, NewSignalNode(node), depth+1, remaining-1)
		// Pop is delayed past DecideChild for the same reason
		// search.Searcher.RecurseMoves delays it: at the root, DecideChild's
		// output callback must still see the solving move on the stack.
		outcome := c.Searcher.DecideChild(pos, depth, child)
		pos.Pop()

		switch outcome {
		case search.ChildPrune:
			node.MarkWin()
			node.Kill()
			return
		case search.ChildCancelled:
			node.Kill()
			return
		}
	}
}
