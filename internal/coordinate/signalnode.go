// Package coordinate implements the parallel mate-search coordinator: a
// tree of signal nodes, one per ply that spawns workers, each guarding a
// move cursor shared by however many workers actually took part, joined
// with golang.org/x/sync/errgroup.
package coordinate

import "sync/atomic"

// SignalNode is one forking ply. Its kill and win flags are each
// write-once-monotone: once set, a flag never reverts, so a worker
// racing to read it never has to reconcile a flip back to false.
//
// Killed walks the parent chain, so killing an ancestor silently stops
// every descendant cursor the next time it checks -- no need to push
// cancellation down an arbitrary number of in-flight children.
type SignalNode struct {
	parent *SignalNode
	killed atomic.Bool
	won    atomic.Bool
}

// NewSignalNode creates a signal node with the given parent (nil at the
// root of the forking region).
func NewSignalNode(parent *SignalNode) *SignalNode {
	return &SignalNode{parent: parent}
}

// Kill marks this node dead: its cursor stops yielding moves and its
// workers unwind as soon as they next check.
func (n *SignalNode) Kill() { n.killed.Store(true) }

// Killed reports whether this node or any ancestor has been killed.
func (n *SignalNode) Killed() bool {
	for s := n; s != nil; s = s.parent {
		if s.killed.Load() {
			return true
		}
	}
	return false
}

// MarkWin records that at least one explored child at this node lost
// for the opponent -- the node's own value is Win.
func (n *SignalNode) MarkWin() { n.won.Store(true) }

// Won reports whether MarkWin was ever called on this node.
func (n *SignalNode) Won() bool { return n.won.Load() }
