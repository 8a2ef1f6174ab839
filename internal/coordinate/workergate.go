package coordinate

import "sync"

// workerGate bounds how many extra goroutines the coordinator may have
// running at once, across the whole tree, on top of whichever goroutine
// is already walking it. acquire/release bracket exactly one spawned
// worker's lifetime; the goroutine that calls acquire and gets back
// false does not spawn anything and just folds that move into its own
// sequential cursor loop instead.
type workerGate struct {
	mu     sync.Mutex
	max    int
	inUse  int
}

func newWorkerGate(max int) *workerGate {
	return &workerGate{max: max}
}

func (g *workerGate) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inUse >= g.max {
		return false
	}
	g.inUse++
	return true
}

func (g *workerGate) release() {
	g.mu.Lock()
	g.inUse--
	g.mu.Unlock()
}
