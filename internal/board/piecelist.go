package board

// pieceNode is one entry of a colour's occupied-square list, addressed by
// square through the list's bySquare map rather than a raw pointer, so it
// survives a value-copy of the position.
type pieceNode struct {
	square     Square
	prev, next *pieceNode
}

// PieceList is a colour's set of occupied squares, kept in a doubly-linked
// list (most-recently-placed first) with O(1) insertion at the front and
// O(1) removal given a square.
type PieceList struct {
	head, tail *pieceNode
	bySquare   map[Square]*pieceNode
	count      int
}

// NewPieceList returns an empty piece list.
func NewPieceList() *PieceList {
	return &PieceList{bySquare: make(map[Square]*pieceNode, 16)}
}

// Len returns the number of occupied squares tracked.
func (l *PieceList) Len() int { return l.count }

// Has reports whether square is present in the list.
func (l *PieceList) Has(square Square) bool {
	_, ok := l.bySquare[square]
	return ok
}

// Insert adds square to the front of the list. The caller must ensure the
// square is not already present (use Erase first if replacing).
func (l *PieceList) Insert(square Square) {
	n := &pieceNode{square: square, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.bySquare[square] = n
	l.count++
}

// Erase removes square from the list in O(1). No-op if absent.
func (l *PieceList) Erase(square Square) {
	n, ok := l.bySquare[square]
	if !ok {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	delete(l.bySquare, square)
	l.count--
}

// Rename moves the list entry for `from` to refer to `to`, preserving its
// position in the list (used when a piece moves without being captured).
func (l *PieceList) Rename(from, to Square) {
	n, ok := l.bySquare[from]
	if !ok {
		return
	}
	delete(l.bySquare, from)
	n.square = to
	l.bySquare[to] = n
}

// Each iterates the list from most-recently-placed to least, matching the
// move generator's required square order. Iteration stops early if fn
// returns false.
func (l *PieceList) Each(fn func(Square) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.square) {
			return
		}
	}
}

// Squares collects the list contents in iteration order. Intended for tests
// and debug validation, not the hot move-generation path.
func (l *PieceList) Squares() []Square {
	out := make([]Square, 0, l.count)
	l.Each(func(s Square) bool {
		out = append(out, s)
		return true
	})
	return out
}

// Clone deep-copies the list: nodes are re-allocated (pointers can't be
// shared across a position clone used by a different worker) and the
// square-to-node map is rebuilt from scratch.
func (l *PieceList) Clone() *PieceList {
	out := NewPieceList()
	// Walk tail-to-head so Insert (front-inserting) reproduces the same order.
	for n := l.tail; n != nil; n = n.prev {
		out.Insert(n.square)
	}
	return out
}
