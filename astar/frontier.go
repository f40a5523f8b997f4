package astar

import (
	"cmp"
	"container/heap"
	"slices"
)

// FrontierView is the read-only face of the open set handed to beam filters.
type FrontierView[K cmp.Ordered, S Score] interface {
	// Len returns the number of open keys (stale heap entries are not counted).
	Len() int
	// Contains reports whether k is currently open.
	Contains(k K) bool
	// Score returns the general score g recorded for the open copy of k.
	Score(k K) (S, bool)
}

// Frontier is the open set: a min-heap ordered by total score plus a
// membership index keyed by node identity.
//
// The index is canonical. Re-pushing an open key with an improved score
// updates the index and pushes a fresh heap entry; the older entry becomes
// stale and is discarded when it surfaces in PopMin. Entries with equal total
// score pop in insertion order.
type Frontier[K cmp.Ordered, S Score, N Node[K, S, N]] struct {
	pq    entryPQ[S, N]
	index map[K]openEntry[S, N]
	seq   uint64
}

// openEntry is the canonical record of an open key.
type openEntry[S Score, N any] struct {
	node N
	g    S
	seq  uint64
}

// NewFrontier returns an empty Frontier.
func NewFrontier[K cmp.Ordered, S Score, N Node[K, S, N]]() *Frontier[K, S, N] {
	return &Frontier[K, S, N]{index: make(map[K]openEntry[S, N])}
}

// Push inserts n, or supersedes the open copy with the same key, using the
// node's current g and f.
func (f *Frontier[K, S, N]) Push(n N) {
	f.seq++
	f.index[n.Key()] = openEntry[S, N]{node: n, g: n.G(), seq: f.seq}
	heap.Push(&f.pq, &pqEntry[S, N]{node: n, f: n.F(), seq: f.seq})
}

// PopMin removes and returns the open node with the smallest total score.
// ok is false when the frontier is empty.
func (f *Frontier[K, S, N]) PopMin() (n N, ok bool) {
	for f.pq.Len() > 0 {
		e := heap.Pop(&f.pq).(*pqEntry[S, N])
		k := e.node.Key()
		cur, open := f.index[k]
		if !open || cur.seq != e.seq {
			continue // superseded
		}
		delete(f.index, k)

		return e.node, true
	}

	return n, false
}

// Peek returns the node PopMin would return, without removing it.
func (f *Frontier[K, S, N]) Peek() (n N, ok bool) {
	f.dropStale()
	if f.pq.Len() == 0 {
		return n, false
	}

	return f.pq[0].node, true
}

// Contains implements FrontierView.
func (f *Frontier[K, S, N]) Contains(k K) bool {
	_, ok := f.index[k]

	return ok
}

// Score implements FrontierView.
func (f *Frontier[K, S, N]) Score(k K) (S, bool) {
	e, ok := f.index[k]

	return e.g, ok
}

// Len implements FrontierView.
func (f *Frontier[K, S, N]) Len() int { return len(f.index) }

// IsEmpty reports whether no key is open.
func (f *Frontier[K, S, N]) IsEmpty() bool { return len(f.index) == 0 }

// Keys returns the open keys in ascending order.
func (f *Frontier[K, S, N]) Keys() []K {
	keys := make([]K, 0, len(f.index))
	for k := range f.index {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// dropStale pops superseded entries off the top of the heap.
func (f *Frontier[K, S, N]) dropStale() {
	for f.pq.Len() > 0 {
		top := f.pq[0]
		cur, open := f.index[top.node.Key()]
		if open && cur.seq == top.seq {
			return
		}
		heap.Pop(&f.pq)
	}
}

// pqEntry is one heap slot. f is the total score at push time, so later
// in-place mutation of the node cannot corrupt heap order.
type pqEntry[S Score, N any] struct {
	node N
	f    S
	seq  uint64
}

// entryPQ is a min-heap of *pqEntry ordered by (f, seq).
type entryPQ[S Score, N any] []*pqEntry[S, N]

func (pq entryPQ[S, N]) Len() int { return len(pq) }

func (pq entryPQ[S, N]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ[S, N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ[S, N]) Push(x any) { *pq = append(*pq, x.(*pqEntry[S, N])) }

func (pq *entryPQ[S, N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
