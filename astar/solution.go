package astar

import (
	"cmp"
	"iter"
	"slices"

	"github.com/tidwall/btree"
)

// SolutionView is the read-only face of the predecessor map handed to beam filters.
type SolutionView[K cmp.Ordered, N any] interface {
	Lookup(k K) (N, bool)
	Len() int
	Ascend(fn func(k K, pred N) bool)
}

// SolutionMap maps a node key to its best known predecessor.
//
// Entries are written only by relaxation: K has an entry iff it was relaxed
// with an improving tentative cost and admitted into the frontier. The start
// node never has one. Iteration is in ascending key order.
type SolutionMap[K cmp.Ordered, N interface{ Key() K }] struct {
	m btree.Map[K, N]
}

// Insert records pred as the predecessor of k, replacing any earlier entry.
func (s *SolutionMap[K, N]) Insert(k K, pred N) { s.m.Set(k, pred) }

// Lookup returns the predecessor of k.
func (s *SolutionMap[K, N]) Lookup(k K) (N, bool) { return s.m.Get(k) }

// Len returns the number of entries.
func (s *SolutionMap[K, N]) Len() int { return s.m.Len() }

// Keys returns all keys with a predecessor, ascending.
func (s *SolutionMap[K, N]) Keys() []K { return s.m.Keys() }

// Ascend calls fn for every entry in ascending key order until fn returns false.
func (s *SolutionMap[K, N]) Ascend(fn func(k K, pred N) bool) { s.m.Scan(fn) }

// All returns an iterator over the entries in ascending key order.
func (s *SolutionMap[K, N]) All() iter.Seq2[K, N] {
	return func(yield func(K, N) bool) { s.m.Scan(yield) }
}

// PathTo walks predecessor links backwards from k until a key without an
// entry (the start) and returns the keys in start→k order.
//
// The walk is bounded by Len()+1 hops; a map corrupted into a cycle yields nil.
func (s *SolutionMap[K, N]) PathTo(k K) []K {
	path := []K{k}
	cur := k
	for hops := 0; ; hops++ {
		pred, ok := s.m.Get(cur)
		if !ok {
			break
		}
		if hops >= s.m.Len() {
			return nil
		}
		cur = pred.Key()
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
