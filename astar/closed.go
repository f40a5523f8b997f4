package astar

import (
	"cmp"

	"github.com/tidwall/btree"
)

// ClosedSet records expanded keys. It only grows during a run.
type ClosedSet[K cmp.Ordered] struct {
	set btree.Set[K]
}

// Insert adds k and reports whether it was absent.
func (c *ClosedSet[K]) Insert(k K) bool {
	if c.set.Contains(k) {
		return false
	}
	c.set.Insert(k)

	return true
}

// Contains reports whether k was expanded.
func (c *ClosedSet[K]) Contains(k K) bool { return c.set.Contains(k) }

// Len returns the number of expanded keys.
func (c *ClosedSet[K]) Len() int { return c.set.Len() }

// Keys returns the expanded keys in ascending order.
func (c *ClosedSet[K]) Keys() []K { return c.set.Keys() }
