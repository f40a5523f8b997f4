package astar

import (
	"cmp"
	"errors"
)

// ErrBadBeamWidth is the panic value of MaxFrontier for a width below one.
var ErrBadBeamWidth = errors.New("astar: beam width must be positive")

// BeamFilter may veto the admission of a relaxed neighbor into the frontier.
//
// Suppress is called exactly once per neighbor that passed the needs-update
// test, after its g and h were updated and before anything is recorded.
// Returning true discards the relaxation: no predecessor entry, no insertion.
type BeamFilter[K cmp.Ordered, S Score, N any] interface {
	Suppress(node N, solution SolutionView[K, N], frontier FrontierView[K, S]) bool
}

// BeamFunc adapts a plain function to BeamFilter.
type BeamFunc[K cmp.Ordered, S Score, N any] func(node N, solution SolutionView[K, N], frontier FrontierView[K, S]) bool

// Suppress implements BeamFilter.
func (fn BeamFunc[K, S, N]) Suppress(node N, solution SolutionView[K, N], frontier FrontierView[K, S]) bool {
	return fn(node, solution, frontier)
}

// NoBeam never suppresses. It is used when New receives a nil filter.
type NoBeam[K cmp.Ordered, S Score, N any] struct{}

// Suppress implements BeamFilter.
func (NoBeam[K, S, N]) Suppress(N, SolutionView[K, N], FrontierView[K, S]) bool { return false }

// MaxFrontier bounds the open set to width keys. A relaxation that would add
// a new key to a full frontier is suppressed; improvements of keys already
// open are always admitted because they do not grow the frontier.
//
// Panics with ErrBadBeamWidth if width < 1.
func MaxFrontier[K cmp.Ordered, S Score, N interface{ Key() K }](width int) BeamFilter[K, S, N] {
	if width < 1 {
		panic(ErrBadBeamWidth.Error())
	}

	return BeamFunc[K, S, N](func(node N, _ SolutionView[K, N], frontier FrontierView[K, S]) bool {
		return !frontier.Contains(node.Key()) && frontier.Len() >= width
	})
}

// ScoreCeiling suppresses every node whose total score exceeds limit.
func ScoreCeiling[K cmp.Ordered, S Score, N interface{ F() S }](limit S) BeamFilter[K, S, N] {
	return BeamFunc[K, S, N](func(node N, _ SolutionView[K, N], _ FrontierView[K, S]) bool {
		return node.F() > limit
	})
}

// AnyOf suppresses a node if any of filters does. Filters are consulted in
// order and evaluation stops at the first veto. Nil filters are skipped.
func AnyOf[K cmp.Ordered, S Score, N any](filters ...BeamFilter[K, S, N]) BeamFilter[K, S, N] {
	return BeamFunc[K, S, N](func(node N, solution SolutionView[K, N], frontier FrontierView[K, S]) bool {
		for _, f := range filters {
			if f != nil && f.Suppress(node, solution, frontier) {
				return true
			}
		}

		return false
	})
}
