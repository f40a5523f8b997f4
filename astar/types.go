// Package astar defines the capability contracts, score storage, lifecycle
// states and functional options of the incremental A* engine.
package astar

import (
	"cmp"
)

// Score is the numeric constraint for g, h and f values.
type Score interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Node is the capability contract every search node must satisfy.
//
// K is the immutable identity used for set and map membership; it must not
// change when G or H change. N is the concrete node type itself (usually a
// pointer), so DistanceTo and UpdateHeuristic receive the application's own type.
//
//   - Key:             identity, stable for the lifetime of the node.
//   - G / SetG:        best known cost from the start node.
//   - H:               heuristic estimate towards the target.
//   - F:               G()+H(); orders the frontier.
//   - DistanceTo:      non-negative cost to an adjacent node.
//   - UpdateHeuristic: recompute H against the target.
type Node[K cmp.Ordered, S Score, N any] interface {
	Key() K
	G() S
	SetG(v S)
	H() S
	F() S
	DistanceTo(other N) S
	UpdateHeuristic(target N)
}

// Scores holds the general (g) and heuristic (h) score of a node.
// Embed it in a node type to get G, SetG, H, SetH, F and Reset for free;
// identity stays in the embedding type.
type Scores[S Score] struct {
	g S
	h S
}

// G returns the general score.
func (s *Scores[S]) G() S { return s.g }

// SetG sets the general score.
func (s *Scores[S]) SetG(v S) { s.g = v }

// H returns the heuristic score.
func (s *Scores[S]) H() S { return s.h }

// SetH sets the heuristic score.
func (s *Scores[S]) SetH(v S) { s.h = v }

// F returns the total score g+h.
func (s *Scores[S]) F() S { return s.g + s.h }

// Reset zeroes both scores so the node can take part in a new run.
func (s *Scores[S]) Reset() {
	var zero S
	s.g, s.h = zero, zero
}

// GoalVerifier reports whether a popped node terminates the search.
type GoalVerifier[N any] func(node N) bool

// KeyIs returns a GoalVerifier that accepts exactly the node with key k.
func KeyIs[K cmp.Ordered, N interface{ Key() K }](k K) GoalVerifier[N] {
	return func(node N) bool { return node.Key() == k }
}

// State is the lifecycle state of an Engine.
type State int

const (
	// Running: the frontier may still hold candidates and no goal was confirmed.
	Running State = iota
	// SolutionFound: the goal verifier accepted the last popped node. Terminal.
	SolutionFound
	// Exhausted: the frontier ran empty without reaching the goal. Terminal.
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case SolutionFound:
		return "solution-found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further Step can change the engine.
func (s State) Terminal() bool { return s != Running }

// Option configures optional behavior of an Engine.
type Option[N any] func(*Options[N])

// Options holds the observation hooks of a single run. All hooks are optional;
// the engine itself never logs or reports anything.
type Options[N any] struct {
	// OnExpand is called after a node is moved to the closed set and before its
	// neighbors are enumerated.
	OnExpand func(node N)

	// OnRelax is called after node was admitted into the frontier with pred
	// recorded as its predecessor.
	OnRelax func(node, pred N)

	// OnSuppress is called when the beam filter vetoes a relaxed node.
	OnSuppress func(node N)

	// OnGoal is called once, when the goal verifier accepts a node.
	OnGoal func(node N)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		OnExpand:   func(N) {},
		OnRelax:    func(_, _ N) {},
		OnSuppress: func(N) {},
		OnGoal:     func(N) {},
	}
}

// WithOnExpand registers a callback invoked for every expanded node.
func WithOnExpand[N any](fn func(node N)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked for every admitted relaxation.
func WithOnRelax[N any](fn func(node, pred N)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnSuppress registers a callback invoked when the beam filter vetoes a node.
func WithOnSuppress[N any](fn func(node N)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnSuppress = fn
		}
	}
}

// WithOnGoal registers a callback invoked when the goal is reached.
func WithOnGoal[N any](fn func(node N)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}
