// The engine is a state machine driven by Step: every call pops the open node
// with the smallest total score, checks it against the goal verifier and, if
// it is not the goal, closes it and relaxes its neighbors.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved open node is pushed again; the superseded
//     heap entry is discarded by the Frontier when it surfaces.
//   - The heuristic is recomputed on every improving relaxation, right after g
//     is updated and before the beam filter is consulted.
//   - The start node gets g=0 and its heuristic at construction.
//   - A vetoed relaxation restores the neighbor's previous g, whether or not
//     it is open. Its heuristic stays recomputed; that value depends only on
//     the node and the target.

package astar

import (
	"cmp"
	"context"
	"fmt"
)

// Engine owns the bookkeeping of one A* run: frontier, closed set, solution
// map, last popped node and solution flag. It is not safe for concurrent use.
type Engine[K cmp.Ordered, S Score, N Node[K, S, N]] struct {
	target    N
	verifier  GoalVerifier[N]
	neighbors Enumerator[N]
	beam      BeamFilter[K, S, N]
	options   Options[N]

	open     *Frontier[K, S, N]
	closed   ClosedSet[K]
	solution SolutionMap[K, N]

	current     N
	state       State
	hasSolution bool
	steps       int
}

// New creates an engine searching from start towards target.
//
// start is scored (g=0, heuristic against target) and pushed into the
// frontier. verifier decides goal arrival; neighbors supplies adjacency; beam
// may veto relaxations and may be nil (no pruning).
//
// K and S cannot be inferred from N and must be given explicitly:
//
//	eng := astar.New[int, int](start, target, verify, enum, nil)
func New[K cmp.Ordered, S Score, N Node[K, S, N]](
	start, target N,
	verifier GoalVerifier[N],
	neighbors Enumerator[N],
	beam BeamFilter[K, S, N],
	opts ...Option[N],
) *Engine[K, S, N] {
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if beam == nil {
		beam = NoBeam[K, S, N]{}
	}

	e := &Engine[K, S, N]{
		target:    target,
		verifier:  verifier,
		neighbors: neighbors,
		beam:      beam,
		options:   cfg,
		open:      NewFrontier[K, S, N](),
		state:     Running,
	}

	var zero S
	start.SetG(zero)
	start.UpdateHeuristic(target)
	e.open.Push(start)

	return e
}

// Step performs one pop-and-expand cycle and reports whether the search can
// continue. A false return means a terminal state was reached: check
// HasSolution to tell success from exhaustion. Calls after that are no-ops.
func (e *Engine[K, S, N]) Step() bool {
	if e.state.Terminal() {
		return false
	}

	// 1) Nothing left to consider.
	node, ok := e.open.PopMin()
	if !ok {
		e.state = Exhausted

		return false
	}

	// 2) Goal check happens on pop, before closing.
	e.current = node
	if e.verifier(node) {
		e.hasSolution = true
		e.state = SolutionFound
		e.options.OnGoal(node)

		return false
	}

	// 3) Close and relax.
	e.closed.Insert(node.Key())
	e.steps++
	e.options.OnExpand(node)
	e.relax(node)

	return true
}

// relax evaluates every neighbor of node that is not closed.
func (e *Engine[K, S, N]) relax(node N) {
	for e.neighbors.Begin(node); e.neighbors.HasNext(); e.neighbors.Advance() {
		nb := e.neighbors.Current()
		k := nb.Key()
		if e.closed.Contains(k) {
			continue
		}

		tentative := node.G() + node.DistanceTo(nb)
		openG, isOpen := e.open.Score(k)
		if isOpen && tentative >= openG {
			continue // no improvement
		}

		prevG := nb.G()
		nb.SetG(tentative)
		nb.UpdateHeuristic(e.target)
		if e.beam.Suppress(nb, &e.solution, e.open) {
			nb.SetG(prevG)
			e.options.OnSuppress(nb)

			continue
		}

		e.solution.Insert(k, node)
		e.open.Push(nb)
		e.options.OnRelax(nb, node)
	}
}

// Advance runs up to budget steps and reports whether the search can continue.
// It is the frame-budgeted form of Step: call it once per tick.
func (e *Engine[K, S, N]) Advance(budget int) bool {
	for i := 0; i < budget; i++ {
		if !e.Step() {
			return false
		}
	}

	return !e.state.Terminal()
}

// Run steps until a terminal state and reports whether a solution was found.
// Cancellation of ctx is honoured between steps; the engine stays resumable.
func (e *Engine[K, S, N]) Run(ctx context.Context) (bool, error) {
	for !e.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("astar: run interrupted after %d expansions: %w", e.steps, err)
		}
		e.Step()
	}

	return e.hasSolution, nil
}

// HasSolution reports whether the goal verifier accepted a node.
func (e *Engine[K, S, N]) HasSolution() bool { return e.hasSolution }

// State returns the lifecycle state.
func (e *Engine[K, S, N]) State() State { return e.state }

// CurrentNode returns the last popped node; after success it is the goal.
func (e *Engine[K, S, N]) CurrentNode() N { return e.current }

// Solution returns the mutable predecessor map.
func (e *Engine[K, S, N]) Solution() *SolutionMap[K, N] { return &e.solution }

// SolutionView returns the predecessor map read-only.
func (e *Engine[K, S, N]) SolutionView() SolutionView[K, N] { return &e.solution }

// Frontier returns the open set read-only.
func (e *Engine[K, S, N]) Frontier() FrontierView[K, S] { return e.open }

// Closed returns the expanded keys in ascending order.
func (e *Engine[K, S, N]) Closed() []K { return e.closed.Keys() }

// Expanded returns how many nodes were moved to the closed set.
func (e *Engine[K, S, N]) Expanded() int { return e.steps }

// Target returns the target node supplied at construction.
func (e *Engine[K, S, N]) Target() N { return e.target }

// PathKeys returns the keys from start to the goal, or nil without a solution.
func (e *Engine[K, S, N]) PathKeys() []K {
	if !e.hasSolution {
		return nil
	}

	return e.solution.PathTo(e.current.Key())
}

// Path returns the nodes from start to the goal, or nil without a solution.
// Interior nodes are the predecessor snapshots stored in the solution map.
func (e *Engine[K, S, N]) Path() []N {
	if !e.hasSolution {
		return nil
	}
	keys := e.solution.PathTo(e.current.Key())
	if keys == nil {
		return nil
	}
	path := make([]N, len(keys))
	path[len(path)-1] = e.current
	for i := len(keys) - 1; i > 0; i-- {
		pred, _ := e.solution.Lookup(keys[i])
		path[i-1] = pred
	}

	return path
}
