// Package astar provides a generic, incremental A* best-first search engine that
// embeds into games, routing and planning tools.
//
// Overview:
//
//   - The application supplies the node type, cost function, neighbor topology
//     and goal predicate through small capability contracts (Node, Enumerator,
//     GoalVerifier, BeamFilter).
//   - The engine owns the search bookkeeping: the frontier (open set), the closed
//     set, the solution (predecessor) map and incremental relaxation.
//   - Execution is step-wise: each Step performs one pop-and-expand cycle, so a
//     run can be time-sliced, paused indefinitely and resumed, or abandoned by
//     simply dropping the Engine.
//
// Lifecycle:
//
//	Running ──Step──▶ Running
//	   │                 │
//	   ├─ goal popped ──▶ SolutionFound (terminal)
//	   └─ frontier empty ▶ Exhausted    (terminal)
//
// Step returns false once a terminal state is reached; HasSolution tells the
// two apart. When the start node already satisfies the goal the very first Step
// returns false with HasSolution()==true and zero expansions.
//
// Ordering and tie-break:
//
//   - The frontier pops the smallest total score f = g + h.
//   - Equal f values pop in insertion order (FIFO), including re-insertions of
//     improved nodes. The order is deterministic for a fixed run as long as the
//     Enumerator yields neighbors deterministically.
//
// Guarantees:
//
//   - Each key is expanded at most once; Step returns false after at most
//     (reachable keys + 1) calls.
//   - With a non-negative cost function and an admissible heuristic the path
//     from PathKeys is a minimum-cost path.
//   - With negative costs or an inadmissible heuristic the engine still
//     terminates on a finite graph but optimality is lost.
//
// Beam search:
//
// A BeamFilter is consulted for every relaxed neighbor right before admission.
// A veto discards the relaxation entirely: the neighbor's g is restored and
// nothing is admitted or recorded. MaxFrontier, ScoreCeiling and AnyOf
// cover the common pruning strategies; pass nil for no pruning.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for V expanded nodes and E relaxations.
//   - Space: O(V + E); stale heap entries from lazy decrease-key count towards E.
//
// Thread safety:
//
//   - An Engine is driven by a single goroutine.
//   - Nodes handed out by the Enumerator have their g/h mutated in place; the
//     caller must not score the same node objects from another run concurrently.
//
// Example:
//
//	eng := astar.New[int, int](start, target,
//	    astar.KeyIs[int, *xygraph.Node](target.Key()),
//	    graph.Neighbors(), nil)
//	for eng.Step() {
//	}
//	if eng.HasSolution() {
//	    fmt.Println(eng.PathKeys())
//	}
package astar
