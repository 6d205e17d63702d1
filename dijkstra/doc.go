// Package dijkstra provides weighted shortest paths over a graph.Weighted
// with non-negative edge weights.
//
// What
//
//   - Search[T] is a search.Strategy bound to one graph at construction.
//   - Execute(start, end) returns the minimum-weight path from start to
//     end, inclusive of both endpoints; found is false when end is
//     unreachable.
//   - Cost(path) sums the edge weights along a returned path.
//
// Algorithm
//
//	Greedy label-setting with a min-heap priority queue using the lazy
//	decrease-key strategy: improved distances push duplicate heap entries
//	and stale entries are skipped on pop. Each Execute pre-scans all
//	edges and fails fast with ErrNegativeWeight if any weight is
//	negative, since the greedy invariant does not hold otherwise.
//
//	Tentative distances are float64 with math.Inf(1) as the unreached
//	sentinel; relaxing an edge against +Inf is well defined, so no
//	overflow guard is needed. Because only finite distances are ever
//	pushed, a drained heap means every remaining vertex is unreachable
//	and Execute reports absence.
//
// Determinism
//
//	Heap ordering is (distance ascending, push sequence ascending):
//	among equal distances the first-relaxed vertex settles first. With
//	graph.Weighted's insertion-order adjacency this makes results fully
//	reproducible, including which of several equal-weight paths is
//	returned.
//
// Behavior
//
//   - Execute(start, start) returns [start]: start settles first at
//     distance 0 and the end check runs on settle.
//   - Both endpoints are validated up front (search.ErrVertexNotFound).
//   - The bound graph is never mutated.
//
// Options
//
//   - WithMaxCost(c): paths costlier than c are not explored; vertices
//     beyond the cap are treated as unreachable (c < 0 is
//     ErrOptionViolation).
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (heap may hold duplicates under lazy decrease-key)
package dijkstra
