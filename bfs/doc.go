// Package bfs provides breadth-first shortest paths over a
// graph.Weighted, measured by edge count and ignoring edge weights.
//
// What
//
//   - Search[T] is a search.Strategy bound to one graph at construction.
//   - Execute(start, end) explores vertices level by level from start and
//     returns the first path that reaches end, inclusive of both
//     endpoints; found is false when end is unreachable.
//   - Optional hooks and a depth limit customize traversal.
//
// Determinism
//
//	graph.Weighted enumerates neighbors in edge insertion order and BFS
//	enqueues them in that order, so among equally short paths the
//	first-discovered one wins and results are fully reproducible.
//
// Behavior
//
//   - Execute(start, start) returns [start]: the end check runs on
//     dequeue, and start is the first vertex dequeued.
//   - Both endpoints are validated up front; an unknown endpoint yields
//     search.ErrVertexNotFound rather than undefined traversal.
//   - The bound graph is never mutated.
//
// Options
//
//   - WithMaxDepth(d):  do not expand the frontier beyond d edges from
//     start (d == 0 means no limit; d < 0 is ErrOptionViolation).
//   - WithOnVisit(fn):  hook invoked for each dequeued vertex with its
//     depth; returning an error aborts the search.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set and predecessor map.
package bfs
