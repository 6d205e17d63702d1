// Package graph provides the in-memory weighted directed graph underlying
// the pathway search strategies.
//
// What
//
//   - Weighted[T]: a directed graph whose vertices are keyed by a
//     comparable payload value T.
//   - Vertex[T]: a node holding its payload and outgoing weighted
//     adjacency.
//   - Edge[T]: a (From, To, Weight) value used for construction and
//     enumeration; the graph itself stores adjacency, not Edge values.
//
// Construction
//
//   - AddVertex(data) registers a vertex. Re-adding an existing payload
//     resets that vertex's outgoing adjacency; incoming edges are keyed by
//     payload value and therefore remain valid.
//   - AddEdge(from, to, w) records a single directed weighted adjacency.
//     Both endpoints must already exist (ErrVertexNotFound otherwise, and
//     the graph is left untouched). At most one edge exists per ordered
//     pair; adding again overwrites the weight.
//
// Determinism
//
//	Vertices() enumerates in vertex insertion order and Neighbors()
//	enumerates in edge insertion order. Payload types carry no general
//	ordering, so insertion order is the stable enumeration surface; all
//	pathway algorithms rely on it for reproducible results.
//
// Concurrency
//
//	Weighted is a plain single-threaded structure with no internal
//	locking. Callers needing concurrent access must serialize mutation
//	and search externally.
//
// Errors
//
//   - ErrVertexNotFound  if an edge endpoint or query subject is absent.
//
// Complexity: AddVertex, AddEdge, HasVertex, HasEdge and Weight are O(1)
// amortized; Vertices, Neighbors and Edges are linear in their output.
package graph
