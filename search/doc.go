// Package search defines the contract shared by pathway's path-finding
// strategies and the predecessor-map path reconstruction they both use.
//
// A Strategy is bound to one graph at construction and answers
// Execute(start, end) with an ordered payload sequence inclusive of both
// endpoints. Absence of a path is a normal outcome, reported through the
// found flag rather than an error; errors are reserved for invalid input
// (nil graph, unknown endpoint) and internal inconsistency.
//
// Errors
//
//   - ErrNilGraph          if a strategy is constructed over a nil graph.
//   - ErrVertexNotFound    if Execute is given an endpoint absent from
//     the bound graph.
//   - ErrPredecessorCycle  if path reconstruction exceeds the vertex
//     count, which indicates a corrupted predecessor chain.
package search
