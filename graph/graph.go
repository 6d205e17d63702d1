// Package graph declares Weighted, Vertex, Edge and the mutation and
// query surface used by the search strategies.
package graph

import (
	"errors"
	"fmt"
)

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Vertex represents a node in the graph.
//
// A Vertex owns its outgoing adjacency only; the targets it references are
// owned by the enclosing Weighted graph and addressed by payload value.
type Vertex[T comparable] struct {
	data    T
	weights map[T]float64 // neighbor payload → edge weight
	order   []T           // neighbor payloads in edge insertion order
}

// Data returns the payload value identifying this vertex.
func (v *Vertex[T]) Data() T { return v.data }

// Degree returns the number of outgoing edges.
func (v *Vertex[T]) Degree() int { return len(v.order) }

// Edge represents a directed weighted connection between two vertices.
// It is a transport value: the graph stores adjacency entries, not Edges.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight float64
}

// Weighted is the in-memory weighted directed graph.
//
// Vertices are keyed by their payload value, so adjacency entries reference
// targets by value rather than object identity and cannot go stale when a
// vertex is re-added. At most one edge exists per ordered (from, to) pair.
type Weighted[T comparable] struct {
	vertices map[T]*Vertex[T]
	order    []T // vertex payloads in insertion order
	edges    int
}

// NewWeighted creates an empty weighted directed graph.
// Complexity: O(1)
func NewWeighted[T comparable]() *Weighted[T] {
	return &Weighted[T]{vertices: make(map[T]*Vertex[T])}
}

// AddVertex inserts a vertex keyed by data.
//
// Re-adding an existing payload resets that vertex's outgoing adjacency and
// keeps its position in enumeration order. Incoming edges from other
// vertices reference the payload value and stay valid across replacement.
func (g *Weighted[T]) AddVertex(data T) {
	if v, exists := g.vertices[data]; exists {
		g.edges -= len(v.order)
		v.weights = make(map[T]float64)
		v.order = nil

		return
	}
	g.vertices[data] = &Vertex[T]{data: data, weights: make(map[T]float64)}
	g.order = append(g.order, data)
}

// AddEdge records a directed weighted adjacency from source to destination.
//
// Both endpoints must already exist; otherwise ErrVertexNotFound is
// returned (wrapped with the offending payload) and the graph is left
// unchanged. Adding an edge that already exists overwrites its weight
// without affecting neighbor enumeration order. No symmetric edge is
// created: callers wanting an undirected connection add both directions.
func (g *Weighted[T]) AddEdge(source, destination T, weight float64) error {
	src, ok := g.vertices[source]
	if !ok {
		return fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}
	if _, ok = g.vertices[destination]; !ok {
		return fmt.Errorf("%w: destination %v", ErrVertexNotFound, destination)
	}

	if _, dup := src.weights[destination]; !dup {
		src.order = append(src.order, destination)
		g.edges++
	}
	src.weights[destination] = weight

	return nil
}

// HasVertex reports whether a vertex with the given payload exists.
func (g *Weighted[T]) HasVertex(data T) bool {
	_, ok := g.vertices[data]

	return ok
}

// HasEdge reports whether a directed edge from→to exists.
func (g *Weighted[T]) HasEdge(from, to T) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	_, ok = src.weights[to]

	return ok
}

// Weight returns the weight of the directed edge from→to,
// and false if no such edge exists.
func (g *Weighted[T]) Weight(from, to T) (float64, bool) {
	src, ok := g.vertices[from]
	if !ok {
		return 0, false
	}
	w, ok := src.weights[to]

	return w, ok
}

// VertexCount returns the number of vertices.
func (g *Weighted[T]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of directed edges.
func (g *Weighted[T]) EdgeCount() int { return g.edges }

// Vertices returns all vertex payloads in insertion order.
// The returned slice is independent of graph storage.
func (g *Weighted[T]) Vertices() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the payloads adjacent to the given vertex, in edge
// insertion order. Returns ErrVertexNotFound if the vertex is absent.
func (g *Weighted[T]) Neighbors(of T) ([]T, error) {
	src, ok := g.vertices[of]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, of)
	}
	out := make([]T, len(src.order))
	copy(out, src.order)

	return out, nil
}

// Edges returns every directed edge as an Edge value, ordered by source
// vertex insertion order and then by edge insertion order within a source.
func (g *Weighted[T]) Edges() []Edge[T] {
	out := make([]Edge[T], 0, g.edges)
	for _, from := range g.order {
		src := g.vertices[from]
		for _, to := range src.order {
			out = append(out, Edge[T]{From: from, To: to, Weight: src.weights[to]})
		}
	}

	return out
}
