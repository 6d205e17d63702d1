package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathway/graph"
	"github.com/katalvlaran/pathway/search"
)

// Search is the breadth-first search.Strategy bound to a single graph.
// Edge weights are ignored; paths are shortest by edge count.
type Search[T comparable] struct {
	g    *graph.Weighted[T]
	opts Options[T]
}

var _ search.Strategy[int] = (*Search[int])(nil)

// New binds a breadth-first strategy to g, applying any number of
// functional Options. Returns search.ErrNilGraph for a nil graph and
// ErrOptionViolation for invalid options.
func New[T comparable](g *graph.Weighted[T], opts ...Option[T]) (*Search[T], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Search[T]{g: g, opts: o}, nil
}

// queueItem pairs a vertex payload with its BFS depth.
type queueItem[T comparable] struct {
	data  T
	depth int
}

// walker encapsulates mutable state for one Execute call.
type walker[T comparable] struct {
	g       *graph.Weighted[T]
	opts    Options[T]
	queue   []queueItem[T]
	visited map[T]bool
	prev    map[T]T
}

// Execute runs breadth-first search from start and returns the shortest
// path (by edge count) to end, inclusive of both endpoints. found is
// false when end is unreachable; that is a normal outcome with nil error.
// Both endpoints must exist in the bound graph (search.ErrVertexNotFound).
// The graph is not mutated, and identical calls on an unmutated graph
// return identical paths.
func (s *Search[T]) Execute(start, end T) ([]T, bool, error) {
	if !s.g.HasVertex(start) {
		return nil, false, fmt.Errorf("%w: start %v", search.ErrVertexNotFound, start)
	}
	if !s.g.HasVertex(end) {
		return nil, false, fmt.Errorf("%w: end %v", search.ErrVertexNotFound, end)
	}

	n := s.g.VertexCount()
	w := &walker[T]{
		g:       s.g,
		opts:    s.opts,
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[T]bool, n),
		prev:    make(map[T]T, n),
	}

	// Seed: mark start visited and enqueue it at depth 0.
	w.visited[start] = true
	w.queue = append(w.queue, queueItem[T]{data: start})

	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.opts.OnVisit(item.data, item.depth); err != nil {
			return nil, false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.data, err)
		}
		// End check on dequeue: the first dequeued vertex is start itself,
		// so Execute(start, start) yields the single-element path.
		if item.data == end {
			path, err := search.Path(w.prev, start, end, n)
			if err != nil {
				return nil, false, err
			}

			return path, true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, false, err
		}
	}

	// Queue drained without reaching end: no path exists.
	return nil, false, nil
}

// dequeue pops the first queued item.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors enqueues each unseen neighbor of item in edge insertion
// order, recording item as its predecessor and honoring MaxDepth.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.g.Neighbors(item.data)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.data, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.prev[nbr] = item.data
		w.queue = append(w.queue, queueItem[T]{data: nbr, depth: nextDepth})
	}

	return nil
}
