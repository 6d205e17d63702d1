package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathway/graph"
	"github.com/katalvlaran/pathway/search"
)

// Search is the Dijkstra search.Strategy bound to a single graph.
// All edge weights in the bound graph must be non-negative.
type Search[T comparable] struct {
	g    *graph.Weighted[T]
	opts Options
}

var _ search.Strategy[int] = (*Search[int])(nil)

// New binds a Dijkstra strategy to g, applying any number of functional
// Options. Returns search.ErrNilGraph for a nil graph and
// ErrOptionViolation for invalid options.
func New[T comparable](g *graph.Weighted[T], opts ...Option) (*Search[T], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Search[T]{g: g, opts: o}, nil
}

// runner holds the mutable state for a single Execute call.
type runner[T comparable] struct {
	g       *graph.Weighted[T]
	opts    Options
	dist    map[T]float64 // vertex payload → best known distance from start
	prev    map[T]T       // vertex payload → predecessor on the shortest path
	visited map[T]bool    // settled vertices; their distance is final
	pq      nodePQ[T]
	seq     uint64 // monotonic push counter, breaks distance ties
}

// Execute runs Dijkstra from start and returns the minimum-weight path to
// end, inclusive of both endpoints. found is false when end is
// unreachable; that is a normal outcome with nil error. Both endpoints
// must exist in the bound graph (search.ErrVertexNotFound), and every
// edge weight must be non-negative (ErrNegativeWeight). The graph is not
// mutated, and identical calls on an unmutated graph return identical
// paths.
func (s *Search[T]) Execute(start, end T) ([]T, bool, error) {
	if !s.g.HasVertex(start) {
		return nil, false, fmt.Errorf("%w: start %v", search.ErrVertexNotFound, start)
	}
	if !s.g.HasVertex(end) {
		return nil, false, fmt.Errorf("%w: end %v", search.ErrVertexNotFound, end)
	}

	// Pre-scan all edges to detect negative weights and fail fast.
	for _, e := range s.g.Edges() {
		if e.Weight < 0 {
			return nil, false, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := s.g.Vertices()
	n := len(vertices)
	r := &runner[T]{
		g:       s.g,
		opts:    s.opts,
		dist:    make(map[T]float64, n),
		prev:    make(map[T]T, n),
		visited: make(map[T]bool, n),
		pq:      make(nodePQ[T], 0, n),
	}

	// Every vertex starts unreached; +Inf is safe to relax against.
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	r.push(start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.data

		// Stale entry from the lazy decrease-key strategy.
		if r.visited[u] {
			continue
		}
		// End check on settle: when start == end, start is selected first
		// at distance 0 and the single-element path is returned.
		if u == end {
			path, err := search.Path(r.prev, start, end, n)
			if err != nil {
				return nil, false, err
			}

			return path, true, nil
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return nil, false, err
		}
	}

	// Only finite distances are ever pushed, so a drained heap means every
	// vertex still unsettled (end included) is unreachable.
	return nil, false, nil
}

// Cost sums the edge weights along a path previously returned by Execute.
// A path of fewer than two vertices costs 0. Returns ErrBrokenPath if any
// consecutive pair is not connected in the bound graph.
func (s *Search[T]) Cost(path []T) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := s.g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrBrokenPath, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}

// relax attempts to improve the distance of each neighbor of u, recording
// u as predecessor and pushing a heap entry for every strict improvement.
// Assumes dist[u] is final.
func (r *runner[T]) relax(u T) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}
	for _, v := range neighbors {
		w, _ := r.g.Weight(u, v)
		newDist := r.dist[u] + w
		if newDist > r.opts.MaxCost {
			continue
		}
		// Strict improvement only; equal distances keep the earlier
		// predecessor, preserving the first-relaxed tie-break.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// push adds a heap entry stamped with the next push sequence number.
func (r *runner[T]) push(data T, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem[T]{data: data, dist: dist, seq: r.seq})
}

// nodeItem is a heap entry: a vertex payload with its tentative distance
// and the push sequence number used to break distance ties.
type nodeItem[T comparable] struct {
	data T
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist asc, seq asc).
// Stale duplicates from the lazy decrease-key strategy are skipped on pop.
type nodePQ[T comparable] []*nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[T])) }

func (pq *nodePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
