package search

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the pathway search strategies.
var (
	// ErrNilGraph is returned when a strategy is constructed over a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexNotFound is returned when Execute references an endpoint
	// that is not a vertex of the bound graph.
	ErrVertexNotFound = errors.New("search: vertex not found in graph")

	// ErrPredecessorCycle is returned when path reconstruction walks more
	// steps than the graph has vertices.
	ErrPredecessorCycle = errors.New("search: cycle in predecessor chain")
)

// Strategy is the capability implemented by every path-finding algorithm.
//
// Execute answers the shortest path from start to end as payload values
// inclusive of both endpoints. found is false when no path exists, which
// is a normal outcome carrying a nil error. Implementations must not
// mutate the bound graph, and repeated calls with identical arguments on
// an unmutated graph return identical results.
type Strategy[T comparable] interface {
	Execute(start, end T) (path []T, found bool, err error)
}

// Path reconstructs the start→end path from a predecessor map, where
// prev[v] is the vertex from which v was reached. The walk is bounded by
// limit steps (callers pass the graph's vertex count); exceeding it means
// the chain is cyclic and ErrPredecessorCycle is returned.
func Path[T comparable](prev map[T]T, start, end T, limit int) ([]T, error) {
	path := []T{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("search: no predecessor recorded for %v", cur)
		}
		if len(path) > limit {
			return nil, fmt.Errorf("%w: aborted after %d steps", ErrPredecessorCycle, limit)
		}
		path = append(path, p)
		cur = p
	}

	// reverse to start → end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
