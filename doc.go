// Package pathway is an in-memory weighted directed graph with two
// shortest-path strategies: breadth-first search (fewest edges) and
// Dijkstra (lowest total weight, non-negative weights).
//
// 🚀 What is pathway?
//
//	A small, deterministic, zero-dependency library:
//		• graph/    — generic Weighted[T] graph keyed by payload value
//		• search/   — the Strategy contract + shared path reconstruction
//		• bfs/      — unweighted shortest path by level-order traversal
//		• dijkstra/ — weighted shortest path by greedy relaxation
//
// ✨ Why choose pathway?
//
//   - Minimal API – build a graph with AddVertex/AddEdge, bind a strategy,
//     call Execute(start, end)
//   - Deterministic – insertion-order enumeration and documented tie-breaks
//     make every result reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Honest absence – "no path" is a normal result, not an error
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──←──┘
//
//	g := graph.NewWeighted[string]()
//	for _, v := range []string{"A", "B", "C"} { g.AddVertex(v) }
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("A", "C", 4)
//	g.AddEdge("B", "C", 2)
//	s, _ := dijkstra.New(g)
//	path, found, _ := s.Execute("A", "C") // [A B C], true
//
// See each subpackage's doc for determinism and error contracts.
package pathway
