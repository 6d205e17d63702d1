package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathway/dijkstra"
	"github.com/katalvlaran/pathway/graph"
)

// BenchmarkExecute_Chain measures Dijkstra end-to-end on a linear chain
// with random positive weights.
func BenchmarkExecute_Chain(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))

	g := graph.NewWeighted[string]()
	for i := 0; i <= N; i++ {
		g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1+r.Float64()*9)
	}
	s, err := dijkstra.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = s.Execute("v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkExecute_Grid measures Dijkstra across a dense square grid where
// many equal-cost frontiers exercise the heap tie-break.
func BenchmarkExecute_Grid(b *testing.B) {
	const side = 50 // 2500 vertices, ~4900 edges
	key := func(i, j int) string { return fmt.Sprintf("%d,%d", i, j) }

	g := graph.NewWeighted[string]()
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			g.AddVertex(key(i, j))
		}
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if j+1 < side {
				_ = g.AddEdge(key(i, j), key(i, j+1), 1)
			}
			if i+1 < side {
				_ = g.AddEdge(key(i, j), key(i+1, j), 1)
			}
		}
	}
	s, err := dijkstra.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(side*side + 2*side*(side-1)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = s.Execute(key(0, 0), key(side-1, side-1))
	}
}
