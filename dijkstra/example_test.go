package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathway/dijkstra"
	"github.com/katalvlaran/pathway/graph"
)

// ExampleSearch_Execute finds the cheapest route in a small directed
// network and prints its total cost.
func ExampleSearch_Execute() {
	g := graph.NewWeighted[string]()
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 4)
	g.AddEdge("B", "C", 2)
	g.AddEdge("B", "D", 5)
	g.AddEdge("C", "D", 3)
	g.AddEdge("C", "E", 6)
	g.AddEdge("D", "E", 1)

	s, err := dijkstra.New(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	path, found, err := s.Execute("A", "E")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cost, _ := s.Cost(path)
	fmt.Println(found, strings.Join(path, " → "), cost)
	// Output:
	// true A → B → D → E 7
}

// ExampleSearch_Execute_maxCost caps exploration: routes beyond the cap
// are treated as unreachable.
func ExampleSearch_Execute_maxCost() {
	g := graph.NewWeighted[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B", 10)

	s, _ := dijkstra.New(g, dijkstra.WithMaxCost(5))
	path, found, err := s.Execute("A", "B")
	fmt.Println(path, found, err)
	// Output:
	// [] false <nil>
}
