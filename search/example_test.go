// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
)

// ExampleRunner_Run solves a small field with one obstacle pillar.
// Scenario:
//
//	S · · ·        S = Start (0,0)
//	· ░ ░ ·        E = End   (2,3)
//	· · · E        ░ = obstacles
//
// The only shortest routes bend around the pillar: 5 unit edges.
func ExampleRunner_Run() {
	g, _ := grid.New(3, 4)
	g.SetStart(g.At(0, 0))
	g.SetEnd(g.At(2, 3))
	g.SetObstacle(g.At(1, 1))
	g.SetObstacle(g.At(1, 2))

	for _, alg := range []search.Algorithm{search.AStar, search.Dijkstra, search.Greedy} {
		r, _ := search.New(g, search.WithAlgorithm(alg))
		res, err := r.Run()
		if err != nil {
			fmt.Println(alg, err)
			continue
		}
		fmt.Printf("%s: length %d\n", alg, res.Length)
		g.Reset(grid.ResetSearch)
	}

	// Output:
	// A*: length 5
	// Dijkstra: length 5
	// Greedy BFS: length 5
}
