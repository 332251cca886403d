package routing

import (
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// DFS walks a LIFO stack from source, pushing neighbors in adjacency order and
// marking them on push. The path is neither hop- nor weight-optimal.
func DFS(g *graphs_go.Graph, source, target int) (*Result, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	seen := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = noPredecessor
	}

	r := &Result{Algorithm: models.DFS, Trace: []Segment{}}
	stack := []int{source}
	seen[source] = true
	r.Visited = 1

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == target {
			break
		}
		for _, e := range g.Edges(u) {
			if !seen[e.To] {
				seen[e.To] = true
				r.Visited++
				prev[e.To] = u
				stack = append(stack, e.To)
			}
		}
	}

	return finish(g, r, prev, source, target, seen[target])
}
