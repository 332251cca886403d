package routing

import (
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// BFS finds the path with the fewest hops, ignoring weights. Nodes are marked
// on enqueue and Visited counts every discovered node, source included. No
// trace is recorded.
func BFS(g *graphs_go.Graph, source, target int) (*Result, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	seen := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = noPredecessor
	}

	r := &Result{Algorithm: models.BFS, Trace: []Segment{}}
	fifo := []int{source}
	seen[source] = true
	r.Visited = 1

	for head := 0; head < len(fifo); head++ {
		u := fifo[head]
		if u == target {
			break
		}
		for _, e := range g.Edges(u) {
			if !seen[e.To] {
				seen[e.To] = true
				r.Visited++
				prev[e.To] = u
				fifo = append(fifo, e.To)
			}
		}
	}

	return finish(g, r, prev, source, target, seen[target])
}
