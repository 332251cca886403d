package routing

import (
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/queue"
)

// Greedy runs best-first search ordered only by the haversine distance to
// target. A node is marked when first discovered, so its predecessor is fixed
// by whichever expansion saw it first. Visited counts pops.
func Greedy(g *graphs_go.Graph, source, target int) (*Result, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}

	h := distanceTo(g, target)
	n := g.NodeCount()
	seen := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = noPredecessor
	}

	r := &Result{Algorithm: models.Greedy}
	pq := queue.New[int, float64]()
	pq.Push(source, 0)
	seen[source] = true

	for !pq.Empty() {
		u, _ := pq.Pop()
		r.Visited++
		if prev[u] != noPredecessor {
			r.Trace = append(r.Trace, Segment{From: prev[u], To: u})
		}
		if u == target {
			break
		}

		for _, e := range g.Edges(u) {
			if !seen[e.To] {
				seen[e.To] = true
				prev[e.To] = u
				pq.Push(e.To, h(e.To))
			}
		}
	}

	return finish(g, r, prev, source, target, seen[target])
}
