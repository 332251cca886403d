package routing

import (
	"math"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/queue"
)

// Dijkstra runs uniform-cost search from source to target.
func Dijkstra(g *graphs_go.Graph, source, target int) (*Result, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}
	r, dist, err := labelSearch(g, models.Dijkstra, source, target, func(int) float64 { return 0 })
	if err != nil {
		return nil, err
	}
	if r.Found && !sameCost(r.Cost, dist[target]) {
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"path cost %v disagrees with distance label %v for node %d", r.Cost, dist[target], target)
	}
	return r, nil
}

// labelSearch is the shared loop of Dijkstra and A*. Entries are keyed by
// dist[v]+h(v); there is no decrease-key, so a popped entry whose key exceeds
// the live label is stale and skipped.
func labelSearch(g *graphs_go.Graph, algo models.Algorithm, source, target int, h func(int) float64) (*Result, []float64, error) {
	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = noPredecessor
	}
	dist[source] = 0

	r := &Result{Algorithm: algo}
	pq := queue.New[int, float64]()
	pq.Push(source, 0)

	for !pq.Empty() {
		u, key := pq.Pop()
		if key > dist[u]+h(u) {
			continue
		}

		r.Visited++
		if prev[u] != noPredecessor {
			r.Trace = append(r.Trace, Segment{From: prev[u], To: u})
		}
		if u == target {
			break
		}

		for _, e := range g.Edges(u) {
			if alt := dist[u] + e.Weight; alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = u
				pq.Push(e.To, alt+h(e.To))
			}
		}
	}

	reached := !math.IsInf(dist[target], 1)
	r, err := finish(g, r, prev, source, target, reached)
	return r, dist, err
}
