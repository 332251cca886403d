package routing

import (
	"math"
	"slices"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// noPredecessor marks a node without a backpointer (the source, or a node
// never reached).
const noPredecessor = -1

// costTolerance bounds the relative drift allowed between a search's own
// distance label and the recomputed path cost.
const costTolerance = 1e-9

// Segment is a predecessor->node edge recorded when a node is expanded.
type Segment struct {
	From int
	To   int
}

// Result is the outcome of one search. When Found is false the path is empty
// and Cost is meaningless.
type Result struct {
	Algorithm models.Algorithm
	Path      []int
	Cost      float64
	Found     bool
	Visited   int
	Trace     []Segment
}

// Distance returns the path cost, or nil when no path exists.
func (r *Result) Distance() *float64 {
	if !r.Found {
		return nil
	}
	cost := r.Cost
	return &cost
}

// Polyline converts the node path to coordinates. The slice is never nil.
func (r *Result) Polyline(g *graphs_go.Graph) []models.LatLng {
	polyline := make([]models.LatLng, 0, len(r.Path))
	for _, i := range r.Path {
		polyline = append(polyline, g.LatLng(i))
	}
	return polyline
}

// VisitedEdges converts the trace to coordinate pairs. The slice is never nil.
func (r *Result) VisitedEdges(g *graphs_go.Graph) []models.VisitedEdge {
	edges := make([]models.VisitedEdge, 0, len(r.Trace))
	for _, s := range r.Trace {
		edges = append(edges, models.VisitedEdge{
			From: g.LatLng(s.From),
			To:   g.LatLng(s.To),
		})
	}
	return edges
}

// assemblePath walks prev[] back from target and returns the path in
// source..target order. reached is the strategy's own verdict on whether the
// target was found; the walk must agree with it. A nil path with a nil error
// means no path.
func assemblePath(prev []int, source, target int, reached bool) ([]int, error) {
	var path []int
	for u := target; u != noPredecessor; u = prev[u] {
		if len(path) == len(prev) {
			return nil, apperrors.New(apperrors.ErrCodeInternal,
				"predecessor chain from node %d contains a cycle", target)
		}
		path = append(path, u)
		if u == source {
			break
		}
	}
	walked := len(path) > 0 && path[len(path)-1] == source

	switch {
	case reached && !walked:
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"node %d is marked reachable but its predecessor chain does not reach source %d", target, source)
	case !reached && walked:
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"node %d is marked unreachable but its predecessor chain reaches source %d", target, source)
	case !reached:
		return nil, nil
	}

	slices.Reverse(path)
	return path, nil
}

// pathCost sums the true edge weights along path.
func pathCost(g *graphs_go.Graph, path []int) (float64, error) {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, apperrors.New(apperrors.ErrCodeInternal,
				"path uses missing edge %d->%d", path[i-1], path[i])
		}
		cost += w
	}
	return cost, nil
}

// sameCost reports whether a and b agree within costTolerance.
func sameCost(a, b float64) bool {
	return math.Abs(a-b) <= costTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// finish assembles the path for r and fills in Path, Found and Cost.
func finish(g *graphs_go.Graph, r *Result, prev []int, source, target int, reached bool) (*Result, error) {
	path, err := assemblePath(prev, source, target, reached)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return r, nil
	}
	cost, err := pathCost(g, path)
	if err != nil {
		return nil, err
	}
	r.Path = path
	r.Cost = cost
	r.Found = true
	return r, nil
}

func checkEndpoints(g *graphs_go.Graph, source, target int) error {
	if !g.Contains(source) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "source node %d is out of range", source)
	}
	if !g.Contains(target) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "target node %d is out of range", target)
	}
	return nil
}
