package routing

import (
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// AStar runs A* with the haversine distance to target as heuristic. The
// heuristic only orders the frontier; distance labels are relaxed exactly as
// in Dijkstra.
//
// The reported cost is the true weight of the returned path. On graphs whose
// edge weights undercut geodesic distance the heuristic is not admissible and
// the path may be longer than Dijkstra's.
func AStar(g *graphs_go.Graph, source, target int) (*Result, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}
	r, _, err := labelSearch(g, models.AStar, source, target, distanceTo(g, target))
	return r, err
}
