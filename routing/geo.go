package routing

import (
	"math"

	"github.com/Cleawwy/Project-Omega/graphs_go"
)

// EarthRadiusM is the mean Earth radius used by HaversineDistance.
const EarthRadiusM = 6371000.0

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineDistance returns the great-circle distance in meters between two
// coordinates. It is only an estimate; edge weights remain authoritative.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// NearestNode snaps a coordinate to the closest graph node by squared planar
// distance in degree space. Ties resolve to the lowest index. It returns false
// only for an empty graph.
func NearestNode(g *graphs_go.Graph, lat, lon float64) (int, bool) {
	nearest := -1
	minDist := math.Inf(1)

	for i := 0; i < g.NodeCount(); i++ {
		node := g.Node(i)
		dLat := node.Latitude - lat
		dLon := node.Longitude - lon
		dist := dLat*dLat + dLon*dLon
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest, nearest >= 0
}

// distanceTo builds the haversine heuristic towards target.
func distanceTo(g *graphs_go.Graph, target int) func(int) float64 {
	goal := g.Node(target)
	return func(u int) float64 {
		node := g.Node(u)
		return HaversineDistance(node.Latitude, node.Longitude, goal.Latitude, goal.Longitude)
	}
}
