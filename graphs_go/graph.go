package graphs_go

import (
	"math"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
)

// Node represents a graph node (intersection). Its identity is its index in
// the graph's node table.
type Node struct {
	Latitude  float64
	Longitude float64
}

// Edge is a directed connection to node To. Weight is in meters.
type Edge struct {
	To     int
	Weight float64
}

// Graph is an immutable road network: an ordered node table and a parallel
// adjacency list where edges[i] holds the outgoing edges of node i.
//
// A Graph is never mutated after NewGraph returns, so it can be shared by
// concurrent requests without locking.
type Graph struct {
	nodes     []Node
	edges     [][]Edge
	edgeCount int
}

// NewGraph validates and copies the node table and adjacency list.
func NewGraph(nodes []Node, edges [][]Edge) (*Graph, error) {
	if len(edges) != len(nodes) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
			"adjacency list has %d entries for %d nodes", len(edges), len(nodes))
	}

	g := &Graph{
		nodes: make([]Node, len(nodes)),
		edges: make([][]Edge, len(edges)),
	}

	for i, n := range nodes {
		if !finite(n.Latitude) || !finite(n.Longitude) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
				"node %d has non-finite coordinates", i)
		}
		g.nodes[i] = n
	}

	for from, out := range edges {
		for _, e := range out {
			if e.To < 0 || e.To >= len(nodes) {
				return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
					"edge %d->%d targets a missing node", from, e.To)
			}
			if !finite(e.Weight) || e.Weight < 0 {
				return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
					"edge %d->%d has invalid weight %v", from, e.To, e.Weight)
			}
		}
		g.edges[from] = append([]Edge(nil), out...)
		g.edgeCount += len(out)
	}

	return g, nil
}

// NodeCount returns the number of nodes N.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Node returns the coordinates of node i.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Edges returns the outgoing edges of node i in adjacency order. The slice
// is shared and must not be modified.
func (g *Graph) Edges(i int) []Edge { return g.edges[i] }

// Contains reports whether i is a valid node index.
func (g *Graph) Contains(i int) bool { return i >= 0 && i < len(g.nodes) }

// Weight returns the weight of the edge u->v. When parallel edges exist the
// cheapest one is returned.
func (g *Graph) Weight(u, v int) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, e := range g.edges[u] {
		if e.To == v && e.Weight < best {
			best = e.Weight
			found = true
		}
	}
	return best, found
}

// LatLng returns node i as an API coordinate.
func (g *Graph) LatLng(i int) models.LatLng {
	n := g.nodes[i]
	return models.LatLng{Lat: n.Latitude, Lng: n.Longitude}
}

// Bounds returns the coordinate bounding box of all nodes. An empty graph
// has zero bounds.
func (g *Graph) Bounds() models.Bounds {
	if len(g.nodes) == 0 {
		return models.Bounds{}
	}
	b := models.Bounds{
		North: math.Inf(-1),
		South: math.Inf(1),
		East:  math.Inf(-1),
		West:  math.Inf(1),
	}
	for _, n := range g.nodes {
		b.North = math.Max(b.North, n.Latitude)
		b.South = math.Min(b.South, n.Latitude)
		b.East = math.Max(b.East, n.Longitude)
		b.West = math.Min(b.West, n.Longitude)
	}
	return b
}

// Info summarises the graph for the API.
func (g *Graph) Info() models.GraphInfo {
	return models.GraphInfo{
		Nodes:  g.NodeCount(),
		Edges:  g.EdgeCount(),
		Bounds: g.Bounds(),
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
