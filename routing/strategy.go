// Package routing implements the interchangeable path search strategies over
// a graphs_go.Graph, plus nearest-node snapping and result assembly.
//
// Every search allocates its own scratch state, so strategies may run
// concurrently against the same graph.
package routing

import (
	"slices"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// SearchFunc computes a route between two node indices.
type SearchFunc func(g *graphs_go.Graph, source, target int) (*Result, error)

var strategies = map[models.Algorithm]SearchFunc{
	models.Dijkstra: Dijkstra,
	models.AStar:    AStar,
	models.BFS:      BFS,
	models.DFS:      DFS,
	models.Greedy:   Greedy,
}

// Search dispatches to the strategy named by algo.
func Search(g *graphs_go.Graph, algo models.Algorithm, source, target int) (*Result, error) {
	search, ok := strategies[algo]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown algorithm %q", algo)
	}
	return search(g, source, target)
}

// Algorithms lists the supported strategies in comparison order.
func Algorithms() []models.Algorithm {
	return slices.Clone(models.AllAlgorithms)
}
