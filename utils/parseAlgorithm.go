package utils

import (
	"strings"

	"github.com/Cleawwy/Project-Omega/models"
)

// ParseAlgorithm maps a query value to a strategy. An empty value selects the
// default; an unknown value also falls back to the default and reports false
// so callers can log it.
func ParseAlgorithm(input string) (models.Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return models.DefaultAlgorithm, true
	case "dijkstra", "ucs", "uniform-cost":
		return models.Dijkstra, true
	case "astar", "a*", "a-star":
		return models.AStar, true
	case "bfs", "breadth-first":
		return models.BFS, true
	case "dfs", "depth-first":
		return models.DFS, true
	case "greedy", "best-first":
		return models.Greedy, true
	default:
		return models.DefaultAlgorithm, false
	}
}
