package models

// Algorithm names one of the interchangeable search strategies.
type Algorithm string

const (
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Greedy   Algorithm = "greedy"
)

// DefaultAlgorithm is used when a request does not name one.
const DefaultAlgorithm = Dijkstra

// AllAlgorithms lists every strategy in the order the comparison runs them.
var AllAlgorithms = []Algorithm{Dijkstra, AStar, BFS, DFS, Greedy}

// DisplayName is the label used in comparison tables.
func (a Algorithm) DisplayName() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Greedy:
		return "Greedy"
	default:
		return string(a)
	}
}
