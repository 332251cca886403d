package routing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/models"
)

// smallGraph is 0->1 (5), 0->2 (2), 2->1 (2), 1->3 (1) with node 4 isolated.
func smallGraph(t *testing.T) *graphs_go.Graph {
	t.Helper()
	g, err := graphs_go.NewGraph(
		[]graphs_go.Node{
			{Latitude: 3.1390, Longitude: 101.6869},
			{Latitude: 3.1420, Longitude: 101.6900},
			{Latitude: 3.1400, Longitude: 101.6880},
			{Latitude: 3.1450, Longitude: 101.6930},
			{Latitude: 3.2000, Longitude: 101.7500},
		},
		[][]graphs_go.Edge{
			{{To: 1, Weight: 5}, {To: 2, Weight: 2}},
			{{To: 3, Weight: 1}},
			{{To: 1, Weight: 2}},
			nil,
			nil,
		},
	)
	require.NoError(t, err)
	return g
}

// gridGraph builds a rows x cols lattice with bidirectional edges whose weights
// are at least 5% above the geodesic distance, so the haversine heuristic is
// admissible and consistent. Roughly one edge in ten is dropped.
func gridGraph(t *testing.T, seed int64, rows, cols int) *graphs_go.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	id := func(r, c int) int { return r*cols + c }
	nodes := make([]graphs_go.Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nodes[id(r, c)] = graphs_go.Node{
				Latitude:  3.10 + float64(r)*0.001 + rng.Float64()*0.0002,
				Longitude: 101.60 + float64(c)*0.001 + rng.Float64()*0.0002,
			}
		}
	}

	edges := make([][]graphs_go.Edge, len(nodes))
	connect := func(u, v int) {
		if rng.Float64() < 0.1 {
			return
		}
		a, b := nodes[u], nodes[v]
		d := HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		w := d * (1.05 + rng.Float64())
		edges[u] = append(edges[u], graphs_go.Edge{To: v, Weight: w})
		edges[v] = append(edges[v], graphs_go.Edge{To: u, Weight: w})
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				connect(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				connect(id(r, c), id(r+1, c))
			}
		}
	}

	g, err := graphs_go.NewGraph(nodes, edges)
	require.NoError(t, err)
	return g
}

func TestDijkstraPrefersCheaperDetour(t *testing.T) {
	g := smallGraph(t)

	r, err := Dijkstra(g, 0, 3)
	require.NoError(t, err)

	assert.True(t, r.Found)
	assert.Equal(t, []int{0, 2, 1, 3}, r.Path)
	assert.InDelta(t, 5.0, r.Cost, 1e-9)
	assert.Equal(t, 4, r.Visited)
	assert.Equal(t, []Segment{{0, 2}, {2, 1}, {1, 3}}, r.Trace)
}

func TestBFSIsHopOptimalNotWeightOptimal(t *testing.T) {
	g := smallGraph(t)

	r, err := BFS(g, 0, 3)
	require.NoError(t, err)

	assert.True(t, r.Found)
	assert.Equal(t, []int{0, 1, 3}, r.Path)
	assert.InDelta(t, 6.0, r.Cost, 1e-9)
	assert.Equal(t, 4, r.Visited)
	assert.Empty(t, r.Trace)
}

func TestDFSFollowsLastPushedNeighbor(t *testing.T) {
	g := smallGraph(t)

	r, err := DFS(g, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, r.Path)
	assert.InDelta(t, 6.0, r.Cost, 1e-9)
	assert.Equal(t, 4, r.Visited)
	assert.Empty(t, r.Trace)
}

func TestGreedyFollowsHeuristic(t *testing.T) {
	g := smallGraph(t)

	r, err := Greedy(g, 0, 3)
	require.NoError(t, err)

	// Node 1 is geographically closer to 3 than node 2 is.
	assert.Equal(t, []int{0, 1, 3}, r.Path)
	assert.InDelta(t, 6.0, r.Cost, 1e-9)
	assert.Equal(t, 3, r.Visited)
	assert.Equal(t, []Segment{{0, 1}, {1, 3}}, r.Trace)
}

func TestAStarReportsTruePathWeight(t *testing.T) {
	g := smallGraph(t)

	// Weights here are far below geodesic distance, so the heuristic
	// overestimates and A* settles for the two-hop path.
	r, err := AStar(g, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, r.Path)
	assert.InDelta(t, 6.0, r.Cost, 1e-9)
}

func TestIsolatedNodeIsUnreachable(t *testing.T) {
	g := smallGraph(t)

	for _, algo := range Algorithms() {
		for _, pair := range [][2]int{{0, 4}, {4, 0}} {
			r, err := Search(g, algo, pair[0], pair[1])
			require.NoError(t, err, algo)

			assert.False(t, r.Found, algo)
			assert.Empty(t, r.Path, algo)
			assert.Nil(t, r.Distance(), algo)
			assert.NotNil(t, r.Polyline(g), algo)
			assert.Empty(t, r.Polyline(g), algo)
			if algo == models.BFS || algo == models.DFS {
				assert.Empty(t, r.Trace, algo)
			}
		}
	}
}

func TestSourceEqualsTarget(t *testing.T) {
	g := smallGraph(t)

	for _, algo := range Algorithms() {
		r, err := Search(g, algo, 2, 2)
		require.NoError(t, err, algo)

		assert.True(t, r.Found, algo)
		assert.Equal(t, []int{2}, r.Path, algo)
		require.NotNil(t, r.Distance(), algo)
		assert.Zero(t, *r.Distance(), algo)
		assert.Empty(t, r.Trace, algo)
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	g := smallGraph(t)

	_, err := Search(g, models.Dijkstra, -1, 3)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))

	_, err = Search(g, models.Greedy, 0, 5)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))

	_, err = Search(g, models.Algorithm("bellman-ford"), 0, 3)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}

func TestAlgorithmsOrder(t *testing.T) {
	assert.Equal(t,
		[]models.Algorithm{models.Dijkstra, models.AStar, models.BFS, models.DFS, models.Greedy},
		Algorithms())
}

func TestStrategyProperties(t *testing.T) {
	g := gridGraph(t, 42, 12, 15)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 60; i++ {
		source := rng.Intn(g.NodeCount())
		target := rng.Intn(g.NodeCount())

		dijkstra, err := Dijkstra(g, source, target)
		require.NoError(t, err)

		for _, algo := range Algorithms() {
			r, err := Search(g, algo, source, target)
			require.NoError(t, err, algo)

			// Every strategy explores the whole reachable set if needed.
			assert.Equal(t, dijkstra.Found, r.Found, "%s %d->%d", algo, source, target)
			assert.GreaterOrEqual(t, r.Visited, len(r.Path), algo)

			if r.Found {
				assert.Equal(t, source, r.Path[0], algo)
				assert.Equal(t, target, r.Path[len(r.Path)-1], algo)
				assert.InDelta(t, recompute(t, g, r.Path), r.Cost, 1e-6, algo)
				assert.GreaterOrEqual(t, r.Cost, dijkstra.Cost-1e-6, algo)
			}

			for _, s := range r.Trace {
				assert.NotEqual(t, source, s.To, "%s traced an edge into the source", algo)
			}

			again, err := Search(g, algo, source, target)
			require.NoError(t, err)
			assert.Equal(t, r, again, "%s is not deterministic", algo)
		}

		astar, err := AStar(g, source, target)
		require.NoError(t, err)
		if dijkstra.Found {
			assert.InDelta(t, dijkstra.Cost, astar.Cost, 1e-6*math.Max(1, dijkstra.Cost))
			assert.LessOrEqual(t, astar.Visited, dijkstra.Visited)
		}
	}
}

// recompute sums edge weights along path straight from the adjacency list.
func recompute(t *testing.T, g *graphs_go.Graph, path []int) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.Edges(path[i-1]) {
			if e.To == path[i] {
				best = math.Min(best, e.Weight)
			}
		}
		require.False(t, math.IsInf(best, 1), "missing edge %d->%d", path[i-1], path[i])
		total += best
	}
	return total
}
