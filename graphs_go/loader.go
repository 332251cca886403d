package graphs_go

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cleawwy/Project-Omega/apperrors"
)

// snapshotVersion is bumped whenever the gob layout changes.
const snapshotVersion = 1

// jsonGraph is the precomputed dataset format: nodes[i] is [lat, lon] and
// neighbors[i] lists [neighborIndex, weight] pairs for node i.
type jsonGraph struct {
	Nodes     [][2]float64   `json:"nodes"`
	Neighbors [][][2]float64 `json:"neighbors"`
}

// snapshot is the gob encoding of a Graph.
type snapshot struct {
	Version int
	Nodes   []Node
	Edges   [][]Edge
}

// LoadGraphFromFile reads a graph from a .json dataset or a .gob snapshot.
func LoadGraphFromFile(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open graph file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		bytes, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("could not read graph file: %w", err)
		}
		return LoadGraphFromJSON(bytes)
	case ".gob":
		return LoadGraphFromGob(file)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
			"unsupported graph file extension %q", filepath.Ext(path))
	}
}

// LoadGraphFromJSON parses the {"nodes": ..., "neighbors": ...} dataset.
func LoadGraphFromJSON(data []byte) (*Graph, error) {
	var raw jsonGraph
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to parse graph JSON")
	}

	nodes := make([]Node, len(raw.Nodes))
	for i, n := range raw.Nodes {
		nodes[i] = Node{Latitude: n[0], Longitude: n[1]}
	}

	edges := make([][]Edge, len(raw.Neighbors))
	for from, out := range raw.Neighbors {
		edges[from] = make([]Edge, 0, len(out))
		for _, pair := range out {
			to, ok := nodeIndex(pair[0])
			if !ok {
				return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
					"node %d has non-integral neighbor index %v", from, pair[0])
			}
			edges[from] = append(edges[from], Edge{To: to, Weight: pair[1]})
		}
	}

	return NewGraph(nodes, edges)
}

// LoadGraphFromGob decodes a snapshot written by SaveGraphGob.
func LoadGraphFromGob(r io.Reader) (*Graph, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to decode graph snapshot")
	}
	if snap.Version != snapshotVersion {
		return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
			"unsupported snapshot version %d (want %d)", snap.Version, snapshotVersion)
	}
	if snap.Edges == nil {
		snap.Edges = make([][]Edge, len(snap.Nodes))
	}
	return NewGraph(snap.Nodes, snap.Edges)
}

// SaveGraphGob writes g as a gob snapshot.
func SaveGraphGob(w io.Writer, g *Graph) error {
	snap := snapshot{
		Version: snapshotVersion,
		Nodes:   g.nodes,
		Edges:   g.edges,
	}
	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode graph snapshot: %w", err)
	}
	return nil
}

func nodeIndex(f float64) (int, bool) {
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
