// Package graph_generators converts road network exports into the gob
// snapshots the server loads at startup.
//
// Two inputs are understood: the indexed {"nodes", "neighbors"} dataset and
// an OSMnx node-link export ({"graph": {"nodes": [...], "links": [...]}}).
package graph_generators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
)

type nodeLinkGraph struct {
	Graph struct {
		Directed bool           `json:"directed"`
		Nodes    []nodeLinkNode `json:"nodes"`
		Links    []nodeLinkEdge `json:"links"`
	} `json:"graph"`
}

type nodeLinkNode struct {
	Y   float64     `json:"y"`
	X   float64     `json:"x"`
	Lon float64     `json:"lon"`
	Lat float64     `json:"lat"`
	ID  interface{} `json:"id"` // Can be int64 or string
}

type nodeLinkEdge struct {
	Length    float64     `json:"length"`
	DistanceM float64     `json:"distance_m"`
	Source    interface{} `json:"source"` // Can be int64 or string
	Target    interface{} `json:"target"` // Can be int64 or string
}

// Stats summarises a conversion.
type Stats struct {
	Nodes int
	Edges int
}

func convertID(id interface{}) (int64, error) {
	switch v := id.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", id)
	}
}

// ParseGraph detects the input format and builds a graph from it.
func ParseGraph(data []byte) (*graphs_go.Graph, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to parse graph JSON")
	}

	switch {
	case probe["neighbors"] != nil:
		return graphs_go.LoadGraphFromJSON(data)
	case probe["graph"] != nil:
		return FromNodeLink(data)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidGraph,
			`unrecognised graph JSON: expected "neighbors" or "graph" key`)
	}
}

// FromNodeLink builds a graph from an OSMnx node-link export. Nodes are
// indexed in file order; edge weights are the link length in meters.
// Undirected exports get an edge in each direction.
func FromNodeLink(data []byte) (*graphs_go.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw nodeLinkGraph
	if err := dec.Decode(&raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to parse node-link JSON")
	}

	index := make(map[int64]int, len(raw.Graph.Nodes))
	nodes := make([]graphs_go.Node, 0, len(raw.Graph.Nodes))
	for _, n := range raw.Graph.Nodes {
		id, err := convertID(n.ID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to convert node ID (%v)", n.ID)
		}
		if _, dup := index[id]; dup {
			return nil, apperrors.New(apperrors.ErrCodeInvalidGraph, "duplicate node ID %d", id)
		}

		lat, lon := n.Lat, n.Lon
		if lat == 0 && lon == 0 {
			lat, lon = n.Y, n.X
		}
		index[id] = len(nodes)
		nodes = append(nodes, graphs_go.Node{Latitude: lat, Longitude: lon})
	}

	edges := make([][]graphs_go.Edge, len(nodes))
	for _, l := range raw.Graph.Links {
		from, err := lookup(index, l.Source)
		if err != nil {
			return nil, err
		}
		to, err := lookup(index, l.Target)
		if err != nil {
			return nil, err
		}

		weight := l.Length
		if weight == 0 {
			weight = l.DistanceM
		}
		edges[from] = append(edges[from], graphs_go.Edge{To: to, Weight: weight})
		if !raw.Graph.Directed {
			edges[to] = append(edges[to], graphs_go.Edge{To: from, Weight: weight})
		}
	}

	return graphs_go.NewGraph(nodes, edges)
}

func lookup(index map[int64]int, raw interface{}) (int, error) {
	id, err := convertID(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "failed to convert link endpoint (%v)", raw)
	}
	i, ok := index[id]
	if !ok {
		return 0, apperrors.New(apperrors.ErrCodeInvalidGraph, "link references unknown node %d", id)
	}
	return i, nil
}

// DefaultOutputPath replaces the input extension with .gob.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(filepath.Dir(inputPath), base+".gob")
}

// ConvertJSONToGob reads a JSON graph and writes a gob snapshot.
func ConvertJSONToGob(inputPath, outputPath string) (Stats, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read JSON file %s: %w", inputPath, err)
	}

	g, err := ParseGraph(data)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to convert %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return Stats{}, fmt.Errorf("failed to create output directory for %s: %w", outputPath, err)
	}

	gobFile, err := os.Create(outputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create GOB file %s: %w", outputPath, err)
	}
	defer gobFile.Close()

	if err := graphs_go.SaveGraphGob(gobFile, g); err != nil {
		return Stats{}, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return Stats{Nodes: g.NodeCount(), Edges: g.EdgeCount()}, nil
}
