package graph_generators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
)

const nodeLinkJSON = `{
  "graph": {
    "directed": false,
    "nodes": [
      {"id": 1001, "y": 3.1390, "x": 101.6869},
      {"id": "1002", "lat": 3.1420, "lon": 101.6900},
      {"id": 1003, "y": 3.1450, "x": 101.6930}
    ],
    "links": [
      {"source": 1001, "target": "1002", "length": 420.5},
      {"source": 1002, "target": 1003, "length": 0, "distance_m": 310.0}
    ]
  }
}`

func TestFromNodeLink(t *testing.T) {
	g, err := FromNodeLink([]byte(nodeLinkJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, graphs_go.Node{Latitude: 3.1420, Longitude: 101.6900}, g.Node(1))

	w, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.InDelta(t, 420.5, w, 1e-9)

	w, ok = g.Weight(2, 1)
	require.True(t, ok)
	assert.InDelta(t, 310.0, w, 1e-9)
}

func TestFromNodeLinkDirected(t *testing.T) {
	g, err := FromNodeLink([]byte(`{"graph": {"directed": true,
		"nodes": [{"id": 1, "y": 0, "x": 1}, {"id": 2, "y": 1, "x": 1}],
		"links": [{"source": 1, "target": 2, "length": 7}]}}`))
	require.NoError(t, err)

	_, ok := g.Weight(0, 1)
	assert.True(t, ok)
	_, ok = g.Weight(1, 0)
	assert.False(t, ok)
}

func TestFromNodeLinkUnknownNode(t *testing.T) {
	_, err := FromNodeLink([]byte(`{"graph": {"nodes": [{"id": 1, "y": 0, "x": 1}],
		"links": [{"source": 1, "target": 9, "length": 7}]}}`))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidGraph))
}

func TestParseGraphDetectsFormat(t *testing.T) {
	g, err := ParseGraph([]byte(`{"nodes": [[3.1, 101.6], [3.2, 101.7]], "neighbors": [[[1, 12.5]], []]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	g, err = ParseGraph([]byte(nodeLinkJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())

	_, err = ParseGraph([]byte(`{"vertices": []}`))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidGraph))
}

func TestConvertJSONToGob(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "kl_graph.json")
	require.NoError(t, os.WriteFile(input, []byte(nodeLinkJSON), 0o644))

	output := DefaultOutputPath(input)
	assert.Equal(t, filepath.Join(dir, "kl_graph.gob"), output)

	stats, err := ConvertJSONToGob(input, output)
	require.NoError(t, err)
	assert.Equal(t, Stats{Nodes: 3, Edges: 4}, stats)

	g, err := graphs_go.LoadGraphFromFile(output)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}
