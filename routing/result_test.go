package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
)

func TestAssemblePath(t *testing.T) {
	//             0   1  2  3   4
	prev := []int{-1, 2, 0, 1, -1}

	path, err := assemblePath(prev, 0, 3, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	path, err = assemblePath(prev, 0, 4, false)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestAssemblePathDetectsInconsistency(t *testing.T) {
	tests := []struct {
		name    string
		prev    []int
		target  int
		reached bool
	}{
		{name: "reachable but chain broken", prev: []int{-1, -1, 1, 2}, target: 3, reached: true},
		{name: "unreachable but chain complete", prev: []int{-1, 0, 1, 2}, target: 3, reached: false},
		{name: "cycle", prev: []int{-1, 3, 1, 2}, target: 3, reached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := assemblePath(tt.prev, 0, tt.target, tt.reached)
			assert.Nil(t, path)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal), "got %v", err)
		})
	}
}

func TestPathCostRejectsMissingEdge(t *testing.T) {
	g := smallGraph(t)

	cost, err := pathCost(g, []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cost, 1e-9)

	_, err = pathCost(g, []int{0, 3})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal))
}

func TestResultPackaging(t *testing.T) {
	g := smallGraph(t)

	r, err := Dijkstra(g, 0, 3)
	require.NoError(t, err)

	polyline := r.Polyline(g)
	require.Len(t, polyline, 4)
	assert.Equal(t, models.LatLng{Lat: 3.1390, Lng: 101.6869}, polyline[0])
	assert.Equal(t, models.LatLng{Lat: 3.1450, Lng: 101.6930}, polyline[3])

	edges := r.VisitedEdges(g)
	require.Len(t, edges, 3)
	assert.Equal(t, models.VisitedEdge{
		From: models.LatLng{Lat: 3.1390, Lng: 101.6869},
		To:   models.LatLng{Lat: 3.1400, Lng: 101.6880},
	}, edges[0])

	require.NotNil(t, r.Distance())
	assert.InDelta(t, 5.0, *r.Distance(), 1e-9)
}
