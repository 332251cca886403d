package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
)

func TestParseLatLng(t *testing.T) {
	got, err := ParseLatLng("3.1390, 101.6869")
	require.NoError(t, err)
	assert.Equal(t, models.LatLng{Lat: 3.1390, Lng: 101.6869}, got)

	got, err = ParseLatLng("-33.5,-70")
	require.NoError(t, err)
	assert.Equal(t, models.LatLng{Lat: -33.5, Lng: -70}, got)
}

func TestParseLatLngRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"3.1",
		"3.1,",
		",101.6",
		"abc,101.6",
		"3.1,101.6,7",
		"NaN,1",
		"1,Inf",
		"91,0",
		"0,181",
	} {
		_, err := ParseLatLng(raw)
		assert.Error(t, err, "input %q", raw)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidCoordinates), "input %q", raw)
	}
}

func TestParseAlgorithm(t *testing.T) {
	algo, ok := ParseAlgorithm("")
	assert.True(t, ok)
	assert.Equal(t, models.Dijkstra, algo)

	algo, ok = ParseAlgorithm(" A* ")
	assert.True(t, ok)
	assert.Equal(t, models.AStar, algo)

	algo, ok = ParseAlgorithm("GREEDY")
	assert.True(t, ok)
	assert.Equal(t, models.Greedy, algo)

	algo, ok = ParseAlgorithm("bellman-ford")
	assert.False(t, ok)
	assert.Equal(t, models.Dijkstra, algo)
}
