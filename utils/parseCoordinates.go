package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
)

// SeparatorLatLng splits the latitude and longitude of a query coordinate.
const SeparatorLatLng = ","

// ParseLatLng parses a "lat,lon" pair. Both parts must be finite numbers
// within the valid degree ranges.
func ParseLatLng(raw string) (models.LatLng, error) {
	parts := strings.Split(raw, SeparatorLatLng)
	if len(parts) != 2 {
		return models.LatLng{}, apperrors.New(apperrors.ErrCodeInvalidCoordinates,
			"expected lat,lon but got %q", raw)
	}

	lat, err := parseDegrees(parts[0])
	if err != nil {
		return models.LatLng{}, apperrors.Wrap(apperrors.ErrCodeInvalidCoordinates, err,
			"invalid latitude in %q", raw)
	}
	lng, err := parseDegrees(parts[1])
	if err != nil {
		return models.LatLng{}, apperrors.Wrap(apperrors.ErrCodeInvalidCoordinates, err,
			"invalid longitude in %q", raw)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.LatLng{}, apperrors.New(apperrors.ErrCodeInvalidCoordinates,
			"coordinates out of range in %q", raw)
	}
	return models.LatLng{Lat: lat, Lng: lng}, nil
}

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
