// Package geo holds the spherical geometry used by the distance model and by
// ELD log splitting.
package geo

import (
	"math"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// EarthRadiusMiles is the mean Earth radius.
const EarthRadiusMiles = 3958.7613

// HaversineMiles returns the great-circle distance between a and b in miles.
// It is symmetric and returns exactly 0 for identical points.
func HaversineMiles(a, b domain.Coordinates) float64 {
	if a == b {
		return 0
	}
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaPhi := (b.Lat - a.Lat) * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// Interpolate linearly interpolates between a and b. fraction is clamped to
// [0, 1]; when a == b the result is exactly a.
// Linear interpolation in degrees is accurate enough for placing a driver
// along a leg on a daily log.
func Interpolate(a, b domain.Coordinates, fraction float64) domain.Coordinates {
	switch {
	case fraction <= 0:
		return a
	case fraction >= 1:
		return b
	}
	return domain.Coordinates{
		Lat: a.Lat + (b.Lat-a.Lat)*fraction,
		Lon: a.Lon + (b.Lon-a.Lon)*fraction,
	}
}

// Bearing returns the initial bearing from a to b in degrees (0-360).
func Bearing(a, b domain.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	x := math.Sin(deltaLambda) * math.Cos(phi2)
	y := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)

	bearing := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

// CompassPoint converts a bearing into one of eight compass directions.
func CompassPoint(bearing float64) string {
	points := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int(math.Mod(bearing+22.5, 360) / 45)
	return points[idx%len(points)]
}
