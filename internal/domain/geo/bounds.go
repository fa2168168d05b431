// Package geo approximates circular search areas with rectangular
// latitude/longitude bounds that a range query can use directly.
package geo

import (
	"math"

	"houses/internal/errors"

	"github.com/paulmach/orb"
)

const (
	minLatRad = -math.Pi / 2
	maxLatRad = math.Pi / 2
	minLonRad = -math.Pi
	maxLonRad = math.Pi
)

// ErrNegativeRadius is returned for radii below zero.
var ErrNegativeRadius = errors.New("radius must not be negative")

// BoundsAround returns the box that encloses the great-circle disc of
// radiusMeters around center. Min is the southwest corner and Max the
// northeast corner.
//
// The box is an over-approximation: points in its corners can be further
// than radiusMeters away. When the disc reaches a pole the box spans every
// longitude. Longitudes are clamped to [-180, 180] instead of wrapping, so the
// result is always a single range.
func BoundsAround(center orb.Point, radiusMeters float64) (orb.Bound, error) {
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		return orb.Bound{}, ErrNegativeRadius
	}

	angular := radiusMeters / orb.EarthRadius
	lat := deg2rad(center.Lat())
	lon := deg2rad(center.Lon())

	minLat := lat - angular
	maxLat := lat + angular

	var minLon, maxLon float64
	if minLat > minLatRad && maxLat < maxLatRad {
		deltaLon := math.Asin(math.Sin(angular) / math.Cos(lat))
		minLon = math.Max(lon-deltaLon, minLonRad)
		maxLon = math.Min(lon+deltaLon, maxLonRad)
	} else {
		minLat = math.Max(minLat, minLatRad)
		maxLat = math.Min(maxLat, maxLatRad)
		minLon = minLonRad
		maxLon = maxLonRad
	}

	return orb.Bound{
		Min: orb.Point{rad2deg(minLon), rad2deg(minLat)},
		Max: orb.Point{rad2deg(maxLon), rad2deg(maxLat)},
	}, nil
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func rad2deg(r float64) float64 {
	return r * 180 / math.Pi
}
