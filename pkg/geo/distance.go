// Package geo holds the great-circle math behind the nearby search.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used for every distance.
const EarthRadiusKm = 6371.0

// GeohashPrecision gives cells of roughly 150m x 150m, enough to group
// drop-off points on a city map.
const GeohashPrecision = 7

type Point struct {
	Lat float64
	Lng float64
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in kilometres between a and b
// using the spherical law of cosines. The cosine is clamped to [-1, 1] so that
// identical points yield 0 instead of NaN.
func Distance(a, b Point) float64 {
	lat1, lat2 := toRadians(a.Lat), toRadians(b.Lat)
	dLng := toRadians(b.Lng) - toRadians(a.Lng)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLng)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidCoordinates reports whether lat is in [-90, 90] and lng in [-180, 180].
func ValidCoordinates(p Point) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Geohash encodes p as a geohash cell label.
func Geohash(p Point) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, GeohashPrecision)
}
