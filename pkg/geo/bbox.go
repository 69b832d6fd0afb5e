package geo

import "math"

// boxPaddingKm widens the box so that points whose rounded distance equals
// the radius still fall inside it.
const boxPaddingKm = 0.01

// BoundingBox is a lat/lng rectangle that contains every point within a
// radius of its centre. When LngBounded is false the box spans all
// longitudes (near the poles or across the antimeridian).
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	LngBounded     bool
}

// BoundingBoxAround returns a conservative candidate box for a radius search.
func BoundingBoxAround(center Point, radiusKm float64) BoundingBox {
	angular := (radiusKm + boxPaddingKm) / EarthRadiusKm
	dLat := angular * 180 / math.Pi

	box := BoundingBox{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
		MinLng: -180,
		MaxLng: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 || angular >= math.Pi/2 {
		return box
	}

	// widest longitude span occurs at the latitude edge closest to a pole
	maxAbsLat := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	cosLat := math.Cos(toRadians(maxAbsLat))
	if cosLat <= 0 {
		return box
	}
	sinRatio := math.Sin(angular) / cosLat
	if sinRatio >= 1 {
		return box
	}
	dLng := math.Asin(sinRatio) * 180 / math.Pi

	minLng, maxLng := center.Lng-dLng, center.Lng+dLng
	if minLng < -180 || maxLng > 180 {
		return box
	}

	box.MinLng, box.MaxLng = minLng, maxLng
	box.LngBounded = true
	return box
}

// Contains reports whether p lies inside the box.
func (b BoundingBox) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if !b.LngBounded {
		return true
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
