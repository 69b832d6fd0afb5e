package geo

import "sort"

// Match is a candidate that survived the radius filter.
type Match[T any] struct {
	Item       T
	DistanceKm float64
}

// WithinRadius measures every item against origin, keeps those whose
// distance rounded to two decimals is <= radiusKm and orders them by
// distance. Ties keep the input order.
func WithinRadius[T any](origin Point, radiusKm float64, items []T, locate func(T) Point) []Match[T] {
	matches := make([]Match[T], 0, len(items))
	for _, item := range items {
		d := Round2(Distance(origin, locate(item)))
		if d <= radiusKm {
			matches = append(matches, Match[T]{Item: item, DistanceKm: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches
}
