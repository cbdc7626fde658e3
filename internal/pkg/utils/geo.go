package utils

import "math"

const earthRadiusKm = 6371.0

// minSpanDeg keeps a degenerate bounding box (single marker) from collapsing
// the fitted viewport to a zero-area box.
const minSpanDeg = 0.005

// HaversineDistance returns the distance between two points in kilometers.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates reports whether lat/lon are within WGS84 range.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// PadBounds expands a bounding box on every side by factor of its span.
// A zero-span box is widened to minSpanDeg first.
func PadBounds(minLat, minLon, maxLat, maxLon, factor float64) (float64, float64, float64, float64) {
	latSpan := maxLat - minLat
	lonSpan := maxLon - minLon

	if latSpan < minSpanDeg {
		center := (minLat + maxLat) / 2
		minLat = center - minSpanDeg/2
		maxLat = center + minSpanDeg/2
		latSpan = minSpanDeg
	}
	if lonSpan < minSpanDeg {
		center := (minLon + maxLon) / 2
		minLon = center - minSpanDeg/2
		maxLon = center + minSpanDeg/2
		lonSpan = minSpanDeg
	}

	minLat -= latSpan * factor
	maxLat += latSpan * factor
	minLon -= lonSpan * factor
	maxLon += lonSpan * factor

	return clampLat(minLat), clampLon(minLon), clampLat(maxLat), clampLon(maxLon)
}

// ZoomForBounds picks the largest integer zoom level whose 360/2^z degree
// window still covers both spans of the box. Clamped to [3, 18].
func ZoomForBounds(minLat, minLon, maxLat, maxLon float64) float64 {
	span := math.Max(maxLat-minLat, maxLon-minLon)
	if span <= 0 {
		return 18
	}

	zoom := math.Floor(math.Log2(360.0 / span))
	if zoom < 3 {
		return 3
	}
	if zoom > 18 {
		return 18
	}
	return zoom
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func clampLon(lon float64) float64 {
	return math.Max(-180, math.Min(180, lon))
}
