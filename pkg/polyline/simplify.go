package polyline

import "math"

// Simplify reduces a coordinate sequence using the Ramer-Douglas-Peucker
// algorithm. Points whose perpendicular distance to the line joining the
// first and last point is below tolerance (in degrees) are dropped; the
// first and last point are always preserved. Sequences of two or fewer
// points are returned unchanged.
func Simplify(coords []Coordinate, tolerance float64) []Coordinate {
	if len(coords) <= 2 {
		return coords
	}

	start := coords[0]
	end := coords[len(coords)-1]

	// Find the interior point farthest from the start-end segment.
	// On a tie the first such point wins.
	maxDist := 0.0
	index := 0
	for i := 1; i < len(coords)-1; i++ {
		dist := pointSegmentDistance(coords[i], start, end)
		if dist > maxDist {
			maxDist = dist
			index = i
		}
	}

	if maxDist > tolerance {
		left := Simplify(coords[:index+1], tolerance)
		right := Simplify(coords[index:], tolerance)
		// The split point appears in both halves; keep it once.
		return append(left[:len(left)-1:len(left)-1], right...)
	}

	return []Coordinate{start, end}
}

// pointSegmentDistance returns the Euclidean distance from p to the segment
// joining a and b, clamping the projection to the segment. A zero-length
// segment degenerates to the direct distance to a.
func pointSegmentDistance(p, a, b Coordinate) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat

	if dx == 0 && dy == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}

	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	projLon := a.Lon + t*dx
	projLat := a.Lat + t*dy

	return math.Hypot(p.Lon-projLon, p.Lat-projLat)
}
