package trip

// boundingBox is a geographic box: min/max longitude and latitude.
type boundingBox struct {
	minLon, minLat, maxLon, maxLat float64
}

// usBoxes covers the contiguous US, Alaska, and Hawaii.
var usBoxes = []boundingBox{
	{-124.848974, 24.396308, -66.885444, 49.384358}, // contiguous US (lower 48)
	{-170.0, 51.0, -130.0, 71.0},                    // Alaska
	{-161.0, 18.5, -154.0, 22.5},                    // Hawaii
}

// InsideUSA reports whether the point falls within the USA bounding boxes.
func InsideUSA(lat, lon float64) bool {
	for _, b := range usBoxes {
		if lon >= b.minLon && lon <= b.maxLon && lat >= b.minLat && lat <= b.maxLat {
			return true
		}
	}
	return false
}
