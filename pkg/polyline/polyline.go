// Package polyline provides encoding, decoding and simplification utilities
// for coordinate sequences in Google's polyline format.
// The polyline algorithm is documented at: https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"errors"
	"math"
)

// DefaultPrecision is the standard precision (5 decimal places, ~1.1m) used
// by Google and OpenRouteService polylines.
const DefaultPrecision = 5

// ErrTruncated is returned when an encoded polyline ends in the middle of a
// value, i.e. a latitude was decoded but its longitude is missing, or a value
// never sees its terminating chunk.
var ErrTruncated = errors.New("polyline: truncated input")

// Coordinate represents a geographic point with latitude and longitude.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Decode decodes a polyline-encoded string into a slice of coordinates.
func Decode(encoded string, precision int) ([]Coordinate, error) {
	if encoded == "" {
		return nil, nil
	}

	factor := math.Pow10(precision)
	var coords []Coordinate
	index := 0
	lat := 0
	lon := 0

	for index < len(encoded) {
		latDelta, newIndex, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = newIndex
		lat += latDelta

		// A latitude without a matching longitude is corrupt data.
		if index >= len(encoded) {
			return nil, ErrTruncated
		}

		lonDelta, newIndex, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = newIndex
		lon += lonDelta

		coords = append(coords, Coordinate{
			Lat: float64(lat) / factor,
			Lon: float64(lon) / factor,
		})
	}

	return coords, nil
}

// decodeValue decodes a single zig-zag encoded value starting at index.
// Returns the decoded delta and the index of the next unread byte.
func decodeValue(encoded string, index int) (int, int, error) {
	shift := 0
	result := 0
	terminated := false

	for index < len(encoded) {
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			terminated = true
			break
		}
	}

	if !terminated {
		return 0, index, ErrTruncated
	}

	// Undo zig-zag encoding: odd values are negative.
	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode encodes a slice of coordinates into a polyline-encoded string.
// Decode(Encode(c, p), p) reproduces c up to 10^-p per component.
func Encode(coords []Coordinate, precision int) string {
	if len(coords) == 0 {
		return ""
	}

	factor := math.Pow10(precision)
	encoded := make([]byte, 0, len(coords)*4)
	prevLat := 0
	prevLon := 0

	for _, coord := range coords {
		lat := int(math.Round(coord.Lat * factor))
		lon := int(math.Round(coord.Lon * factor))

		encoded = encodeValue(encoded, lat-prevLat)
		encoded = encodeValue(encoded, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(encoded)
}

// encodeValue appends a single delta using the polyline algorithm.
func encodeValue(buf []byte, value int) []byte {
	// Zig-zag: invert if negative
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	// Emit 5-bit chunks, continuation bit on all but the last
	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	buf = append(buf, byte(value)+63)

	return buf
}
