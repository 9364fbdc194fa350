package geodna

import (
	"math"
	"strings"
)

const (
	// DefaultPrecision is the code length used when callers have no better choice.
	DefaultPrecision = 22

	// RadiusOfEarthMeters is the equatorial radius used by every distance and
	// projection calculation in this package.
	RadiusOfEarthMeters = 6378100.0
)

// alphabet maps a 2-bit value (lonBit<<1 | latBit) to its symbol.
const alphabet = "gatc"

// decodeMap is the inverse of alphabet. It is indexed by byte and holds -1 for
// bytes that are not symbols.
var decodeMap = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int8(i)
	}
	return m
}()

// Mod is the floored modulo: the result always has the sign of m, so
// Mod(-10, 180) is 170 rather than -10.
func Mod(x, m float64) float64 {
	return math.Mod(math.Mod(x, m)+m, m)
}

// Normalise wraps latitude into [-90, 90) and longitude into [-180, 180).
// Values outside the range wrap around the sphere instead of being clamped.
func Normalise(lat, lon float64) (float64, float64) {
	return Mod(lat+90, 180) - 90, Mod(lon+180, 360) - 180
}

// Encode converts a latitude/longitude in degrees to a geodna code of the given
// precision. The coordinate is normalised first. A precision of 1 or less yields
// the hemisphere marker alone.
//
// Algorithm overview (two dimensional bisection):
//  1. Emit 'w' for negative longitudes and 'e' otherwise, which fixes the
//     longitude interval to [-180, 0] or [0, 180]. Latitude starts at [-90, 90].
//  2. Bisect the longitude interval; the upper half sets bit 1.
//  3. Bisect the latitude interval; the upper half sets bit 0.
//  4. Emit alphabet[bits] and repeat until the code is precision long.
//
// A value exactly on a midpoint takes the lower half.
func Encode(lat, lon float64, precision int) string {
	lat, lon = Normalise(lat, lon)

	var code strings.Builder
	if precision > 1 {
		code.Grow(precision)
	}

	lonRange := Range{Min: 0, Max: 180}
	latRange := Range{Min: -90, Max: 90}
	if lon < 0 {
		code.WriteByte('w')
		lonRange = Range{Min: -180, Max: 0}
	} else {
		code.WriteByte('e')
	}

	for code.Len() < precision {
		ch := 0

		mid := lonRange.Mid()
		if lon > mid {
			ch |= 2
			lonRange.Min = mid
		} else {
			lonRange.Max = mid
		}

		mid = latRange.Mid()
		if lat > mid {
			ch |= 1
			latRange.Min = mid
		} else {
			latRange.Max = mid
		}

		code.WriteByte(alphabet[ch])
	}

	return code.String()
}

// EncodeRadians is Encode for a coordinate given in radians.
func EncodeRadians(lat, lon float64, precision int) string {
	return Encode(degrees(lat), degrees(lon), precision)
}

// Decode returns the center of the cell described by code, in degrees. The
// result is within half a cell of the encoded coordinate.
func Decode(code string) (lat, lon float64, err error) {
	box, err := boundingBox("decode", code)
	if err != nil {
		return 0, 0, err
	}
	lat, lon = box.Center()
	return lat, lon, nil
}

// DecodeRadians is Decode returning radians.
func DecodeRadians(code string) (lat, lon float64, err error) {
	box, err := boundingBox("decode", code)
	if err != nil {
		return 0, 0, err
	}
	lat, lon = box.Center()
	return radians(lat), radians(lon), nil
}

// Validate reports whether code is a well formed geodna code: a hemisphere
// marker followed by zero or more alphabet symbols.
func Validate(code string) error {
	return validate("validate", code)
}

func validate(op, code string) error {
	if code == "" {
		return invalidInput(op, code, "empty code")
	}
	if code[0] != 'w' && code[0] != 'e' {
		return invalidInput(op, code, "hemisphere marker must be 'w' or 'e', got %q", code[0])
	}
	for i := 1; i < len(code); i++ {
		if decodeMap[code[i]] < 0 {
			return invalidInput(op, code, "unexpected character %q at index %d", code[i], i)
		}
	}
	return nil
}

// Parent returns the code one level up the hierarchy. A bare hemisphere marker
// has no parent.
func Parent(code string) (string, error) {
	if err := validate("parent", code); err != nil {
		return "", err
	}
	if len(code) == 1 {
		return "", invalidInput("parent", code, "hemisphere has no parent")
	}
	return code[:len(code)-1], nil
}

// Children returns the four codes one level below code, in alphabet order.
func Children(code string) ([]string, error) {
	if err := validate("children", code); err != nil {
		return nil, err
	}
	children := make([]string, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		children[i] = code + alphabet[i:i+1]
	}
	return children, nil
}

// CellSize returns the latitude and longitude extent in degrees of a cell at
// the given precision.
func CellSize(precision int) (latDeg, lonDeg float64) {
	steps := precision - 1
	if steps < 0 {
		steps = 0
	}
	return math.Ldexp(180, -steps), math.Ldexp(180, -steps)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
