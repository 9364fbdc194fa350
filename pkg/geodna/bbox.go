package geodna

// Range is a closed interval of degrees.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Mid returns the midpoint of the interval.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Span returns the width of the interval.
func (r Range) Span() float64 {
	if r.Max < r.Min {
		return r.Min - r.Max
	}
	return r.Max - r.Min
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// exhausted reports whether the interval is too narrow to bisect at float64
// resolution, so that further symbols no longer shrink it.
func (r Range) exhausted() bool {
	mid := r.Mid()
	return mid <= r.Min || mid >= r.Max
}

// Box is the rectangular latitude/longitude region a code represents.
// It is always recomputed from the code and never stored.
type Box struct {
	Lat Range `json:"lat" yaml:"lat"`
	Lon Range `json:"lon" yaml:"lon"`
}

// Center returns the midpoint of the box.
func (b Box) Center() (lat, lon float64) {
	return b.Lat.Mid(), b.Lon.Mid()
}

// Contains reports whether the coordinate lies inside the box.
func (b Box) Contains(lat, lon float64) bool {
	return b.Lat.Contains(lat) && b.Lon.Contains(lon)
}

// ContainsBox reports whether other lies entirely inside b.
func (b Box) ContainsBox(other Box) bool {
	return b.Lat.Contains(other.Lat.Min) && b.Lat.Contains(other.Lat.Max) &&
		b.Lon.Contains(other.Lon.Min) && b.Lon.Contains(other.Lon.Max)
}

// BoundingBox replays the bisection of Encode to recover the region a code
// covers. For any code produced by Encode the box contains the normalised
// input coordinate.
func BoundingBox(code string) (Box, error) {
	return boundingBox("boundingBox", code)
}

func boundingBox(op, code string) (Box, error) {
	if err := validate(op, code); err != nil {
		return Box{}, err
	}

	box := Box{
		Lat: Range{Min: -90, Max: 90},
		Lon: Range{Min: 0, Max: 180},
	}
	if code[0] == 'w' {
		box.Lon = Range{Min: -180, Max: 0}
	}

	for i := 1; i < len(code); i++ {
		cd := decodeMap[code[i]]
		if cd&2 != 0 {
			box.Lon.Min = box.Lon.Mid()
		} else {
			box.Lon.Max = box.Lon.Mid()
		}
		if cd&1 != 0 {
			box.Lat.Min = box.Lat.Mid()
		} else {
			box.Lat.Max = box.Lat.Mid()
		}
	}

	return box, nil
}
