package entities

import "geodna/pkg/geodna"

// Location represents a geographic coordinate pair (latitude/longitude) in
// degrees, or radians when Radians is set.
//
// Go Learning Note — Value Types vs Reference Types:
// Location is a small, immutable data holder. NewLocation returns it by value
// (not a pointer), which is idiomatic for small structs. Every entity in this
// package is built for a single command invocation and then rendered, so none
// of them needs shared mutation.
type Location struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
	Radians   bool    `json:"radians,omitempty" yaml:"radians,omitempty"`
}

// Cell is a geodna code together with the region it covers.
type Cell struct {
	Code      string     `json:"code" yaml:"code"`
	Precision int        `json:"precision" yaml:"precision"`
	Center    Location   `json:"center" yaml:"center"`
	Box       geodna.Box `json:"bbox" yaml:"bbox"`
}

// Distance is the result of measuring between two codes.
type Distance struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Km     float64 `json:"km" yaml:"km"`
	Method string  `json:"method" yaml:"method"`
}

// CodeList is an ordered list of codes, such as neighbours or a reduced cover.
type CodeList struct {
	Codes []string `json:"codes" yaml:"codes"`
	Count int      `json:"count" yaml:"count"`
}

// NewLocation creates a Location value from latitude and longitude in degrees.
func NewLocation(lat, lon float64) Location {
	return Location{
		Latitude:  lat,
		Longitude: lon,
	}
}

// NewCell decodes code into a Cell.
func NewCell(code string) (Cell, error) {
	box, err := geodna.BoundingBox(code)
	if err != nil {
		return Cell{}, err
	}
	lat, lon := box.Center()
	return Cell{
		Code:      code,
		Precision: len(code),
		Center:    NewLocation(lat, lon),
		Box:       box,
	}, nil
}

// NewCodeList wraps codes, replacing nil with an empty list so that it renders
// as [] rather than null.
func NewCodeList(codes []string) CodeList {
	if codes == nil {
		codes = []string{}
	}
	return CodeList{Codes: codes, Count: len(codes)}
}
