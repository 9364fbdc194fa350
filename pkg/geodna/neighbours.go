package geodna

import "math"

// Neighbours returns the codes of the 8 cells surrounding code, at the same
// precision, row by row from south-west to north-east.
//
// Each neighbour is found by offsetting the center of code by one cell height
// and/or width and re-encoding. Offsets wrap around the sphere, so near the
// poles or the antimeridian two neighbours may share a code.
func Neighbours(code string) ([]string, error) {
	const op = "neighbours"

	box, err := boundingBox(op, code)
	if err != nil {
		return nil, err
	}
	width := box.Lon.Span()
	height := box.Lat.Span()
	if width == 0 || height == 0 {
		return nil, degenerate(op, code, "cell has zero size")
	}

	neighbours := make([]string, 0, 8)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			lat, lon, err := addVector(op, code, height*float64(i), width*float64(j))
			if err != nil {
				return nil, err
			}
			neighbours = append(neighbours, Encode(lat, lon, len(code)))
		}
	}
	return neighbours, nil
}

// NeighboursWithinRadius returns the codes, at the given precision, of the
// cells whose centers lie within radiusKm of the center of code as measured by
// DistanceInKm.
//
// This is a brute force raster scan: a square with half-diagonal radius·√2 is
// projected around the center and walked one cell at a time, so the cost grows
// with (radius / cell size)². Callers are responsible for bounding the inputs.
//
// The scan is sized by the longitude span between the two projected corners,
// and that same span bounds the latitude steps. Near the poles the longitude
// span grows towards 360°, so the scan covers far more cells than the radius
// needs: 5 km at latitude 89.9 and precision 14 walks roughly 13 million cells.
// Use a coarse precision for searches close to a pole.
// A precision below 1 is treated as the precision of code.
func NeighboursWithinRadius(code string, radiusKm float64, precision int) ([]string, error) {
	const op = "neighboursWithinRadius"

	if err := validate(op, code); err != nil {
		return nil, err
	}
	if !finite(radiusKm) || radiusKm < 0 {
		return nil, invalidInput(op, code, "radius %v must be a finite, non-negative number of km", radiusKm)
	}
	if precision < 1 {
		precision = len(code)
	}

	rh := radiusKm * math.Sqrt2
	start, err := project(op, code, -math.Pi/4, rh, precision)
	if err != nil {
		return nil, err
	}
	end, err := project(op, code, math.Pi/4, rh, precision)
	if err != nil {
		return nil, err
	}

	box, err := boundingBox(op, start)
	if err != nil {
		return nil, err
	}
	startLat, startLon := box.Center()
	_, endLon, err := Decode(end)
	if err != nil {
		return nil, err
	}

	if box.Lat.exhausted() || box.Lon.exhausted() {
		return nil, degenerate(op, start, "precision %d is finer than float64 resolution", precision)
	}
	dheight := box.Lat.Span()
	dwidth := box.Lon.Span()
	_, delta := Normalise(0, math.Abs(endLon-startLon))
	delta = math.Abs(delta)
	if delta+dwidth == delta || delta+dheight == delta {
		return nil, degenerate(op, start, "scan step vanishes against a %v° scan width", delta)
	}

	var (
		found = make([]string, 0)
		seen  = make(map[string]struct{})
	)
	for tlat := 0.0; tlat <= delta; tlat += dheight {
		for tlon := 0.0; tlon <= delta; tlon += dwidth {
			lat, lon := Normalise(startLat-tlat, startLon+tlon)
			current := Encode(lat, lon, precision)
			if _, ok := seen[current]; ok {
				continue
			}
			seen[current] = struct{}{}

			d, err := DistanceInKm(current, code)
			if err != nil {
				return nil, err
			}
			if d <= radiusKm {
				found = append(found, current)
			}
		}
	}

	return found, nil
}
