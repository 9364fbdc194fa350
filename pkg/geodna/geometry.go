package geodna

import "math"

// AddVector decodes code, offsets the center by dLat/dLon degrees and wraps
// the result back into [-90, 90) x [-180, 180). No encoding is performed.
func AddVector(code string, dLat, dLon float64) (lat, lon float64, err error) {
	return addVector("addVector", code, dLat, dLon)
}

func addVector(op, code string, dLat, dLon float64) (lat, lon float64, err error) {
	if !finite(dLat) || !finite(dLon) {
		return 0, 0, invalidInput(op, code, "vector (%v, %v) is not finite", dLat, dLon)
	}
	box, err := boundingBox(op, code)
	if err != nil {
		return 0, 0, err
	}
	lat, lon = box.Center()
	lat, lon = Normalise(lat+dLat, lon+dLon)
	return lat, lon, nil
}

// PointFromPointBearingAndDistance returns the code, at the given precision,
// of the point reached by travelling distanceKm from the center of code along
// the initial bearing (radians, clockwise from north) on a sphere of radius
// RadiusOfEarthMeters.
//
// This is the textbook destination point formula on a sphere, not a geodesic
// on the ellipsoid, which is accurate enough at the resolution of a code.
func PointFromPointBearingAndDistance(code string, bearing, distanceKm float64, precision int) (string, error) {
	return project("pointFromPointBearingAndDistance", code, bearing, distanceKm, precision)
}

func project(op, code string, bearing, distanceKm float64, precision int) (string, error) {
	if !finite(bearing) || !finite(distanceKm) {
		return "", invalidInput(op, code, "bearing %v and distance %v must be finite", bearing, distanceKm)
	}
	lat1, lon1, err := DecodeRadians(code)
	if err != nil {
		return "", err
	}

	// angular distance
	d := distanceKm * 1000 / RadiusOfEarthMeters

	// Rounding can push the sine just past ±1 when the destination is a pole.
	sinLat2 := math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(bearing)
	lat2 := math.Asin(math.Max(-1, math.Min(1, sinLat2)))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2),
	)
	if !finite(lat2) || !finite(lon2) {
		return "", degenerate(op, code, "projection produced (%v, %v)", lat2, lon2)
	}

	return EncodeRadians(lat2, lon2, precision), nil
}

// DistanceInKm approximates the distance between the centers of two codes
// with the equirectangular projection:
//
//	x = Δlon · cos(mean lat)
//	y = Δlat
//	d = sqrt(x² + y²) · R
//
// It treats the area between the points as flat, so it is only good for
// short distances (tens of kilometres). When the points straddle the
// antimeridian both are shifted by 180° of longitude first. Use
// HaversineDistanceInKm for long distances.
func DistanceInKm(a, b string) (float64, error) {
	const op = "distanceInKm"

	latA, lonA, err := addVector(op, a, 0, 0)
	if err != nil {
		return 0, err
	}
	latB, lonB, err := addVector(op, b, 0, 0)
	if err != nil {
		return 0, err
	}

	if lonA*lonB < 0 && math.Abs(lonA-lonB) > 180 {
		latA, lonA = Normalise(latA, lonA+180)
		latB, lonB = Normalise(latB, lonB+180)
	}

	x := (radians(lonB) - radians(lonA)) * math.Cos((radians(latA)+radians(latB))/2)
	y := radians(latB) - radians(latA)

	return math.Sqrt(x*x+y*y) * RadiusOfEarthMeters / 1000, nil
}

// HaversineDistanceInKm returns the great-circle distance between the centers
// of two codes. Unlike DistanceInKm it stays accurate over long distances and
// needs no antimeridian correction.
func HaversineDistanceInKm(a, b string) (float64, error) {
	const op = "haversineDistanceInKm"

	box, err := boundingBox(op, a)
	if err != nil {
		return 0, err
	}
	lat1, lon1 := box.Center()
	if box, err = boundingBox(op, b); err != nil {
		return 0, err
	}
	lat2, lon2 := box.Center()

	deltaLat := radians(lat2 - lat1)
	deltaLon := radians(lon2 - lon1)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return RadiusOfEarthMeters / 1000 * c, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
