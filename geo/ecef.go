package geo

import "math"

const (
	bowringTolerance = 1e-12
	bowringMaxIter   = 5
)

// LatLonToECEF converts a geographic position with ellipsoidal height to
// earth-centered, earth-fixed cartesian coordinates in meters.
func (e Ellipsoid) LatLonToECEF(ll LatLon) (ECEF, error) {
	lat, err := WrapLat(ll.Lat)
	if err != nil {
		return ECEF{}, err
	}
	phi := lat * deg2rad
	lam := WrapLon(ll.Lon) * deg2rad

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)

	// prime vertical radius of curvature
	nu := e.A / math.Sqrt(1-e.E2()*sinPhi*sinPhi)

	return ECEF{
		X: (nu + ll.Height) * cosPhi * math.Cos(lam),
		Y: (nu + ll.Height) * cosPhi * math.Sin(lam),
		Z: (nu*(1-e.E2()) + ll.Height) * sinPhi,
	}, nil
}

// ECEFToLatLon converts cartesian coordinates back to a geographic position
// with Bowring's method, iterating the reduced latitude until it moves by
// less than 1e-12 radians. Two iterations already reach micrometer accuracy
// anywhere on the ellipsoid surface.
func (e Ellipsoid) ECEFToLatLon(c ECEF) (LatLon, error) {
	a, b := e.A, e.B()
	e2 := e.E2()
	ep2 := e.EPrime2()

	p := math.Hypot(c.X, c.Y)
	if p < 1e-9 {
		// on the polar axis the longitude is undefined; report 0
		lat := 90.0
		if c.Z < 0 {
			lat = -90.0
		}
		return LatLon{Lat: lat, Lon: 0, Height: math.Abs(c.Z) - b}, nil
	}

	beta := math.Atan2(c.Z*a, p*b)
	var phi float64
	for i := 0; ; i++ {
		if i >= bowringMaxIter {
			return LatLon{}, ConvergenceError{Op: "ecef inverse", Iterations: bowringMaxIter}
		}
		sinBeta := math.Sin(beta)
		cosBeta := math.Cos(beta)
		phi = math.Atan2(c.Z+ep2*b*sinBeta*sinBeta*sinBeta, p-e2*a*cosBeta*cosBeta*cosBeta)
		next := math.Atan((1 - e.F) * math.Tan(phi))
		if math.Abs(next-beta) <= bowringTolerance {
			beta = next
			break
		}
		beta = next
	}
	// one more update from the converged reduced latitude squares the
	// residual, keeping the recovered height within a micrometer
	sinBeta := math.Sin(beta)
	cosBeta := math.Cos(beta)
	phi = math.Atan2(c.Z+ep2*b*sinBeta*sinBeta*sinBeta, p-e2*a*cosBeta*cosBeta*cosBeta)

	// stable at every latitude, unlike p/cos(phi) - nu
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	h := p*cosPhi + c.Z*sinPhi - a*math.Sqrt(1-e2*sinPhi*sinPhi)

	return LatLon{
		Lat:    phi * rad2deg,
		Lon:    math.Atan2(c.Y, c.X) * rad2deg,
		Height: h,
	}, nil
}
