package geo

import "math"

// Ellipsoid is a reference ellipsoid given by its semi-major axis A (meters)
// and flattening F. The zero value is not usable; build custom ellipsoids
// with NewEllipsoid or use WGS84.
type Ellipsoid struct {
	A float64
	F float64
}

// WGS84 is the reference ellipsoid all package-level conversions are bound to.
var WGS84 = Ellipsoid{A: 6378137.0, F: 1 / 298.257223563}

func NewEllipsoid(a, f float64) (Ellipsoid, error) {
	if a <= 0 || f < 0 || f >= 1 || math.IsNaN(a) || math.IsNaN(f) {
		return Ellipsoid{}, InvalidEllipsoidError{A: a, F: f}
	}
	return Ellipsoid{A: a, F: f}, nil
}

// E2 returns the first eccentricity squared, f(2-f).
func (e Ellipsoid) E2() float64 {
	return e.F * (2 - e.F)
}

// EPrime2 returns the second eccentricity squared, e2/(1-e2).
func (e Ellipsoid) EPrime2() float64 {
	e2 := e.E2()
	return e2 / (1 - e2)
}

// B returns the semi-minor axis in meters.
func (e Ellipsoid) B() float64 {
	return e.A * (1 - e.F)
}

// n returns Helmert's third flattening, f/(2-f).
func (e Ellipsoid) n() float64 {
	return e.F / (2 - e.F)
}

// rectifyingRadius returns A such that 2*pi*A is the circumference of a
// meridian (Karney, 2011, eq. 14).
func (e Ellipsoid) rectifyingRadius() float64 {
	n := e.n()
	n2 := n * n
	return e.A / (1 + n) * (1 + n2/4 + n2*n2/64 + n2*n2*n2/256)
}
