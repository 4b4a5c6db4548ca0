package geo

import "math"

// UTM projection constants.
const (
	ScaleFactor   = 0.9996
	FalseEasting  = 500000.0
	FalseNorthing = 10000000.0
)

// UTM and MGRS cover latitudes from 80 degrees south to 84 degrees north;
// the polar caps belong to a different grid system.
const (
	MinGridLat = -80.0
	MaxGridLat = 84.0
)

const (
	tmercTolerance = 1e-12
	tmercMaxIter   = 15
)

// Zone boundaries that deviate from the 6 degree rule. The values are fixed
// by convention (southern Norway and Svalbard) and cannot be derived.
var zoneOverrides = [...]struct {
	latMin, latMax float64
	lonMin, lonMax float64
	zone           int
}{
	{56, 64, 3, 12, 32},
	{72, 85, 0, 9, 31},
	{72, 85, 9, 21, 33},
	{72, 85, 21, 33, 35},
	{72, 85, 33, 42, 37},
}

// ZoneNumber returns the UTM zone for a position, honoring the Norway and
// Svalbard exceptions. lat and lon are in degrees, already canonicalized.
func ZoneNumber(lat, lon float64) int {
	for _, o := range zoneOverrides {
		if lat >= o.latMin && lat < o.latMax && lon >= o.lonMin && lon < o.lonMax {
			return o.zone
		}
	}
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone > 60 {
		zone = 60
	}
	return zone
}

// CentralMeridian returns the central meridian of a zone in degrees.
func CentralMeridian(zone int) float64 {
	return float64(zone-31)*6 + 3
}

// LatLonToUTM projects a geographic position with the Krueger series
// (Karney, 2011) truncated after the sixth order, which keeps the error
// below a nanometer anywhere inside the UTM domain.
func (e Ellipsoid) LatLonToUTM(ll LatLon) (UTM, error) {
	lat, err := WrapLat(ll.Lat)
	if err != nil {
		return UTM{}, err
	}
	lon := WrapLon(ll.Lon)
	if lat < MinGridLat || lat > MaxGridLat {
		return UTM{}, OutOfDomainError{Lat: lat}
	}

	zone := ZoneNumber(lat, lon)
	x, y := e.project(lat, lon, zone)

	x += FalseEasting
	if y < 0 {
		y += FalseNorthing
	}
	h := North
	if lat < 0 {
		h = South
	}
	return UTM{Easting: x, Northing: y, Zone: zone, Hemisphere: h}, nil
}

// project applies the forward series relative to the central meridian of
// zone and returns the grid coordinates before false easting/northing.
func (e Ellipsoid) project(lat, lon float64, zone int) (float64, float64) {
	phi := lat * deg2rad
	lam := (lon - CentralMeridian(zone)) * deg2rad
	ecc := math.Sqrt(e.E2())

	cosLam := math.Cos(lam)
	sinLam := math.Sin(lam)

	// Karney, 2011, eqs. 7-9
	tau := math.Tan(phi)
	sigma := math.Sinh(ecc * math.Atanh(ecc*tau/math.Sqrt(1+tau*tau)))
	taup := tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)

	// eq. 10
	xip := math.Atan2(taup, cosLam)
	etap := math.Asinh(sinLam / math.Hypot(taup, cosLam))

	// eq. 11
	alpha := e.alphaCoefficients()
	xi, eta := xip, etap
	for j := 1; j <= 6; j++ {
		k := 2 * float64(j)
		xi += alpha[j] * math.Sin(k*xip) * math.Cosh(k*etap)
		eta += alpha[j] * math.Cos(k*xip) * math.Sinh(k*etap)
	}

	// eq. 13
	a := e.rectifyingRadius()
	return ScaleFactor * a * eta, ScaleFactor * a * xi
}

// UTMToLatLon inverts the projection with the inverse series coefficients
// (Karney, 2011, eq. 36) followed by a bounded Newton iteration on tau
// (eqs. 19-21). Round-tripping through LatLonToUTM reproduces the input to
// within 1e-9 degrees.
func (e Ellipsoid) UTMToLatLon(u UTM) (LatLon, error) {
	if u.Zone < 1 || u.Zone > 60 {
		return LatLon{}, OutOfRangeError{Name: "zone", Value: float64(u.Zone), Min: 1, Max: 60}
	}
	if u.Hemisphere != North && u.Hemisphere != South {
		return LatLon{}, MalformedReferenceError{Ref: string(u.Hemisphere), Reason: "hemisphere must be N or S"}
	}

	x := u.Easting - FalseEasting
	y := u.Northing
	if u.Hemisphere == South {
		y -= FalseNorthing
	}

	// eq. 15
	a := e.rectifyingRadius()
	xi := y / (ScaleFactor * a)
	eta := x / (ScaleFactor * a)

	// eq. 11, inverted with the beta coefficients
	beta := e.betaCoefficients()
	xip, etap := xi, eta
	for j := 1; j <= 6; j++ {
		k := 2 * float64(j)
		xip -= beta[j] * math.Sin(k*xi) * math.Cosh(k*eta)
		etap -= beta[j] * math.Cos(k*xi) * math.Sinh(k*eta)
	}

	sinhEtap := math.Sinh(etap)
	cosXip := math.Cos(xip)

	// eq. 18
	taup := math.Sin(xip) / math.Hypot(sinhEtap, cosXip)
	lam := math.Atan2(sinhEtap, cosXip)

	// eqs. 19-21
	ecc := math.Sqrt(e.E2())
	e2 := e.E2()
	tau := taup
	for i := 0; ; i++ {
		if i >= tmercMaxIter {
			return LatLon{}, ConvergenceError{Op: "transverse mercator inverse", Iterations: tmercMaxIter}
		}
		sigma := math.Sinh(ecc * math.Atanh(ecc*tau/math.Sqrt(1+tau*tau)))
		taui := tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
		dtau := (taup - taui) / math.Sqrt(1+taui*taui) *
			(1 + (1-e2)*tau*tau) / ((1 - e2) * math.Sqrt(1+tau*tau))
		tau += dtau
		if math.Abs(dtau) <= tmercTolerance {
			break
		}
	}

	lat := math.Atan(tau) * rad2deg
	lon := WrapLon(lam*rad2deg + CentralMeridian(u.Zone))
	return LatLon{Lat: lat, Lon: lon}, nil
}

// alphaCoefficients returns the forward series coefficients (Karney, 2011,
// eq. 35). Index 0 is unused.
func (e Ellipsoid) alphaCoefficients() [7]float64 {
	n := e.n()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	return [7]float64{
		0,
		n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 + 7891*n6/37800,
		13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 - 1983433*n6/1935360,
		61*n3/240 - 103*n4/140 + 15061*n5/26880 + 167603*n6/181440,
		49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600,
		34729*n5/80640 - 3418889*n6/1995840,
		212378941 * n6 / 319334400,
	}
}

// betaCoefficients returns the inverse series coefficients (Karney, 2011,
// eq. 36). Index 0 is unused.
func (e Ellipsoid) betaCoefficients() [7]float64 {
	n := e.n()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	return [7]float64{
		0,
		n/2 - 2*n2/3 + 37*n3/96 - n4/360 - 81*n5/512 + 96199*n6/604800,
		n2/48 + n3/15 - 437*n4/1440 + 46*n5/105 - 1118711*n6/3870720,
		17*n3/480 - 37*n4/840 - 209*n5/4480 + 5569*n6/90720,
		4397*n4/161280 - 11*n5/504 - 830251*n6/7257600,
		4583*n5/161280 - 108847*n6/3991680,
		20648693 * n6 / 638668800,
	}
}
