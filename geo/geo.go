// Package geo converts positions between geographic (latitude/longitude),
// UTM, MGRS and ECEF representations of a point on or near a reference
// ellipsoid. All types are immutable values, every conversion is a pure
// function, and everything is safe for concurrent use. The package-level
// functions are bound to WGS84; the same operations exist as methods on
// Ellipsoid for callers working on another reference ellipsoid.
package geo

// LatLon is a geographic position. Lat is in degrees within [-90, 90],
// Lon in degrees within (-180, 180], Height in meters above the ellipsoid.
type LatLon struct {
	Lat    float64
	Lon    float64
	Height float64
}

// NewLatLon validates the latitude and canonicalizes the longitude.
func NewLatLon(lat, lon float64) (LatLon, error) {
	la, err := WrapLat(lat)
	if err != nil {
		return LatLon{}, err
	}
	return LatLon{Lat: la, Lon: WrapLon(lon)}, nil
}

type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
)

func (h Hemisphere) String() string {
	return string(h)
}

func ParseHemisphere(s string) (Hemisphere, error) {
	switch s {
	case "N", "n":
		return North, nil
	case "S", "s":
		return South, nil
	}
	return 0, MalformedReferenceError{Ref: s, Reason: "hemisphere must be N or S"}
}

// UTM is a Universal Transverse Mercator position. Easting and Northing are
// in meters and include the false easting and, on the southern hemisphere,
// the false northing. Zone runs 1 to 60.
type UTM struct {
	Easting    float64
	Northing   float64
	Zone       int
	Hemisphere Hemisphere
}

// MGRS is a Military Grid Reference System position. Square holds the two
// 100 km square letters; Easting and Northing hold the digit strings, whose
// equal length (1 to 5) encodes the precision from 10 km down to 1 m.
type MGRS struct {
	Zone     int
	Band     byte
	Square   string
	Easting  string
	Northing string
}

// Precision returns the cell size in meters encoded by the digit count.
func (m MGRS) Precision() float64 {
	return cellSize(len(m.Easting))
}

// ECEF is an Earth-Centered Earth-Fixed cartesian position in meters. The
// z axis runs along the rotation axis, the x axis through the intersection
// of the prime meridian and the equator.
type ECEF struct {
	X float64
	Y float64
	Z float64
}

func LatLonToUTM(ll LatLon) (UTM, error) {
	return WGS84.LatLonToUTM(ll)
}

func UTMToLatLon(u UTM) (LatLon, error) {
	return WGS84.UTMToLatLon(u)
}

func LatLonToMGRS(ll LatLon, precision int) (MGRS, error) {
	return WGS84.LatLonToMGRS(ll, precision)
}

// MGRSToLatLon resolves a grid reference to the southwest corner of its
// precision cell on WGS84.
func MGRSToLatLon(m MGRS) (LatLon, error) {
	return WGS84.MGRSToLatLon(m)
}

func LatLonToECEF(ll LatLon) (ECEF, error) {
	return WGS84.LatLonToECEF(ll)
}

func ECEFToLatLon(c ECEF) (LatLon, error) {
	return WGS84.ECEFToLatLon(c)
}
