package geo

import "math"

const (
	rad2deg = 180 / math.Pi
	deg2rad = math.Pi / 180
)

// WrapLat checks that lat is a latitude in [-90, 90]. Latitude has no
// periodic topology, so a value outside the range is a caller error and is
// reported instead of being folded back in.
func WrapLat(lat float64) (float64, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, OutOfRangeError{Name: "latitude", Value: lat, Min: -90, Max: 90}
	}
	return lat, nil
}

// WrapLon reduces lon modulo 360 into (-180, 180]. It succeeds for any
// finite longitude and is idempotent.
func WrapLon(lon float64) float64 {
	if lon > -180 && lon <= 180 {
		return lon
	}
	lon -= math.Floor((lon+180)/360) * 360
	if lon == -180 {
		lon = 180
	}
	return lon
}

// DDToDMS splits decimal degrees into degrees, minutes and seconds. The
// sign is carried by the degrees.
func DDToDMS(dd float64) (int, int, float64) {
	neg := dd < 0
	dd = math.Abs(dd)
	d := math.Floor(dd)
	m := math.Floor((dd - d) * 60)
	s := (dd - d - m/60) * 3600
	if neg {
		d = -d
	}
	return int(d), int(m), s
}

// DMSToDD recombines degrees, minutes and seconds into decimal degrees.
func DMSToDD(d, m int, s float64) float64 {
	sign := 1.0
	if d < 0 {
		sign = -1
		d = -d
	}
	return sign * (float64(d) + float64(m)/60 + s/3600)
}
