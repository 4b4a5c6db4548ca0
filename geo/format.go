package geo

import (
	"fmt"
	"math"
)

func (ll LatLon) String() string {
	return fmt.Sprintf("%.6f, %.6f", ll.Lat, ll.Lon)
}

// DMS renders the position in degrees, minutes and seconds with compass
// directions, eg "43° 30' 00.0000'' N 79° 45' 00.0000'' W".
func (ll LatLon) DMS() string {
	return formatDMS(ll.Lat, "SN") + " " + formatDMS(ll.Lon, "WE")
}

func formatDMS(v float64, dir string) string {
	switch {
	case dir == "SN" && v < 0:
		dir = "S"
	case dir == "SN":
		dir = "N"
	case dir == "WE" && v < 0:
		dir = "W"
	default:
		dir = "E"
	}
	deg, min, sec := DDToDMS(math.Abs(v))
	return fmt.Sprintf("%d° %02d' %07.4f'' %s", deg, min, sec, dir)
}

func (u UTM) String() string {
	return fmt.Sprintf("%d%s %.0f %.0f", u.Zone, u.Hemisphere, u.Easting, u.Northing)
}

func (m MGRS) String() string {
	return fmt.Sprintf("%d%c%s%s%s", m.Zone, m.Band, m.Square, m.Easting, m.Northing)
}

func (c ECEF) String() string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.X, c.Y, c.Z)
}
