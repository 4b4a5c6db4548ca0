package mapsheet

import "math"

// Circumference is the equatorial circumference of the earth in meters,
// as used by the web mercator tiling scheme.
const Circumference = 40075017.0

// DefaultDPI is the print resolution assumed when none is given.
const DefaultDPI = 300

// MMToPx converts millimeters to pixels at the given print resolution.
func MMToPx(mm float64, dpi int) int {
	return int(math.Round(mm * float64(dpi) / 25.4))
}

// PxToMM converts pixels to millimeters at the given print resolution.
func PxToMM(px int, dpi int) float64 {
	return float64(px) * 25.4 / float64(dpi)
}

// MMToPt converts millimeters to typographic points.
func MMToPt(mm float64) float64 {
	return mm * 72 / 25.4
}

// PtToMM converts typographic points to millimeters.
func PtToMM(pt float64) float64 {
	return pt * 25.4 / 72
}

// ScaleToZoom computes the fractional slippy map zoom level at which one
// printed millimeter covers scale millimeters of ground at the given
// latitude.
func ScaleToZoom(scale, lat float64, dpi int) float64 {
	phi := lat * math.Pi / 180
	scalePx := scale * 25.4 / (1000 * float64(dpi))
	return math.Log2(Circumference*math.Cos(phi)/scalePx) - 8
}

// ZoomToScale is the inverse of ScaleToZoom.
func ZoomToScale(zoom, lat float64, dpi int) float64 {
	phi := lat * math.Pi / 180
	scalePx := Circumference * math.Cos(phi) / math.Exp2(zoom+8)
	return scalePx * float64(dpi) * 1000 / 25.4
}
