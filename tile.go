// Package mapsheet renders ready-to-print paper maps from slippy map tiles.
// It builds on the geo package for coordinate conversions: a sheet can be
// centered on a geographic, UTM, MGRS or ECEF position, composited from any
// of the bundled tile providers and written out as a PDF with an optional
// coordinate grid overlay.
package mapsheet

import (
	"image"
	"math"

	"mapsheet/geo"
)

// TileSize is the width and height of a slippy map tile in pixels.
const TileSize = 256

// Tile is one slippy map tile and its placement inside the composited
// sheet image. Image stays nil until the tile has been fetched.
type Tile struct {
	X, Y   int
	Zoom   int
	Bounds image.Rectangle
	Image  image.Image
}

// Done reports whether the tile has been fetched.
func (t *Tile) Done() bool {
	return t.Image != nil
}

// LonToX converts a longitude to a fractional tile column at a zoom level.
func LonToX(lon float64, zoom int) float64 {
	return (geo.WrapLon(lon) + 180) / 360 * math.Exp2(float64(zoom))
}

// XToLon converts a fractional tile column back to a longitude.
func XToLon(x float64, zoom int) float64 {
	return x/math.Exp2(float64(zoom))*360 - 180
}

// LatToY converts a latitude to a fractional tile row at a zoom level.
func LatToY(lat float64, zoom int) (float64, error) {
	lat, err := geo.WrapLat(lat)
	if err != nil {
		return 0, err
	}
	phi := lat * math.Pi / 180
	return (1 - math.Log(math.Tan(phi)+1/math.Cos(phi))/math.Pi) / 2 * math.Exp2(float64(zoom)), nil
}

// YToLat converts a fractional tile row back to a latitude.
func YToLat(y float64, zoom int) float64 {
	return math.Atan(math.Sinh(math.Pi*(1-2*y/math.Exp2(float64(zoom))))) / math.Pi * 180
}
