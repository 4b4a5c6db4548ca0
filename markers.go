package mapsheet

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Marker is a named point of interest to draw on a sheet.
type Marker struct {
	Name string
	At   orb.Point
}

// LoadMarkers reads markers from a GeoJSON file. Point features become
// markers named after their "name" property; other geometries are skipped.
func LoadMarkers(path string) ([]Marker, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(buf)
	if err != nil {
		return nil, fmt.Errorf("load markers %s: %w", path, err)
	}

	var markers []Marker
	for _, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Name: f.Properties.MustString("name", ""),
			At:   pt,
		})
	}
	return markers, nil
}

// MarkerXY places a marker on the sheet, in millimeters from the top left
// corner of the map image. ok is false when the marker falls outside it.
func (s *Sheet) MarkerXY(m Marker) (x, y float64, ok bool) {
	xCenter := LonToX(s.Center.Lon, s.zoomInt)
	yCenter, _ := LatToY(s.Center.Lat, s.zoomInt)

	mx := LonToX(m.At.Lon(), s.zoomInt)
	my, err := LatToY(m.At.Lat(), s.zoomInt)
	if err != nil {
		return 0, 0, false
	}

	// tile offset to scaled pixels, then down to print pixels and mm
	px := (mx-xCenter)*TileSize + float64(s.scaledWidthPx)/2
	py := (my-yCenter)*TileSize + float64(s.scaledHeightPx)/2
	x = PxToMM(int(px/s.resize), s.Opt.DPI)
	y = PxToMM(int(py/s.resize), s.Opt.DPI)

	ok = x >= 0 && x <= s.ImageWidth && y >= 0 && y <= s.ImageHeight
	return x, y, ok
}

// AddMarkers draws the markers that fall inside the map image as small
// labeled circles.
func (d *Document) AddMarkers(markers []Marker) {
	s := d.sheet
	d.pdf.SetDrawColor(192, 57, 43)
	d.pdf.SetLineWidth(0.4)
	d.pdf.SetFontSize(8)

	for _, m := range markers {
		x, y, ok := s.MarkerXY(m)
		if !ok {
			continue
		}
		x += s.Opt.MarginLeft
		y += s.Opt.MarginTop
		d.pdf.Circle(x, y, 1.2, "D")
		if m.Name != "" {
			d.pdf.SetXY(x+1.6, y-PtToMM(8)/2)
			d.pdf.CellFormat(d.pdf.GetStringWidth(m.Name), PtToMM(8), m.Name, "", 0, "LM", true, 0, "")
		}
	}

	d.pdf.SetFontSize(12)
	d.pdf.SetDrawColor(0, 0, 0)
}
