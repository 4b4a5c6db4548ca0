package mapsheet

import (
	"math"
	"strconv"

	"mapsheet/geo"
)

// gridLine is one grid line position, in millimeters from the image edge,
// and its kilometer label.
type gridLine struct {
	pos   float64
	label string
}

// gridLines computes the UTM grid overlay: the vertical lines from the left
// image edge and the horizontal lines from the top, each labeled with the
// kilometer value of the easting or northing it marks.
func (s *Sheet) gridLines() (xs, ys []gridLine, err error) {
	u, err := geo.LatLonToUTM(s.Center)
	if err != nil {
		return nil, nil, err
	}

	// spacing of the grid on paper, in mm
	step := s.Opt.GridSize * 1000 / s.Opt.Scale

	// offset of the center from the nearest whole kilometer, in mm
	eRound := math.Round(u.Easting/1000) * 1000
	nRound := math.Round(u.Northing/1000) * 1000
	dx := (u.Easting - eRound) / s.Opt.Scale * 1000
	dy := (u.Northing - nRound) / s.Opt.Scale * 1000

	xCenter := s.ImageWidth/2 - dx
	yCenter := s.ImageHeight/2 - dy

	xStart := floorMod(xCenter, step)
	yStart := floorMod(yCenter, step)

	xLabel := int(eRound/1000) - int(math.Floor(xCenter/step))
	yLabel := int(nRound/1000) + int(math.Floor(yCenter/step))

	for x := xStart; x < s.ImageWidth; x += step {
		xs = append(xs, gridLine{pos: x, label: strconv.Itoa(xLabel)})
		xLabel++
	}
	for y := yStart; y < s.ImageHeight; y += step {
		ys = append(ys, gridLine{pos: y, label: strconv.Itoa(yLabel)})
		yLabel--
	}
	return xs, ys, nil
}

func floorMod(v, m float64) float64 {
	return v - math.Floor(v/m)*m
}
