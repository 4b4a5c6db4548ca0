package mapsheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"

	"mapsheet/geo"
)

// PaperSizes maps a paper size name to its portrait dimensions in
// millimeters.
var PaperSizes = map[string][2]float64{
	"a0":     {841, 1189},
	"a1":     {594, 841},
	"a2":     {420, 594},
	"a3":     {297, 420},
	"a4":     {210, 297},
	"a5":     {148, 210},
	"a6":     {105, 148},
	"a7":     {74, 105},
	"letter": {216, 279},
	"legal":  {216, 356},
}

// Options configure a sheet. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Provider     string
	APIKey       string
	PaperSize    string
	Landscape    bool
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	Scale        float64
	DPI          int
	Grid         bool
	GridSize     float64
	Background   color.Color
	Strict       bool
}

func DefaultOptions() Options {
	return Options{
		Provider:     DefaultProvider,
		PaperSize:    "a4",
		MarginTop:    10,
		MarginRight:  10,
		MarginBottom: 10,
		MarginLeft:   10,
		Scale:        25000,
		DPI:          DefaultDPI,
		GridSize:     1000,
		Background:   color.White,
	}
}

// Sheet is a paper map centered on a geographic position at a fixed print
// scale. NewSheet computes the layout; Render fetches the tiles and
// composites the map image.
type Sheet struct {
	Center   geo.LatLon
	Opt      Options
	Provider Provider

	// paper and image layout, all in millimeters
	Width, Height           float64
	ImageWidth, ImageHeight float64

	zoom    float64
	zoomInt int
	resize  float64

	imageWidthPx, imageHeightPx   int
	scaledWidthPx, scaledHeightPx int

	tiles []*Tile
	Image image.Image
}

// NewSheet lays out a sheet centered on lat, lon.
func NewSheet(lat, lon float64, opt Options) (*Sheet, error) {
	center, err := geo.NewLatLon(lat, lon)
	if err != nil {
		return nil, err
	}
	provider, ok := Providers[opt.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown tile provider %q, choose one of %s", opt.Provider, strings.Join(ProviderNames(), ", "))
	}
	if provider.RequiresKey() && opt.APIKey == "" {
		return nil, fmt.Errorf("tile provider %q requires an API key", opt.Provider)
	}
	size, ok := PaperSizes[opt.PaperSize]
	if !ok {
		return nil, fmt.Errorf("unknown paper size %q", opt.PaperSize)
	}
	if opt.Background == nil {
		opt.Background = color.White
	}

	s := &Sheet{
		Center:   center,
		Opt:      opt,
		Provider: provider,
		Width:    size[0],
		Height:   size[1],
	}
	if opt.Landscape {
		s.Width, s.Height = s.Height, s.Width
	}

	// the sheet is rendered from tiles at the next lower integer zoom and
	// downscaled to the exact print scale afterwards
	s.zoom = ScaleToZoom(opt.Scale, center.Lat, opt.DPI)
	s.zoomInt = int(math.Floor(s.zoom))
	s.resize = math.Exp2(float64(s.zoomInt)) / math.Exp2(s.zoom)
	if s.zoomInt < provider.ZoomMin || s.zoomInt > provider.ZoomMax {
		return nil, fmt.Errorf("scale 1:%.0f out of bounds for tile provider %q", opt.Scale, opt.Provider)
	}

	s.ImageWidth = s.Width - opt.MarginLeft - opt.MarginRight
	s.ImageHeight = s.Height - opt.MarginTop - opt.MarginBottom
	if s.ImageWidth <= 0 || s.ImageHeight <= 0 {
		return nil, fmt.Errorf("margins leave no room on a %s sheet", opt.PaperSize)
	}
	s.imageWidthPx = MMToPx(s.ImageWidth, opt.DPI)
	s.imageHeightPx = MMToPx(s.ImageHeight, opt.DPI)
	s.scaledWidthPx = int(math.Round(float64(s.imageWidthPx) * s.resize))
	s.scaledHeightPx = int(math.Round(float64(s.imageHeightPx) * s.resize))

	s.layoutTiles()
	return s, nil
}

// NewSheetFromUTM lays out a sheet centered on a UTM position.
func NewSheetFromUTM(u geo.UTM, opt Options) (*Sheet, error) {
	ll, err := geo.UTMToLatLon(u)
	if err != nil {
		return nil, err
	}
	return NewSheet(ll.Lat, ll.Lon, opt)
}

// NewSheetFromMGRS lays out a sheet centered on the southwest corner of an
// MGRS cell.
func NewSheetFromMGRS(m geo.MGRS, opt Options) (*Sheet, error) {
	ll, err := geo.MGRSToLatLon(m)
	if err != nil {
		return nil, err
	}
	return NewSheet(ll.Lat, ll.Lon, opt)
}

// NewSheetFromECEF lays out a sheet centered below an ECEF position.
func NewSheetFromECEF(c geo.ECEF, opt Options) (*Sheet, error) {
	ll, err := geo.ECEFToLatLon(c)
	if err != nil {
		return nil, err
	}
	return NewSheet(ll.Lat, ll.Lon, opt)
}

func (s *Sheet) layoutTiles() {
	xCenter := LonToX(s.Center.Lon, s.zoomInt)
	yCenter, _ := LatToY(s.Center.Lat, s.zoomInt)

	halfW := 0.5 * float64(s.scaledWidthPx) / TileSize
	halfH := 0.5 * float64(s.scaledHeightPx) / TileSize
	xMin := int(math.Floor(xCenter - halfW))
	yMin := int(math.Floor(yCenter - halfH))
	xMax := int(math.Ceil(xCenter + halfW))
	yMax := int(math.Ceil(yCenter + halfH))

	maxTile := 1 << s.zoomInt
	for x := xMin; x < xMax; x++ {
		for y := yMin; y < yMax; y++ {
			// the sheet may span the date line
			xt := ((x % maxTile) + maxTile) % maxTile
			yt := ((y % maxTile) + maxTile) % maxTile

			bounds := image.Rect(
				int(math.Round((float64(x)-xCenter)*TileSize+float64(s.scaledWidthPx)/2)),
				int(math.Round((float64(y)-yCenter)*TileSize+float64(s.scaledHeightPx)/2)),
				int(math.Round((float64(x)+1-xCenter)*TileSize+float64(s.scaledWidthPx)/2)),
				int(math.Round((float64(y)+1-yCenter)*TileSize+float64(s.scaledHeightPx)/2)),
			)
			s.tiles = append(s.tiles, &Tile{X: xt, Y: yt, Zoom: s.zoomInt, Bounds: bounds})
		}
	}
}

// Tiles returns the tiles the sheet is composited from.
func (s *Sheet) Tiles() []*Tile {
	return s.tiles
}

// Render fetches the tiles and composites the map image at the print
// resolution. With Opt.Strict set, missing tiles fail the render; otherwise
// they are left as background.
func (s *Sheet) Render(f *Fetcher) error {
	err := f.Fetch(s.Provider, s.tiles, s.Opt.APIKey)
	if err != nil && s.Opt.Strict {
		return err
	}

	scaled := image.NewRGBA(image.Rect(0, 0, s.scaledWidthPx, s.scaledHeightPx))
	draw.Draw(scaled, scaled.Bounds(), image.NewUniform(s.Opt.Background), image.Point{}, draw.Src)
	for _, t := range s.tiles {
		if !t.Done() {
			continue
		}
		draw.Draw(scaled, t.Bounds, t.Image, t.Image.Bounds().Min, draw.Over)
	}

	final := image.NewRGBA(image.Rect(0, 0, s.imageWidthPx, s.imageHeightPx))
	xdraw.CatmullRom.Scale(final, final.Bounds(), scaled, scaled.Bounds(), xdraw.Src, nil)
	s.Image = final
	return nil
}
