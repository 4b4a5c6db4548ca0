package main

import (
	"flag"
	"os"

	"github.com/midbel/toml"

	"mapsheet"
)

type Settings struct {
	Provider     string  `toml:"provider"`
	APIKey       string  `toml:"api-key"`
	PaperSize    string  `toml:"paper-size"`
	Landscape    bool    `toml:"landscape"`
	MarginTop    float64 `toml:"margin-top"`
	MarginRight  float64 `toml:"margin-right"`
	MarginBottom float64 `toml:"margin-bottom"`
	MarginLeft   float64 `toml:"margin-left"`
	Scale        float64 `toml:"scale"`
	DPI          int     `toml:"dpi"`
	Grid         bool    `toml:"grid"`
	GridSize     float64 `toml:"grid-size"`
	Strict       bool    `toml:"strict"`
	Retries      int     `toml:"retries"`
	Markers      string  `toml:"markers"`
	Title        string  `toml:"title"`
}

func DefaultSettings() Settings {
	return Settings{
		Provider:     mapsheet.DefaultProvider,
		PaperSize:    "a4",
		MarginTop:    10,
		MarginRight:  10,
		MarginBottom: 10,
		MarginLeft:   10,
		Scale:        25000,
		DPI:          mapsheet.DefaultDPI,
		GridSize:     1000,
		Retries:      3,
		Title:        Program,
	}
}

func (s *Settings) Update(f string) error {
	r, err := os.Open(f)
	if err != nil {
		return checkError(err, nil)
	}
	defer r.Close()

	if err := toml.Decode(r, s); err != nil {
		return badUsage("invalid configuration file")
	}
	return nil
}

func (s *Settings) Register(fs *flag.FlagSet) {
	fs.StringVar(&s.Provider, "tile-provider", s.Provider, "tile provider")
	fs.StringVar(&s.APIKey, "api-key", s.APIKey, "api key for the tile provider")
	fs.StringVar(&s.PaperSize, "paper-size", s.PaperSize, "paper size")
	fs.BoolVar(&s.Landscape, "landscape", s.Landscape, "landscape orientation")
	fs.Float64Var(&s.MarginTop, "margin-top", s.MarginTop, "top margin (mm)")
	fs.Float64Var(&s.MarginRight, "margin-right", s.MarginRight, "right margin (mm)")
	fs.Float64Var(&s.MarginBottom, "margin-bottom", s.MarginBottom, "bottom margin (mm)")
	fs.Float64Var(&s.MarginLeft, "margin-left", s.MarginLeft, "left margin (mm)")
	fs.Float64Var(&s.Scale, "scale", s.Scale, "map scale")
	fs.IntVar(&s.DPI, "dpi", s.DPI, "dots per inch")
	fs.BoolVar(&s.Grid, "grid", s.Grid, "add a coordinate grid overlay")
	fs.Float64Var(&s.GridSize, "grid-size", s.GridSize, "grid square size (m)")
	fs.BoolVar(&s.Strict, "strict", s.Strict, "fail if tiles cannot be downloaded")
	fs.IntVar(&s.Retries, "retries", s.Retries, "tile download attempts")
	fs.StringVar(&s.Markers, "markers", s.Markers, "geojson file with markers to draw")
	fs.StringVar(&s.Title, "title", s.Title, "pdf document title")
}

func (s Settings) Options() mapsheet.Options {
	return mapsheet.Options{
		Provider:     s.Provider,
		APIKey:       s.APIKey,
		PaperSize:    s.PaperSize,
		Landscape:    s.Landscape,
		MarginTop:    s.MarginTop,
		MarginRight:  s.MarginRight,
		MarginBottom: s.MarginBottom,
		MarginLeft:   s.MarginLeft,
		Scale:        s.Scale,
		DPI:          s.DPI,
		Grid:         s.Grid,
		GridSize:     s.GridSize,
		Strict:       s.Strict,
	}
}
