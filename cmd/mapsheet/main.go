package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"mapsheet"
	"mapsheet/geo"
)

const (
	Program = "mapsheet"
	Version = mapsheet.Version
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(fmt.Sprintf("[%s-%s] ", Program, Version))
	log.SetFlags(0)
}

func main() {
	args := os.Args[1:]
	cmd := "latlon"
	if len(args) > 0 {
		switch args[0] {
		case "latlon", "utm", "mgrs", "ecef":
			cmd, args = args[0], args[1:]
		case "version":
			fmt.Fprintf(os.Stderr, "%s-%s\n", Program, Version)
			return
		case "help", "-h", "-help", "--help":
			fmt.Fprint(os.Stderr, helpText)
			return
		}
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
		os.Exit(0)
	}

	s := DefaultSettings()
	s.Register(fs)
	config := fs.String("config", "", "load settings from a configuration file")
	fs.Parse(args)

	if *config != "" {
		if err := s.Update(*config); err != nil {
			Exit(err)
		}
	}

	center, file, err := parseCenter(cmd, fs.Args())
	if err != nil {
		Exit(checkError(err, nil))
	}
	Exit(run(center, file, &s))
}

// parseCenter resolves the positional arguments of cmd to a geographic
// center and the output file.
func parseCenter(cmd string, args []string) (geo.LatLon, string, error) {
	var zero geo.LatLon
	switch cmd {
	case "latlon":
		if len(args) != 3 {
			return zero, "", badUsage("latlon expects LATITUDE LONGITUDE FILE")
		}
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return zero, "", badUsage("invalid latitude value")
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return zero, "", badUsage("invalid longitude value")
		}
		ll, err := geo.NewLatLon(lat, lon)
		return ll, args[2], err
	case "utm":
		if len(args) != 5 {
			return zero, "", badUsage("utm expects EASTING NORTHING ZONE HEMISPHERE FILE")
		}
		east, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return zero, "", badUsage("invalid easting value")
		}
		north, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return zero, "", badUsage("invalid northing value")
		}
		zone, err := strconv.Atoi(args[2])
		if err != nil {
			return zero, "", badUsage("invalid zone number")
		}
		h, err := geo.ParseHemisphere(args[3])
		if err != nil {
			return zero, "", err
		}
		ll, err := geo.UTMToLatLon(geo.UTM{Easting: east, Northing: north, Zone: zone, Hemisphere: h})
		return ll, args[4], err
	case "mgrs":
		if len(args) != 2 {
			return zero, "", badUsage("mgrs expects REFERENCE FILE")
		}
		m, err := geo.ParseMGRS(args[0])
		if err != nil {
			return zero, "", err
		}
		ll, err := geo.MGRSToLatLon(m)
		return ll, args[1], err
	case "ecef":
		if len(args) != 4 {
			return zero, "", badUsage("ecef expects X Y Z FILE")
		}
		var c geo.ECEF
		var err error
		if c.X, err = strconv.ParseFloat(args[0], 64); err != nil {
			return zero, "", badUsage("invalid x value")
		}
		if c.Y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return zero, "", badUsage("invalid y value")
		}
		if c.Z, err = strconv.ParseFloat(args[2], 64); err != nil {
			return zero, "", badUsage("invalid z value")
		}
		ll, err := geo.ECEFToLatLon(c)
		return ll, args[3], err
	}
	return zero, "", badUsage("unknown command " + cmd)
}

func run(center geo.LatLon, file string, s *Settings) error {
	sheet, err := mapsheet.NewSheet(center.Lat, center.Lon, s.Options())
	if err != nil {
		return checkError(err, nil)
	}

	log.Printf("settings: center %s", center)
	log.Printf("settings: scale 1:%.0f on %s paper", s.Scale, s.PaperSize)
	log.Printf("settings: tile provider %s", s.Provider)
	log.Printf("%d tiles to fetch", len(sheet.Tiles()))

	var markers []mapsheet.Marker
	if s.Markers != "" {
		if markers, err = mapsheet.LoadMarkers(s.Markers); err != nil {
			return checkError(err, nil)
		}
		log.Printf("%d markers loaded from %s", len(markers), s.Markers)
	}

	f := mapsheet.NewFetcher()
	f.Retries = s.Retries
	if err := sheet.Render(f); err != nil {
		return fetchError(err)
	}

	doc, err := mapsheet.NewDocument(sheet)
	if err != nil {
		return checkError(err, nil)
	}
	doc.AddMarkers(markers)
	doc.SetMeta(s.Title, Program)
	if err := doc.WriteFile(file); err != nil {
		return checkError(err, nil)
	}
	if i, err := os.Stat(file); err == nil {
		log.Printf("file: %s (%s, %dKB)", file, i.ModTime().Format(time.RFC1123), i.Size()>>10)
	}
	return nil
}
