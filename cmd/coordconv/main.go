package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"mapsheet/geo"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[coordconv] ")
	log.SetFlags(0)
}

func main() {
	from := flag.String("f", "latlon", "input coordinate system (latlon, utm, mgrs, ecef)")
	to := flag.String("t", "utm", "output coordinate system (latlon, dms, utm, mgrs, ecef)")
	prec := flag.Int("p", 5, "mgrs digits per axis / latlon decimals")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		rs := make([]io.Reader, 0, flag.NArg())
		for _, p := range flag.Args() {
			f, err := os.Open(p)
			if err != nil {
				log.Fatalln(err)
			}
			defer f.Close()
			rs = append(rs, f)
		}
		in = io.MultiReader(rs...)
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	w := csv.NewWriter(os.Stdout)

	for i := 1; ; i++ {
		rs, err := r.Read()
		if rs == nil && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF {
			log.Fatalln(err)
		}
		ll, err := parse(*from, rs)
		if err != nil {
			log.Fatalf("row %d: %s", i, err)
		}
		out, err := format(*to, ll, *prec)
		if err != nil {
			log.Fatalf("row %d: %s", i, err)
		}
		if err := w.Write(out); err != nil {
			log.Fatalln(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalln(err)
	}
}

func parse(from string, rs []string) (geo.LatLon, error) {
	var zero geo.LatLon
	switch from {
	case "latlon":
		if len(rs) < 2 {
			return zero, fmt.Errorf("latlon row needs lat,lon")
		}
		lat, err := strconv.ParseFloat(rs[0], 64)
		if err != nil {
			return zero, err
		}
		lon, err := strconv.ParseFloat(rs[1], 64)
		if err != nil {
			return zero, err
		}
		ll, err := geo.NewLatLon(lat, lon)
		if err != nil {
			return zero, err
		}
		if len(rs) > 2 {
			if ll.Height, err = strconv.ParseFloat(rs[2], 64); err != nil {
				return zero, err
			}
		}
		return ll, nil
	case "utm":
		if len(rs) < 4 {
			return zero, fmt.Errorf("utm row needs easting,northing,zone,hemisphere")
		}
		east, err := strconv.ParseFloat(rs[0], 64)
		if err != nil {
			return zero, err
		}
		north, err := strconv.ParseFloat(rs[1], 64)
		if err != nil {
			return zero, err
		}
		zone, err := strconv.Atoi(rs[2])
		if err != nil {
			return zero, err
		}
		h, err := geo.ParseHemisphere(rs[3])
		if err != nil {
			return zero, err
		}
		return geo.UTMToLatLon(geo.UTM{Easting: east, Northing: north, Zone: zone, Hemisphere: h})
	case "mgrs":
		if len(rs) < 1 {
			return zero, fmt.Errorf("mgrs row needs a reference")
		}
		m, err := geo.ParseMGRS(rs[0])
		if err != nil {
			return zero, err
		}
		return geo.MGRSToLatLon(m)
	case "ecef":
		if len(rs) < 3 {
			return zero, fmt.Errorf("ecef row needs x,y,z")
		}
		var c geo.ECEF
		var err error
		if c.X, err = strconv.ParseFloat(rs[0], 64); err != nil {
			return zero, err
		}
		if c.Y, err = strconv.ParseFloat(rs[1], 64); err != nil {
			return zero, err
		}
		if c.Z, err = strconv.ParseFloat(rs[2], 64); err != nil {
			return zero, err
		}
		return geo.ECEFToLatLon(c)
	default:
		return zero, fmt.Errorf("unknown input system %q", from)
	}
}

func format(to string, ll geo.LatLon, prec int) ([]string, error) {
	switch to {
	case "latlon":
		return []string{
			strconv.FormatFloat(ll.Lat, 'f', prec, 64),
			strconv.FormatFloat(ll.Lon, 'f', prec, 64),
		}, nil
	case "dms":
		return []string{dms(ll.Lat, "SN"), dms(ll.Lon, "WE")}, nil
	case "utm":
		u, err := geo.LatLonToUTM(ll)
		if err != nil {
			return nil, err
		}
		return []string{
			strconv.FormatFloat(u.Easting, 'f', 3, 64),
			strconv.FormatFloat(u.Northing, 'f', 3, 64),
			strconv.Itoa(u.Zone),
			u.Hemisphere.String(),
		}, nil
	case "mgrs":
		m, err := geo.LatLonToMGRS(ll, prec)
		if err != nil {
			return nil, err
		}
		return []string{m.String()}, nil
	case "ecef":
		c, err := geo.LatLonToECEF(ll)
		if err != nil {
			return nil, err
		}
		return []string{
			strconv.FormatFloat(c.X, 'f', 3, 64),
			strconv.FormatFloat(c.Y, 'f', 3, 64),
			strconv.FormatFloat(c.Z, 'f', 3, 64),
		}, nil
	default:
		return nil, fmt.Errorf("unknown output system %q", to)
	}
}

func dms(v float64, dir string) string {
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
	if v < 0 {
		v = -v
	}
	d, m, s := geo.DDToDMS(v)
	return fmt.Sprintf("%3d° %02d' %7.4f'' %s", d, m, s, dir)
}
