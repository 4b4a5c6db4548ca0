package geo

import (
	"math"
	"testing"
)

func TestWrapLon(t *testing.T) {
	data := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{-360, 0},
		{540, 180},
		{-540, 180},
		{723.5, 3.5},
		{100.25, 100.25},
	}
	for _, d := range data {
		if got := WrapLon(d.in); got != d.want {
			t.Errorf("WrapLon(%g) = %g, want %g", d.in, got, d.want)
		}
	}
}

func TestWrapLonPeriodic(t *testing.T) {
	for _, lon := range []float64{-179.5, -60, 0, 45.75, 180} {
		want := WrapLon(lon)
		for k := -3; k <= 3; k++ {
			got := WrapLon(lon + float64(k)*360)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("WrapLon(%g + %d*360) = %g, want %g", lon, k, got, want)
			}
		}
		if got := WrapLon(want); got != want {
			t.Errorf("WrapLon not idempotent at %g: got %g", want, got)
		}
	}
}

func TestWrapLat(t *testing.T) {
	for _, lat := range []float64{-90, -45.5, 0, 89.999, 90} {
		got, err := WrapLat(lat)
		if err != nil {
			t.Fatalf("WrapLat(%g): unexpected error %v", lat, err)
		}
		if got != lat {
			t.Errorf("WrapLat(%g) = %g", lat, got)
		}
	}
	for _, lat := range []float64{90.0001, -91, 270, math.NaN()} {
		if _, err := WrapLat(lat); err == nil {
			t.Errorf("WrapLat(%g): expected error", lat)
		}
	}
}

func TestDMSRoundTrip(t *testing.T) {
	for _, dd := range []float64{0, 43.5, -79.75, 13.7588900, 89.999999, -45.123456} {
		d, m, s := DDToDMS(dd)
		if got := DMSToDD(d, m, s); math.Abs(got-dd) > 1e-9 {
			t.Errorf("DMS round trip of %g: got %g", dd, got)
		}
	}
}

func TestDDToDMS(t *testing.T) {
	d, m, s := DDToDMS(43.5)
	if d != 43 || m != 30 || s != 0 {
		t.Errorf("DDToDMS(43.5) = %d %d %g", d, m, s)
	}
	d, m, s = DDToDMS(-79.75)
	if d != -79 || m != 45 || s != 0 {
		t.Errorf("DDToDMS(-79.75) = %d %d %g", d, m, s)
	}
}
