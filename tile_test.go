package mapsheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wroge/wgs84"
)

func TestTileCoordinateRoundTrip(t *testing.T) {
	lats := []float64{-85, -45.5, 0, 13.75889, 60, 85}
	lons := []float64{-179.9, -100.25, 0, 45.5, 100.49722, 179.9}
	for _, zoom := range []int{0, 5, 16, 19} {
		for _, lon := range lons {
			x := LonToX(lon, zoom)
			if got := XToLon(x, zoom); math.Abs(got-lon) > 1e-9 {
				t.Errorf("lon %g zoom %d: round trip gave %g", lon, zoom, got)
			}
		}
		for _, lat := range lats {
			y, err := LatToY(lat, zoom)
			require.NoError(t, err)
			if got := YToLat(y, zoom); math.Abs(got-lat) > 1e-9 {
				t.Errorf("lat %g zoom %d: round trip gave %g", lat, zoom, got)
			}
		}
	}
}

func TestLatToYRange(t *testing.T) {
	_, err := LatToY(91, 10)
	assert.Error(t, err)

	// y grows southward
	yN, err := LatToY(60, 10)
	require.NoError(t, err)
	yS, err := LatToY(-60, 10)
	require.NoError(t, err)
	assert.Less(t, yN, yS)
}

// The tile scheme is a scaled web mercator projection; cross-check the tile
// coordinates against an independent implementation.
func TestTileCoordinatesMatchWebMercator(t *testing.T) {
	const r = 6378137.0
	toMerc := wgs84.LonLat().To(wgs84.WebMercator())

	lls := []struct{ lat, lon float64 }{
		{0, 0},
		{13.75889, 100.49722},
		{45.1, -79.5},
		{-33.9, 18.4},
		{60, 179.9},
	}
	for _, ll := range lls {
		east, north, _ := toMerc(ll.lon, ll.lat, 0)

		for _, zoom := range []int{0, 8, 16} {
			n := math.Exp2(float64(zoom))
			x := LonToX(ll.lon, zoom)
			y, err := LatToY(ll.lat, zoom)
			require.NoError(t, err)

			assert.InDelta(t, east, x/n*2*math.Pi*r-math.Pi*r, 1e-3, "lat=%g lon=%g zoom=%d", ll.lat, ll.lon, zoom)
			assert.InDelta(t, north, math.Pi*r-y/n*2*math.Pi*r, 1e-3, "lat=%g lon=%g zoom=%d", ll.lat, ll.lon, zoom)
		}
	}
}
