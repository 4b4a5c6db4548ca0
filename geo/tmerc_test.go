package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneNumber(t *testing.T) {
	data := []struct {
		lat, lon float64
		zone     int
	}{
		{0, 0, 31},
		{0, -180, 1},
		{0, 180, 60},
		{45, -79.5, 17},
		{-33.9, 18.4, 34},
		{51, 5.9, 31},
		// southern Norway
		{58, 4, 32},
		{58, 6, 32},
		{63.9, 11.9, 32},
		{55.9, 4, 31},
		{64, 4, 31},
		// Svalbard
		{78, 7, 31},
		{78, 20, 33},
		{78, 25, 35},
		{78, 35, 37},
		{71.9, 7, 32},
	}
	for _, d := range data {
		if got := ZoneNumber(d.lat, d.lon); got != d.zone {
			t.Errorf("ZoneNumber(%g, %g) = %d, want %d", d.lat, d.lon, got, d.zone)
		}
	}
}

func TestCentralMeridian(t *testing.T) {
	assert.Equal(t, 3.0, CentralMeridian(31))
	assert.Equal(t, -177.0, CentralMeridian(1))
	assert.Equal(t, 177.0, CentralMeridian(60))
}

func TestLatLonToUTMOrigin(t *testing.T) {
	u, err := LatLonToUTM(LatLon{Lat: 0, Lon: 0})
	require.NoError(t, err)
	assert.Equal(t, 31, u.Zone)
	assert.Equal(t, North, u.Hemisphere)
	assert.InDelta(t, 166021.443, u.Easting, 0.005)
	assert.InDelta(t, 0, u.Northing, 1e-6)
}

func TestLatLonToUTMSouth(t *testing.T) {
	u, err := LatLonToUTM(LatLon{Lat: -33.9, Lon: 18.4})
	require.NoError(t, err)
	assert.Equal(t, South, u.Hemisphere)
	assert.Greater(t, u.Northing, 6e6)
	assert.Less(t, u.Northing, FalseNorthing)
}

func TestUTMRoundTrip(t *testing.T) {
	lats := []float64{-79.5, -60, -33.9, -0.5, 0, 14.33, 45.1, 58, 72, 83.9}
	lons := []float64{-179.9, -120, -45.75, 0, 6, 33.3, 90, 150, 179.99}
	for _, lat := range lats {
		for _, lon := range lons {
			u, err := LatLonToUTM(LatLon{Lat: lat, Lon: lon})
			require.NoError(t, err, "lat=%g lon=%g", lat, lon)
			ll, err := UTMToLatLon(u)
			require.NoError(t, err, "lat=%g lon=%g", lat, lon)
			assert.InDelta(t, lat, ll.Lat, 1e-9, "lat=%g lon=%g", lat, lon)
			assert.InDelta(t, lon, ll.Lon, 1e-9, "lat=%g lon=%g", lat, lon)
		}
	}
}

func TestLatLonToUTMDomain(t *testing.T) {
	var dom OutOfDomainError
	_, err := LatLonToUTM(LatLon{Lat: 84.1, Lon: 0})
	require.Error(t, err)
	assert.True(t, errors.As(err, &dom))

	_, err = LatLonToUTM(LatLon{Lat: -80.5, Lon: 0})
	require.Error(t, err)
	assert.True(t, errors.As(err, &dom))

	var rng OutOfRangeError
	_, err = LatLonToUTM(LatLon{Lat: 95, Lon: 0})
	require.Error(t, err)
	assert.True(t, errors.As(err, &rng))

	_, err = LatLonToUTM(LatLon{Lat: math.NaN(), Lon: 0})
	require.Error(t, err)

	// the domain boundaries themselves are legal
	for _, lat := range []float64{MinGridLat, MaxGridLat} {
		_, err := LatLonToUTM(LatLon{Lat: lat, Lon: 0})
		assert.NoError(t, err, "lat=%g", lat)
	}
}

func TestUTMToLatLonValidation(t *testing.T) {
	_, err := UTMToLatLon(UTM{Easting: 500000, Northing: 0, Zone: 0, Hemisphere: North})
	assert.Error(t, err)
	_, err = UTMToLatLon(UTM{Easting: 500000, Northing: 0, Zone: 61, Hemisphere: North})
	assert.Error(t, err)
	_, err = UTMToLatLon(UTM{Easting: 500000, Northing: 0, Zone: 31, Hemisphere: 'X'})
	assert.Error(t, err)
}

func TestUTMCustomEllipsoid(t *testing.T) {
	// GRS80 differs from WGS84 by under a tenth of a millimeter in
	// flattening; the projection of the same point must stay within a
	// millimeter while a sphere diverges by kilometers.
	grs80, err := NewEllipsoid(6378137.0, 1/298.257222101)
	require.NoError(t, err)
	sphere, err := NewEllipsoid(6378137.0, 0)
	require.NoError(t, err)

	ll := LatLon{Lat: 45.1, Lon: -79.5}
	ref, err := LatLonToUTM(ll)
	require.NoError(t, err)

	u, err := grs80.LatLonToUTM(ll)
	require.NoError(t, err)
	assert.InDelta(t, ref.Northing, u.Northing, 1e-3)

	u, err = sphere.LatLonToUTM(ll)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(ref.Northing-u.Northing), 1000.0)
}
