package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatitudeBand(t *testing.T) {
	data := []struct {
		lat  float64
		band byte
	}{
		{-80, 'C'},
		{-72.1, 'C'},
		{-0.1, 'M'},
		{0, 'N'},
		{63.9, 'V'},
		{71.9, 'W'},
		{72, 'X'},
		{80, 'X'},
		{84, 'X'},
	}
	for _, d := range data {
		band, err := LatitudeBand(d.lat)
		require.NoError(t, err, "lat=%g", d.lat)
		if band != d.band {
			t.Errorf("LatitudeBand(%g) = %c, want %c", d.lat, band, d.band)
		}
	}
	for _, lat := range []float64{-80.1, 84.1, 91} {
		if _, err := LatitudeBand(lat); err == nil {
			t.Errorf("LatitudeBand(%g): expected error", lat)
		}
	}
}

func TestLatLonToMGRSOrigin(t *testing.T) {
	m, err := LatLonToMGRS(LatLon{Lat: 0, Lon: 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, "31NAA6602100000", m.String())
	assert.Equal(t, 1.0, m.Precision())
}

func TestLatLonToMGRSPrecision(t *testing.T) {
	ll := LatLon{Lat: 45.1, Lon: -79.5}
	full, err := LatLonToMGRS(ll, 5)
	require.NoError(t, err)
	for p := 1; p <= 5; p++ {
		m, err := LatLonToMGRS(ll, p)
		require.NoError(t, err)
		assert.Len(t, m.Easting, p)
		assert.Len(t, m.Northing, p)
		// truncation: every coarser reference is a prefix of the finer one
		assert.Equal(t, full.Easting[:p], m.Easting)
		assert.Equal(t, full.Northing[:p], m.Northing)
	}
	_, err = LatLonToMGRS(ll, 0)
	assert.Error(t, err)
	_, err = LatLonToMGRS(ll, 6)
	assert.Error(t, err)
}

func TestMGRSCellContainment(t *testing.T) {
	points := []LatLon{
		{Lat: 0, Lon: 0},
		{Lat: 45.1, Lon: -79.5},
		{Lat: -33.9, Lon: 18.4},
		{Lat: 13.75889, Lon: 100.49722},
		{Lat: 78, Lon: 20},
		{Lat: -79.5, Lon: 170},
	}
	for _, ll := range points {
		u, err := LatLonToUTM(ll)
		require.NoError(t, err)
		for p := 1; p <= 5; p++ {
			m, err := LatLonToMGRS(ll, p)
			require.NoError(t, err)
			sw, err := MGRSToLatLon(m)
			require.NoError(t, err, "%s", m)

			// project the corner in the reference's own zone; the corner of
			// a cell near a zone edge can fall into the neighboring zone
			cx, cy := WGS84.project(sw.Lat, sw.Lon, u.Zone)
			cx += FalseEasting
			if u.Hemisphere == South {
				cy += FalseNorthing
			}

			cell := cellSize(p)
			de := u.Easting - cx
			dn := u.Northing - cy
			assert.True(t, de >= -1e-3 && de < cell, "%s easting offset %g", m, de)
			assert.True(t, dn >= -1e-3 && dn < cell, "%s northing offset %g", m, dn)
		}
	}
}

func TestMGRSToLatLonSouthwestCorner(t *testing.T) {
	m, err := ParseMGRS("31NAA6602100000")
	require.NoError(t, err)
	sw, err := MGRSToLatLon(m)
	require.NoError(t, err)
	u, err := LatLonToUTM(sw)
	require.NoError(t, err)
	assert.InDelta(t, 166021, u.Easting, 1e-6)
	assert.InDelta(t, 0, u.Northing, 1e-6)
	assert.True(t, math.Abs(sw.Lat) < 1e-6)
}

func TestParseMGRS(t *testing.T) {
	m, err := ParseMGRS("17TNJ3955049695")
	require.NoError(t, err)
	assert.Equal(t, 17, m.Zone)
	assert.Equal(t, byte('T'), m.Band)
	assert.Equal(t, "NJ", m.Square)
	assert.Equal(t, "39550", m.Easting)
	assert.Equal(t, "49695", m.Northing)

	// spacing and case are cosmetic
	spaced, err := ParseMGRS("17t nj 39550 49695")
	require.NoError(t, err)
	assert.Equal(t, m, spaced)

	single, err := ParseMGRS("4QFJ16")
	require.NoError(t, err)
	assert.Equal(t, 4, single.Zone)
	assert.Equal(t, "1", single.Easting)
	assert.Equal(t, "6", single.Northing)
	assert.Equal(t, 10000.0, single.Precision())
}

func TestParseMGRSMalformed(t *testing.T) {
	refs := []string{
		"",
		"17",
		"17T",
		"17TNJ395504969",    // odd digit run
		"17TNJ395",          // odd digit run
		"17TNJ395504969512", // more than 5 digits per axis
		"61TNJ3949",         // zone out of range
		"0TNJ3949",          // zone out of range
		"17INJ3949",         // band letter I does not exist
		"17ONJ3949",         // band letter O does not exist
		"17TIJ3949",         // column letter outside the zone's set
		"17TNO3949",         // row letter O does not exist
		"17TNJ39X9",         // stray character in digits
		"TNJ3949",           // missing zone
	}
	for _, ref := range refs {
		_, err := ParseMGRS(ref)
		require.Error(t, err, "ref=%q", ref)
		var malformed MalformedReferenceError
		assert.True(t, errors.As(err, &malformed), "ref=%q err=%v", ref, err)
	}
}

func TestMGRSRoundTripBands(t *testing.T) {
	// the midpoint of every band, away from zone boundaries
	for i := 0; i < len(bandLetters); i++ {
		lat := float64(i)*8 - 76
		ll := LatLon{Lat: lat, Lon: 45.5}
		m, err := LatLonToMGRS(ll, 5)
		require.NoError(t, err, "lat=%g", lat)
		assert.Equal(t, bandLetters[i], m.Band, "lat=%g", lat)

		sw, err := MGRSToLatLon(m)
		require.NoError(t, err, "%s", m)
		assert.InDelta(t, ll.Lat, sw.Lat, 1e-4, "%s", m)
		assert.InDelta(t, ll.Lon, sw.Lon, 1e-4, "%s", m)
	}
}
