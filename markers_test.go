package mapsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markersJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [5.1214, 52.0907]},
      "properties": {"name": "Dom Tower"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [5.1180, 52.0894]},
      "properties": {"name": "Oudegracht"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[5.1, 52.0], [5.2, 52.1]]},
      "properties": {"name": "not a marker"}
    }
  ]
}`

func writeMarkers(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "markers.geojson")
	require.NoError(t, os.WriteFile(path, []byte(markersJSON), 0o644))
	return path
}

func TestLoadMarkers(t *testing.T) {
	markers, err := LoadMarkers(writeMarkers(t))
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "Dom Tower", markers[0].Name)
	assert.InDelta(t, 5.1214, markers[0].At.Lon(), 1e-12)
	assert.InDelta(t, 52.0907, markers[0].At.Lat(), 1e-12)
	assert.Equal(t, "Oudegracht", markers[1].Name)
}

func TestLoadMarkersErrors(t *testing.T) {
	_, err := LoadMarkers(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.geojson")
	require.NoError(t, os.WriteFile(path, []byte("not geojson"), 0o644))
	_, err = LoadMarkers(path)
	assert.Error(t, err)
}

func TestMarkerXY(t *testing.T) {
	s, err := NewSheet(52.0907, 5.1214, DefaultOptions())
	require.NoError(t, err)

	markers, err := LoadMarkers(writeMarkers(t))
	require.NoError(t, err)

	// the first marker is the sheet center
	x, y, ok := s.MarkerXY(markers[0])
	require.True(t, ok)
	assert.InDelta(t, s.ImageWidth/2, x, 0.5)
	assert.InDelta(t, s.ImageHeight/2, y, 0.5)

	// the second is a few hundred meters southwest
	x2, y2, ok := s.MarkerXY(markers[1])
	require.True(t, ok)
	assert.Less(t, x2, x)
	assert.Greater(t, y2, y)

	// a marker on the other side of town falls off the sheet
	_, _, ok = s.MarkerXY(Marker{Name: "far", At: orb.Point{5.5, 52.0907}})
	assert.False(t, ok)
}
