package mapsheet

import (
	"fmt"
	"sort"
	"strings"
)

// Provider describes a slippy map tile server. URLTemplate may contain the
// placeholders {x}, {y}, {zoom}, {mirror} and {api_key}.
type Provider struct {
	Attribution string
	URLTemplate string
	ZoomMin     int
	ZoomMax     int
	Mirrors     []string
}

// RequiresKey reports whether the provider needs an API key.
func (p Provider) RequiresKey() bool {
	return strings.Contains(p.URLTemplate, "{api_key}")
}

// URL builds the tile URL. seq selects the mirror; callers spread requests
// over the mirrors by passing an increasing sequence number.
func (p Provider) URL(t *Tile, apiKey string, seq int) string {
	var mirror string
	if len(p.Mirrors) > 0 {
		mirror = p.Mirrors[seq%len(p.Mirrors)]
	}
	r := strings.NewReplacer(
		"{x}", fmt.Sprint(t.X),
		"{y}", fmt.Sprint(t.Y),
		"{zoom}", fmt.Sprint(t.Zoom),
		"{mirror}", mirror,
		"{api_key}", apiKey,
	)
	return r.Replace(p.URLTemplate)
}

// DefaultProvider is the provider used when none is selected.
const DefaultProvider = "OpenStreetMap"

// Providers is the catalog of known tile providers, keyed by display name.
var Providers = map[string]Provider{
	"OpenStreetMap": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "http://{mirror}.tile.osm.org/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"OpenStreetMap Monochrome": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "https://tiles.wmflabs.org/bw-mapnik/{zoom}/{x}/{y}.png",
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"OpenTopoMap": {
		Attribution: "Map data: © OpenStreetMap contributors, SRTM. Map style: © OpenTopoMap (CC-BY-SA)",
		URLTemplate: "https://{mirror}.tile.opentopomap.org/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     17,
	},
	"Thunderforest Landscape": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "https://{mirror}.tile.thunderforest.com/landscape/{zoom}/{x}/{y}.png?apikey={api_key}",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     22,
	},
	"Thunderforest Outdoors": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "https://{mirror}.tile.thunderforest.com/outdoors/{zoom}/{x}/{y}.png?apikey={api_key}",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     22,
	},
	"Thunderforest OpenCycleMap": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "https://{mirror}.tile.thunderforest.com/cycle/{zoom}/{x}/{y}.png?apikey={api_key}",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     22,
	},
	"ESRI Standard": {
		Attribution: "Map data: © Esri",
		URLTemplate: "https://server.arcgisonline.com/ArcGIS/rest/services/World_Street_Map/MapServer/tile/{zoom}/{y}/{x}.png",
		ZoomMin:     0,
		ZoomMax:     17,
	},
	"ESRI Satellite": {
		Attribution: "Map data: © Esri",
		URLTemplate: "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{zoom}/{y}/{x}.png",
		ZoomMin:     0,
		ZoomMax:     17,
	},
	"ESRI Topo": {
		Attribution: "Map data: © Esri",
		URLTemplate: "https://server.arcgisonline.com/ArcGIS/rest/services/World_Topo_Map/MapServer/tile/{zoom}/{y}/{x}.png",
		ZoomMin:     0,
		ZoomMax:     20,
	},
	"Google Maps": {
		Attribution: "Map data: © Google",
		URLTemplate: "http://mt{mirror}.google.com/vt/lyrs=m&hl=en&x={x}&y={y}&z={zoom}",
		Mirrors:     []string{"0", "1", "2", "3"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"Google Maps Satellite": {
		Attribution: "Map data: © Google",
		URLTemplate: "http://mt{mirror}.google.com/vt/lyrs=s&hl=en&x={x}&y={y}&z={zoom}",
		Mirrors:     []string{"0", "1", "2", "3"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"Google Maps Terrain": {
		Attribution: "Map data: © Google",
		URLTemplate: "http://mt{mirror}.google.com/vt/lyrs=t&hl=en&x={x}&y={y}&z={zoom}",
		Mirrors:     []string{"0", "1", "2", "3"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"HERE Terrain": {
		Attribution: "Map data: © HERE",
		URLTemplate: "https://{mirror}.aerial.maps.ls.hereapi.com/maptile/2.1/maptile/newest/terrain.day/{zoom}/{x}/{y}/256/png8?apiKey={api_key}",
		Mirrors:     []string{"1", "2", "3", "4"},
		ZoomMin:     0,
		ZoomMax:     20,
	},
	"HERE Satellite": {
		Attribution: "Map data: © HERE",
		URLTemplate: "https://{mirror}.aerial.maps.ls.hereapi.com/maptile/2.1/maptile/newest/satellite.day/{zoom}/{x}/{y}/256/png8?apiKey={api_key}",
		Mirrors:     []string{"1", "2", "3", "4"},
		ZoomMin:     0,
		ZoomMax:     20,
	},
	"Mapy.cz": {
		Attribution: "Map data: © OpenStreetMap contributors. Map style: © Sesznam.cz",
		URLTemplate: "https://m{mirror}.mapserver.mapy.cz/turist-m/{zoom}-{x}-{y}.png",
		Mirrors:     []string{"1", "2", "3", "4"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"Stamen Terrain": {
		Attribution: "Map data: © OpenStreetMap contributors. Map style: © Stamen Design (CC-BY-3.0)",
		URLTemplate: "http://{mirror}.tile.stamen.com/terrain/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     18,
	},
	"Stamen Toner": {
		Attribution: "Map data: © OpenStreetMap contributors. Map style: © Stamen Design (CC-BY-3.0)",
		URLTemplate: "http://{mirror}.tile.stamen.com/toner/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     18,
	},
	"Komoot": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "http://{mirror}.tile.komoot.de/komoot-2/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"Wikimedia": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "https://maps.wikimedia.org/osm-intl/{zoom}/{x}/{y}.png",
		ZoomMin:     0,
		ZoomMax:     19,
	},
	"Hike & Bike": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "http://{mirror}.tiles.wmflabs.org/hikebike/{zoom}/{x}/{y}.png",
		Mirrors:     []string{"a", "b", "c"},
		ZoomMin:     0,
		ZoomMax:     20,
	},
	"AllTrails": {
		Attribution: "Map data: © OpenStreetMap contributors",
		URLTemplate: "http://alltrails.com/tiles/alltrailsOutdoors/{zoom}/{x}/{y}.png",
		ZoomMin:     0,
		ZoomMax:     20,
	},
}

// ProviderNames returns the catalog keys in sorted order.
func ProviderNames() []string {
	names := make([]string, 0, len(Providers))
	for n := range Providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
