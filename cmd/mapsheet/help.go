package main

const helpText = `Ready-to-print paper maps from slippy map tiles.

Usage: mapsheet <command> [options] <arguments> <file.pdf>

mapsheet composes a paper map around a position, downloads the required map
tiles, and writes a PDF at a fixed print scale. The position can be given in
any of four coordinate systems, one per command:

Commands:

  latlon   LATITUDE LONGITUDE       geographic coordinates (decimal degrees)
  utm      EASTING NORTHING ZONE H  UTM coordinates (meters, zone 1-60, N/S)
  mgrs     REFERENCE                MGRS grid reference, eg 31UFU0379255168
  ecef     X Y Z                    earth-centered cartesian coordinates (meters)
  version                           print mapsheet version and exit
  help                              print this message and exit

When no command is given, latlon is assumed.

Options:

  -tile-provider NAME   tile provider to serve as the base of the map
  -api-key       KEY    API key for the chosen tile provider (if applicable)
  -paper-size    SIZE   paper size: a0-a7, letter or legal
  -landscape            landscape orientation
  -margin-top    MM     top margin
  -margin-right  MM     right margin
  -margin-bottom MM     bottom margin
  -margin-left   MM     left margin
  -scale         N      map scale, as in 1:N
  -dpi           N      print resolution
  -grid                 draw a UTM kilometer grid over the map
  -grid-size     M      size of the grid squares in meters
  -strict               fail if any tile cannot be downloaded
  -retries       N      tile download attempts
  -markers       FILE   draw markers from a GeoJSON file of named points
  -title         TITLE  PDF document title
  -config        FILE   load all settings from a TOML file instead

Examples:

# an A4 sheet of Bangkok at the default 1:25000 scale
$ mapsheet latlon 13.75889 100.49722 bangkok.pdf

# an A3 landscape hiking map with a kilometer grid
$ mapsheet latlon -paper-size a3 -landscape -grid 52.09 5.12 utrecht.pdf

# the same sheet addressed by its MGRS reference
$ mapsheet mgrs -grid 31UFU0379255168 utrecht.pdf

# all settings from a configuration file
$ mapsheet latlon -config etc/mapsheet.toml 52.09 5.12 utrecht.pdf
`
