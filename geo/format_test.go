package geo

import "fmt"

func ExampleLatLon_DMS() {
	ll := LatLon{Lat: 43.5, Lon: -79.75}
	fmt.Println(ll.DMS())
	// Output:
	// 43° 30' 00.0000'' N 79° 45' 00.0000'' W
}

func ExampleLatLon_String() {
	ll := LatLon{Lat: 13.75889, Lon: 100.49722}
	fmt.Println(ll)
	// Output:
	// 13.758890, 100.497220
}

func ExampleUTM_String() {
	u := UTM{Easting: 500000, Northing: 4649776, Zone: 17, Hemisphere: North}
	fmt.Println(u)
	// Output:
	// 17N 500000 4649776
}

func ExampleMGRS_String() {
	m := MGRS{Zone: 31, Band: 'N', Square: "AA", Easting: "66021", Northing: "00000"}
	fmt.Println(m)
	// Output:
	// 31NAA6602100000
}

func ExampleECEF_String() {
	c := ECEF{X: 6378137, Y: 0, Z: 0}
	fmt.Println(c)
	// Output:
	// 6378137.000 0.000 0.000
}
