package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Latitude bands from 80S to 84N, 8 degrees each except X which spans 12.
// I and O are skipped to avoid confusion with digits.
const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

// 100 km square letters cycle with the zone per the NATO (AA) scheme.
var (
	colLetters = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
	rowLetters = [2]string{"ABCDEFGHJKLMNPQRSTUV", "FGHJKLMNPQRSTUVABCDE"}
)

const squareSize = 100000.0

// cellSize returns the edge length in meters of a cell addressed with the
// given number of digits per axis.
func cellSize(digits int) float64 {
	return math.Pow(10, float64(5-digits))
}

// LatitudeBand returns the MGRS band letter for a latitude in degrees.
func LatitudeBand(lat float64) (byte, error) {
	wrapped, err := WrapLat(lat)
	if err != nil {
		return 0, err
	}
	if wrapped < MinGridLat || wrapped > MaxGridLat {
		return 0, OutOfDomainError{Lat: wrapped}
	}
	i := int(math.Floor((wrapped + 80) / 8))
	if i > len(bandLetters)-1 {
		i = len(bandLetters) - 1
	}
	return bandLetters[i], nil
}

// LatLonToMGRS converts a geographic position to a grid reference with the
// requested precision: the number of digits per axis, from 1 (10 km cells)
// to 5 (1 m cells). The digits are truncated, not rounded, so the reference
// names the cell containing the position.
func (e Ellipsoid) LatLonToMGRS(ll LatLon, precision int) (MGRS, error) {
	if precision < 1 || precision > 5 {
		return MGRS{}, OutOfRangeError{Name: "precision", Value: float64(precision), Min: 1, Max: 5}
	}
	band, err := LatitudeBand(ll.Lat)
	if err != nil {
		return MGRS{}, err
	}
	u, err := e.LatLonToUTM(ll)
	if err != nil {
		return MGRS{}, err
	}

	col := int(u.Easting / squareSize)
	row := int(math.Mod(u.Northing, 2*squareSize*10) / squareSize)

	cell := cellSize(precision)
	east := int(math.Mod(u.Easting, squareSize) / cell)
	north := int(math.Mod(u.Northing, squareSize) / cell)

	return MGRS{
		Zone:     u.Zone,
		Band:     band,
		Square:   string([]byte{colLetters[(u.Zone-1)%3][col-1], rowLetters[(u.Zone-1)%2][row]}),
		Easting:  fmt.Sprintf("%0*d", precision, east),
		Northing: fmt.Sprintf("%0*d", precision, north),
	}, nil
}

// ParseMGRS parses a grid reference such as "31NAA6602100000" or
// "31N AA 66021 00000". Spaces are ignored and lowercase is accepted. The
// easting and northing digit runs must be of equal length, between 1 and 5
// digits each.
func ParseMGRS(s string) (MGRS, error) {
	ref := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if len(ref) < 3 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "too short"}
	}

	i := 0
	for i < len(ref) && ref[i] >= '0' && ref[i] <= '9' {
		i++
	}
	if i == 0 || i > 2 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "zone must be 1 or 2 digits"}
	}
	zone, err := strconv.Atoi(ref[:i])
	if err != nil || zone < 1 || zone > 60 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "zone must be between 1 and 60"}
	}

	if len(ref) < i+3 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "truncated after zone"}
	}
	band := ref[i]
	if strings.IndexByte(bandLetters, band) < 0 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: fmt.Sprintf("invalid band letter %q", band)}
	}
	colSet := colLetters[(zone-1)%3]
	rowSet := rowLetters[(zone-1)%2]
	col, row := ref[i+1], ref[i+2]
	if strings.IndexByte(colSet, col) < 0 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: fmt.Sprintf("invalid column letter %q for zone %d", col, zone)}
	}
	if strings.IndexByte(rowSet, row) < 0 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: fmt.Sprintf("invalid row letter %q", row)}
	}

	digits := ref[i+3:]
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return MGRS{}, MalformedReferenceError{Ref: s, Reason: fmt.Sprintf("unexpected character %q in digits", digits[j])}
		}
	}
	if len(digits)%2 != 0 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "easting and northing must have the same number of digits"}
	}
	p := len(digits) / 2
	if p < 1 || p > 5 {
		return MGRS{}, MalformedReferenceError{Ref: s, Reason: "precision must be between 1 and 5 digits per axis"}
	}

	return MGRS{
		Zone:     zone,
		Band:     band,
		Square:   string([]byte{col, row}),
		Easting:  digits[:p],
		Northing: digits[p:],
	}, nil
}

// MGRSToLatLon resolves a grid reference to the geographic position of the
// southwest corner of the cell it names.
func (e Ellipsoid) MGRSToLatLon(m MGRS) (LatLon, error) {
	if m.Zone < 1 || m.Zone > 60 {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: "zone must be between 1 and 60"}
	}
	bandIdx := strings.IndexByte(bandLetters, m.Band)
	if bandIdx < 0 {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: fmt.Sprintf("invalid band letter %q", m.Band)}
	}
	if len(m.Square) != 2 {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: "square must be two letters"}
	}
	col := strings.IndexByte(colLetters[(m.Zone-1)%3], m.Square[0])
	row := strings.IndexByte(rowLetters[(m.Zone-1)%2], m.Square[1])
	if col < 0 || row < 0 {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: fmt.Sprintf("invalid square %q for zone %d", m.Square, m.Zone)}
	}
	if len(m.Easting) != len(m.Northing) || len(m.Easting) < 1 || len(m.Easting) > 5 {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: "easting and northing must have the same number of digits"}
	}
	east, err := strconv.Atoi(m.Easting)
	if err != nil {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: "easting is not numeric"}
	}
	north, err := strconv.Atoi(m.Northing)
	if err != nil {
		return LatLon{}, MalformedReferenceError{Ref: m.String(), Reason: "northing is not numeric"}
	}

	cell := cellSize(len(m.Easting))
	e100k := float64(col+1) * squareSize
	n100k := float64(row) * squareSize
	nOff := float64(north) * cell

	// The row letters repeat every 2000 km, so the band pins down which
	// repetition the reference means. Project the bottom of the band to
	// find the smallest northing the band can contain.
	bandBottom := float64(bandIdx)*8 - 80
	_, nBand := e.project(bandBottom, CentralMeridian(m.Zone), m.Zone)
	if nBand < 0 {
		nBand += FalseNorthing
	}
	nBand = math.Floor(nBand/squareSize) * squareSize

	n2M := 0.0
	for n2M+n100k+nOff < nBand {
		n2M += 2 * squareSize * 10
	}

	h := North
	if m.Band < 'N' {
		h = South
	}
	return e.UTMToLatLon(UTM{
		Easting:    e100k + float64(east)*cell,
		Northing:   n2M + n100k + nOff,
		Zone:       m.Zone,
		Hemisphere: h,
	})
}
