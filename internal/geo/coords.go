// Package geo locates the subject property: coordinate parsing, zoning
// layer lookup and point shapefile export.
package geo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadCoordinate is returned for coordinate strings that do not parse.
var ErrBadCoordinate = errors.New("bad coordinate")

// Point is a WGS-84 position in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

func (p Point) String() string { return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lon) }

var dmsPattern = regexp.MustCompile(
	`^\s*(\d{1,3})°\s*(\d{1,2})['′]\s*(\d{1,2}(?:\.\d+)?)["″]\s*([NSns])[\s,]+` +
		`(\d{1,3})°\s*(\d{1,2})['′]\s*(\d{1,2}(?:\.\d+)?)["″]\s*([EWew])\s*$`)

// ParseDMS parses a degrees/minutes/seconds pair such as
// 22°16'13.5"N 73°11'41.8"E.
func ParseDMS(s string) (Point, error) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	lat, err := dms(m[1], m[2], m[3], m[4], 90)
	if err != nil {
		return Point{}, fmt.Errorf("latitude in %q: %w", s, err)
	}
	lon, err := dms(m[5], m[6], m[7], m[8], 180)
	if err != nil {
		return Point{}, fmt.Errorf("longitude in %q: %w", s, err)
	}
	return Point{Lat: lat, Lon: lon}, nil
}

func dms(d, m, s, hemi string, limit float64) (float64, error) {
	deg, _ := strconv.ParseFloat(d, 64)
	mins, _ := strconv.ParseFloat(m, 64)
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seconds %q", ErrBadCoordinate, s)
	}
	if mins >= 60 || sec >= 60 {
		return 0, fmt.Errorf("%w: minutes and seconds must be below 60", ErrBadCoordinate)
	}
	v := deg + mins/60 + sec/3600
	if v > limit {
		return 0, fmt.Errorf("%w: %.6f exceeds %.0f", ErrBadCoordinate, v, limit)
	}
	switch hemi {
	case "S", "s", "W", "w":
		v = -v
	}
	return v, nil
}
