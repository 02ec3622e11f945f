package geo

// WGS-84 → Universal Transverse Mercator, metres. Municipal zoning layers
// around Vadodara are usually published in UTM zone 43N; points are projected
// into the layer's CRS before the point-in-polygon test.

import "math"

const (
	utmK0          = 0.9996
	utmFalseEast   = 500000.0
	utmFalseNorthS = 10000000.0
	wgsA           = 6378137.0
	wgsF           = 1 / 298.257223563
)

// UTMZone returns the zone number for a longitude.
func UTMZone(lon float64) int {
	z := int(math.Floor((lon+180)/6)) + 1
	if z > 60 {
		z = 60
	}
	if z < 1 {
		z = 1
	}
	return z
}

// ToUTM projects p into the given zone. It returns (northing, easting) so
// callers can keep the (lat, lon) ordering used by zoning rings. South is true
// for southern-hemisphere zones, which add the 10,000 km false northing.
func ToUTM(p Point, zone int, south bool) (northing, easting float64) {
	e2 := wgsF * (2 - wgsF)
	e4 := e2 * e2
	e6 := e4 * e2
	ep2 := e2 / (1 - e2)

	phi := p.Lat * math.Pi / 180
	lam := p.Lon * math.Pi / 180
	lam0 := float64((zone-1)*6-180+3) * math.Pi / 180

	sin, cos, tan := math.Sin(phi), math.Cos(phi), math.Tan(phi)
	n := wgsA / math.Sqrt(1-e2*sin*sin)
	t := tan * tan
	c := ep2 * cos * cos
	a := cos * (lam - lam0)

	m := wgsA * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))

	easting = utmK0*n*(a+
		(1-t+c)*math.Pow(a, 3)/6+
		(5-18*t+t*t+72*c-58*ep2)*math.Pow(a, 5)/120) + utmFalseEast

	northing = utmK0 * (m + n*tan*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*ep2)*math.Pow(a, 6)/720))
	if south {
		northing += utmFalseNorthS
	}
	return northing, easting
}
