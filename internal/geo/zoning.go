package geo

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// feature is a polygon (possibly multi-part) from a zoning layer together
// with its attribute table values.
type feature struct {
	parts [][][2]float64 // closed rings of [y, x] points in the layer CRS
	attrs map[string]string
	minY  float64
	minX  float64
	maxY  float64
	maxX  float64
	proj  projection
}

// projection maps a WGS-84 point into a layer's coordinate system, returning
// (y, x).
type projection func(Point) (float64, float64)

func geographic(p Point) (float64, float64) { return p.Lat, p.Lon }

func utm(zone int, south bool) projection {
	return func(p Point) (float64, float64) { return ToUTM(p, zone, south) }
}

var utmPrj = regexp.MustCompile(`(?i)UTM[_ ]zone[_ ](\d{1,2})\s*([NS])`)

// layerProjection reads the .prj beside a shapefile. A missing .prj or a
// geographic one means WGS-84 degrees; UTM zones are projected on lookup.
func layerProjection(shpPath string) (projection, error) {
	prj := strings.TrimSuffix(shpPath, ".shp") + ".prj"
	data, err := os.ReadFile(prj)
	if os.IsNotExist(err) {
		return geographic, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", prj, err)
	}
	wkt := string(data)
	if !strings.Contains(strings.ToUpper(wkt), "PROJCS") {
		return geographic, nil
	}
	if m := utmPrj.FindStringSubmatch(wkt); m != nil {
		zone, _ := strconv.Atoi(m[1])
		return utm(zone, strings.EqualFold(m[2], "S")), nil
	}
	return nil, fmt.Errorf("%s: unsupported projection", prj)
}

// Zoning holds the polygons of every loaded zoning layer.
type Zoning struct {
	features []feature
}

// LoadZoning reads each polygon shapefile in paths. Later layers are searched
// after earlier ones.
func LoadZoning(paths ...string) (*Zoning, error) {
	z := &Zoning{}
	for _, p := range paths {
		feats, err := loadZoningShapefile(p)
		if err != nil {
			return nil, fmt.Errorf("load zoning shapefile %s: %w", p, err)
		}
		z.features = append(z.features, feats...)
	}
	return z, nil
}

// Len is the number of polygons loaded.
func (z *Zoning) Len() int { return len(z.features) }

func loadZoningShapefile(path string) ([]feature, error) {
	proj, err := layerProjection(path)
	if err != nil {
		return nil, err
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fields := r.Fields()

	var features []feature
	for r.Next() {
		idx, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		numParts := len(poly.Parts)
		parts := make([][][2]float64, numParts)
		minY, minX := math.MaxFloat64, math.MaxFloat64
		maxY, maxX := -math.MaxFloat64, -math.MaxFloat64

		for partIdx := 0; partIdx < numParts; partIdx++ {
			start := poly.Parts[partIdx]
			end := int32(len(poly.Points))
			if partIdx+1 < numParts {
				end = poly.Parts[partIdx+1]
			}
			ring := make([][2]float64, 0, int(end-start))
			for i := start; i < end; i++ {
				pt := poly.Points[i]
				ring = append(ring, [2]float64{pt.Y, pt.X})
				minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
				minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			}
			parts[partIdx] = ring
		}

		attrs := make(map[string]string, len(fields))
		for i, f := range fields {
			attrs[f.String()] = attribute(r, idx, i)
		}

		features = append(features, feature{
			parts: parts,
			attrs: attrs,
			minY:  minY,
			minX:  minX,
			maxY:  maxY,
			maxX:  maxX,
			proj:  proj,
		})
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return features, nil
}

// attribute trims the space or NUL padding of a DBF value.
func attribute(r *shp.Reader, row, field int) string {
	return strings.Trim(r.ReadAttribute(row, field), "\x00 ")
}

// Lookup returns the attributes of the first polygon containing p.
func (z *Zoning) Lookup(p Point) (map[string]string, bool) {
	for _, f := range z.features {
		y, x := f.proj(p)
		if y < f.minY || y > f.maxY || x < f.minX || x > f.maxX {
			continue
		}
		for _, ring := range f.parts {
			if pointInPolygon(y, x, ring) {
				return f.attrs, true
			}
		}
	}
	return nil, false
}

// designationFields are tried in order when naming a zone.
var designationFields = []string{"ZONING", "ZONE", "ZONE_CODE", "ZONECODE", "LANDUSE", "NAME"}

// Designation names the zone described by attrs: the first well-known field
// that is set, otherwise every non-empty attribute as key=value.
func Designation(attrs map[string]string) string {
	upper := make(map[string]string, len(attrs))
	for k, v := range attrs {
		upper[strings.ToUpper(k)] = v
	}
	for _, f := range designationFields {
		if v := upper[f]; v != "" {
			return v
		}
	}

	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + attrs[k]
	}
	return strings.Join(pairs, ", ")
}

// pointInPolygon is the ray-casting test. Shapefile rings are closed, so the
// wrap-around edge is the degenerate last-to-first segment.
func pointInPolygon(y, x float64, ring [][2]float64) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		yi, xi := ring[i][0], ring[i][1]
		yj, xj := ring[j][0], ring[j][1]
		if ((yi > y) != (yj > y)) && (x < (xj-xi)*(y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}
	return inside
}
