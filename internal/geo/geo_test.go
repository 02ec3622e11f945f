package geo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation/internal/geo"
)

var subject = geo.Point{Lat: 22.270417, Lon: 73.194944}

func TestParseDMS(t *testing.T) {
	p, err := geo.ParseDMS(`22°16'13.5"N 73°11'41.8"E`)
	require.NoError(t, err)
	assert.InDelta(t, 22.2704167, p.Lat, 1e-6)
	assert.InDelta(t, 73.1949444, p.Lon, 1e-6)
	assert.Equal(t, "22.270417, 73.194944", p.String())

	p, err = geo.ParseDMS(`33°52'4"S, 151°12'26.4"W`)
	require.NoError(t, err)
	assert.Less(t, p.Lat, 0.0)
	assert.Less(t, p.Lon, 0.0)
}

func TestParseDMSRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"22.27, 73.19",
		`22°16'13.5"N`,
		`22°61'13.5"N 73°11'41.8"E`,
		`22°16'60"N 73°11'41.8"E`,
		`95°0'0"N 73°11'41.8"E`,
		`22°16'13.5"E 73°11'41.8"N`,
	} {
		_, err := geo.ParseDMS(s)
		assert.ErrorIs(t, err, geo.ErrBadCoordinate, s)
	}
}

func TestToUTM(t *testing.T) {
	assert.Equal(t, 43, geo.UTMZone(subject.Lon))
	assert.Equal(t, 1, geo.UTMZone(-180))
	assert.Equal(t, 60, geo.UTMZone(180))

	n, e := geo.ToUTM(geo.Point{Lat: 0, Lon: 75}, 43, false)
	assert.InDelta(t, 0, n, 1e-6)
	assert.InDelta(t, 500000, e, 1e-6)

	n, e = geo.ToUTM(geo.Point{Lat: 22.27, Lon: 75}, 43, false)
	assert.InDelta(t, 500000, e, 1e-6)
	assert.InDelta(t, 2463000, n, 2000)

	_, e = geo.ToUTM(subject, 43, false)
	assert.Less(t, e, 500000.0)
	assert.Greater(t, e, 300000.0)

	n, _ = geo.ToUTM(geo.Point{Lat: -0.000001, Lon: 75}, 43, true)
	assert.InDelta(t, 10000000, n, 1)
}

// writeSquare writes a one-polygon layer covering [y0,y1] x [x0,x1].
func writeSquare(t *testing.T, path string, y0, x0, y1, x1 float64, zone string) {
	t.Helper()
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField("ZONING", 20)}))

	ring := []shp.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}, {X: x0, Y: y0}}
	poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
	row := int(w.Write(&poly))
	require.NoError(t, w.WriteAttribute(row, 0, zone))
	require.NoError(t, geo.CloseShape(w, path))
}

func TestZoningLookup(t *testing.T) {
	dir := t.TempDir()
	far := filepath.Join(dir, "far.shp")
	near := filepath.Join(dir, "near.shp")
	writeSquare(t, far, 10, 10, 11, 11, "AGRI")
	writeSquare(t, near, 22.2, 73.1, 22.3, 73.3, "R-2")

	z, err := geo.LoadZoning(far, near)
	require.NoError(t, err)
	assert.Equal(t, 2, z.Len())

	attrs, ok := z.Lookup(subject)
	require.True(t, ok)
	assert.Equal(t, "R-2", geo.Designation(attrs))

	_, ok = z.Lookup(geo.Point{Lat: 0, Lon: 0})
	assert.False(t, ok)
}

func TestZoningLookupUTMLayer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vmc.shp")
	n, e := geo.ToUTM(subject, 43, false)
	writeSquare(t, path, n-100, e-100, n+100, e+100, "RES")
	prj := `PROJCS["WGS_1984_UTM_Zone_43N",GEOGCS["GCS_WGS_1984"]]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vmc.prj"), []byte(prj), 0o644))

	z, err := geo.LoadZoning(path)
	require.NoError(t, err)
	attrs, ok := z.Lookup(subject)
	require.True(t, ok)
	assert.Equal(t, "RES", attrs["ZONING"])

	_, ok = z.Lookup(geo.Point{Lat: subject.Lat + 0.01, Lon: subject.Lon})
	assert.False(t, ok)
}

func TestLoadZoningErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := geo.LoadZoning(filepath.Join(dir, "missing.shp"))
	require.Error(t, err)

	path := filepath.Join(dir, "lcc.shp")
	writeSquare(t, path, 0, 0, 1, 1, "X")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lcc.prj"), []byte(`PROJCS["NAD83 / Texas North Central"]`), 0o644))
	_, err = geo.LoadZoning(path)
	require.ErrorContains(t, err, "unsupported projection")
}

func TestDesignation(t *testing.T) {
	assert.Equal(t, "C-1", geo.Designation(map[string]string{"zone": "C-1", "NAME": "ignored"}))
	assert.Equal(t, "AREA=North, WARD=4", geo.Designation(map[string]string{"WARD": "4", "AREA": "North", "EMPTY": ""}))
	assert.Equal(t, "", geo.Designation(nil))
}

func TestWriteLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subject.shp")
	require.NoError(t, geo.WriteLocation(path, subject, geo.Site{
		FileNo:      "06GGB1025 10",
		Owner:       "Hemanshu Haribhai Patel",
		MarketValue: 5951499.40,
	}))

	for _, ext := range []string{".shp", ".shx", ".dbf", ".prj"} {
		assert.FileExists(t, filepath.Join(dir, "subject"+ext))
	}
	assert.NoFileExists(t, filepath.Join(dir, "subjectdbf"))

	r, err := shp.Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.True(t, r.Next())
	idx, shape := r.Shape()
	pt, ok := shape.(*shp.Point)
	require.True(t, ok)
	assert.InDelta(t, subject.Lat, pt.Y, 1e-9)
	assert.InDelta(t, subject.Lon, pt.X, 1e-9)
	assert.Equal(t, "06GGB1025 10", strings.Trim(r.ReadAttribute(idx, 0), "\x00 "))
	assert.Equal(t, "Hemanshu Haribhai Patel", strings.Trim(r.ReadAttribute(idx, 1), "\x00 "))
	assert.Equal(t, "5951499.40", strings.Trim(r.ReadAttribute(idx, 2), "\x00 "))
	assert.False(t, r.Next())

	require.Error(t, geo.WriteLocation(filepath.Join(dir, "subject.geojson"), subject, geo.Site{}))
}
