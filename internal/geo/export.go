package geo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

const wgs84WKT = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
	`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// Site is the attribute row written with the location point.
type Site struct {
	FileNo      string
	Owner       string
	MarketValue float64 // rupees
}

// WriteLocation writes p as a one-point shapefile at path (.shp, with .shx,
// .dbf and a WGS-84 .prj beside it).
func WriteLocation(path string, p Point, s Site) error {
	if !strings.HasSuffix(path, ".shp") {
		return fmt.Errorf("write location: %s: want a .shp path", path)
	}

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return fmt.Errorf("write location: %w", err)
	}

	fields := []shp.Field{
		shp.StringField("FILE_NO", 20),
		shp.StringField("OWNER", 60),
		shp.FloatField("FMV", 16, 2),
		shp.FloatField("LAT", 12, 6),
		shp.FloatField("LON", 12, 6),
	}
	if err := w.SetFields(fields); err != nil {
		w.Close()
		return fmt.Errorf("write location: fields: %w", err)
	}

	row := int(w.Write(&shp.Point{X: p.Lon, Y: p.Lat}))
	values := []interface{}{s.FileNo, s.Owner, s.MarketValue, p.Lat, p.Lon}
	for i, v := range values {
		if err := w.WriteAttribute(row, i, v); err != nil {
			w.Close()
			return fmt.Errorf("write location: attribute %d: %w", i, err)
		}
	}
	if err := closeShape(w, path); err != nil {
		return fmt.Errorf("write location: %w", err)
	}

	prj := strings.TrimSuffix(path, ".shp") + ".prj"
	if err := os.WriteFile(prj, []byte(wgs84WKT), 0o644); err != nil {
		return fmt.Errorf("write location: %w", err)
	}
	return nil
}

// closeShape closes w and moves the attribute table, which go-shp v0.1.1
// creates as "<base>dbf", to "<base>.dbf" where its reader looks.
func closeShape(w *shp.Writer, path string) error {
	w.Close()
	base := strings.TrimSuffix(path, ".shp")
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
