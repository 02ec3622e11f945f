// Package generate runs the report pipeline: build each requested layout,
// render it in each requested format, check the PDFs and record the issue.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"

	"valuation/internal/geo"
	"valuation/internal/layout"
	"valuation/internal/render/docx"
	"valuation/internal/render/pdf"
	"valuation/internal/story"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

// Output formats understood by Run.
const (
	PDF  = "pdf"
	DOCX = "docx"
	SHP  = "shp"
)

const baseName = "Valuation_Report"

// Archive records issued reports. The CSV ledger and the Oracle register
// both satisfy it.
type Archive interface {
	Record(ctx context.Context, issue types.Issue) error
}

// Request selects what Run produces. Every layout is written in Formats
// unless LayoutFormats names its own list.
type Request struct {
	Out           string
	Layouts       []layout.Name
	Formats       []string
	LayoutFormats map[layout.Name][]string
	LocationPage  bool
	Shapefile     bool
	Zoning        []string
}

func (r Request) formats(n layout.Name) []string {
	if f, ok := r.LayoutFormats[n]; ok {
		return f
	}
	return r.Formats
}

// Artifact is one file written by Run.
type Artifact struct {
	Path   string
	Layout layout.Name // empty for the location shapefile
	Format string
	Pages  int // PDFs only
	Bytes  int
}

// Result is what a run produced and recorded.
type Result struct {
	Issue     types.Issue
	Figures   valuation.Figures
	Location  *layout.Location
	Artifacts []Artifact
}

// Generator runs the pipeline. Archive may be nil.
type Generator struct {
	logger  *zap.Logger
	archive Archive
	now     func() time.Time
}

// New returns a Generator logging to logger.
func New(logger *zap.Logger, archive Archive) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger, archive: archive, now: time.Now}
}

// FileName is the document name for a layout and format: the standard
// layout is Valuation_Report.<ext>, the others carry a _<layout> suffix.
func FileName(n layout.Name, format string) string {
	if n == layout.Standard {
		return baseName + "." + format
	}
	return baseName + "_" + string(n) + "." + format
}

// Run produces every requested layout in every requested format under
// req.Out. Cancellation is checked between files.
func (g *Generator) Run(ctx context.Context, v types.Valuation, req Request) (*Result, error) {
	if len(req.Layouts) == 0 {
		return nil, errors.New("generate: no layout requested")
	}
	for _, n := range req.Layouts {
		formats := req.formats(n)
		if len(formats) == 0 {
			return nil, fmt.Errorf("generate: no format requested for %s", n)
		}
		for _, f := range formats {
			if f != PDF && f != DOCX {
				return nil, fmt.Errorf("generate: unknown format %q", f)
			}
		}
	}

	figures, err := valuation.Compute(v)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := os.MkdirAll(req.Out, 0755); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	res := &Result{Figures: figures}
	var point geo.Point
	if req.LocationPage || req.Shapefile {
		point, err = geo.ParseDMS(v.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("generate: coordinates: %w", err)
		}
	}
	if req.LocationPage {
		loc, err := g.locate(v.Coordinates, point, req.Zoning)
		if err != nil {
			return nil, err
		}
		res.Location = loc
	}

	id := uuid.New()
	created := g.now()
	opts := layout.Options{Location: res.Location}

	for _, n := range req.Layouts {
		doc, err := layout.Build(n, v, figures, opts)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		for _, format := range req.formats(n) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a, err := g.write(doc, n, format, req.Out, id, created)
			if err != nil {
				return nil, err
			}
			res.Artifacts = append(res.Artifacts, a)
		}
	}

	if req.Shapefile {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(req.Out, "Valuation_Location.shp")
		site := geo.Site{
			FileNo:      v.FileNo,
			Owner:       v.OwnerName,
			MarketValue: float64(figures.MarketValue) / 100,
		}
		if err := geo.WriteLocation(path, point, site); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		g.logger.Info("location written", zap.String("path", path), zap.Stringer("point", point))
		res.Artifacts = append(res.Artifacts, Artifact{Path: path, Format: SHP})
	}

	res.Issue = types.Issue{
		ReportID:    id.String(),
		FileNo:      v.FileNo,
		OwnerName:   v.OwnerName,
		ReportDate:  v.ReportDate,
		MarketValue: figures.MarketValue,
		GeneratedAt: created.UTC().Truncate(time.Second),
	}
	for _, n := range req.Layouts {
		res.Issue.Layouts = append(res.Issue.Layouts, string(n))
	}
	for _, a := range res.Artifacts {
		res.Issue.Artifacts = append(res.Issue.Artifacts, a.Path)
	}

	if g.archive != nil {
		if err := g.archive.Record(ctx, res.Issue); err != nil {
			return nil, fmt.Errorf("generate: record issue: %w", err)
		}
	}
	return res, nil
}

func (g *Generator) locate(dms string, p geo.Point, zoningPaths []string) (*layout.Location, error) {
	loc := &layout.Location{DMS: dms, Lat: p.Lat, Lon: p.Lon}
	if len(zoningPaths) == 0 {
		return loc, nil
	}

	z, err := geo.LoadZoning(zoningPaths...)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	g.logger.Debug("zoning loaded", zap.Strings("paths", zoningPaths), zap.Int("features", z.Len()))

	if attrs, ok := z.Lookup(p); ok {
		loc.Zoning = geo.Designation(attrs)
	} else {
		g.logger.Warn("subject outside every zoning polygon", zap.Stringer("point", p))
	}
	return loc, nil
}

func (g *Generator) write(doc *story.Document, n layout.Name, format, dir string, id uuid.UUID, created time.Time) (Artifact, error) {
	a := Artifact{Path: filepath.Join(dir, FileName(n, format)), Layout: n, Format: format}

	var buf bytes.Buffer
	switch format {
	case PDF:
		if err := pdf.Render(doc, &buf, pdf.Options{Created: created}); err != nil {
			return a, fmt.Errorf("generate %s: %w", a.Path, err)
		}
		pages, err := checkPDF(buf.Bytes())
		if err != nil {
			return a, fmt.Errorf("generate %s: %w", a.Path, err)
		}
		a.Pages = pages
	case DOCX:
		if err := docx.Render(doc, &buf, docx.Options{ID: id, Created: created}); err != nil {
			return a, fmt.Errorf("generate %s: %w", a.Path, err)
		}
	}

	if err := os.WriteFile(a.Path, buf.Bytes(), 0644); err != nil {
		return a, fmt.Errorf("generate: %w", err)
	}
	a.Bytes = buf.Len()

	g.logger.Info("report written",
		zap.String("layout", string(n)),
		zap.String("format", format),
		zap.String("path", a.Path),
		zap.Int("pages", a.Pages),
		zap.Int("bytes", a.Bytes),
	)
	return a, nil
}

// checkPDF validates raw and returns its page count.
func checkPDF(raw []byte) (int, error) {
	if err := pdfapi.Validate(bytes.NewReader(raw), nil); err != nil {
		return 0, fmt.Errorf("invalid pdf: %w", err)
	}
	pages, err := pdfapi.PageCount(bytes.NewReader(raw), nil)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return pages, nil
}
