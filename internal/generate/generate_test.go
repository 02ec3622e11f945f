package generate_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valuation/internal/fixture"
	"valuation/internal/generate"
	"valuation/internal/layout"
	"valuation/internal/money"
	"valuation/internal/types"
)

type memArchive struct {
	issues []types.Issue
	err    error
}

func (m *memArchive) Record(_ context.Context, issue types.Issue) error {
	if m.err != nil {
		return m.err
	}
	m.issues = append(m.issues, issue)
	return nil
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Valuation_Report.pdf", generate.FileName(layout.Standard, generate.PDF))
	assert.Equal(t, "Valuation_Report_compact.docx", generate.FileName(layout.Compact, generate.DOCX))
	assert.Equal(t, "Valuation_Report_compact.pdf", generate.FileName(layout.Compact, generate.PDF))
	assert.Equal(t, "Valuation_Report_exact.pdf", generate.FileName(layout.Exact, generate.PDF))
}

func TestRunAllLayouts(t *testing.T) {
	out := t.TempDir()
	archive := &memArchive{}
	g := generate.New(zap.NewNop(), archive)

	res, err := g.Run(context.Background(), fixture.Subject(), generate.Request{
		Out:     out,
		Layouts: layout.Names(),
		Formats: []string{generate.PDF, generate.DOCX},
	})
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 6)

	for _, a := range res.Artifacts {
		info, err := os.Stat(a.Path)
		require.NoError(t, err, a.Path)
		assert.Equal(t, int64(a.Bytes), info.Size())
		if a.Format == generate.PDF {
			assert.Positive(t, a.Pages, a.Path)
		}
	}
	assert.FileExists(t, filepath.Join(out, "Valuation_Report.pdf"))
	assert.FileExists(t, filepath.Join(out, "Valuation_Report_compact.docx"))
	assert.FileExists(t, filepath.Join(out, "Valuation_Report_exact.pdf"))

	zr, err := zip.OpenReader(filepath.Join(out, "Valuation_Report_compact.docx"))
	require.NoError(t, err)
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "word/document.xml")

	require.Len(t, archive.issues, 1)
	issue := archive.issues[0]
	assert.Equal(t, res.Issue, issue)
	assert.Equal(t, "06GGB1025 10", issue.FileNo)
	assert.Equal(t, money.Paise(595149940), issue.MarketValue)
	assert.Equal(t, []string{"standard", "compact", "exact"}, issue.Layouts)
	assert.Len(t, issue.Artifacts, 6)
	assert.Len(t, issue.ReportID, 36)
	assert.Nil(t, res.Location)
}

func TestRunLocationAndShapefile(t *testing.T) {
	out := t.TempDir()
	g := generate.New(zap.NewNop(), nil)

	plain, err := g.Run(context.Background(), fixture.Subject(), generate.Request{
		Out: t.TempDir(), Layouts: []layout.Name{layout.Compact}, Formats: []string{generate.PDF},
	})
	require.NoError(t, err)

	res, err := g.Run(context.Background(), fixture.Subject(), generate.Request{
		Out:          out,
		Layouts:      []layout.Name{layout.Compact},
		Formats:      []string{generate.PDF},
		LocationPage: true,
		Shapefile:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Location)
	assert.InDelta(t, 22.2704167, res.Location.Lat, 1e-6)
	assert.InDelta(t, 73.1949444, res.Location.Lon, 1e-6)
	assert.Empty(t, res.Location.Zoning)

	require.Len(t, res.Artifacts, 2)
	assert.Equal(t, plain.Artifacts[0].Pages+1, res.Artifacts[0].Pages)

	shpPath := res.Artifacts[1].Path
	assert.Equal(t, generate.SHP, res.Artifacts[1].Format)
	r, err := shp.Open(shpPath)
	require.NoError(t, err)
	defer r.Close()
	require.True(t, r.Next())
	idx, shape := r.Shape()
	pt, ok := shape.(*shp.Point)
	require.True(t, ok)
	assert.InDelta(t, 73.1949444, pt.X, 1e-6)
	assert.InDelta(t, 22.2704167, pt.Y, 1e-6)
	assert.Equal(t, "06GGB1025 10", strings.Trim(r.ReadAttribute(idx, 0), "\x00 "))
	assert.Equal(t, "Hemanshu Haribhai Patel", strings.Trim(r.ReadAttribute(idx, 1), "\x00 "))
	assert.FileExists(t, filepath.Join(out, "Valuation_Location.dbf"))
}

func TestRunLayoutFormats(t *testing.T) {
	out := t.TempDir()
	res, err := generate.New(zap.NewNop(), nil).Run(context.Background(), fixture.Subject(), generate.Request{
		Out:     out,
		Layouts: []layout.Name{layout.Standard, layout.Compact},
		Formats: []string{generate.PDF},
		LayoutFormats: map[layout.Name][]string{
			layout.Compact: {generate.DOCX, generate.PDF},
		},
	})
	require.NoError(t, err)

	var got []string
	for _, a := range res.Artifacts {
		got = append(got, filepath.Base(a.Path))
	}
	assert.Equal(t, []string{
		"Valuation_Report.pdf",
		"Valuation_Report_compact.docx",
		"Valuation_Report_compact.pdf",
	}, got)
	assert.NoFileExists(t, filepath.Join(out, "Valuation_Report.docx"))

	_, err = generate.New(zap.NewNop(), nil).Run(context.Background(), fixture.Subject(), generate.Request{
		Out:           t.TempDir(),
		Layouts:       []layout.Name{layout.Standard, layout.Compact},
		LayoutFormats: map[layout.Name][]string{layout.Compact: {generate.PDF}},
	})
	require.Error(t, err)
}

func TestRunRejectsBadRequests(t *testing.T) {
	g := generate.New(zap.NewNop(), nil)
	v := fixture.Subject()

	_, err := g.Run(context.Background(), v, generate.Request{Out: t.TempDir(), Formats: []string{"pdf"}})
	require.Error(t, err)

	_, err = g.Run(context.Background(), v, generate.Request{Out: t.TempDir(), Layouts: layout.Names()})
	require.Error(t, err)

	_, err = g.Run(context.Background(), v, generate.Request{
		Out: t.TempDir(), Layouts: layout.Names(), Formats: []string{"odt"},
	})
	require.Error(t, err)

	_, err = g.Run(context.Background(), v, generate.Request{
		Out: t.TempDir(), Layouts: []layout.Name{"poster"}, Formats: []string{"pdf"},
	})
	require.ErrorIs(t, err, layout.ErrUnknownLayout)

	bad := fixture.Subject()
	bad.Coordinates = "somewhere near Manjalpur"
	_, err = g.Run(context.Background(), bad, generate.Request{
		Out: t.TempDir(), Layouts: layout.Names(), Formats: []string{"pdf"}, Shapefile: true,
	})
	require.Error(t, err)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	out := t.TempDir()
	archive := &memArchive{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generate.New(zap.NewNop(), archive).Run(ctx, fixture.Subject(), generate.Request{
		Out: out, Layouts: layout.Names(), Formats: []string{generate.PDF},
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, archive.issues)
	assert.NoFileExists(t, filepath.Join(out, "Valuation_Report.pdf"))
}

func TestRunArchiveFailure(t *testing.T) {
	archive := &memArchive{err: errors.New("register offline")}
	_, err := generate.New(zap.NewNop(), archive).Run(context.Background(), fixture.Subject(), generate.Request{
		Out: t.TempDir(), Layouts: []layout.Name{layout.Standard}, Formats: []string{generate.DOCX},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register offline")
}
