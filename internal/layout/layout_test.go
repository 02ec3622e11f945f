package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation/internal/fixture"
	"valuation/internal/layout"
	"valuation/internal/story"
	"valuation/internal/valuation"
)

// A4 less two half-inch margins.
const usableWidth = 210 - 2*12.7

func build(t *testing.T, n layout.Name, opts layout.Options) *story.Document {
	t.Helper()
	v := fixture.Subject()
	f, err := valuation.Compute(v)
	require.NoError(t, err)
	doc, err := layout.Build(n, v, f, opts)
	require.NoError(t, err)
	return doc
}

func joined(doc *story.Document) string {
	return strings.Join(doc.Text(), "\n")
}

func TestParse(t *testing.T) {
	for _, s := range []string{"standard", " Compact ", "EXACT"} {
		n, err := layout.Parse(s)
		require.NoError(t, err, s)
		assert.Contains(t, layout.Names(), n)
	}

	_, err := layout.Parse("landscape")
	require.ErrorIs(t, err, layout.ErrUnknownLayout)
}

func TestBuildUnknownLayout(t *testing.T) {
	v := fixture.Subject()
	f, err := valuation.Compute(v)
	require.NoError(t, err)

	_, err = layout.Build("poster", v, f, layout.Options{})
	require.ErrorIs(t, err, layout.ErrUnknownLayout)
}

func TestEveryLayoutCarriesTheReport(t *testing.T) {
	must := []string{
		"VALUATION REPORT(IN RESPECT OF FLAT/HOUSE/INDUSTRIAL/SHOP)",
		"File No: 06GGB1025 10",
		"Date: 31-Oct-2025",
		"Gujarat Gramin Bank , Vadodara",
		"Hemanshu Haribhai Patel",
		"II. APARTMENT BUILDING",
		"III. Flat",
		"IV MARKETIBILITY",
		"V RATE",
		"VI COMPOSITE RATE ADOPTED AFTER DEPRECIATION",
		"DETAILS OF VALUATION",
		"As a result of my appraisal and analysis,",
		"STATEMENT OF LIMITING CONDITIONS",
		"VIII DECLARATION",
		"SIGNATURE OF THE VALUER",
		"MAHIM ARCHITECTS",
		"Enclsd: 1. Declaration from the valuer",
		"NAME OF BRANCH OFFICIAL WITH SEAL",
		"₹ 59,51,499.40",
		"₹ 56,53,924.43",
		"₹ 47,61,199.52",
		"₹ 20,83,024.79",
		"₹ 16,12,962.00",
		"In Words Fifty Nine Lac Fifty One Thousand Four Hundred & Ninety Nine Rupees Only.",
		"(In Words Fifty Nine Lac Fifty One Thousand Four Hundred Ninety Nine Rupees Only)",
		"I further declare that I have personally inspected the site and building on 30th October, 2025.",
		"36 Mt. Wide Road | 36 Mt. Wide Road",
		"If found any typo error in this report is not counted for any legal action and obligation.",
	}

	for _, n := range layout.Names() {
		t.Run(string(n), func(t *testing.T) {
			doc := build(t, n, layout.Options{})
			text := joined(doc)
			for _, s := range must {
				assert.Contains(t, text, s)
			}
			assert.NotContains(t, text, "56,63,924.43")
			assert.NotContains(t, text, "LOCATION OF THE PROPERTY")

			assert.Equal(t, "MAHIM ARCHITECTS", doc.Author)
			assert.Equal(t, "06GGB1025 10", doc.FileNo)
			assert.NotContains(t, doc.Subject, "\n")
		})
	}
}

func TestPageBreaks(t *testing.T) {
	want := map[layout.Name]int{
		layout.Standard: 3,
		layout.Compact:  0,
		layout.Exact:    1,
	}
	for n, breaks := range want {
		assert.Equal(t, breaks, build(t, n, layout.Options{}).PageBreaks(), n)
	}
}

func TestTablesFitThePage(t *testing.T) {
	for _, n := range layout.Names() {
		doc := build(t, n, layout.Options{})
		for i, b := range doc.Blocks {
			tbl, ok := b.(story.Table)
			if !ok {
				continue
			}
			assert.LessOrEqual(t, tbl.Width(), usableWidth, "%s block %d", n, i)
			for r, row := range tbl.Rows {
				assert.LessOrEqual(t, len(row.Cells), len(tbl.Widths), "%s block %d row %d", n, i, r)
				if row.Style == story.Section {
					assert.Len(t, row.Cells, 1, "%s block %d row %d", n, i, r)
				}
			}
		}
	}
}

func TestExactUsesSectionRows(t *testing.T) {
	doc := build(t, layout.Exact, layout.Options{})

	var sections []string
	for _, b := range doc.Blocks {
		if tbl, ok := b.(story.Table); ok {
			for _, r := range tbl.Rows {
				if r.Style == story.Section {
					sections = append(sections, r.Cells[0])
				}
			}
		}
	}
	assert.Equal(t, []string{
		"GENERAL",
		"II. APARTMENT BUILDING",
		"III. Flat",
		"IV MARKETIBILITY",
		"V RATE",
		"VI COMPOSITE RATE ADOPTED AFTER DEPRECIATION",
		"DETAILS OF VALUATION",
	}, sections)
}

func TestCompactFoldsRows(t *testing.T) {
	doc := build(t, layout.Compact, layout.Options{})

	var found int
	for _, b := range doc.Blocks {
		tbl, ok := b.(story.Table)
		if !ok {
			continue
		}
		for r := range tbl.Rows {
			if tbl.Cell(r, 0) == "12" && strings.HasPrefix(tbl.Cell(r, 1), "Boundaries") {
				found++
				assert.Equal(t, "Boundaries of the property\nEast\nWest\nNorth\nSouth", tbl.Cell(r, 1))
			}
		}
	}
	assert.Equal(t, 1, found, "boundaries row")
}

func TestLocationPage(t *testing.T) {
	loc := &layout.Location{DMS: `22°16'13.5"N 73°11'41.8"E`, Lat: 22.270417, Lon: 73.194944}

	doc := build(t, layout.Standard, layout.Options{Location: loc})
	assert.Equal(t, 4, doc.PageBreaks())
	text := joined(doc)
	assert.Contains(t, text, "LOCATION OF THE PROPERTY")
	assert.Contains(t, text, "22.270417")
	assert.Contains(t, text, "73.194944")
	assert.Contains(t, text, "Not available")

	loc.Zoning = "R-2 Residential"
	doc = build(t, layout.Exact, layout.Options{Location: loc})
	assert.Contains(t, joined(doc), "R-2 Residential")
	assert.NotContains(t, joined(doc), "Not available")
}
