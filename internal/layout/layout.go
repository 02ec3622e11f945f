// Package layout turns the valuation record into a story. Three layouts
// exist, all carrying the same content:
//
//   - standard: one grey-headed table per sub-section, page breaks after the
//     general section, the flat section and the valuation details.
//   - compact: numbered rows folded into multi-line cells, no page breaks;
//     the shape used for the word-processor copy.
//   - exact: fewer, longer tables with navy section rows inside them.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"valuation/internal/story"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

// Name identifies a layout.
type Name string

const (
	Standard Name = "standard"
	Compact  Name = "compact"
	Exact    Name = "exact"
)

// ErrUnknownLayout is returned for names outside Names().
var ErrUnknownLayout = errors.New("unknown layout")

// Names lists the layouts in the order "all" expands to.
func Names() []Name { return []Name{Standard, Compact, Exact} }

// Parse maps a user-supplied name to a layout. "all" is handled by callers.
func Parse(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Names() {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of standard, compact, exact)", ErrUnknownLayout, s)
}

// Location is the optional location exhibit appended after the enclosure.
type Location struct {
	DMS    string
	Lat    float64
	Lon    float64
	Zoning string
}

// Options tweak a build without changing the report content.
type Options struct {
	Location *Location
}

// Build returns the story for layout n.
func Build(n Name, v types.Valuation, f valuation.Figures, opts Options) (*story.Document, error) {
	doc := &story.Document{
		Title:    "Valuation Report",
		Subject:  "Valuation report in respect of " + strings.ReplaceAll(v.Description, "\n", " "),
		Author:   v.Valuer,
		Keywords: "valuation, " + v.Addressee.Branch + ", " + v.OwnerName,
		FileNo:   v.FileNo,
	}

	var b builder
	switch n {
	case Standard:
		b = standard{v: v, f: f}
	case Compact:
		b = compact{v: v, f: f}
	case Exact:
		b = exact{v: v, f: f}
	default:
		return nil, fmt.Errorf("build layout: %w %q", ErrUnknownLayout, string(n))
	}
	b.build(doc)

	if opts.Location != nil {
		addLocationPage(doc, *opts.Location)
	}
	return doc, nil
}

type builder interface {
	build(doc *story.Document)
}

const (
	bodySize  = 8.0
	labelSize = 9.0
)

var in = story.Inch

// threeCol is the serial / description / details grid shared by most tables.
func threeCol(snoW, descW, detW float64, rows ...story.Row) story.Table {
	return story.Table{
		Widths: []float64{in(snoW), in(descW), in(detW)},
		Rows:   rows,
		Size:   bodySize,
	}
}

func row(cells ...string) story.Row { return story.Row{Cells: cells} }

func section(title string) story.Row {
	return story.Row{Cells: []string{title}, Style: story.Section}
}

func header(cells ...string) story.Row {
	return story.Row{Cells: cells, Style: story.Header}
}

// firstAsHeader paints the first row the way a plain bordered table heads
// itself, even when that row carries data.
func firstAsHeader(t story.Table) story.Table {
	if len(t.Rows) > 0 && t.Rows[0].Style == story.Body {
		t.Rows[0].Style = story.Header
	}
	return t
}

func lines(s ...string) string { return strings.Join(s, "\n") }

func boundaryHeading() string { return "As per Document | As per Actual" }

func boundaryCell(b types.Boundary) string { return b.PerDocument + " | " + b.PerActual }

func extentCell(v types.Valuation) string {
	return fmt.Sprintf("Built Up Area (Sq.mt.): %s | Carpet Area (Sq.mt.): %s | UDSL (Sq.Mt.): %s",
		v.Extent.BuiltUp, v.Extent.Carpet, v.Extent.UDSL)
}

func plinthCell(v types.Valuation, sep string) string {
	return fmt.Sprintf("Built Up Area (Sq.mt.): %s%sCarpet Area (Sq.mt.): %s", v.Extent.BuiltUp, sep, v.Extent.Carpet)
}

func jantriRateCell(v types.Valuation) string {
	return fmt.Sprintf("Jantri rate: Rs. %d/- per sq. mt. for composite rate for the year %d.",
		v.Rate.JantriRate.Rupees(), v.Rate.JantriYear)
}

func facilityLabels() []string {
	return []string{
		"Lift",
		"Protected Water Supply",
		"Under ground sewerage",
		"car parking-Open/Covered",
		"is compound wall Existing?",
		"Is pavement laid around the building?",
	}
}

func facilityValues(fc types.Facilities) []string {
	yn := valuation.YesNo
	return []string{yn(fc.Lift), yn(fc.WaterSupply), yn(fc.Sewerage), yn(fc.CarParking), yn(fc.CompoundWall), yn(fc.Pavement)}
}

func locationLabels() []string {
	return []string{
		"(c) TP Np/Village",
		"(d) Ward/Taluka",
		"(e) Mandal/District",
		"(f) Date of issue & Validity of layout plan",
		"(g) Approved map/plan issuing authority",
		"(h) weather genuineness or authenticity of approved map/plan verified",
		"(i) Any other comments by valuer on authentic of approved plan",
	}
}

func locationValues(l types.Location) []string {
	return []string{
		l.TPVillage,
		l.WardTaluka,
		l.MandalDistrict,
		valuation.ShortDate(l.LayoutPlanDate),
		l.PlanAuthority,
		l.PlanVerification,
		l.PlanComments,
	}
}

func flatSpecLabels() []string {
	return []string{"Roof", "Flooring", "Doors", "Windows", "Fittings", "Finishing"}
}

func flatSpecValues(fl types.Flat) []string {
	return []string{fl.Roof, fl.Flooring, fl.Doors, fl.Windows, fl.Fittings, fl.Finishing}
}

func declarations(v types.Valuation) [][2]string {
	return [][2]string{
		{"", "I hereby declare that-"},
		{"a", "I declare that I am not associated with the builder or with any of his associate companies or with the borrower directly or indirectly in the past or in the present and this report has been prepared by me with highest professional integrity."},
		{"b", "I further declare that I have personally inspected the site and building on " + valuation.LongDate(v.InspectionDate) + "."},
		{"c", "I further declare that all the above particulars and information given in this report are true to the best of my knowledge and belief."},
		{"d", "Future life of property is based on proper maintenance of the property"},
	}
}

func declarationTable(v types.Valuation, snoW, textW float64) story.Table {
	t := story.Table{Widths: []float64{in(snoW), in(textW)}, Size: bodySize}
	for _, d := range declarations(v) {
		t.Rows = append(t.Rows, row(d[0], d[1]))
	}
	return t
}

func resultRows(v types.Valuation, f valuation.Figures) []story.Row {
	return []story.Row{
		row("Fair Market Market Value", valuation.Rs(f.MarketValue)),
		row(fmt.Sprintf("Realizeable Value %d%% of M.V", valuation.RealizablePct), valuation.Rs(f.Realizable)),
		row(fmt.Sprintf("Distress value %d%% of M.V", valuation.DistressPct), valuation.Rs(f.Distress)),
		row("Sale Deed Value", v.SaleDeedValue),
		row("Jantri Value", valuation.Rs(f.JantriValue)),
		row("Insurable Value", valuation.Rs(f.Insurable)),
		row("Remarks: "+v.Remarks, ""),
		row("Copy Of Document Shown To Us", v.DocumentsShown),
	}
}

func enclosureText(v types.Valuation, f valuation.Figures) string {
	return fmt.Sprintf("The undersigned has inspected the property detailed in the Valuation report dated-%s. "+
		"We are satisfied that the fair and reasonable market value of the property is Rs. %s/- (In Words %s).",
		valuation.SlashDate(v.InspectionDate), f.MarketValue, f.MarketWords)
}

func headerTable(v types.Valuation, size float64) story.Table {
	return story.Table{
		Widths:     []float64{in(2.0), in(1.0), in(0.5), in(1.5)},
		Aligns:     []story.Align{story.Left, story.Left, story.Left, story.Right},
		Size:       size,
		Borderless: true,
		Rows: []story.Row{
			row("To;", "", "", "File No: "+v.FileNo),
			row(v.Addressee.Bank, "", "", "Date: "+valuation.ShortDate(v.ReportDate)),
			row(v.Addressee.Branch, "", "", ""),
		},
	}
}

func sectionHeading(text string) story.Paragraph {
	return story.Paragraph{Text: text, Size: 10, Bold: true}
}

const reportTitle = "VALUATION REPORT(IN RESPECT OF FLAT/HOUSE/INDUSTRIAL/SHOP)"

func addLocationPage(doc *story.Document, l Location) {
	zoning := l.Zoning
	if zoning == "" {
		zoning = "Not available"
	}
	doc.Add(
		story.PageBreak{},
		sectionHeading("LOCATION OF THE PROPERTY"),
		story.Spacer{Height: in(0.08)},
		firstAsHeader(story.Table{
			Widths: []float64{in(2.5), in(3.5)},
			Size:   bodySize,
			Rows: []story.Row{
				row("Co-ordinates", l.DMS),
				row("Latitude (decimal degrees)", fmt.Sprintf("%.6f", l.Lat)),
				row("Longitude (decimal degrees)", fmt.Sprintf("%.6f", l.Lon)),
				row("Zoning", zoning),
			},
		}),
	)
}
