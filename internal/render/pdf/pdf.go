// Package pdf renders a story to PDF with fpdf core fonts.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	gofpdf "github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"valuation/internal/story"
)

// Page geometry in millimetres.
const (
	Margin      = 12.7
	cellPadX    = 1.4
	cellPadY    = 1.0
	defaultSize = 8.0
	family      = "Helvetica"
)

// Options control output details that do not change the content.
type Options struct {
	// NoCompress leaves content streams uncompressed so text can be found
	// in the raw file.
	NoCompress bool
	// Created pins the creation date; zero means now.
	Created time.Time
}

// Render writes doc as an A4 portrait PDF to w.
func Render(doc *story.Document, w io.Writer, opts Options) error {
	r := &renderer{
		pdf: gofpdf.New("P", "mm", "A4", ""),
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
	pdf := r.pdf

	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(true, Margin)
	pdf.SetCellMargin(cellPadX)
	pdf.SetCompression(!opts.NoCompress)
	if !opts.Created.IsZero() {
		pdf.SetCreationDate(opts.Created)
	}
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetKeywords(doc.Keywords, true)
	pdf.SetCreator("valuation", true)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-9)
		pdf.SetFont(family, "", 7)
		pdf.SetTextColor(90, 90, 90)
		footer := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		if doc.FileNo != "" {
			footer = r.text("File No "+doc.FileNo) + " | " + footer
		}
		pdf.CellFormat(0, 4, footer, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	for i, b := range doc.Blocks {
		switch b := b.(type) {
		case story.Heading:
			r.heading(b)
		case story.Paragraph:
			r.paragraph(b)
		case story.Spacer:
			pdf.Ln(b.Height)
		case story.PageBreak:
			pdf.AddPage()
		case story.Bullets:
			r.bullets(b)
		case story.Table:
			r.table(b)
		default:
			return fmt.Errorf("render pdf: block %d: unsupported %T", i, b)
		}
		if pdf.Err() {
			return fmt.Errorf("render pdf: block %d: %w", i, pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

type renderer struct {
	pdf *gofpdf.Fpdf
	enc *encoding.Encoder
}

// text maps UTF-8 to the Windows-1252 bytes the core fonts expect. The rupee
// sign has no 1252 code point and is spelled out.
func (r *renderer) text(s string) string {
	s = strings.ReplaceAll(s, "₹", "Rs.")
	out, err := r.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

// lineHeight is the leading for a font size in points.
func lineHeight(size float64) float64 { return size * 0.3528 * 1.25 }

func sizeOr(size, def float64) float64 {
	if size <= 0 {
		return def
	}
	return size
}

func align(a story.Align) string {
	if a == "" {
		return string(story.Left)
	}
	return string(a)
}

// keep adds a page when h more millimetres would cross the bottom margin.
func (r *renderer) keep(h float64) {
	_, pageH := r.pdf.GetPageSize()
	_, top, _, bottom := r.pdf.GetMargins()
	if r.pdf.GetY()+h > pageH-bottom && r.pdf.GetY() > top {
		r.pdf.AddPage()
	}
}

func (r *renderer) heading(h story.Heading) {
	size := sizeOr(h.Size, 12)
	r.pdf.SetFont(family, "B", size)
	r.pdf.SetTextColor(h.Color.R, h.Color.G, h.Color.B)
	lh := lineHeight(size)
	r.keep(lh * 3)
	r.pdf.MultiCell(0, lh, r.text(h.Text), "", align(h.Align), false)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(1.5)
}

func (r *renderer) paragraph(p story.Paragraph) {
	size := sizeOr(p.Size, 9)
	style := ""
	if p.Bold {
		style = "B"
	}
	r.pdf.SetFont(family, style, size)
	lh := lineHeight(size)
	txt := r.text(p.Text)
	w, _ := r.contentWidth()
	r.keep(float64(max(1, len(r.pdf.SplitLines([]byte(txt), w)))) * lh)
	r.pdf.MultiCell(0, lh, txt, "", align(p.Align), false)
	r.pdf.Ln(1)
}

func (r *renderer) contentWidth() (float64, float64) {
	pageW, _ := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()
	return pageW - left - right, left
}

func (r *renderer) bullets(b story.Bullets) {
	size := sizeOr(b.Size, 9)
	lh := lineHeight(size)
	const indent = 5.0
	w, left := r.contentWidth()

	for _, item := range b.Items {
		r.pdf.SetFont(family, "", size)
		txt := r.text(item)
		n := max(1, len(r.pdf.SplitLines([]byte(txt), w-indent)))
		r.keep(float64(n) * lh)

		r.pdf.SetX(left)
		r.pdf.CellFormat(indent, lh, "\x95", "", 0, "C", false, 0, "")
		r.pdf.MultiCell(w-indent, lh, txt, "", "L", false)
		r.pdf.Ln(0.8)
	}
}

type cell struct {
	x, w  float64
	lines [][]byte
	align string
	style string
}

func (r *renderer) table(t story.Table) {
	size := sizeOr(t.Size, defaultSize)
	_, left := r.contentWidth()

	for i, row := range t.Rows {
		rowSize := size
		if row.Style == story.Section {
			rowSize = size + 2
		}
		lh := lineHeight(rowSize)

		cells := r.layoutRow(t, i, row, left, rowSize)
		n := 1
		for _, c := range cells {
			n = max(n, len(c.lines))
		}
		h := float64(n)*lh + 2*cellPadY
		r.keep(h)
		y := r.pdf.GetY()

		fill, fillOK := rowFill(t, row.Style)
		for _, c := range cells {
			if fillOK {
				r.pdf.SetFillColor(fill.R, fill.G, fill.B)
				r.pdf.Rect(c.x, y, c.w, h, "F")
			}
			if !t.Borderless {
				r.pdf.SetDrawColor(0, 0, 0)
				r.pdf.SetLineWidth(0.18)
				r.pdf.Rect(c.x, y, c.w, h, "D")
			}

			if row.Style == story.Section {
				r.pdf.SetTextColor(255, 255, 255)
			} else {
				r.pdf.SetTextColor(0, 0, 0)
			}
			r.pdf.SetFont(family, c.style, rowSize)
			for k, line := range c.lines {
				r.pdf.SetXY(c.x, y+cellPadY+float64(k)*lh)
				r.pdf.CellFormat(c.w, lh, string(line), "", 0, c.align, false, 0, "")
			}
		}
		r.pdf.SetTextColor(0, 0, 0)
		r.pdf.SetXY(left, y+h)
	}
}

// layoutRow splits each cell of row i into lines at its column width. A
// section row is one cell across the whole table.
func (r *renderer) layoutRow(t story.Table, i int, row story.Row, left, size float64) []cell {
	if row.Style == story.Section {
		r.pdf.SetFont(family, "B", size)
		txt := r.text(t.Cell(i, 0))
		return []cell{{x: left, w: t.Width(), lines: r.pdf.SplitLines([]byte(txt), t.Width()), align: "L", style: "B"}}
	}

	cells := make([]cell, 0, len(t.Widths))
	x := left
	for c, w := range t.Widths {
		style := ""
		if row.Style == story.Header || t.Bold(c) {
			style = "B"
		}
		r.pdf.SetFont(family, style, size)
		txt := r.text(t.Cell(i, c))
		cells = append(cells, cell{
			x:     x,
			w:     w,
			lines: r.pdf.SplitLines([]byte(txt), w),
			align: align(t.Align(c)),
			style: style,
		})
		x += w
	}
	return cells
}

// rowFill returns the background for a row style, defaulting header rows to
// light grey and section rows to navy.
func rowFill(t story.Table, s story.RowStyle) (story.RGB, bool) {
	switch s {
	case story.Header:
		if t.HeaderFill == (story.RGB{}) {
			return story.LightGrey, true
		}
		return t.HeaderFill, true
	case story.Section:
		if t.SectionFill == (story.RGB{}) {
			return story.Navy, true
		}
		return t.SectionFill, true
	}
	return story.RGB{}, false
}
