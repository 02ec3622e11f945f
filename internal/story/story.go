// Package story is the ordered list of layout blocks a report is made of.
// Renderers walk Document.Blocks top to bottom; nothing here knows about PDF
// or DOCX.
package story

// Align is horizontal text alignment.
type Align string

const (
	Left   Align = "L"
	Center Align = "C"
	Right  Align = "R"
)

// RGB is a colour with 0-255 channels.
type RGB struct{ R, G, B int }

var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	LightGrey = RGB{211, 211, 211}
	Navy      = RGB{0, 51, 102}
	Blue      = RGB{0, 0, 255}
)

// Block is one element of the story.
type Block interface {
	block()
}

// Document is a complete report: metadata plus its story.
type Document struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	FileNo   string
	Blocks   []Block
}

// Add appends blocks and returns the document for chaining.
func (d *Document) Add(b ...Block) *Document {
	d.Blocks = append(d.Blocks, b...)
	return d
}

// Heading is a bold single-paragraph title.
type Heading struct {
	Text  string
	Size  float64 // points
	Align Align
	Color RGB
}

// Paragraph is wrapped body text. Lines separated by "\n" stay separate.
type Paragraph struct {
	Text  string
	Size  float64
	Bold  bool
	Align Align
}

// Spacer is vertical whitespace in millimetres.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page.
type PageBreak struct{}

// Bullets is a list of paragraphs each prefixed with a bullet.
type Bullets struct {
	Items []string
	Size  float64
}

// RowStyle selects how a table row is painted.
type RowStyle int

const (
	Body RowStyle = iota
	// Header is a column-heading row: bold on a light fill.
	Header
	// Section is a heading row inside a table: bold white on a dark fill.
	Section
)

// Row is one table row. Cells beyond the table's column count are dropped;
// missing cells render empty.
type Row struct {
	Cells []string
	Style RowStyle
}

// Table is a grid of wrapped cells.
type Table struct {
	Widths      []float64 // millimetres
	Rows        []Row
	Aligns      []Align // per column, Left when absent
	Size        float64
	Borderless  bool
	HeaderFill  RGB
	SectionFill RGB
	BoldColumns []int
}

// Align returns the alignment of column i.
func (t Table) Align(i int) Align {
	if i < len(t.Aligns) && t.Aligns[i] != "" {
		return t.Aligns[i]
	}
	return Left
}

// Bold reports whether every body cell of column i is bold.
func (t Table) Bold(i int) bool {
	for _, c := range t.BoldColumns {
		if c == i {
			return true
		}
	}
	return false
}

// Cell returns the text of row r, column c, or "" when the row is short.
func (t Table) Cell(r, c int) string {
	if r >= len(t.Rows) || c >= len(t.Rows[r].Cells) {
		return ""
	}
	return t.Rows[r].Cells[c]
}

// Width returns the total table width.
func (t Table) Width() float64 {
	var w float64
	for _, c := range t.Widths {
		w += c
	}
	return w
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Spacer) block()    {}
func (PageBreak) block() {}
func (Bullets) block()   {}
func (Table) block()     {}

// Inch converts inches to millimetres; the layouts are measured in inches.
func Inch(in float64) float64 { return in * 25.4 }

// Text returns every piece of text in the document in story order. Used for
// searching rendered content independent of the output format.
func (d *Document) Text() []string {
	var out []string
	for _, b := range d.Blocks {
		switch b := b.(type) {
		case Heading:
			out = append(out, b.Text)
		case Paragraph:
			out = append(out, b.Text)
		case Bullets:
			out = append(out, b.Items...)
		case Table:
			for _, r := range b.Rows {
				out = append(out, r.Cells...)
			}
		}
	}
	return out
}

// PageBreaks counts explicit page breaks.
func (d *Document) PageBreaks() int {
	n := 0
	for _, b := range d.Blocks {
		if _, ok := b.(PageBreak); ok {
			n++
		}
	}
	return n
}
