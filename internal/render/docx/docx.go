// Package docx renders a story to an Office Open XML word-processing
// package.
package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	wdoc "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
	"github.com/google/uuid"

	"valuation/internal/story"
)

// Page geometry in twentieths of a point.
const (
	pageWidth  = 11906 // A4
	pageHeight = 16838
	margin     = 720 // 0.5 in
	cellMargin = 80
	bulletStop = 360
	twipsPerMM = 56.6929
	font       = "Arial"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	corePart   = "docProps/core.xml"
	thumbnail  = "docProps/thumbnail.jpeg"
	footerPart = "word/footer1.xml"
	footerType = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	footerRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

// Options control package metadata.
type Options struct {
	// ID becomes the core properties identifier; a random one when nil.
	ID uuid.UUID
	// Created stamps the core properties; zero means now.
	Created time.Time
}

// Render writes doc as a .docx package to w.
func Render(doc *story.Document, w io.Writer, opts Options) error {
	if opts.ID == uuid.Nil {
		opts.ID = uuid.New()
	}
	if opts.Created.IsZero() {
		opts.Created = time.Now().UTC()
	}

	rd, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("render docx: %w", err)
	}
	setDefaults(rd.DocStyles)
	dropThumbnail(rd)
	rd.Document.Body.Children = nil

	lastTable := false
	for _, blk := range doc.Blocks {
		lastTable = false
		switch blk := blk.(type) {
		case story.Heading:
			addParagraph(rd, paragraph(blk.Text, paraStyle{
				size: orDefault(blk.Size, 12), bold: true, align: blk.Align, color: blk.Color, after: 120,
			}))
		case story.Paragraph:
			addParagraph(rd, paragraph(blk.Text, paraStyle{
				size: orDefault(blk.Size, 9), bold: blk.Bold, align: blk.Align, after: 60,
			}))
		case story.Spacer:
			rd.AddEmptyParagraph().GetCT().Property = &ctypes.ParagraphProp{
				Spacing: &ctypes.Spacing{
					Before:   ptr[uint64](0),
					After:    ptr[uint64](0),
					Line:     ptr(max(1, twips(blk.Height))),
					LineRule: ptr(stypes.LineSpacingRuleExact),
				},
			}
		case story.PageBreak:
			rd.AddPageBreak()
		case story.Bullets:
			for _, item := range blk.Items {
				addParagraph(rd, paragraph("•\t"+item, paraStyle{size: orDefault(blk.Size, 9), bullet: true, after: 40}))
			}
		case story.Table:
			if err := addTable(rd, table(blk)); err != nil {
				return fmt.Errorf("render docx: table: %w", err)
			}
			lastTable = true
		}
	}
	if lastTable {
		rd.AddEmptyParagraph()
	}

	footerID, err := addFooter(rd, doc.FileNo)
	if err != nil {
		return fmt.Errorf("render docx: footer: %w", err)
	}
	rd.Document.Body.SectPr = &ctypes.SectionProp{
		FooterReference: &ctypes.FooterReference{Type: stypes.HdrFtrDefault, ID: footerID},
		PageSize:        &ctypes.PageSize{Width: ptr[uint64](pageWidth), Height: ptr[uint64](pageHeight)},
		PageMargin: &ctypes.PageMargin{
			Top: ptr(margin), Right: ptr(margin), Bottom: ptr(margin), Left: ptr(margin),
			Header: ptr(360), Footer: ptr(360), Gutter: ptr(0),
		},
	}

	core, err := coreProps(doc, opts)
	if err != nil {
		return fmt.Errorf("render docx: core properties: %w", err)
	}
	rd.FileMap.Store(corePart, core)

	if err := rd.Write(w); err != nil {
		return fmt.Errorf("render docx: %w", err)
	}
	return nil
}

func setDefaults(s *ctypes.Styles) {
	if s.DocDefaults == nil {
		s.DocDefaults = &ctypes.DocDefault{}
	}
	s.DocDefaults.RunProp = &ctypes.RunPropDefault{RunProp: &ctypes.RunProperty{
		Fonts:  &ctypes.RunFonts{Ascii: font, HAnsi: font, CS: font},
		Size:   ctypes.NewFontSize(18),
		SizeCs: ctypes.NewFontSizeCS(18),
	}}
	s.DocDefaults.ParaProp = &ctypes.ParaPropDefault{ParaProp: &ctypes.ParagraphProp{
		Spacing: &ctypes.Spacing{After: ptr[uint64](0), Line: ptr(240), LineRule: ptr(stypes.LineSpacingRuleAuto)},
	}}
}

// dropThumbnail removes the preview image the base template ships with.
func dropThumbnail(rd *wdoc.RootDoc) {
	rd.FileMap.Delete(thumbnail)
	rels := rd.RootRels.Relationships[:0]
	for _, r := range rd.RootRels.Relationships {
		if r.Target != thumbnail {
			rels = append(rels, r)
		}
	}
	rd.RootRels.Relationships = rels
}

type paraStyle struct {
	size   float64
	bold   bool
	align  story.Align
	color  story.RGB
	white  bool
	after  int
	bullet bool
}

func addParagraph(rd *wdoc.RootDoc, p ctypes.Paragraph) {
	*rd.AddEmptyParagraph().GetCT() = p
}

func paragraph(text string, st paraStyle) ctypes.Paragraph {
	pPr := &ctypes.ParagraphProp{
		Spacing:       &ctypes.Spacing{Before: ptr[uint64](0), After: ptr(uint64(st.after))},
		Justification: ctypes.NewGenSingleStrVal(jc(st.align)),
	}
	if st.bullet {
		pPr.Tabs = ctypes.Tabs{Tab: []ctypes.Tab{{Val: stypes.CustTabStopLeft, Position: bulletStop}}}
		pPr.Indent = &ctypes.Indent{Left: ptr(bulletStop), Hanging: ptr[uint64](bulletStop)}
	}

	run := &ctypes.Run{Property: runProp(st)}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.Children = append(run.Children, ctypes.RunChild{Break: &ctypes.Break{}})
		}
		if before, after, ok := strings.Cut(line, "\t"); ok && st.bullet {
			run.Children = append(run.Children,
				ctypes.RunChild{Text: preserved(before)},
				ctypes.RunChild{Tab: &ctypes.Empty{}})
			line = after
		}
		run.Children = append(run.Children, ctypes.RunChild{Text: preserved(line)})
	}
	return ctypes.Paragraph{Property: pPr, Children: []ctypes.ParagraphChild{{Run: run}}}
}

func runProp(st paraStyle) *ctypes.RunProperty {
	hp := uint64(halfPoints(st.size))
	rp := &ctypes.RunProperty{Size: ctypes.NewFontSize(hp), SizeCs: ctypes.NewFontSizeCS(hp)}
	if st.bold {
		rp.Bold = &ctypes.OnOff{}
	}
	switch {
	case st.white:
		rp.Color = ctypes.NewColor("FFFFFF")
	case st.color != (story.RGB{}):
		rp.Color = ctypes.NewColor(hex(st.color))
	}
	return rp
}

func preserved(s string) *ctypes.Text {
	return &ctypes.Text{Text: s, Space: ptr(ctypes.TextSpacePreserve)}
}

func table(t story.Table) ctypes.Table {
	size := orDefault(t.Size, 8)
	var grid ctypes.Grid
	total := 0
	for _, w := range t.Widths {
		total += twips(w)
		grid.Col = append(grid.Col, ctypes.Column{Width: ptr(uint64(twips(w)))})
	}

	border := ctypes.Border{Val: stypes.BorderStyleSingle, Color: ptr("000000"), Space: ptr("0")}
	if t.Borderless {
		border = ctypes.Border{Val: stypes.BorderStyleNil}
	}
	tbl := ctypes.Table{
		TableProp: ctypes.TableProp{
			Width: ctypes.NewTableWidth(total, stypes.TableWidthDxa),
			Borders: &ctypes.TableBorders{
				Top: &border, Left: &border, Bottom: &border, Right: &border,
				InsideH: &border, InsideV: &border,
			},
			Layout: ctypes.NewTableLayout(stypes.TableLayoutFixed),
			CellMargin: &ctypes.CellMargins{
				Left:  ctypes.NewTableWidth(cellMargin, stypes.TableWidthDxa),
				Right: ctypes.NewTableWidth(cellMargin, stypes.TableWidthDxa),
			},
		},
		Grid: grid,
	}

	for i, row := range t.Rows {
		tr := &ctypes.Row{Property: &ctypes.RowProperty{CantSplit: &ctypes.OnOff{}}}
		if row.Style == story.Section {
			tr.Contents = append(tr.Contents, cell(t.Cell(i, 0), total, len(t.Widths),
				hex(fillOr(t.SectionFill, story.Navy)), paraStyle{size: size + 2, bold: true, white: true}))
		} else {
			fill := ""
			if row.Style == story.Header {
				fill = hex(fillOr(t.HeaderFill, story.LightGrey))
			}
			for c, w := range t.Widths {
				tr.Contents = append(tr.Contents, cell(t.Cell(i, c), twips(w), 1, fill, paraStyle{
					size:  size,
					bold:  row.Style == story.Header || t.Bold(c),
					align: t.Align(c),
				}))
			}
		}
		tbl.RowContents = append(tbl.RowContents, ctypes.RowContent{Row: tr})
	}
	return tbl
}

func cell(s string, width, span int, fill string, st paraStyle) ctypes.TRCellContent {
	pr := &ctypes.CellProperty{Width: ctypes.NewTableWidth(width, stypes.TableWidthDxa)}
	if span > 1 {
		pr.GridSpan = ctypes.NewDecimalNum(span)
	}
	if fill != "" {
		pr.Shading = &ctypes.Shading{Val: stypes.ShdClear, Color: ptr("auto"), Fill: ptr(fill)}
	}
	p := paragraph(s, st)
	return ctypes.TRCellContent{Cell: &ctypes.Cell{
		Property: pr,
		Contents: []ctypes.TCBlockContent{{Paragraph: &p}},
	}}
}

// addTable appends tbl to the document body. The library's table handle
// only exposes style and indent, so the table goes in through the body
// decoder.
func addTable(rd *wdoc.RootDoc, tbl ctypes.Table) error {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	body := xml.StartElement{Name: xml.Name{Local: "w:body"}}
	if err := enc.EncodeToken(body); err != nil {
		return err
	}
	if err := tbl.MarshalXML(enc, xml.StartElement{}); err != nil {
		return err
	}
	if err := enc.EncodeToken(body.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	decoded := wdoc.NewBody(rd)
	if err := xml.NewDecoder(&buf).Decode(decoded); err != nil {
		return err
	}
	rd.Document.Body.Children = append(rd.Document.Body.Children, decoded.Children...)
	return nil
}

// addFooter stores the page footer part and returns its relationship id.
// PAGE and NUMPAGES are simple fields, which the run model does not carry.
func addFooter(rd *wdoc.RootDoc, fileNo string) (string, error) {
	label := "Page "
	if fileNo != "" {
		label = "File No " + fileNo + " | Page "
	}
	run := func(s string) *ctypes.Run {
		return &ctypes.Run{
			Property: &ctypes.RunProperty{Size: ctypes.NewFontSize(14), SizeCs: ctypes.NewFontSizeCS(14)},
			Children: []ctypes.RunChild{{Text: preserved(s)}},
		}
	}
	runName := xml.StartElement{Name: xml.Name{Local: "w:r"}}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	ftr := xml.StartElement{
		Name: xml.Name{Local: "w:ftr"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:w"}, Value: nsW}},
	}
	para := xml.StartElement{Name: xml.Name{Local: "w:p"}}
	pPr := &ctypes.ParagraphProp{Justification: ctypes.NewGenSingleStrVal(stypes.JustificationCenter)}

	field := func(instr string) error {
		fld := xml.StartElement{
			Name: xml.Name{Local: "w:fldSimple"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "w:instr"}, Value: " " + instr + " "}},
		}
		if err := enc.EncodeToken(fld); err != nil {
			return err
		}
		if err := enc.EncodeElement(run("1"), runName); err != nil {
			return err
		}
		return enc.EncodeToken(fld.End())
	}

	steps := []func() error{
		func() error { return enc.EncodeToken(ftr) },
		func() error { return enc.EncodeToken(para) },
		func() error { return enc.EncodeElement(pPr, xml.StartElement{Name: xml.Name{Local: "w:pPr"}}) },
		func() error { return enc.EncodeElement(run(label), runName) },
		func() error { return field("PAGE") },
		func() error { return enc.EncodeElement(run(" of "), runName) },
		func() error { return field("NUMPAGES") },
		func() error { return enc.EncodeToken(para.End()) },
		func() error { return enc.EncodeToken(ftr.End()) },
		enc.Flush,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return "", err
		}
	}

	rd.FileMap.Store(footerPart, buf.Bytes())
	if err := rd.ContentType.AddOverride("/"+footerPart, footerType); err != nil {
		return "", err
	}
	id := "rId" + strconv.Itoa(rd.Document.IncRelationID())
	rd.Document.DocRels.Relationships = append(rd.Document.DocRels.Relationships, &wdoc.Relationship{
		ID:     id,
		Type:   footerRel,
		Target: "footer1.xml",
	})
	return id, nil
}

type dcTerm struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type coreProperties struct {
	XMLName    xml.Name `xml:"cp:coreProperties"`
	CP         string   `xml:"xmlns:cp,attr"`
	DC         string   `xml:"xmlns:dc,attr"`
	DCTerms    string   `xml:"xmlns:dcterms,attr"`
	XSI        string   `xml:"xmlns:xsi,attr"`
	Title      string   `xml:"dc:title"`
	Subject    string   `xml:"dc:subject"`
	Creator    string   `xml:"dc:creator"`
	Keywords   string   `xml:"cp:keywords"`
	Identifier string   `xml:"dc:identifier"`
	Created    dcTerm   `xml:"dcterms:created"`
	Modified   dcTerm   `xml:"dcterms:modified"`
}

func coreProps(doc *story.Document, opts Options) ([]byte, error) {
	ts := dcTerm{Type: "dcterms:W3CDTF", Value: opts.Created.UTC().Format(time.RFC3339)}
	out, err := xml.Marshal(coreProperties{
		CP:         "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:         "http://purl.org/dc/elements/1.1/",
		DCTerms:    "http://purl.org/dc/terms/",
		XSI:        "http://www.w3.org/2001/XMLSchema-instance",
		Title:      doc.Title,
		Subject:    doc.Subject,
		Creator:    doc.Author,
		Keywords:   doc.Keywords,
		Identifier: "urn:uuid:" + opts.ID.String(),
		Created:    ts,
		Modified:   ts,
	})
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func fillOr(c, def story.RGB) story.RGB {
	if c == (story.RGB{}) {
		return def
	}
	return c
}

func ptr[T any](v T) *T { return &v }

func twips(mm float64) int { return int(mm*twipsPerMM + 0.5) }

func halfPoints(pt float64) int { return int(pt*2 + 0.5) }

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func hex(c story.RGB) string { return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B) }

func jc(a story.Align) stypes.Justification {
	switch a {
	case story.Center:
		return stypes.JustificationCenter
	case story.Right:
		return stypes.JustificationRight
	}
	return stypes.JustificationLeft
}
