package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// element is one body child of word/document.xml.
type element interface {
	writeXML(buf *bytes.Buffer, page PageSetup)
}

// Document is an append-only WordprocessingML document.
// Create with New, append with the Add methods, and finish with WriteTo or Save.
type Document struct {
	cfg      Config
	elements []element
}

// New creates an empty Document.
// Returns ErrEmptyStyles without a style sheet and ErrInvalidPage if the
// page setup leaves no text area. A zero Page uses DefaultPageSetup.
func New(cfg Config) (*Document, error) {
	if cfg.Styles == "" {
		return nil, ErrEmptyStyles
	}
	if cfg.Page == (PageSetup{}) {
		cfg.Page = DefaultPageSetup()
	}
	if err := cfg.Page.validate(); err != nil {
		return nil, err
	}
	return &Document{cfg: cfg}, nil
}

// AddHeading appends a heading. Levels outside 1-4 are clamped.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	level = min(max(level, MinHeadingLevel), MaxHeadingLevel)
	p := &Paragraph{text: text, style: ParagraphStyle(StyleHeadingPrefix + strconv.Itoa(level))}
	d.elements = append(d.elements, p)
	return p
}

// AddParagraph appends a paragraph with the given style.
// The returned Paragraph may be used to color its run.
func (d *Document) AddParagraph(text string, style ParagraphStyle) *Paragraph {
	p := &Paragraph{text: text, style: style}
	d.elements = append(d.elements, p)
	return p
}

// AddSeparator appends a Normal paragraph holding a visual rule.
func (d *Document) AddSeparator(text string) *Paragraph {
	return d.AddParagraph(text, StyleNormal)
}

// AddTable appends a grid table with a bold header row.
// The header determines the column count: extra row cells are ignored and
// missing ones are left empty.
func (d *Document) AddTable(headers []string, rows [][]string) *Table {
	t := &Table{headers: headers, rows: rows}
	d.elements = append(d.elements, t)
	return t
}

// Paragraph is a single-run paragraph.
// Only table header cells set bold.
type Paragraph struct {
	text  string
	style ParagraphStyle
	color *Color
	bold  bool
}

// SetColor sets the foreground color of the paragraph's run.
func (p *Paragraph) SetColor(c Color) {
	p.color = &c
}

func (p *Paragraph) writeXML(buf *bytes.Buffer, _ PageSetup) {
	buf.WriteString("<w:p>")
	if p.style != StyleNormal {
		fmt.Fprintf(buf, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, p.style)
	}
	// An empty paragraph has no run, matching what Word writes.
	if p.text != "" {
		buf.WriteString("<w:r>")
		if p.bold || p.color != nil {
			buf.WriteString("<w:rPr>")
			if p.bold {
				buf.WriteString("<w:b/>")
			}
			if p.color != nil {
				fmt.Fprintf(buf, `<w:color w:val="%s"/>`, p.color.Hex())
			}
			buf.WriteString("</w:rPr>")
		}
		buf.WriteString(`<w:t xml:space="preserve">`)
		escapeText(buf, p.text)
		buf.WriteString("</w:t></w:r>")
	}
	buf.WriteString("</w:p>")
}

// Table is a grid of single-paragraph cells.
type Table struct {
	headers []string
	rows    [][]string
}

func (t *Table) writeXML(buf *bytes.Buffer, page PageSetup) {
	cols := len(t.headers)
	if cols == 0 {
		return
	}
	colWidth := page.textWidth() / cols

	buf.WriteString("<w:tbl><w:tblPr>")
	fmt.Fprintf(buf, `<w:tblStyle w:val="%s"/>`, StyleTable)
	buf.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	buf.WriteString(`<w:tblLook w:val="04A0" w:firstRow="1" w:lastRow="0" w:firstColumn="1" w:lastColumn="0" w:noHBand="0" w:noVBand="1"/>`)
	buf.WriteString("</w:tblPr><w:tblGrid>")
	for range cols {
		fmt.Fprintf(buf, `<w:gridCol w:w="%d"/>`, colWidth)
	}
	buf.WriteString("</w:tblGrid>")

	writeRow(buf, t.headers, cols, colWidth, true)
	for _, row := range t.rows {
		writeRow(buf, row, cols, colWidth, false)
	}
	buf.WriteString("</w:tbl>")
}

// writeRow writes exactly cols cells, padding or truncating cells.
func writeRow(buf *bytes.Buffer, cells []string, cols, colWidth int, header bool) {
	buf.WriteString("<w:tr>")
	if header {
		buf.WriteString("<w:trPr><w:tblHeader/></w:trPr>")
	}
	for i := range cols {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		fmt.Fprintf(buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr>`, colWidth)
		p := Paragraph{text: text, bold: header}
		p.writeXML(buf, PageSetup{})
		buf.WriteString("</w:tc>")
	}
	buf.WriteString("</w:tr>")
}

// escapeText writes s with XML special characters escaped.
// Characters that are invalid in XML are replaced by U+FFFD.
func escapeText(buf *bytes.Buffer, s string) {
	// xml.EscapeText only fails when the writer fails; bytes.Buffer never does.
	_ = xml.EscapeText(buf, []byte(s))
}
