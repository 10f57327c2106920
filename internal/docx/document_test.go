package docx_test

// Notes:
// - Packages are verified by unzipping the output and decoding document.xml
//   with namespace-agnostic struct tags. encoding/xml matches on local names
//   when the tag carries no namespace, so "p" matches "w:p".
// - Element ordering is checked on the raw XML with string indexes.

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
)

const testStyles = `<?xml version="1.0" encoding="UTF-8"?><w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`

type tVal struct {
	Val string `xml:"val,attr"`
}

type tRun struct {
	Bold  *struct{} `xml:"rPr>b"`
	Color tVal      `xml:"rPr>color"`
	Text  string    `xml:"t"`
}

type tPara struct {
	Style tVal   `xml:"pPr>pStyle"`
	Runs  []tRun `xml:"r"`
}

func (p tPara) text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

type tCell struct {
	Paras []tPara `xml:"p"`
}

type tRow struct {
	Header *struct{} `xml:"trPr>tblHeader"`
	Cells  []tCell   `xml:"tc"`
}

type tTable struct {
	Style tVal   `xml:"tblPr>tblStyle"`
	Grid  []tVal `xml:"tblGrid>gridCol"`
	Rows  []tRow `xml:"tr"`
}

type tPgSz struct {
	W      int    `xml:"w,attr"`
	H      int    `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

type tPgMar struct {
	Top  int `xml:"top,attr"`
	Left int `xml:"left,attr"`
}

type tDoc struct {
	Body struct {
		Paragraphs []tPara `xml:"p"`
		Tables     []tTable `xml:"tbl"`
		PgSz       tPgSz    `xml:"sectPr>pgSz"`
		PgMar      tPgMar   `xml:"sectPr>pgMar"`
	} `xml:"body"`
}

// readParts unzips a package into name -> content.
func readParts(t *testing.T, data []byte) (map[string]string, []string) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	parts := make(map[string]string)
	var order []string
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(b)
		order = append(order, f.Name)
	}
	return parts, order
}

func decodeDocument(t *testing.T, raw string) tDoc {
	t.Helper()

	var doc tDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal document.xml: %v\n%s", err, raw)
	}
	return doc
}

func newDoc(t *testing.T, cfg docx.Config) *docx.Document {
	t.Helper()

	if cfg.Styles == "" {
		cfg.Styles = testStyles
	}
	d, err := docx.New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func serialize(t *testing.T, d *docx.Document) (map[string]string, []string) {
	t.Helper()

	data, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	return readParts(t, data)
}

// ---------------------------------------------------------------------------
// TestNew - Config validation
// ---------------------------------------------------------------------------

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     docx.Config
		wantErr error
	}{
		{
			name:    "empty styles rejected",
			cfg:     docx.Config{},
			wantErr: docx.ErrEmptyStyles,
		},
		{
			name: "zero page uses defaults",
			cfg:  docx.Config{Styles: testStyles},
		},
		{
			name: "margins wider than page rejected",
			cfg: docx.Config{Styles: testStyles, Page: docx.PageSetup{
				Size: docx.PageLetter, Margin: 7000,
			}},
			wantErr: docx.ErrInvalidPage,
		},
		{
			name: "negative margin rejected",
			cfg: docx.Config{Styles: testStyles, Page: docx.PageSetup{
				Size: docx.PageA4, Margin: -1,
			}},
			wantErr: docx.ErrInvalidPage,
		},
		{
			name: "missing size rejected",
			cfg: docx.Config{Styles: testStyles, Page: docx.PageSetup{
				Margin: docx.TwipsPerInch,
			}},
			wantErr: docx.ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := docx.New(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Parts - Package structure
// ---------------------------------------------------------------------------

func TestDocument_Parts(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	parts, order := serialize(t, d)

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/_rels/document.xml.rels",
	}
	for _, name := range want {
		if _, ok := parts[name]; !ok {
			t.Errorf("package missing part %s", name)
		}
	}
	if order[0] != "[Content_Types].xml" {
		t.Errorf("first part = %s, want [Content_Types].xml", order[0])
	}
	if parts["word/styles.xml"] != testStyles {
		t.Error("styles.xml should be the configured style sheet verbatim")
	}
	if !strings.Contains(parts["docProps/app.xml"], "<Application>"+docx.DefaultApplication+"</Application>") {
		t.Errorf("app.xml missing default application:\n%s", parts["docProps/app.xml"])
	}
	for name, content := range parts {
		if name == "word/styles.xml" {
			continue
		}
		if err := xml.Unmarshal([]byte(content), new(struct{})); err != nil {
			t.Errorf("%s is not well-formed XML: %v", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Headings - Heading styles and clamping
// ---------------------------------------------------------------------------

func TestDocument_Headings(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddHeading("One", 1)
	d.AddHeading("Four", 4)
	d.AddHeading("Too deep", 9)
	d.AddHeading("Too shallow", 0)

	parts, _ := serialize(t, d)
	doc := decodeDocument(t, parts["word/document.xml"])

	want := []struct{ style, text string }{
		{"Heading1", "One"},
		{"Heading4", "Four"},
		{"Heading4", "Too deep"},
		{"Heading1", "Too shallow"},
	}
	if len(doc.Body.Paragraphs) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(doc.Body.Paragraphs), len(want))
	}
	for i, w := range want {
		p := doc.Body.Paragraphs[i]
		if p.Style.Val != w.style || p.text() != w.text {
			t.Errorf("paragraph %d = (%q, %q), want (%q, %q)", i, p.Style.Val, p.text(), w.style, w.text)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Paragraphs - Styles, colors and escaping
// ---------------------------------------------------------------------------

func TestDocument_Paragraphs(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddParagraph("plain", docx.StyleNormal)
	d.AddParagraph("item", docx.StyleBullet)
	d.AddParagraph("step", docx.StyleNumber)
	d.AddParagraph("done", docx.StyleNormal).SetColor(docx.RGB(0, 128, 0))
	d.AddParagraph(`a < b & "c"`, docx.StyleNormal)
	d.AddParagraph("", docx.StyleNormal)

	parts, _ := serialize(t, d)
	doc := decodeDocument(t, parts["word/document.xml"])
	paras := doc.Body.Paragraphs
	if len(paras) != 6 {
		t.Fatalf("got %d paragraphs, want 6", len(paras))
	}

	if paras[0].Style.Val != "" {
		t.Errorf("normal paragraph style = %q, want none", paras[0].Style.Val)
	}
	if paras[1].Style.Val != docx.StyleListBullet {
		t.Errorf("bullet style = %q, want %q", paras[1].Style.Val, docx.StyleListBullet)
	}
	if paras[2].Style.Val != docx.StyleListNumber {
		t.Errorf("number style = %q, want %q", paras[2].Style.Val, docx.StyleListNumber)
	}
	if got := paras[3].Runs[0].Color.Val; got != "008000" {
		t.Errorf("color = %q, want 008000", got)
	}
	if paras[0].Runs[0].Color.Val != "" {
		t.Error("plain paragraph should have no color")
	}
	for i, p := range paras[:5] {
		if len(p.Runs) > 0 && p.Runs[0].Bold != nil {
			t.Errorf("paragraph %d should not be bold", i)
		}
	}
	if got := paras[4].text(); got != `a < b & "c"` {
		t.Errorf("escaped text round-trip = %q", got)
	}
	if len(paras[5].Runs) != 0 {
		t.Errorf("empty paragraph has %d runs, want 0", len(paras[5].Runs))
	}
	if !strings.Contains(parts["word/document.xml"], `xml:space="preserve"`) {
		t.Error("text runs should preserve whitespace")
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Table - Grid, header row and ragged rows
// ---------------------------------------------------------------------------

func TestDocument_Table(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddTable(
		[]string{"Name", "Status"},
		[][]string{
			{"a", "ok"},
			{"b"},
			{"c", "x", "extra"},
		},
	)

	parts, _ := serialize(t, d)
	doc := decodeDocument(t, parts["word/document.xml"])
	if len(doc.Body.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Body.Tables))
	}
	got := doc.Body.Tables[0]

	if got.Style.Val != docx.StyleTable {
		t.Errorf("table style = %q, want %q", got.Style.Val, docx.StyleTable)
	}
	if len(got.Grid) != 2 {
		t.Errorf("grid columns = %d, want 2", len(got.Grid))
	}
	if len(got.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(got.Rows))
	}
	if got.Rows[0].Header == nil {
		t.Error("first row should repeat as header")
	}
	for i, row := range got.Rows {
		if len(row.Cells) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row.Cells))
		}
	}
	if run := got.Rows[0].Cells[0].Paras[0].Runs[0]; run.Bold == nil || run.Text != "Name" {
		t.Errorf("header cell = %+v, want bold Name", run)
	}
	if run := got.Rows[1].Cells[1].Paras[0].Runs[0]; run.Bold != nil {
		t.Error("body cells should not be bold")
	}
	if n := len(got.Rows[2].Cells[1].Paras[0].Runs); n != 0 {
		t.Errorf("padded cell has %d runs, want 0", n)
	}
	if txt := got.Rows[3].Cells[1].Paras[0].text(); txt != "x" {
		t.Errorf("truncated row last cell = %q, want x", txt)
	}
}

func TestDocument_EmptyTableSkipped(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddTable(nil, [][]string{{"a"}})

	parts, _ := serialize(t, d)
	if strings.Contains(parts["word/document.xml"], "<w:tbl>") {
		t.Error("table without headers should not be written")
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Order - Body preserves append order
// ---------------------------------------------------------------------------

func TestDocument_Order(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddHeading("Title", 1)
	d.AddTable([]string{"H"}, [][]string{{"v"}})
	d.AddSeparator(strings.Repeat("_", 80))
	d.AddParagraph("after", docx.StyleNormal)

	parts, _ := serialize(t, d)
	raw := parts["word/document.xml"]

	idx := []int{
		strings.Index(raw, "Title"),
		strings.Index(raw, "<w:tbl>"),
		strings.Index(raw, strings.Repeat("_", 80)),
		strings.Index(raw, "after"),
		strings.Index(raw, "<w:sectPr>"),
	}
	for i := 1; i < len(idx); i++ {
		if idx[i-1] < 0 || idx[i] < 0 || idx[i-1] >= idx[i] {
			t.Fatalf("elements out of order: %v\n%s", idx, raw)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDocument_PageSetup - Section properties
// ---------------------------------------------------------------------------

func TestDocument_PageSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       docx.PageSetup
		wantW      int
		wantH      int
		wantOrient string
		wantMargin int
	}{
		{
			name:       "default letter portrait",
			page:       docx.PageSetup{},
			wantW:      12240,
			wantH:      15840,
			wantMargin: 1440,
		},
		{
			name:       "a4 landscape",
			page:       docx.PageSetup{Size: docx.PageA4, Landscape: true, Margin: 720},
			wantW:      16838,
			wantH:      11906,
			wantOrient: "landscape",
			wantMargin: 720,
		},
		{
			name:       "legal",
			page:       docx.PageSetup{Size: docx.PageLegal, Margin: 1440},
			wantW:      12240,
			wantH:      20160,
			wantMargin: 1440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDoc(t, docx.Config{Page: tt.page})
			parts, _ := serialize(t, d)
			doc := decodeDocument(t, parts["word/document.xml"])

			sz := doc.Body.PgSz
			if sz.W != tt.wantW || sz.H != tt.wantH || sz.Orient != tt.wantOrient {
				t.Errorf("pgSz = %+v, want w=%d h=%d orient=%q", sz, tt.wantW, tt.wantH, tt.wantOrient)
			}
			if doc.Body.PgMar.Top != tt.wantMargin || doc.Body.PgMar.Left != tt.wantMargin {
				t.Errorf("pgMar = %+v, want %d", doc.Body.PgMar, tt.wantMargin)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Properties - Core properties
// ---------------------------------------------------------------------------

func TestDocument_Properties(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	d := newDoc(t, docx.Config{Properties: docx.Properties{
		Title:       "Features & Status",
		Subject:     "Analysis",
		Creator:     "Docs Team",
		Application: "custom-app",
		Created:     created,
	}})

	parts, _ := serialize(t, d)
	core := parts["docProps/core.xml"]

	for _, want := range []string{
		"<dc:title>Features &amp; Status</dc:title>",
		"<dc:subject>Analysis</dc:subject>",
		"<dc:creator>Docs Team</dc:creator>",
		"2024-03-15T10:30:00Z",
	} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml missing %q\n%s", want, core)
		}
	}
	if !strings.Contains(parts["docProps/app.xml"], "custom-app") {
		t.Error("app.xml should carry the configured application")
	}
}

func TestDocument_EmptyPropertiesOmitted(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	parts, _ := serialize(t, d)
	core := parts["docProps/core.xml"]

	for _, tag := range []string{"<dc:title>", "<dc:subject>", "<dc:creator>"} {
		if strings.Contains(core, tag) {
			t.Errorf("core.xml should omit empty %s", tag)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Deterministic - Same input, same bytes
// ---------------------------------------------------------------------------

func TestDocument_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []byte {
		d := newDoc(t, docx.Config{Properties: docx.Properties{
			Created: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}})
		d.AddHeading("Title", 1)
		d.AddParagraph("body", docx.StyleNormal)
		data, err := d.Bytes()
		if err != nil {
			t.Fatalf("Bytes() error = %v", err)
		}
		return data
	}

	if !bytes.Equal(build(), build()) {
		t.Error("identical documents with a fixed timestamp should serialize identically")
	}
}

// ---------------------------------------------------------------------------
// TestDocument_WriteTo - Byte count and writer errors
// ---------------------------------------------------------------------------

func TestDocument_WriteTo(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddParagraph("hello", docx.StyleNormal)

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() n = %d, buffer has %d bytes", n, buf.Len())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDocument_WriteTo_WriterError(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddParagraph(strings.Repeat("x", 64*1024), docx.StyleNormal)

	_, err := d.WriteTo(failWriter{})
	if !errors.Is(err, docx.ErrWritePackage) {
		t.Errorf("WriteTo() error = %v, want ErrWritePackage", err)
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Save - Writing to disk
// ---------------------------------------------------------------------------

func TestDocument_Save(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	d.AddHeading("Saved", 2)

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	parts, _ := readParts(t, data)
	if !strings.Contains(parts["word/document.xml"], "Saved") {
		t.Error("saved document missing heading text")
	}
}

func TestDocument_Save_MissingDir(t *testing.T) {
	t.Parallel()

	d := newDoc(t, docx.Config{})
	if err := d.Save(filepath.Join(t.TempDir(), "nope", "out.docx")); err == nil {
		t.Error("Save() into missing directory should fail")
	}
}

// ---------------------------------------------------------------------------
// TestColor_Hex - Color formatting
// ---------------------------------------------------------------------------

func TestColor_Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    docx.Color
		want string
	}{
		{docx.RGB(0, 128, 0), "008000"},
		{docx.RGB(255, 0, 0), "FF0000"},
		{docx.RGB(255, 165, 0), "FFA500"},
		{docx.RGB(0, 0, 255), "0000FF"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
