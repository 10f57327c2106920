package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// DefaultApplication is written to docProps/app.xml when none is set.
const DefaultApplication = "go-md2docx"

// filePermissions for saved documents: rw-r--r--.
const filePermissions = 0o644

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

// numberingXML defines numId 1 (bullets) and numId 2 (decimal), which the
// ListBullet and ListNumber styles reference. Numbering continues across
// the whole document, as Word does for the built-in list styles.
const numberingXML = xmlHeader + `<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>` +
	`<w:abstractNum w:abstractNumId="1"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>` +
	`</w:numbering>`

const documentOpen = xmlHeader + `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

const documentClose = `</w:body></w:document>`

// part is one file in the package.
type part struct {
	name    string
	content []byte
}

// WriteTo serializes the document as a .docx package.
// Implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	modified := d.cfg.Properties.Created
	if modified.IsZero() {
		modified = time.Now()
	}

	for _, p := range d.parts() {
		hdr := &zip.FileHeader{Name: p.name, Method: zip.Deflate, Modified: modified}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return cw.n, fmt.Errorf("%w: %s: %v", ErrWritePackage, p.name, err)
		}
		if _, err := fw.Write(p.content); err != nil {
			return cw.n, fmt.Errorf("%w: %s: %v", ErrWritePackage, p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("%w: %v", ErrWritePackage, err)
	}
	return cw.n, nil
}

// Bytes returns the serialized package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to path, replacing any existing file.
// The file is written to a temporary name and renamed into place, so a
// failed save leaves the previous file untouched.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, filePermissions)
}

// parts returns the package parts in archive order.
// [Content_Types].xml comes first, as Word expects.
func (d *Document) parts() []part {
	return []part{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/core.xml", d.coreXML()},
		{"docProps/app.xml", d.appXML()},
		{"word/document.xml", d.documentXML()},
		{"word/styles.xml", []byte(d.cfg.Styles)},
		{"word/numbering.xml", []byte(numberingXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
	}
}

// documentXML renders the body followed by the section properties.
func (d *Document) documentXML() []byte {
	var buf bytes.Buffer
	buf.WriteString(documentOpen)
	for _, el := range d.elements {
		el.writeXML(&buf, d.cfg.Page)
	}
	writeSectPr(&buf, d.cfg.Page)
	buf.WriteString(documentClose)
	return buf.Bytes()
}

// writeSectPr writes page size, orientation and margins.
func writeSectPr(buf *bytes.Buffer, page PageSetup) {
	w, h := page.dimensions()
	buf.WriteString("<w:sectPr>")
	if page.Landscape {
		fmt.Fprintf(buf, `<w:pgSz w:w="%d" w:h="%d" w:orient="landscape"/>`, w, h)
	} else {
		fmt.Fprintf(buf, `<w:pgSz w:w="%d" w:h="%d"/>`, w, h)
	}
	m := page.Margin
	fmt.Fprintf(buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`, m, m, m, m)
	buf.WriteString("</w:sectPr>")
}

// coreXML renders docProps/core.xml.
func (d *Document) coreXML() []byte {
	props := d.cfg.Properties
	created := props.Created
	if created.IsZero() {
		created = time.Now()
	}
	stamp := created.UTC().Format(time.RFC3339)

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	writeElement(&buf, "dc:title", props.Title)
	writeElement(&buf, "dc:subject", props.Subject)
	writeElement(&buf, "dc:creator", props.Creator)
	writeElement(&buf, "cp:lastModifiedBy", props.Creator)
	fmt.Fprintf(&buf, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	fmt.Fprintf(&buf, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp)
	buf.WriteString(`</cp:coreProperties>`)
	return buf.Bytes()
}

// appXML renders docProps/app.xml.
func (d *Document) appXML() []byte {
	app := d.cfg.Properties.Application
	if app == "" {
		app = DefaultApplication
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`)
	writeElement(&buf, "Application", app)
	buf.WriteString(`</Properties>`)
	return buf.Bytes()
}

// writeElement writes <name>text</name>, skipping empty values.
func writeElement(buf *bytes.Buffer, name, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(buf, "<%s>", name)
	escapeText(buf, text)
	fmt.Fprintf(buf, "</%s>", name)
}

// countingWriter tracks bytes written for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Compile-time interface check.
var _ io.WriterTo = (*Document)(nil)
