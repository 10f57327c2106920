// Package md2docx converts Markdown documents to Word (.docx) files.
//
// # Quick Start
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\n✅ Done",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// ConvertFile reads and writes files directly; the output is written
// atomically through a temporary file in the same directory.
//
// # Conversion Pipeline
//
//  1. Line ending normalization and BOM removal
//  2. A single pass over the lines: headings (# to ####), --- separators,
//     bullet and numbered items, pipe tables and plain paragraphs
//  3. Inline markers (**bold**, *italic*, `code`, [links](url)) are stripped
//     to plain text
//  4. Paragraphs starting with ✅ ❌ ⚠ or 🆕 are colored green, red, orange
//     or blue
//  5. The blocks are written to a WordprocessingML package
//
// Nested lists, images and inline styling are not carried into the
// document. Set Input.HTML to also get a full CommonMark rendering of the
// same Markdown for comparison.
//
// # Configuration
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithStyle("classic"),
//	    md2docx.WithAssetPath("/path/to/custom/assets"),
//	)
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: content,
//	    Page:     &md2docx.PageSettings{Size: "a4", Orientation: "landscape", Margin: 0.75},
//	    Metadata: &md2docx.Metadata{Title: "Report", Author: "Ops"},
//	})
//
// # Custom Style Sheets
//
// A style is a word/styles.xml document. Custom sheets go in
// {assetPath}/styles/{name}.xml and must define Normal, Heading1 to
// Heading4, ListBullet, ListNumber and LightGridAccent1. Names missing from
// the asset directory fall back to the built-in sheets.
//
// # Error Handling
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	if errors.Is(err, md2docx.ErrReadMarkdown) {
//	    // input file missing or unreadable
//	}
package md2docx
