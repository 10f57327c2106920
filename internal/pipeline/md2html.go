package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML preview rendering failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHTMLTitle is used when the preview has no document title.
const DefaultHTMLTitle = "Document"

// DefaultHighlightStyle is the chroma style used for code blocks.
const DefaultHighlightStyle = "github"

// baseCSS keeps the preview readable without external assets.
const baseCSS = `body { font-family: Calibri, Arial, sans-serif; max-width: 50em; margin: 2em auto; line-height: 1.4; }
table { border-collapse: collapse; }
th, td { border: 1px solid #4F81BD; padding: 0.25em 0.5em; }
th { background: #D3DFEE; }
pre { padding: 0.5em; overflow-x: auto; }
`

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content, title string) (string, error)
}

// GoldmarkConverter renders the HTML preview using goldmark (pure Go).
// Unlike the DOCX scanner it implements full CommonMark + GFM, so the
// preview shows what the line scanner simplified away.
type GoldmarkConverter struct {
	md  goldmark.Markdown
	css string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(DefaultHighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe is not used: raw HTML in the source is escaped.
		),
	)
	return &GoldmarkConverter{md: md, css: baseCSS + highlightCSS(DefaultHighlightStyle)}
}

// highlightCSS renders the chroma class rules for the named style.
// Unknown names fall back to chroma's default style.
func highlightCSS(name string) string {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(name)); err != nil {
		return ""
	}
	return buf.String()
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultHTMLTitle
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, html.EscapeString(title), c.css, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
