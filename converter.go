package md2docx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.Sink                 = (*documentSink)(nil)
)

// Converter orchestrates the Markdown-to-DOCX conversion pipeline.
// Create with NewConverter and call Convert or ConvertFile. A Converter
// holds no open resources and needs no Close.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader // internal loader
	publicAssetLoader AssetLoader        // public loader (from WithAssetLoader)
	styles            string             // resolved word/styles.xml
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
}

// publicToInternalAdapter wraps public AssetLoader to internal assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithAssetPath).
// Returns error if the style sheet cannot be loaded or lacks required styles.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{now: time.Now},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.LinePreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// resolveStyle resolves the style input (name or path) to style sheet XML
// and checks it defines every style the writer references.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	var content string
	if fileutil.IsFilePath(input) {
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		content = string(data)
	} else {
		loaded, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
		}
		content = loaded
	}

	if err := assets.ValidateStyleSheet(content); err != nil {
		return fmt.Errorf("style %q: %w", input, convertAssetError(err))
	}
	c.styles = content
	return nil
}

// Convert runs the pipeline and returns the DOCX package, the optional HTML
// preview and element counts. Empty Markdown yields a valid empty document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Page.Validate(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := docx.New(docx.Config{
		Styles:     c.styles,
		Page:       input.Page.pageSetup(),
		Properties: c.properties(input.Metadata),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentBuild, err)
	}

	sink := newDocumentSink(doc)
	if err := pipeline.Scan(ctx, mdContent, sink); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentBuild, err)
	}

	res := &ConvertResult{DOCX: data, Stats: sink.stats}

	if input.HTML {
		htmlContent, err := c.toHTML(ctx, mdContent, htmlTitle(input.Metadata, sink.firstTitle))
		if err != nil {
			return nil, err
		}
		res.HTML = htmlContent
	}

	return res, nil
}

// ConvertFile reads inPath, converts it and writes the DOCX to outPath.
// When input.HTML is set the preview is written next to it with an .html
// extension. input.Markdown is ignored.
func (c *Converter) ConvertFile(ctx context.Context, inPath, outPath string, input Input) (*ConvertResult, error) {
	data, err := os.ReadFile(inPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	input.Markdown = string(data)

	res, err := c.Convert(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outPath, res.DOCX, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	if input.HTML {
		// The preview lands beside outPath; relative links must still
		// resolve against the Markdown's directory.
		preview, err := pipeline.AnchorPreviewLinks(res.HTML, filepath.Dir(inPath))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
		}
		res.HTML = preview
		if err := fileutil.WriteFileAtomic(HTMLPath(outPath), []byte(preview), filePermissions); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
		}
	}

	return res, nil
}

// HTMLPath returns where ConvertFile writes the preview for outPath.
// The extension becomes .html; an output that already ends in .html gets a
// second one so the preview never replaces the document.
func HTMLPath(outPath string) string {
	if strings.EqualFold(filepath.Ext(outPath), ".html") {
		return outPath + ".html"
	}
	return fileutil.ReplaceExt(outPath, ".html")
}

// filePermissions for written documents.
const filePermissions = 0o644

// toHTML renders the preview. Context errors pass through unwrapped.
func (c *Converter) toHTML(ctx context.Context, content, title string) (string, error) {
	out, err := c.htmlConverter.ToHTML(ctx, content, title)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return out, nil
}

// properties builds the core properties for a conversion.
func (c *Converter) properties(meta *Metadata) docx.Properties {
	props := docx.Properties{
		Application: docx.DefaultApplication,
		Created:     c.cfg.now(),
	}
	if meta != nil {
		props.Title = strings.TrimSpace(meta.Title)
		props.Creator = strings.TrimSpace(meta.Author)
		props.Subject = strings.TrimSpace(meta.Subject)
	}
	return props
}

// htmlTitle prefers the metadata title, then the first level-1 heading.
func htmlTitle(meta *Metadata, firstHeading string) string {
	if meta != nil && strings.TrimSpace(meta.Title) != "" {
		return strings.TrimSpace(meta.Title)
	}
	return firstHeading
}
