package md2docx

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Default file names used when no input or output path is given.
const (
	DefaultInputPath  = "implemented_features_analysis.md"
	DefaultOutputPath = "Implemented_Features_Analysis.docx"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// PageSettings configures the document page layout.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// pageSetup converts validated settings to the writer's section layout.
// A nil receiver yields the defaults.
func (p *PageSettings) pageSetup() docx.PageSetup {
	if p == nil {
		p = DefaultPageSettings()
	}

	setup := docx.PageSetup{
		Size:      docx.PageLetter,
		Landscape: strings.EqualFold(p.Orientation, OrientationLandscape),
		Margin:    int(math.Round(p.Margin * docx.TwipsPerInch)),
	}
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		setup.Size = docx.PageA4
	case PageSizeLegal:
		setup.Size = docx.PageLegal
	}
	return setup
}

// Metadata is written to the document's core properties.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (may be empty)
	Page     *PageSettings // Page settings (optional, nil = defaults)
	Metadata *Metadata     // Core properties (optional)
	HTML     bool          // Also render an HTML preview
}

// Stats counts the elements written to the document.
type Stats struct {
	Headings   int
	Paragraphs int // plain paragraphs, including status paragraphs
	ListItems  int // bullet and numbered paragraphs
	Separators int
	Tables     int
}

// Total returns the number of body elements.
func (s Stats) Total() int {
	return s.Headings + s.Paragraphs + s.ListItems + s.Separators + s.Tables
}

// ConvertResult contains the outputs of a conversion.
type ConvertResult struct {
	DOCX  []byte // .docx package
	HTML  string // HTML preview, empty unless Input.HTML was set
	Stats Stats
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput string           // style name or file path
	assetPath  string           // custom asset directory
	now        func() time.Time // clock for document timestamps
}

// WithStyle selects the Word style sheet by name ("default", "classic") or
// by file path (any value containing a path separator).
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath loads style sheets from {path}/styles/{name}.xml, falling
// back to the built-in sheets for names the directory does not provide.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom style sheet loader.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithClock sets the clock used for the document's created/modified
// timestamps. Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("md2docx: WithClock requires a non-nil function")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}
