package docx

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for document operations.
var (
	ErrEmptyStyles  = errors.New("style sheet cannot be empty")
	ErrInvalidPage  = errors.New("invalid page setup")
	ErrWritePackage = errors.New("failed to write document package")
)

// Style IDs referenced by the writer. The style sheet must define them.
const (
	StyleHeadingPrefix = "Heading"
	StyleListBullet    = "ListBullet"
	StyleListNumber    = "ListNumber"
	StyleTable         = "LightGridAccent1"
)

// ParagraphStyle is a paragraph style ID. The zero value is Normal.
type ParagraphStyle string

const (
	StyleNormal ParagraphStyle = ""
	StyleBullet ParagraphStyle = StyleListBullet
	StyleNumber ParagraphStyle = StyleListNumber
)

// Heading levels accepted by AddHeading. Out-of-range levels are clamped.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 4
)

// TwipsPerInch converts inches to OOXML twentieths of a point.
const TwipsPerInch = 1440

// Color is a 24-bit RGB run color.
type Color struct {
	R, G, B uint8
}

// RGB returns a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as RRGGBB, the form used by w:color.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// PageSize is a portrait paper size in twips.
type PageSize struct {
	Width  int
	Height int
}

// Paper sizes.
var (
	PageLetter = PageSize{Width: 12240, Height: 15840} // 8.5 x 11 in
	PageA4     = PageSize{Width: 11906, Height: 16838} // 210 x 297 mm
	PageLegal  = PageSize{Width: 12240, Height: 20160} // 8.5 x 14 in
)

// PageSetup describes the single document section.
type PageSetup struct {
	Size      PageSize
	Landscape bool
	Margin    int // twips, applied to all sides
}

// DefaultPageSetup returns Letter portrait with 1 inch margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{Size: PageLetter, Margin: TwipsPerInch}
}

// dimensions returns the page width and height after orientation.
func (p PageSetup) dimensions() (width, height int) {
	if p.Landscape {
		return p.Size.Height, p.Size.Width
	}
	return p.Size.Width, p.Size.Height
}

// textWidth returns the width between the left and right margins.
func (p PageSetup) textWidth() int {
	w, _ := p.dimensions()
	return w - 2*p.Margin
}

// validate checks that the margins leave room for text.
func (p PageSetup) validate() error {
	if p.Size.Width <= 0 || p.Size.Height <= 0 {
		return fmt.Errorf("%w: page size %dx%d", ErrInvalidPage, p.Size.Width, p.Size.Height)
	}
	if p.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", ErrInvalidPage, p.Margin)
	}
	w, h := p.dimensions()
	if 2*p.Margin >= w || 2*p.Margin >= h {
		return fmt.Errorf("%w: margin %d leaves no text area", ErrInvalidPage, p.Margin)
	}
	return nil
}

// Properties are the package core and app properties.
type Properties struct {
	Title       string
	Subject     string
	Creator     string
	Application string
	Created     time.Time
}

// Config configures a new Document.
type Config struct {
	Styles     string // word/styles.xml content (required)
	Page       PageSetup
	Properties Properties
}
