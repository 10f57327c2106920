package pipeline

// ParagraphStyle selects how a paragraph is rendered.
type ParagraphStyle int

const (
	StyleDefault ParagraphStyle = iota
	StyleBullet
	StyleNumbered
)

// String returns the style name used in logs and test failures.
func (s ParagraphStyle) String() string {
	switch s {
	case StyleBullet:
		return "bullet"
	case StyleNumbered:
		return "numbered"
	default:
		return "default"
	}
}

// Color is a 24-bit RGB foreground color.
type Color struct {
	R, G, B uint8
}

// Status marker colors.
var (
	ColorGreen  = Color{R: 0, G: 128, B: 0}
	ColorRed    = Color{R: 255, G: 0, B: 0}
	ColorOrange = Color{R: 255, G: 165, B: 0}
	ColorBlue   = Color{R: 0, G: 0, B: 255}
)

// Paragraph is a styled run of plain text.
// Color is nil unless the text starts with a status marker.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
	Color *Color
}

// Table is a parsed Markdown table.
// Every row has exactly len(Headers) cells; missing cells are empty strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Sink receives blocks in document order.
type Sink interface {
	AddHeading(text string, level int)
	AddParagraph(p Paragraph)
	AddSeparator(text string)
	AddTable(t *Table)
}
