package pipeline

import (
	"regexp"
	"strings"
)

// TableDelimiter separates cells in a Markdown table row.
const TableDelimiter = "|"

// HorizontalRule is the only line recognized as a rule.
const HorizontalRule = "---"

// SeparatorWidth is the number of underscores emitted for a rule.
const SeparatorWidth = 80

// MaxHeadingLevel is the deepest heading the classifier recognizes.
const MaxHeadingLevel = 4

// Separator is the text emitted for a horizontal rule.
var Separator = strings.Repeat("_", SeparatorWidth)

var (
	// ATX heading with 1-4 hashes followed by a space
	headingPattern = regexp.MustCompile(`^(#{1,4}) (.*)$`)

	// Ordered list item prefix
	numberedPattern = regexp.MustCompile(`^\d+\.\s`)
)

// LineKind is the category assigned to a line outside a table.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineRule
	LineBullet
	LineNumbered
	LineParagraph
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineHeading:
		return "heading"
	case LineRule:
		return "rule"
	case LineBullet:
		return "bullet"
	case LineNumbered:
		return "numbered"
	case LineParagraph:
		return "paragraph"
	default:
		return "blank"
	}
}

// Classified is the result of classifying one line.
// Text is the raw content without its block marker; inline markup is
// still present.
type Classified struct {
	Kind  LineKind
	Level int // headings only
	Text  string
}

// IsTableRow reports whether a line belongs to a table block.
func IsTableRow(line string) bool {
	return strings.Contains(line, TableDelimiter)
}

// ClassifyLine assigns a non-table line to its block kind.
// Table detection is stateful and handled by the Scanner.
func ClassifyLine(line string) Classified {
	// Heading prefixes are matched on the raw line: indented hashes are text.
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Classified{Kind: LineHeading, Level: len(m[1]), Text: strings.TrimSpace(m[2])}
	}

	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == HorizontalRule:
		return Classified{Kind: LineRule, Text: Separator}
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		return Classified{Kind: LineBullet, Text: strings.TrimSpace(trimmed[2:])}
	case numberedPattern.MatchString(trimmed):
		return Classified{Kind: LineNumbered, Text: strings.TrimSpace(numberedPattern.ReplaceAllString(trimmed, ""))}
	case trimmed != "":
		return Classified{Kind: LineParagraph, Text: trimmed}
	default:
		return Classified{Kind: LineBlank}
	}
}
