package pipeline

import "regexp"

// Inline markup patterns, applied in this order. Bold runs before italic so
// that ** is never read as two single emphasis markers.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
	codePattern   = regexp.MustCompile("`(.*?)`")
	linkPattern   = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
)

// StripInline removes bold, italic, inline code and link markup, keeping
// the enclosed text. Link targets are dropped.
//
// The pass repeats until the text stops changing, so nested constructs such
// as [[a](b)](c) collapse fully and StripInline(StripInline(s)) == StripInline(s).
// Each changing pass removes at least two bytes, which bounds the loop.
func StripInline(text string) string {
	for {
		next := stripInlineOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func stripInlineOnce(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	return text
}
