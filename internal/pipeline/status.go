package pipeline

import "strings"

// StatusMarker is a leading glyph that colors a paragraph.
type StatusMarker struct {
	Name   string
	Prefix string
	Color  Color
}

// StatusMarkers lists the recognized markers in match order.
// The warning sign is matched without its variation selector so both
// "⚠" and "⚠️" qualify.
var StatusMarkers = []StatusMarker{
	{Name: "success", Prefix: "\u2705", Color: ColorGreen},
	{Name: "failure", Prefix: "\u274C", Color: ColorRed},
	{Name: "warning", Prefix: "\u26A0", Color: ColorOrange},
	{Name: "new", Prefix: "\U0001F195", Color: ColorBlue},
}

// MatchStatusMarker returns the marker that text starts with, if any.
func MatchStatusMarker(text string) (StatusMarker, bool) {
	for _, m := range StatusMarkers {
		if strings.HasPrefix(text, m.Prefix) {
			return m, true
		}
	}
	return StatusMarker{}, false
}
