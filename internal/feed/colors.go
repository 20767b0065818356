package feed

import "strings"

// DefaultColor is used for unknown or missing color names.
const DefaultColor = "#888888"

// issueColors maps the spreadsheet's color names to display colors.
var issueColors = map[string]string{
	"purple":      "#a78bfa",
	"green":       "#00d4aa",
	"orange":      "#ff8c42",
	"yellow":      "#ffd166",
	"dark_orange": "#ff8c42",
	"dark_teal":   "#00d4aa",
	"blue":        "#4a9eff",
}

// ResolveColor maps a color name from the feed to a display color. The
// lookup trims whitespace and ignores case; unknown names get DefaultColor.
func ResolveColor(name string) string {
	if c, ok := issueColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return DefaultColor
}
