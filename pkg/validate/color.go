package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the sixteen named console colors.
type Color int

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var colorNames = [...]string{
	Black:       "Black",
	DarkBlue:    "DarkBlue",
	DarkGreen:   "DarkGreen",
	DarkCyan:    "DarkCyan",
	DarkRed:     "DarkRed",
	DarkMagenta: "DarkMagenta",
	DarkYellow:  "DarkYellow",
	Gray:        "Gray",
	DarkGray:    "DarkGray",
	Blue:        "Blue",
	Green:       "Green",
	Cyan:        "Cyan",
	Red:         "Red",
	Magenta:     "Magenta",
	Yellow:      "Yellow",
	White:       "White",
}

// Dark variants use the normal foreground codes, bright ones the hi-intensity codes.
var colorAttributes = [...]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkCyan:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkMagenta: color.FgMagenta,
	DarkYellow:  color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Cyan:        color.FgHiCyan,
	Red:         color.FgHiRed,
	Magenta:     color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,
}

// Colors returns all colors in console order.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Attribute returns the matching foreground attribute.
func (c Color) Attribute() color.Attribute {
	if !c.valid() {
		return color.Reset
	}
	return colorAttributes[c]
}

// Sprint renders a in this color.
func (c Color) Sprint(a ...interface{}) string {
	return color.New(c.Attribute()).Sprint(a...)
}

func (c Color) valid() bool {
	return c >= Black && c <= White
}

// ParseColor resolves a color name, ignoring case and surrounding
// whitespace. A decimal ordinal of a defined color is also accepted.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Black, false
	}
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Color(n).valid() {
		return Color(n), true
	}
	return Black, false
}
