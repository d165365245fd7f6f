package termplot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is the color of dots and legend entries. It is either one of
// the 16 ANSI colors below or a hex RGB value like "#1f77b4". The zero
// Color leaves text uncolored.
type Color string

const (
	NoColor       Color = ""
	Black         Color = "0"
	Red           Color = "1"
	Green         Color = "2"
	Yellow        Color = "3"
	Blue          Color = "4"
	Magenta       Color = "5"
	Cyan          Color = "6"
	White         Color = "7"
	BrightBlack   Color = "8"
	BrightRed     Color = "9"
	BrightGreen   Color = "10"
	BrightYellow  Color = "11"
	BrightBlue    Color = "12"
	BrightMagenta Color = "13"
	BrightCyan    Color = "14"
	BrightWhite   Color = "15"
)

// BuiltinColors maps color names to colors.
var BuiltinColors = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"gray":           BrightBlack,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// DefaultPalette is cycled through when several series need distinct
// colors.
var DefaultPalette = Palette{Blue, Red, Green, Yellow, Magenta, Cyan}

// Palette is a list of colors.
type Palette []Color

// At returns the i'th color of p, wrapping around.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return NoColor
	}
	return p[i%len(p)]
}

// ParseColor parses a color name from BuiltinColors or a "#rrggbb"
// hex value.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return NoColor, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return Color(s), nil
	}
	if c, ok := BuiltinColors[s]; ok {
		return c, nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// Paint renders s in color c using r. Whether escape sequences are
// emitted is decided by the color profile of r.
func (c Color) Paint(r *lipgloss.Renderer, s string) string {
	if c == NoColor {
		return s
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.NewStyle().Foreground(lipgloss.Color(c)).Render(s)
}
