package termplot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vdobler/termplot/internal/braille"
)

// Canvas is the dot matrix a chart draws on. Coordinates are in dots,
// (0,0) is the top left corner.
type Canvas interface {
	// Set sets a single dot without changing the color of its cell.
	Set(x, y int)

	// SetColored sets a single dot and colors its cell.
	SetColored(x, y int, c lipgloss.Color)

	// LineColored draws a straight line between two dots.
	LineColored(x1, y1, x2, y2 int, c lipgloss.Color)

	// Clear resets the canvas to blank.
	Clear()

	// Frame serializes the canvas, one line per character row.
	// Colors are emitted according to the profile of r.
	Frame(r *lipgloss.Renderer) string
}

var _ Canvas = (*braille.Canvas)(nil)

// NewCanvas returns the braille canvas used by charts.
func NewCanvas(width, height int) Canvas {
	return braille.New(width, height)
}
