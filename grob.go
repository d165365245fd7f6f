package termplot

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Grob is a graphical object in canvas coordinates.
type Grob interface {
	Draw(c Canvas)
	String() string
}

// -------------------------------------------------------------------------
// Grob Point

type GrobPoint struct {
	x, y  int
	color Color
}

func (point GrobPoint) Draw(c Canvas) {
	c.SetColored(point.x, point.y, lipgloss.Color(point.color))
}

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%d,%d %s)", point.x, point.y, point.color)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	x0, y0, x1, y1 int
	color          Color
}

func (line GrobLine) Draw(c Canvas) {
	c.LineColored(line.x0, line.y0, line.x1, line.y1, lipgloss.Color(line.color))
}

func (line GrobLine) String() string {
	return fmt.Sprintf("Line(%d,%d -> %d,%d %s)", line.x0, line.y0, line.x1, line.y1, line.color)
}

// -------------------------------------------------------------------------
// Grob Dashes

// GrobDashes is a horizontal or vertical line of which only every
// third dot is set.
type GrobDashes struct {
	x0, y0, x1, y1 int
	color          Color
}

func (d GrobDashes) Draw(c Canvas) {
	if d.x0 == d.x1 {
		for j := d.y0; j <= d.y1; j++ {
			if j%3 == 0 {
				setDot(c, d.x0, j, d.color)
			}
		}
		return
	}
	for i := d.x0; i <= d.x1; i++ {
		if i%3 == 0 {
			setDot(c, i, d.y0, d.color)
		}
	}
}

func (d GrobDashes) String() string {
	return fmt.Sprintf("Dashes(%d,%d -> %d,%d %s)", d.x0, d.y0, d.x1, d.y1, d.color)
}

func setDot(c Canvas, x, y int, color Color) {
	if color == NoColor {
		c.Set(x, y)
		return
	}
	c.SetColored(x, y, lipgloss.Color(color))
}
