// Package braille implements a dot matrix canvas printed with Unicode
// braille patterns. Every character cell holds 2x4 dots. Dot storage,
// glyph composition and line rasterization come from ntcharts; this
// package adds per-cell colors and styled output.
package braille

import (
	"image"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"
)

const (
	CellWidth  = 2
	CellHeight = 4
)

// dotNumber[y][x] is the braille dot number of dot (x,y) within a cell.
var dotNumber = [CellHeight][CellWidth]int{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Canvas is a width x height dot matrix. Dots are addressed from
// (0,0) at the top left to (width,height) at the bottom right; both
// edges are inclusive.
type Canvas struct {
	width, height int
	cols, rows    int
	grid          *graph.BrailleGrid
	colors        []lipgloss.Color
}

// New returns a blank canvas of width x height dots.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cols:   width/CellWidth + 1,
		rows:   height/CellHeight + 1,
	}
	// the grid addresses dots directly, its value range is unused
	c.grid = graph.NewBrailleGrid(c.cols, c.rows, 0, 1, 0, 1)
	c.colors = make([]lipgloss.Color, c.cols*c.rows)
	return c
}

// Size returns the size of the canvas in dots.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Cells returns the size of the canvas in character cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) index(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col, row := x/CellWidth, y/CellHeight
	if col >= c.cols || row >= c.rows {
		return 0, false
	}
	return row*c.cols + col, true
}

// Set sets the dot at (x,y). The color of its cell is unchanged.
// Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if _, ok := c.index(x, y); ok {
		c.grid.Set(image.Point{X: x, Y: y})
	}
}

// SetColored sets the dot at (x,y) and colors its cell with col.
func (c *Canvas) SetColored(x, y int, col lipgloss.Color) {
	if i, ok := c.index(x, y); ok {
		c.grid.Set(image.Point{X: x, Y: y})
		if col != "" {
			c.colors[i] = col
		}
	}
}

// IsSet reports whether the dot at (x,y) is set.
func (c *Canvas) IsSet(x, y int) bool {
	if _, ok := c.index(x, y); !ok {
		return false
	}
	var dots runes.PatternDots
	runes.SetPatternDots(c.grid.BraillePatterns()[y/CellHeight][x/CellWidth], &dots)
	return dots[dotNumber[y%CellHeight][x%CellWidth]]
}

// ColorAt returns the color of the cell containing dot (x,y).
func (c *Canvas) ColorAt(x, y int) lipgloss.Color {
	if i, ok := c.index(x, y); ok {
		return c.colors[i]
	}
	return ""
}

// LineColored draws a straight line from (x1,y1) to (x2,y2), both
// ends included.
func (c *Canvas) LineColored(x1, y1, x2, y2 int, col lipgloss.Color) {
	for _, p := range graph.GetLinePoints(image.Point{X: x1, Y: y1}, image.Point{X: x2, Y: y2}) {
		c.SetColored(p.X, p.Y, col)
	}
}

// Clear unsets all dots and colors.
func (c *Canvas) Clear() {
	c.grid.Clear()
	for i := range c.colors {
		c.colors[i] = ""
	}
}

// Rows returns the canvas as one string per cell row. Colored cells
// are painted with r; a nil r yields plain text.
func (c *Canvas) Rows(r *lipgloss.Renderer) []string {
	patterns := c.grid.BraillePatterns()
	rows := make([]string, c.rows)
	var sb, run strings.Builder
	for row := 0; row < c.rows; row++ {
		sb.Reset()
		var current lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == "" || r == nil {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(r.NewStyle().Foreground(current).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			glyph := patterns[row][col]
			var color lipgloss.Color
			if glyph != runes.BrailleBlockOffset {
				color = c.colors[row*c.cols+col]
			}
			if color != current {
				flush()
				current = color
			}
			run.WriteRune(glyph)
		}
		flush()
		rows[row] = sb.String()
	}
	return rows
}

// Frame returns the rows of the canvas joined by newlines.
func (c *Canvas) Frame(r *lipgloss.Renderer) string {
	return strings.Join(c.Rows(r), "\n")
}
