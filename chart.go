package termplot

import (
	"fmt"
	"log/slog"
)

// Chart controls the drawing. It is not safe for concurrent use.
type Chart[X Value[X], Y Value[Y]] struct {
	// Canvas width and height in dots.
	width, height int

	// Horizontal range, fixed at construction.
	xmin, xmax float64

	// Vertical range, trained on every registered shape.
	y Bounds

	// Layers in drawing order and labels in registration order.
	layers []Layer[X, Y]
	labels []Label

	canvas  Canvas
	borders bool

	Theme  Theme
	logger *slog.Logger
}

// Layer is one registered shape and its color.
type Layer[X Value[X], Y Value[Y]] struct {
	Shape Shape[X, Y]
	Color Color
}

// Label names a shape in the legend.
type Label struct {
	Text  string
	Color Color
}

// Make creates a chart with a canvas of width x height dots showing
// the x range [xmin,xmax]. Width and height must be at least MinSize.
func Make[X Value[X], Y Value[Y]](width, height int, xmin, xmax float64) (*Chart[X, Y], error) {
	if width < MinSize {
		return nil, fmt.Errorf("%w, %d is provided", ErrTooNarrow, width)
	}
	if height < MinSize {
		return nil, fmt.Errorf("%w, %d is provided", ErrTooShort, height)
	}
	return &Chart[X, Y]{
		width:  width,
		height: height,
		xmin:   xmin,
		xmax:   xmax,
		y:      NewBounds(),
		canvas: NewCanvas(width, height),
		Theme:  DefaultTheme,
		logger: slog.Default(),
	}, nil
}

// New is like Make but panics if width or height is less than MinSize.
func New[X Value[X], Y Value[Y]](width, height int, xmin, xmax float64) *Chart[X, Y] {
	c, err := Make[X, Y](width, height, xmin, xmax)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Default returns a 120 x 60 chart for x in [-10,10].
func Default[X Value[X], Y Value[Y]]() *Chart[X, Y] {
	return New[X, Y](120, 60, -10, 10)
}

// NewFloat returns a chart on real axes.
func NewFloat(width, height int, xmin, xmax float64) *Chart[Float, Float] {
	return New[Float, Float](width, height, xmin, xmax)
}

// DefaultFloat returns a default chart on real axes.
func DefaultFloat() *Chart[Float, Float] {
	return Default[Float, Float]()
}

// SetLogger replaces the logger used for debug output. A nil logger
// restores slog.Default.
func (c *Chart[X, Y]) SetLogger(l *slog.Logger) *Chart[X, Y] {
	if l == nil {
		l = slog.Default()
	}
	c.logger = l
	return c
}

// SetCanvas replaces the canvas. It must be at least width x height
// dots large.
func (c *Chart[X, Y]) SetCanvas(cv Canvas) *Chart[X, Y] {
	c.canvas = cv
	return c
}

// Size returns the canvas size in dots.
func (c *Chart[X, Y]) Size() (width, height int) { return c.width, c.height }

// XRange returns the fixed horizontal range.
func (c *Chart[X, Y]) XRange() (xmin, xmax float64) { return c.xmin, c.xmax }

// YRange returns the current vertical range. Before the first
// registration it is [+Inf,-Inf].
func (c *Chart[X, Y]) YRange() (ymin, ymax float64) { return c.y.Min, c.y.Max }

// Layers returns the registered shapes in drawing order.
func (c *Chart[X, Y]) Layers() []Layer[X, Y] { return c.layers }

// Labels returns the legend entries.
func (c *Chart[X, Y]) Labels() []Label { return c.labels }

// LinePlot registers shape in the default line color of the theme.
func (c *Chart[X, Y]) LinePlot(shape Shape[X, Y]) *Chart[X, Y] {
	return c.LinePlotWithTags(shape, "", c.Theme.Line)
}

// LinePlotWithTags registers shape drawn in color. A non-empty label
// adds a legend entry. The vertical range is widened to include all
// values of shape visible in the horizontal range.
//
// A shape contributing no value at all widens the range to include 0.
func (c *Chart[X, Y]) LinePlotWithTags(shape Shape[X, Y], label string, color Color) *Chart[X, Y] {
	c.layers = append(c.layers, Layer[X, Y]{Shape: shape, Color: color})
	if label != "" {
		c.labels = append(c.labels, Label{Text: label, Color: color})
	}

	ys := shape.values(c.xScale(), c.width)
	c.y.Train(ys)
	c.logger.Debug("registered shape",
		"kind", shape.Kind(), "label", label, "values", len(ys),
		"ymin", c.y.Min, "ymax", c.y.Max)

	return c
}

func (c *Chart[X, Y]) xScale() Scale {
	return NewScale(c.xmin, c.xmax, 0, float64(c.width))
}

func (c *Chart[X, Y]) yScale() Scale {
	return NewScale(c.y.Min, c.y.Max, 0, float64(c.height))
}

// Borders draws a dashed bounding rectangle. The rectangle is kept on
// all later renderings.
func (c *Chart[X, Y]) Borders() {
	c.borders = true
	c.drawBorders()
}

func (c *Chart[X, Y]) drawBorders() {
	c.vline(0, c.Theme.Border)
	c.vline(c.width, c.Theme.Border)
	c.hline(0, c.Theme.Border)
	c.hline(c.height, c.Theme.Border)
}

// Axis draws dashed x and y axes through the origin if it is in range.
func (c *Chart[X, Y]) Axis() {
	if c.xmin <= 0 && c.xmax >= 0 {
		c.vline(dot(c.xScale().Linear(0)), c.Theme.Axis)
	}
	if c.y.Min <= 0 && c.y.Max >= 0 {
		c.hline(dot(c.yScale().Linear(0)), c.Theme.Axis)
	}
}

// vline draws the vertical dashed line at column i.
func (c *Chart[X, Y]) vline(i int, color Color) {
	if i <= c.width {
		GrobDashes{x0: i, y0: 0, x1: i, y1: c.height, color: color}.Draw(c.canvas)
	}
}

// hline draws the horizontal dashed line at height j counted from
// the bottom.
func (c *Chart[X, Y]) hline(j int, color Color) {
	if j <= c.height {
		row := c.height - j
		GrobDashes{x0: 0, y0: row, x1: c.width, y1: row, color: color}.Draw(c.canvas)
	}
}

// Figures draws all registered shapes onto the canvas.
func (c *Chart[X, Y]) Figures() {
	for _, layer := range c.layers {
		for _, grob := range c.Rasterize(layer) {
			grob.Draw(c.canvas)
		}
	}
}

// redraw repaints the canvas from scratch.
func (c *Chart[X, Y]) redraw() {
	c.canvas.Clear()
	if c.borders {
		c.drawBorders()
	}
	c.Figures()
	c.Axis()
}
