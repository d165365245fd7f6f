package termplot

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tdewolff/test"

	"github.com/vdobler/termplot/internal/braille"
)

func grobStrings(grobs []Grob) []string {
	s := make([]string, len(grobs))
	for i, g := range grobs {
		s[i] = g.String()
	}
	return s
}

func TestRasterizeSteps(t *testing.T) {
	c := NewFloat(64, 64, 0, 10)
	c.LinePlotWithTags(Steps([]XY{{X: 0, Y: 0}, {X: 10, Y: 10}}), "", Red)
	test.T(t, grobStrings(c.Rasterize(c.Layers()[0])), []string{
		"Line(0,0 -> 64,0 1)",
		"Line(0,64 -> 0,0 1)",
	})
}

func TestRasterizeBars(t *testing.T) {
	c := NewFloat(64, 64, 0, 10)
	c.LinePlotWithTags(Bars([]XY{{X: 0, Y: 0}, {X: 10, Y: 10}}), "", Red)
	test.T(t, grobStrings(c.Rasterize(c.Layers()[0])), []string{
		"Line(0,0 -> 64,0 1)",
		"Line(0,64 -> 0,0 1)",
		"Line(0,64 -> 0,64 1)",
		"Line(64,64 -> 64,0 1)",
	})
}

func TestStepsAndBarsHaveNoDiagonal(t *testing.T) {
	for _, shape := range []Shape[Float, Float]{
		Steps([]XY{{X: 0, Y: 0}, {X: 10, Y: 10}}),
		Bars([]XY{{X: 0, Y: 0}, {X: 10, Y: 10}}),
	} {
		cv := braille.New(64, 64)
		c := NewFloat(64, 64, 0, 10).SetCanvas(cv)
		c.LinePlot(shape)
		c.Figures()
		test.That(t, !cv.IsSet(32, 32), shape.Kind().String())
		test.That(t, !cv.IsSet(16, 48), shape.Kind().String())
		test.That(t, cv.IsSet(32, 0), shape.Kind().String())
	}
}

func TestRasterizeLines(t *testing.T) {
	c := NewFloat(64, 64, 0, 10)
	c.LinePlotWithTags(Lines([]XY{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}), "", Blue)
	test.T(t, grobStrings(c.Rasterize(c.Layers()[0])), []string{
		"Line(0,64 -> 32,0 4)",
		"Line(32,0 -> 64,64 4)",
	})
}

func TestRasterizePoints(t *testing.T) {
	c := NewFloat(64, 64, 0, 10)
	c.LinePlotWithTags(Points([]XY{{X: 0, Y: 0}, {X: 20, Y: 5}, {X: 10, Y: 10}}), "", NoColor)
	test.T(t, grobStrings(c.Rasterize(c.Layers()[0])), []string{
		"Point(0,64 )",
		"Point(64,0 )",
	})
}

func TestRasterizeContinuousGap(t *testing.T) {
	c := NewFloat(64, 64, -10, 10)
	c.LinePlot(Function(func(x float64) float64 { return 1 / x }))
	grobs := c.Rasterize(c.Layers()[0])

	// column 32 samples x=0 which yields +Inf
	test.T(t, len(grobs), 31+30)
	for _, g := range grobs {
		line := g.(GrobLine)
		if line.x0 < 32 && line.x1 > 32 {
			t.Errorf("%s crosses the gap", line)
		}
	}
}

func TestRasterizeContinuousNaN(t *testing.T) {
	c := NewFloat(64, 64, -10, 10)
	c.LinePlot(Function(math.Sqrt))
	for _, g := range c.Rasterize(c.Layers()[0]) {
		line := g.(GrobLine)
		test.That(t, line.x0 > 32, line.String())
	}
}

func TestAxisAndBorders(t *testing.T) {
	cv := braille.New(120, 60)
	c := NewFloat(120, 60, -10, 10).SetCanvas(cv)
	c.LinePlot(Points([]XY{{X: -5, Y: -1}, {X: 5, Y: 1}}))

	c.Axis()
	test.That(t, cv.IsSet(60, 0) && cv.IsSet(60, 3) && !cv.IsSet(60, 1))
	test.That(t, cv.IsSet(0, 30) && cv.IsSet(3, 30) && !cv.IsSet(1, 30))

	cv.Clear()
	c.Borders()
	test.That(t, cv.IsSet(0, 0) && cv.IsSet(120, 0) && cv.IsSet(0, 60) && cv.IsSet(120, 60))
	test.That(t, !cv.IsSet(1, 0) && !cv.IsSet(0, 1))
}

func TestGrobDashes(t *testing.T) {
	cv := braille.New(32, 32)
	GrobDashes{x0: 2, y0: 5, x1: 2, y1: 12, color: Green}.Draw(cv)
	for j := 5; j <= 12; j++ {
		test.T(t, cv.IsSet(2, j), j%3 == 0)
	}
	test.T(t, cv.ColorAt(2, 6), lipgloss.Color(Green))
}
