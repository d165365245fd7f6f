package termplot

import (
	"math"
)

// dotPos is a position on the canvas in dots.
type dotPos struct {
	x, y int
}

// Rasterize converts layer to grobs in canvas coordinates using the
// current ranges of c.
func (c *Chart[X, Y]) Rasterize(layer Layer[X, Y]) []Grob {
	sx, sy := c.xScale(), c.yScale()
	shape := layer.Shape

	if shape.kind == ContinuousKind {
		return geomLines(c.sample(shape, sx, sy), layer.Color)
	}

	runs := [][]dotPos{c.project(shape, sx, sy)}
	switch shape.kind {
	case PointsKind:
		return geomPoints(runs, layer.Color)
	case LinesKind:
		return geomLines(runs, layer.Color)
	case StepsKind:
		return geomSteps(runs, layer.Color)
	case BarsKind:
		return geomBars(runs, layer.Color, c.height)
	}
	return nil
}

// sample evaluates a continuous shape once per column. Columns with
// a non-normal result break the curve into separate runs.
func (c *Chart[X, Y]) sample(shape Shape[X, Y], sx, sy Scale) [][]dotPos {
	var runs [][]dotPos
	var run []dotPos
	for i := 0; i < c.width; i++ {
		y := shape.fn(sx.InvLinear(float64(i)))
		if !isNormal(y) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
			continue
		}
		j := dot(math.Round(sy.Linear(y)))
		run = append(run, dotPos{i, c.height - j})
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

// project maps the points of a discrete shape onto the canvas. Points
// outside the horizontal range or with a non-finite y are dropped.
func (c *Chart[X, Y]) project(shape Shape[X, Y], sx, sy Scale) []dotPos {
	dots := make([]dotPos, 0, len(shape.points))
	dropped := 0
	for _, p := range shape.points {
		x, y := p.XY()
		if !sx.Domain.Contains(x) || !isFinite(y) {
			dropped++
			continue
		}
		i := dot(math.Round(sx.Linear(x)))
		j := dot(math.Round(sy.Linear(y)))
		if i > c.width || j > c.height {
			dropped++
			continue
		}
		dots = append(dots, dotPos{i, c.height - j})
	}
	if dropped > 0 {
		c.logger.Debug("dropped points outside the chart",
			"kind", shape.kind, "dropped", dropped, "kept", len(dots))
	}
	return dots
}

// -------------------------------------------------------------------------
// Geom Points

func geomPoints(runs [][]dotPos, color Color) []Grob {
	var grobs []Grob
	for _, run := range runs {
		for _, d := range run {
			grobs = append(grobs, GrobPoint{x: d.x, y: d.y, color: color})
		}
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Lines

// geomLines connects consecutive dots of each run. Used for lines and
// continuous functions.
func geomLines(runs [][]dotPos, color Color) []Grob {
	var grobs []Grob
	for _, run := range runs {
		for k := 1; k < len(run); k++ {
			a, b := run[k-1], run[k]
			grobs = append(grobs, GrobLine{a.x, a.y, b.x, b.y, color})
		}
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Steps

// geomSteps draws for each pair (x1,y1), (x2,y2) the vertical from
// (x1,y1) to (x1,y2) and the horizontal from (x1,y2) to (x2,y2).
func geomSteps(runs [][]dotPos, color Color) []Grob {
	var grobs []Grob
	for _, run := range runs {
		for k := 1; k < len(run); k++ {
			a, b := run[k-1], run[k]
			grobs = append(grobs,
				GrobLine{a.x, b.y, b.x, b.y, color},
				GrobLine{a.x, a.y, a.x, b.y, color},
			)
		}
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Bars

// geomBars draws the step outline and drops both ends of every pair
// down to the baseline.
func geomBars(runs [][]dotPos, color Color, baseline int) []Grob {
	var grobs []Grob
	for _, run := range runs {
		for k := 1; k < len(run); k++ {
			a, b := run[k-1], run[k]
			grobs = append(grobs,
				GrobLine{a.x, b.y, b.x, b.y, color},
				GrobLine{a.x, a.y, a.x, b.y, color},
				GrobLine{a.x, baseline, a.x, a.y, color},
				GrobLine{b.x, baseline, b.x, b.y, color},
			)
		}
	}
	return grobs
}
