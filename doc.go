// Termplot draws line charts on a character-cell terminal.
//
//
// Canvas
//
// Charts are drawn on a braille canvas: every character cell holds a
// 2x4 grid of dots, so a chart of width 120 and height 60 (in dots)
// occupies 61 columns and 16 rows of text. Each dot may carry a color;
// the color of a cell is the color of the last colored dot set in it.
//
//
// Data
//
// A chart is fed with shapes. A shape is either a continuous function
//     termplot.Function(math.Sin)
// which is sampled once per canvas column, or a slice of points drawn
// as a scatter plot, as connected lines, as steps or as bars:
//     pts := []termplot.Point[termplot.Float, termplot.Float]{{X: 0, Y: 1}, {X: 1, Y: 3}}
//     termplot.Lines(pts)
// Shapes do not copy their points. The slice must stay unchanged while
// the chart is rendered.
//
//
// Axis Types
//
// The X and Y coordinates of points may be any type implementing Value:
// it must convert to and from float64 and print itself. Float is the
// plain real axis. A month axis could look like this:
//    type Month int
//    func (m Month) Float() float64             { return float64(m) }
//    func (Month) FromFloat(f float64) Month    { return Month(math.Floor(f)) }
//    func (m Month) String() string             { return time.Month(m + 1).String() }
//
//
// Ranges
//
// The horizontal range [xmin,xmax] is fixed when the chart is created.
// The vertical range grows with every registered shape so that all
// visible values fit on the canvas. It never shrinks.
//
//    termplot.DefaultFloat().
//        LinePlot(termplot.Function(math.Atan)).
//        Display()
//
package termplot
