package termplot

// Kind tells how a shape is drawn.
type Kind int

const (
	ContinuousKind Kind = iota
	PointsKind
	LinesKind
	StepsKind
	BarsKind
)

var kindNames = [...]string{"continuous", "points", "lines", "steps", "bars"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Shape is one plottable series. Build it with Continuous, Points,
// Lines, Steps or Bars.
type Shape[X Value[X], Y Value[Y]] struct {
	kind   Kind
	fn     func(float64) float64
	points []Point[X, Y]
}

// Continuous is a real valued function. It is sampled once per canvas
// column; results which are not normal floats (NaN, infinite, zero or
// subnormal) are skipped.
func Continuous[X Value[X], Y Value[Y]](f func(float64) float64) Shape[X, Y] {
	return Shape[X, Y]{kind: ContinuousKind, fn: f}
}

// Points is a scatter plot of pts.
func Points[X Value[X], Y Value[Y]](pts []Point[X, Y]) Shape[X, Y] {
	return Shape[X, Y]{kind: PointsKind, points: pts}
}

// Lines connects consecutive points of pts by straight lines.
func Lines[X Value[X], Y Value[Y]](pts []Point[X, Y]) Shape[X, Y] {
	return Shape[X, Y]{kind: LinesKind, points: pts}
}

// Steps connects consecutive points of pts in step fashion: the line
// rises or falls at the left point and runs flat to the right one.
func Steps[X Value[X], Y Value[Y]](pts []Point[X, Y]) Shape[X, Y] {
	return Shape[X, Y]{kind: StepsKind, points: pts}
}

// Bars draws like Steps and drops vertical lines from every point to
// the bottom of the canvas.
func Bars[X Value[X], Y Value[Y]](pts []Point[X, Y]) Shape[X, Y] {
	return Shape[X, Y]{kind: BarsKind, points: pts}
}

// Function is a continuous shape on real axes.
func Function(f func(float64) float64) Shape[Float, Float] {
	return Continuous[Float, Float](f)
}

// Of returns a shape of kind k over pts. For ContinuousKind it panics;
// use Continuous.
func Of[X Value[X], Y Value[Y]](k Kind, pts []Point[X, Y]) Shape[X, Y] {
	if k == ContinuousKind {
		panic("termplot: continuous shape needs a function")
	}
	return Shape[X, Y]{kind: k, points: pts}
}

// Kind returns the kind of s.
func (s Shape[X, Y]) Kind() Kind { return s.kind }

// Data returns the points of s. It is nil for continuous shapes.
func (s Shape[X, Y]) Data() []Point[X, Y] { return s.points }

// values returns the y values of s which count for the vertical range
// of a chart with the horizontal scale sx sampled at width columns.
func (s Shape[X, Y]) values(sx Scale, width int) []float64 {
	var ys []float64
	if s.kind == ContinuousKind {
		for i := 0; i < width; i++ {
			y := s.fn(sx.InvLinear(float64(i)))
			if isNormal(y) {
				ys = append(ys, y)
			}
		}
		return ys
	}
	for _, p := range s.points {
		x, y := p.XY()
		if !sx.Domain.Contains(x) || !isFinite(y) {
			continue
		}
		ys = append(ys, y)
	}
	return ys
}
