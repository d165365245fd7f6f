package termplot

import (
	"fmt"
	"math"
)

// Interval is the real interval [Lo,Hi].
type Interval struct {
	Lo, Hi float64
}

// Len returns the width of i.
func (i Interval) Len() float64 { return i.Hi - i.Lo }

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool { return x >= i.Lo && x <= i.Hi }

func (i Interval) String() string { return fmt.Sprintf("[%g,%g]", i.Lo, i.Hi) }

// Scale maps Domain linearly onto Range. Both intervals must have
// non-zero width; this is not checked.
type Scale struct {
	Domain Interval
	Range  Interval
}

// NewScale sets up the mapping of [dlo,dhi] onto [rlo,rhi].
func NewScale(dlo, dhi, rlo, rhi float64) Scale {
	return Scale{
		Domain: Interval{dlo, dhi},
		Range:  Interval{rlo, rhi},
	}
}

// Linear translates x from the domain to the range. The result is
// clamped to the range.
func (s Scale) Linear(x float64) float64 {
	p := (x - s.Domain.Lo) / s.Domain.Len()
	r := s.Range.Lo + p*s.Range.Len()
	return clamp(r, s.Range.Lo, s.Range.Hi)
}

// InvLinear translates v from the range back to the domain. The result
// is clamped to the domain.
func (s Scale) InvLinear(v float64) float64 {
	p := (v - s.Range.Lo) / s.Range.Len()
	d := s.Domain.Lo + p*s.Domain.Len()
	return clamp(d, s.Domain.Lo, s.Domain.Hi)
}

// Bounds accumulates the extent of all values seen. The zero value
// is not usable, use NewBounds.
type Bounds struct {
	Min, Max float64
}

// NewBounds returns untrained bounds: Min is +Inf and Max is -Inf so
// that any value is automatically less/more than them.
func NewBounds() Bounds {
	return Bounds{Min: math.Inf(+1), Max: math.Inf(-1)}
}

// Train widens b to include all values. Bounds never shrink.
//
// An empty values contributes 0 to both ends: training untrained
// bounds with nothing yields [0,0] and training [3,5] with nothing
// yields [0,5].
func (b *Bounds) Train(values []float64) {
	min, max := 0.0, 0.0
	for i, v := range values {
		if i == 0 || v < min {
			min = v
		}
		if i == 0 || v > max {
			max = v
		}
	}
	b.Min = math.Min(b.Min, min)
	b.Max = math.Max(b.Max, max)
}

// Trained reports whether b holds a finite interval.
func (b Bounds) Trained() bool {
	return !math.IsInf(b.Min, 0) && !math.IsInf(b.Max, 0)
}

// Interval returns b as an interval.
func (b Bounds) Interval() Interval {
	return Interval{b.Min, b.Max}
}
