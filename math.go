package termplot

import (
	"math"
)

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// isNormal reports whether f is a normal floating point number: not
// zero, not subnormal, not infinite and not NaN.
func isNormal(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) >= minNormal
}

// clamp limits x to [lo,hi]. A NaN x yields lo.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}

// dot converts a canvas coordinate to a dot index. Coordinates are
// never negative; NaN and negative values map to 0.
func dot(f float64) int {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
