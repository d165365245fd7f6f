package termplot

import (
	"fmt"
)

// Value is the contract of an axis type T. Values are placed on the
// canvas through their float representation and printed in axis
// labels through String. FromFloat must not depend on its receiver;
// it is called on the zero value of T.
type Value[T any] interface {
	Float() float64
	FromFloat(f float64) T
	String() string
}

// Point is one data point of a Points, Lines, Steps or Bars shape.
type Point[X Value[X], Y Value[Y]] struct {
	X X
	Y Y
}

// XY returns the coordinates of p as floats.
func (p Point[X, Y]) XY() (x, y float64) {
	return p.X.Float(), p.Y.Float()
}

// Float is the plain real valued axis.
type Float float64

var _ Value[Float] = Float(0)

func (f Float) Float() float64          { return float64(f) }
func (Float) FromFloat(f float64) Float { return Float(f) }
func (f Float) String() string          { return fmt.Sprintf("%.1f", float64(f)) }

// XY is a point on two real axes.
type XY = Point[Float, Float]

// fromFloat converts f to the axis type T.
func fromFloat[T Value[T]](f float64) T {
	var zero T
	return zero.FromFloat(f)
}

// isFloatAxis reports whether T is the plain real axis.
func isFloatAxis[T Value[T]]() bool {
	var zero T
	_, ok := any(zero).(Float)
	return ok
}
