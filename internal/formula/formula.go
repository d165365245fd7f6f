// Package formula evaluates real valued formulas in one variable x,
// e.g. "sin(x)/x" or "e^-x^2". The operators ^ and ** are
// exponentiation; they are right associative and bind tighter than
// unary minus.
package formula

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrSyntax = errors.New("formula: syntax error")

var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": math.Phi,
}

var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
}

var functions2 = map[string]func(float64, float64) float64{
	"pow": math.Pow,
	"min": math.Min,
	"max": math.Max,
	"mod": math.Mod,
}

// baseEnv holds everything a formula may refer to. Evaluations work on
// a copy with x set.
var baseEnv = func() map[string]any {
	env := map[string]any{"x": 0.0}
	for k, v := range constants {
		env[k] = v
	}
	for k, f := range functions {
		env[k] = f
	}
	for k, f := range functions2 {
		env[k] = f
	}
	return env
}()

// Expr is a compiled formula.
type Expr struct {
	src     string
	program *vm.Program
}

// Parse compiles src. All identifiers must be x, a known constant or a
// known function, and the result must be a number.
func Parse(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty formula", ErrSyntax)
	}
	program, err := expr.Compile(src,
		expr.Env(baseEnv),
		expr.DisableAllBuiltins(),
		expr.AsFloat64(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return &Expr{src: src, program: program}, nil
}

// String returns the source of e.
func (e *Expr) String() string { return e.src }

// Eval evaluates e at x. Runtime failures yield NaN.
func (e *Expr) Eval(x float64) float64 {
	env := maps.Clone(baseEnv)
	env["x"] = x
	out, err := expr.Run(e.program, env)
	if err != nil {
		return math.NaN()
	}
	f, ok := out.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}

// Func returns e as a function.
func (e *Expr) Func() func(float64) float64 {
	return e.Eval
}
