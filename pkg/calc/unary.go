package calc

import (
	"math"
	"strconv"
)

// Unary identifies a single-argument scientific function. Pi and E are
// nullary: they ignore the current display and simply set it.
type Unary int

const (
	Sin Unary = iota
	Cos
	Tan
	Sqrt
	Square
	Cube
	Log10
	Ln
	Factorial
	Reciprocal
	Exp
	Pi
	E
)

// factorialMax is the largest n with a finite float64 factorial (171! overflows).
const factorialMax = 170

// ApplyUnary evaluates a scientific function against the current display.
// It is available only in scientific mode; in basic mode the call is a
// no-op. A non-finite result sets the error sentinel and forces the sad
// emotion; otherwise the result is formatted and the magnitude rule applies,
// exactly as for binary evaluation.
func (s State) ApplyUnary(fn Unary) State {
	if s.Mode != Scientific {
		return s
	}

	// The constants need no operand and may overwrite even the sentinel.
	switch fn {
	case Pi:
		return s.withResult(math.Pi)
	case E:
		return s.withResult(math.E)
	}

	if s.Display == Sentinel {
		return s
	}

	x, err := strconv.ParseFloat(Unformat(s.Display), 64)
	if err != nil {
		return s.fail()
	}

	var r float64
	switch fn {
	case Sin:
		r = math.Sin(s.toRadians(x))
	case Cos:
		r = math.Cos(s.toRadians(x))
	case Tan:
		r = math.Tan(s.toRadians(x))
	case Sqrt:
		r = math.Sqrt(x)
	case Square:
		r = x * x
	case Cube:
		r = x * x * x
	case Log10:
		r = math.Log10(x)
	case Ln:
		r = math.Log(x)
	case Factorial:
		r = factorial(x)
	case Reciprocal:
		r = 1 / x
	case Exp:
		r = math.Exp(x)
	default:
		return s
	}

	return s.withResult(r)
}

// toRadians converts x from the state's angle unit to radians.
func (s State) toRadians(x float64) float64 {
	if s.AngleUnit == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// factorial is defined on non-negative integers only; anything else yields
// NaN so the caller's finite-check turns it into the error sentinel.
// Values above factorialMax overflow float64 and map to +Inf.
func factorial(x float64) float64 {
	if x < 0 || x != math.Trunc(x) {
		return math.NaN()
	}
	if x > factorialMax {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r
}
