// Package number implements the numeric scalar the language computes
// with. A value is tagged integral or floating; arithmetic keeps the
// result integral exactly when both operands are integral, except for
// division, which stays integral only when it is also even.
package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/dwhitley/sbasic/berrors"
)

// epsilon bounds equality and truth testing on floating values
var epsilon = math.Nextafter(1, 2) - 1

// Number is an immutable integer/float tagged scalar
type Number struct {
	ival     int
	fval     float64
	integral bool
}

// FromInt builds an integral Number
func FromInt(v int) Number {
	return Number{ival: v, fval: float64(v), integral: true}
}

// FromFloat builds a floating Number
func FromFloat(v float64) Number {
	return Number{ival: int(v), fval: v, integral: false}
}

// FromBool builds the numeric form of a boolean, 1 or 0
func FromBool(b bool) Number {
	if b {
		return FromInt(1)
	}
	return FromInt(0)
}

// FromString builds a Number from literal text. Text containing a '.'
// produces a floating value, anything else an integral one.
func FromString(s string) (Number, error) {
	if strings.Contains(s, ".") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}, berrors.NewSyntax("Malformed numeric literal %s", s)
		}
		return FromFloat(v), nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return Number{}, berrors.NewSyntax("Malformed numeric literal %s", s)
	}
	return FromInt(v), nil
}

// Int returns the integral value
func (n Number) Int() int { return n.ival }

// Float returns the floating value
func (n Number) Float() float64 { return n.fval }

// IsIntegral reports whether the value carries the integral tag
func (n Number) IsIntegral() bool { return n.integral }

// IsTrue tests truthiness: nonzero, epsilon-bounded for floating values
func (n Number) IsTrue() bool {
	return (n.integral && n.ival != 0) || math.Abs(n.fval) >= epsilon
}

// Add returns n + rhs
func (n Number) Add(rhs Number) Number {
	return promote(n.ival+rhs.ival, n.fval+rhs.fval, n, rhs)
}

// Sub returns n - rhs
func (n Number) Sub(rhs Number) Number {
	return promote(n.ival-rhs.ival, n.fval-rhs.fval, n, rhs)
}

// Mul returns n * rhs
func (n Number) Mul(rhs Number) Number {
	return promote(n.ival*rhs.ival, n.fval*rhs.fval, n, rhs)
}

// Div returns n / rhs. The result is integral only when both operands
// are integral and evenly divisible. Division by zero is an error.
func (n Number) Div(rhs Number) (Number, error) {
	if (rhs.integral && rhs.ival == 0) || (!rhs.integral && rhs.fval == 0) {
		return Number{}, berrors.NewRuntime("Division by zero")
	}

	if n.integral && rhs.integral {
		if n.ival%rhs.ival == 0 {
			return FromInt(n.ival / rhs.ival), nil
		}
		return FromFloat(n.fval / rhs.fval), nil
	}

	return FromFloat(n.fval / rhs.fval), nil
}

// Mod returns n mod rhs, defined only on integral operands.
func (n Number) Mod(rhs Number) (Number, error) {
	if !n.integral || !rhs.integral {
		return Number{}, berrors.NewRuntime("Modulo operation is only defined on whole number types.")
	}
	if rhs.ival == 0 {
		return Number{}, berrors.NewRuntime("Division by zero")
	}

	return FromInt(n.ival % rhs.ival), nil
}

// Neg returns -n, preserving the tag
func (n Number) Neg() Number {
	if n.integral {
		return FromInt(-n.ival)
	}
	return FromFloat(-n.fval)
}

// Equal compares exactly for two integral values, within epsilon otherwise
func (n Number) Equal(rhs Number) bool {
	if n.integral && rhs.integral {
		return n.ival == rhs.ival
	}
	return math.Abs(n.fval-rhs.fval) < epsilon
}

// Less orders two values
func (n Number) Less(rhs Number) bool {
	if n.integral && rhs.integral {
		return n.ival < rhs.ival
	}
	return n.fval < rhs.fval
}

// LessEq returns n <= rhs
func (n Number) LessEq(rhs Number) bool {
	return n.Less(rhs) || n.Equal(rhs)
}

// Greater returns n > rhs
func (n Number) Greater(rhs Number) bool {
	return !n.LessEq(rhs)
}

// GreaterEq returns n >= rhs
func (n Number) GreaterEq(rhs Number) bool {
	return !n.Less(rhs)
}

// String renders the value as decimal text. Integral values print
// without a decimal point, floating values always print with one.
func (n Number) String() string {
	if n.integral {
		return strconv.Itoa(n.ival)
	}

	s := strconv.FormatFloat(n.fval, 'g', -1, 64)
	if !strings.Contains(s, ".") {
		if i := strings.IndexAny(s, "eE"); i >= 0 {
			s = s[:i] + ".0" + s[i:]
		} else {
			s += ".0"
		}
	}
	return s
}

func promote(ival int, fval float64, lhs, rhs Number) Number {
	if lhs.integral && rhs.integral {
		return Number{ival: ival, fval: fval, integral: true}
	}
	return Number{ival: int(fval), fval: fval, integral: false}
}
