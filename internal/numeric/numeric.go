// Package numeric holds scalar helpers shared by the quantity, geometry and
// container packages.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEps is the default absolute tolerance for equality checks.
const DefaultEps = 1e-5

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sign of a number.
type Sign int8

const (
	Negative Sign = -1
	Neutral  Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return "neutral"
}

// Sgn returns Positive for value >= 0, else Negative.
func Sgn[T Number](value T) Sign {
	if value >= 0 {
		return Positive
	}
	return Negative
}

// Eq reports whether value lies within eps of ref.
func Eq(value, ref, eps float64) bool {
	return scalar.EqualWithinAbs(value, ref, eps)
}

// IsZero reports whether value lies within eps of zero.
func IsZero(value, eps float64) bool {
	return Eq(value, 0, eps)
}

// Abs returns the absolute value of value.
func Abs[T Number](value T) T {
	if value >= 0 {
		return value
	}
	return -value
}

// Avg returns the mean of a and b.
func Avg[T constraints.Float](a, b T) T {
	return (a + b) / 2
}

// IsBtw reports whether value lies in the closed range spanned by b1 and b2,
// in either order.
func IsBtw[T constraints.Ordered](value, b1, b2 T) bool {
	if b2 >= b1 {
		return value >= b1 && value <= b2
	}
	return value >= b2 && value <= b1
}

// Clamp limits value to the range spanned by b1 and b2, in either order.
func Clamp[T constraints.Ordered](value, b1, b2 T) T {
	if b2 > b1 {
		return min(max(value, b1), b2)
	}
	return min(max(value, b2), b1)
}

// IsInRange reports whether value lies within the relative error relErr of ref.
func IsInRange(value, ref, relErr float64) bool {
	return IsBtw(value, ref*(1-relErr), ref*(1+relErr))
}

// Map linearly maps value from [fromLow, fromHigh] to [toLow, toHigh]. The
// input is clamped to the source range first.
func Map(value, fromLow, fromHigh, toLow, toHigh float64) float64 {
	return toLow + (Clamp(value, fromLow, fromHigh)-fromLow)*(toHigh-toLow)/(fromHigh-fromLow)
}

// PythagSquare returns a² + b².
func PythagSquare[T Number](a, b T) T {
	return a*a + b*b
}

// Pythag returns the hypotenuse of a right triangle with legs a and b.
func Pythag(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// PowerOf returns value raised to the non-negative integer power pow.
func PowerOf[T Number](value T, pow uint) T {
	result := T(1)
	for i := uint(0); i < pow; i++ {
		result *= value
	}
	return result
}
