package units

import (
	"math"

	"github.com/banshee-data/quantity/internal/numeric"
)

// Abs returns q if q >= 0, else -q.
func Abs[D Dim](q Quantity[D]) Quantity[D] {
	if q.GreaterEq(Zero[D]()) {
		return q
	}
	return q.Neg()
}

// Sign returns numeric.Positive for q >= 0, else numeric.Negative.
func Sign[D Dim](q Quantity[D]) numeric.Sign {
	return numeric.Sgn(q.v)
}

func Min[D Dim](a, b Quantity[D]) Quantity[D] {
	if a.Less(b) {
		return a
	}
	return b
}

func Max[D Dim](a, b Quantity[D]) Quantity[D] {
	if a.Greater(b) {
		return a
	}
	return b
}

// Avg returns the arithmetic mean of a and b.
func Avg[D Dim](a, b Quantity[D]) Quantity[D] {
	return a.Add(b).Div(2)
}

// Clamp limits q to the range spanned by b1 and b2, in either order.
func Clamp[D Dim](q, b1, b2 Quantity[D]) Quantity[D] {
	return Quantity[D]{v: numeric.Clamp(q.v, b1.v, b2.v)}
}

// IsBetween reports whether q lies in the closed range spanned by b1 and b2.
func IsBetween[D Dim](q, b1, b2 Quantity[D]) bool {
	return numeric.IsBtw(q.v, b1.v, b2.v)
}

// PythagSquare returns the sum of the squared canonical values of a, b and
// any further operands, kept in dimension D.
func PythagSquare[D Dim](a, b Quantity[D], more ...Quantity[D]) Quantity[D] {
	sum := numeric.PythagSquare(a.v, b.v)
	for _, c := range more {
		sum += c.v * c.v
	}
	return Quantity[D]{v: sum}
}

// Pythag returns the length of the vector with components a, b and any
// further operands.
func Pythag[D Dim](a, b Quantity[D], more ...Quantity[D]) Quantity[D] {
	if len(more) == 0 {
		return Quantity[D]{v: numeric.Pythag(a.v, b.v)}
	}
	return Quantity[D]{v: math.Sqrt(PythagSquare(a, b, more...).v)}
}
