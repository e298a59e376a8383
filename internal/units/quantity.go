package units

import (
	"cmp"
	"math"
	"strconv"

	"github.com/banshee-data/quantity/internal/numeric"
)

// Quantity is an immutable value of dimension D, stored in the canonical
// scale of D. The zero Quantity is zero in every unit.
type Quantity[D Dim] struct {
	v float64
}

// New returns v units of u as a quantity. It panics if u has no explicit scale.
func New[D Dim](v float64, u Unit[D]) Quantity[D] {
	return u.New(v)
}

// Zero returns the additive identity of dimension D.
func Zero[D Dim]() Quantity[D] {
	return Quantity[D]{}
}

// Dimension returns the dimension tag of q.
func (q Quantity[D]) Dimension() Dimension { return dimOf[D]() }

// In returns q expressed in unit u. It panics with a *ConversionError if u
// has no explicit scale.
func (q Quantity[D]) In(u Unit[D]) float64 {
	v, err := q.TryIn(u)
	if err != nil {
		panic(err)
	}
	return v
}

// TryIn is In returning the error instead of panicking.
func (q Quantity[D]) TryIn(u Unit[D]) (float64, error) {
	if !u.Explicit() {
		return 0, &ConversionError{Op: "read", Dim: u.Dimension()}
	}
	return q.v / u.mul, nil
}

func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] { return Quantity[D]{v: q.v + o.v} }

func (q Quantity[D]) Sub(o Quantity[D]) Quantity[D] { return Quantity[D]{v: q.v - o.v} }

// Neg returns -q.
func (q Quantity[D]) Neg() Quantity[D] { return q.Mul(-1) }

// Mul scales q by the dimensionless factor f.
func (q Quantity[D]) Mul(f float64) Quantity[D] { return Quantity[D]{v: q.v * f} }

// Div divides q by the dimensionless divisor f.
func (q Quantity[D]) Div(f float64) Quantity[D] { return Quantity[D]{v: q.v / f} }

// Ratio returns q / o as a dimensionless number.
func (q Quantity[D]) Ratio(o Quantity[D]) float64 { return q.v / o.v }

// Equal reports exact equality of the canonical values.
func (q Quantity[D]) Equal(o Quantity[D]) bool { return q.v == o.v }

func (q Quantity[D]) Less(o Quantity[D]) bool { return q.v < o.v }

func (q Quantity[D]) LessEq(o Quantity[D]) bool { return q.v <= o.v }

func (q Quantity[D]) Greater(o Quantity[D]) bool { return q.v > o.v }

func (q Quantity[D]) GreaterEq(o Quantity[D]) bool { return q.v >= o.v }

// Compare returns -1, 0 or +1 like cmp.Compare, for use with slices.SortFunc.
func (q Quantity[D]) Compare(o Quantity[D]) int { return cmp.Compare(q.v, o.v) }

// IsNaN reports whether q carries a NaN value.
func (q Quantity[D]) IsNaN() bool { return math.IsNaN(q.v) }

// String formats q in the canonical unit of its dimension.
func (q Quantity[D]) String() string {
	return strconv.FormatFloat(q.v, 'g', -1, 64) + " " + q.Dimension().Symbol()
}

// Format renders q in unit u, e.g. "2 cm".
func Format[D Dim](q Quantity[D], u Unit[D]) string {
	return strconv.FormatFloat(q.In(u), 'g', -1, 64) + " " + u.String()
}

// DefaultEps returns the default equality tolerance of dimension D, expressed
// in its canonical scale.
func DefaultEps[D Dim]() Quantity[D] {
	return Quantity[D]{v: numeric.DefaultEps}
}

// Eq reports whether value lies within eps of ref. The tolerance shares the
// dimension of the compared values.
func Eq[D Dim](value, ref, eps Quantity[D]) bool {
	return numeric.Eq(value.v, ref.v, eps.v)
}

// EqDefault is Eq with DefaultEps.
func EqDefault[D Dim](value, ref Quantity[D]) bool {
	return Eq(value, ref, DefaultEps[D]())
}

// IsZero reports whether value lies within eps of zero.
func IsZero[D Dim](value, eps Quantity[D]) bool {
	return Eq(value, Zero[D](), eps)
}

// IsZeroDefault is IsZero with DefaultEps.
func IsZeroDefault[D Dim](value Quantity[D]) bool {
	return IsZero(value, DefaultEps[D]())
}

// TryMul returns a*b as a quantity of dimension R, or a *DimensionError if
// the dimension algebra does not map the operand dimensions to R.
func TryMul[R, A, B Dim](a Quantity[A], b Quantity[B]) (Quantity[R], error) {
	if err := checkResult(a.Dimension(), b.Dimension(), OpMul, dimOf[R]()); err != nil {
		return Quantity[R]{}, err
	}
	return Quantity[R]{v: a.v * b.v}, nil
}

// TryDiv returns a/b as a quantity of dimension R, or a *DimensionError if
// the dimension algebra does not map the operand dimensions to R.
func TryDiv[R, A, B Dim](a Quantity[A], b Quantity[B]) (Quantity[R], error) {
	if err := checkResult(a.Dimension(), b.Dimension(), OpDiv, dimOf[R]()); err != nil {
		return Quantity[R]{}, err
	}
	return Quantity[R]{v: a.v / b.v}, nil
}

// Mul returns a*b as a quantity of dimension R:
//
//	d := units.Mul[units.DistanceDim](speed, elapsed)
//
// It panics with a *DimensionError on an undeclared combination.
func Mul[R, A, B Dim](a Quantity[A], b Quantity[B]) Quantity[R] {
	q, err := TryMul[R](a, b)
	if err != nil {
		panic(err)
	}
	return q
}

// Div returns a/b as a quantity of dimension R. It panics with a
// *DimensionError on an undeclared combination. Use Quantity.Ratio to divide
// two quantities of the same dimension.
func Div[R, A, B Dim](a Quantity[A], b Quantity[B]) Quantity[R] {
	q, err := TryDiv[R](a, b)
	if err != nil {
		panic(err)
	}
	return q
}
