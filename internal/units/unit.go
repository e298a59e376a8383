package units

import (
	"fmt"
	"strconv"
)

// Unit is a unit instance of dimension D: a multiplier relative to the
// canonical scale of D plus a display symbol. Units carry no runtime state
// into quantities; they only convert at construction and read time.
//
// The zero Unit is the bare dimension with no explicit scale. It cannot build
// or read quantities.
type Unit[D Dim] struct {
	mul    float64
	symbol string
}

// Basic returns the unit of dimension D scaled by s. It panics if s is not a
// positive finite multiplier.
func Basic[D Dim](s Scale, symbol string) Unit[D] {
	if !s.Valid() {
		panic(fmt.Sprintf("units: invalid scale %v for %s", float64(s), dimOf[D]()))
	}
	return Unit[D]{mul: float64(s), symbol: symbol}
}

// Prefixed returns the unit of dimension D scaled by the decimal prefix s,
// deriving its symbol from base, e.g. Prefixed[DistanceDim](Centi, "m") is "cm".
func Prefixed[D Dim](s Scale, base string) Unit[D] {
	p, ok := s.Prefix()
	if !ok {
		p = s.String() + " "
	}
	return Basic[D](s, p+base)
}

// Dimension returns the dimension tag of u.
func (u Unit[D]) Dimension() Dimension { return dimOf[D]() }

// Multiplier returns the factor converting a value in u to the canonical scale.
func (u Unit[D]) Multiplier() float64 { return u.mul }

// Symbol returns the display symbol of u.
func (u Unit[D]) Symbol() string { return u.symbol }

// Explicit reports whether u can construct and read quantities.
func (u Unit[D]) Explicit() bool { return u.mul > 0 }

// WithSymbol returns a copy of u displayed as symbol.
func (u Unit[D]) WithSymbol(symbol string) Unit[D] {
	u.symbol = symbol
	return u
}

// New returns the quantity of v units of u. It panics with a *ConversionError
// if u has no explicit scale.
func (u Unit[D]) New(v float64) Quantity[D] {
	q, err := u.TryNew(v)
	if err != nil {
		panic(err)
	}
	return q
}

// TryNew is New returning the error instead of panicking.
func (u Unit[D]) TryNew(v float64) (Quantity[D], error) {
	if !u.Explicit() {
		return Quantity[D]{}, &ConversionError{Op: "new", Dim: u.Dimension()}
	}
	return Quantity[D]{v: v * u.mul}, nil
}

func (u Unit[D]) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	if !u.Explicit() {
		return u.Dimension().String()
	}
	return strconv.FormatFloat(u.mul, 'g', -1, 64) + " " + u.Dimension().Symbol()
}

// ComposeUnits derives the unit a op b of dimension R. The multiplier is the
// product or quotient of the operand multipliers. It fails if either operand
// has no explicit scale or if the dimension algebra does not map the operand
// dimensions to R.
func ComposeUnits[R, A, B Dim](a Unit[A], b Unit[B], op Op) (Unit[R], error) {
	if !a.Explicit() {
		return Unit[R]{}, &ConversionError{Op: "compose", Dim: a.Dimension()}
	}
	if !b.Explicit() {
		return Unit[R]{}, &ConversionError{Op: "compose", Dim: b.Dimension()}
	}
	if err := checkResult(a.Dimension(), b.Dimension(), op, dimOf[R]()); err != nil {
		return Unit[R]{}, err
	}
	if op == OpDiv {
		return Unit[R]{mul: a.mul / b.mul, symbol: a.symbol + "/" + b.symbol}, nil
	}
	return Unit[R]{mul: a.mul * b.mul, symbol: a.symbol + "·" + b.symbol}, nil
}

// MulUnit is ComposeUnits(a, b, OpMul) that panics on error.
func MulUnit[R, A, B Dim](a Unit[A], b Unit[B]) Unit[R] {
	u, err := ComposeUnits[R](a, b, OpMul)
	if err != nil {
		panic(err)
	}
	return u
}

// DivUnit is ComposeUnits(a, b, OpDiv) that panics on error.
func DivUnit[R, A, B Dim](a Unit[A], b Unit[B]) Unit[R] {
	u, err := ComposeUnits[R](a, b, OpDiv)
	if err != nil {
		panic(err)
	}
	return u
}

// Square returns u*u as a unit of the squared dimension S.
func Square[S, D Dim](u Unit[D]) Unit[S] {
	return MulUnit[S](u, u).WithSymbol(u.symbol + "²")
}
