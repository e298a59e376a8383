package geometry

import "github.com/banshee-data/quantity/internal/units"

// Size2 is a planar extent whose components share dimension D.
type Size2[D units.Dim] struct {
	X, Y units.Quantity[D]
}

// Size2m is a size measured in distance.
type Size2m = Size2[units.DistanceDim]

// Area returns X*Y in dimension S, which must be the square of D. It panics
// with units.ErrDimensionMismatch otherwise.
func Area[S, D units.Dim](s Size2[D]) units.Quantity[S] {
	return units.Mul[S](s.X, s.Y)
}

// Equal reports whether both components are exactly equal.
func (s Size2[D]) Equal(o Size2[D]) bool {
	return s.X.Equal(o.X) && s.Y.Equal(o.Y)
}
