package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/quantity/internal/numeric"
)

// Line2 is the line a*x + b*y + c = 0 over scalar coordinates.
type Line2 struct {
	A, B, C float64
}

// NewLine2 returns the normalized line through p1 and p2. Coincident points
// give NaN coefficients.
func NewLine2(p1, p2 r2.Vec) Line2 {
	l := Line2{
		A: p1.Y - p2.Y,
		B: p2.X - p1.X,
		C: p1.X*p2.Y - p2.X*p1.Y,
	}
	return l.Normalize()
}

// NormFactor returns sqrt(a² + b²).
func (l Line2) NormFactor() float64 {
	return r2.Norm(r2.Vec{X: l.A, Y: l.B})
}

// Normalize scales the coefficients so that a² + b² = 1.
func (l Line2) Normalize() Line2 {
	f := l.NormFactor()
	return Line2{A: l.A / f, B: l.B / f, C: l.C / f}
}

// Y returns the y coordinate of the line at x.
func (l Line2) Y(x float64) float64 {
	return -(l.A*x + l.C) / l.B
}

// X returns the x coordinate of the line at y.
func (l Line2) X(y float64) float64 {
	return -(l.B*y + l.C) / l.A
}

// IsVertical reports whether the line is parallel to the y axis.
func (l Line2) IsVertical() bool {
	return numeric.IsZero(l.B, numeric.DefaultEps)
}

// Distance returns the distance of p from l.
func Distance(l Line2, p r2.Vec) float64 {
	return DistanceNorm(l, p) / l.NormFactor()
}

// DistanceNorm returns the distance of p from a line that is already
// normalized.
func DistanceNorm(l Line2, p r2.Vec) float64 {
	return math.Abs(l.A*p.X + l.B*p.Y + l.C)
}

// LineLineIntersection returns the point where l1 and l2 cross. Parallel
// lines give (+Inf, +Inf).
func LineLineIntersection(l1, l2 Line2) r2.Vec {
	det := l2.A*l1.B - l1.A*l2.B
	if numeric.IsZero(det, numeric.DefaultEps) {
		return r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	}
	return r2.Vec{
		X: (l1.C*l2.B - l2.C*l1.B) / det,
		Y: (l2.C*l1.A - l1.C*l2.A) / det,
	}
}

// LineCircleIntersection returns the points where l meets the circle. The
// first point has the larger x (or y for vertical lines). Missing
// intersections have NaN coordinates, so a tangent line yields one finite
// point and a line that misses the circle yields none.
func LineCircleIntersection(l Line2, center r2.Vec, radius float64) (r2.Vec, r2.Vec) {
	nan := r2.Vec{X: math.NaN(), Y: math.NaN()}
	first, second := nan, nan

	if l.IsVertical() {
		// x is fixed, solve for y.
		x := l.X(0)
		dx := x - center.X
		y1, y2 := SolveQuadratic(1, -2*center.Y, center.Y*center.Y+dx*dx-radius*radius)
		if !math.IsNaN(y1) {
			first = r2.Vec{X: x, Y: y1}
		}
		if !math.IsNaN(y2) {
			second = r2.Vec{X: x, Y: y2}
		}
		return first, second
	}

	// Rewrite as y = m*x + k and substitute into the circle equation.
	m := -l.A / l.B
	k := -l.C / l.B
	a := 1 + m*m
	b := 2*m*k - 2*center.X - 2*m*center.Y
	c := center.X*center.X + (k-center.Y)*(k-center.Y) - radius*radius

	x1, x2 := SolveQuadratic(a, b, c)
	if !math.IsNaN(x1) {
		first = r2.Vec{X: x1, Y: l.Y(x1)}
	}
	if !math.IsNaN(x2) {
		second = r2.Vec{X: x2, Y: l.Y(x2)}
	}
	return first, second
}
