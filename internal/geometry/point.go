package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/quantity/internal/units"
)

// Point2 is a point in the plane whose coordinates share dimension D.
type Point2[D units.Dim] struct {
	X, Y units.Quantity[D]
}

// Point2m is a point with distance coordinates.
type Point2m = Point2[units.DistanceDim]

// NewPoint2 builds a point from scalar coordinates expressed in u.
func NewPoint2[D units.Dim](x, y float64, u units.Unit[D]) Point2[D] {
	return Point2[D]{X: u.New(x), Y: u.New(y)}
}

// PointFromVec builds a point from a vector whose components are expressed in u.
func PointFromVec[D units.Dim](v r2.Vec, u units.Unit[D]) Point2[D] {
	return NewPoint2(v.X, v.Y, u)
}

// Vec returns the coordinates of p expressed in u.
func (p Point2[D]) Vec(u units.Unit[D]) r2.Vec {
	return r2.Vec{X: p.X.In(u), Y: p.Y.In(u)}
}

func (p Point2[D]) Add(o Point2[D]) Point2[D] {
	return Point2[D]{X: p.X.Add(o.X), Y: p.Y.Add(o.Y)}
}

func (p Point2[D]) Sub(o Point2[D]) Point2[D] {
	return Point2[D]{X: p.X.Sub(o.X), Y: p.Y.Sub(o.Y)}
}

// Scale multiplies both coordinates by f.
func (p Point2[D]) Scale(f float64) Point2[D] {
	return Point2[D]{X: p.X.Mul(f), Y: p.Y.Mul(f)}
}

// Length returns the distance of p from the origin.
func (p Point2[D]) Length() units.Quantity[D] {
	return units.Pythag(p.X, p.Y)
}

// Distance returns the euclidean distance between p and o.
func (p Point2[D]) Distance(o Point2[D]) units.Quantity[D] {
	return p.Sub(o).Length()
}

// Angle returns the direction of p seen from the origin.
func (p Point2[D]) Angle() units.Angle {
	return units.Atan2Q(p.Y, p.X)
}

// Rotate turns p around the origin by a.
func (p Point2[D]) Rotate(a units.Angle) Point2[D] {
	s, c := units.Sin(a), units.Cos(a)
	return Point2[D]{
		X: p.X.Mul(c).Sub(p.Y.Mul(s)),
		Y: p.X.Mul(s).Add(p.Y.Mul(c)),
	}
}

// Equal reports whether both coordinates match within eps.
func (p Point2[D]) Equal(o Point2[D], eps units.Quantity[D]) bool {
	return units.Eq(p.X, o.X, eps) && units.Eq(p.Y, o.Y, eps)
}

func (p Point2[D]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Centroid returns the mean of points, or the origin for an empty slice.
func Centroid[D units.Dim](points []Point2[D]) Point2[D] {
	var sum Point2[D]
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
