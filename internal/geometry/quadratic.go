package geometry

import "math"

// SolveQuadratic returns the real roots of a*x² + b*x + c = 0. With two roots
// the first is (-b+√d)/2a, which is the larger one for a > 0. A double root
// is returned as (root, NaN) and no real roots as (NaN, NaN).
func SolveQuadratic(a, b, c float64) (first, second float64) {
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return math.NaN(), math.NaN()
	case disc == 0:
		return -b / (2 * a), math.NaN()
	}
	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a)
}
