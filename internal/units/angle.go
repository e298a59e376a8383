package units

import "math"

// Angle constants.
var (
	Pi       = Angle{v: math.Pi}
	Pi2      = Angle{v: math.Pi / 2}
	Pi4      = Angle{v: math.Pi / 4}
	FullTurn = Angle{v: 2 * math.Pi}
)

// Normalisation is defined by the period subtraction loops. Beyond this many
// periods a single remainder replaces them, which only bounds the running time.
const maxNormalizeLoops = 64

// Sin returns the sine of a.
func Sin(a Angle) float64 { return math.Sin(a.v) }

// Cos returns the cosine of a.
func Cos(a Angle) float64 { return math.Cos(a.v) }

// Tan returns the tangent of a.
func Tan(a Angle) float64 { return math.Tan(a.v) }

// Asin returns the angle whose sine is x.
func Asin(x float64) Angle { return Angle{v: math.Asin(x)} }

// Acos returns the angle whose cosine is x.
func Acos(x float64) Angle { return Angle{v: math.Acos(x)} }

// Atan returns the angle whose tangent is x.
func Atan(x float64) Angle { return Angle{v: math.Atan(x)} }

// Atan2 returns the angle of the vector (x, y).
func Atan2(y, x float64) Angle { return Angle{v: math.Atan2(y, x)} }

// Atan2Q returns the angle of the vector (x, y) given as quantities of one
// dimension.
func Atan2Q[D Dim](y, x Quantity[D]) Angle { return Atan2(y.v, x.v) }

// Normalize360 reduces a into [0, 2π).
func Normalize360(a Angle) Angle { return normalize(a, FullTurn) }

// Normalize180 reduces a into [0, π).
func Normalize180(a Angle) Angle { return normalize(a, Pi) }

func normalize(a, period Angle) Angle {
	if math.IsInf(a.v, 0) {
		return Angle{v: math.NaN()}
	}
	if math.Abs(a.v) > maxNormalizeLoops*period.v {
		a.v = math.Mod(a.v, period.v)
	}
	for a.GreaterEq(period) {
		a = a.Sub(period)
	}
	for a.Less(Zero[AngleDim]()) {
		a = a.Add(period)
	}
	// A tiny negative input can round up to exactly one period.
	if a.GreaterEq(period) {
		a = Zero[AngleDim]()
	}
	return a
}

// EqWithOverflow360 reports whether value equals ref within eps, allowing the
// two to differ by a full turn.
func EqWithOverflow360(value, ref, eps Angle) bool {
	return eqWithOverflow(value, ref, eps, FullTurn)
}

// EqWithOverflow180 reports whether value equals ref within eps, allowing the
// two to differ by a half turn.
func EqWithOverflow180(value, ref, eps Angle) bool {
	return eqWithOverflow(value, ref, eps, Pi)
}

func eqWithOverflow(value, ref, eps, period Angle) bool {
	return Eq(value, ref, eps) || Eq(value.Add(period), ref, eps) || Eq(value.Sub(period), ref, eps)
}

// snap returns the first target within eps of a, modulo a full turn, or zero.
func snap(a, eps Angle, targets ...Angle) Angle {
	for _, t := range targets {
		if EqWithOverflow360(a, t, eps) {
			return t
		}
	}
	return Zero[AngleDim]()
}

// Round45 snaps a to the nearest multiple of 45° within 22.5°. Angles that
// snap to 0° (or 360°) return zero.
func Round45(a Angle) Angle {
	return snap(a, Pi4.Div(2),
		Pi4, Pi2, Pi4.Mul(3), Pi, Pi4.Mul(5), Pi2.Mul(3), Pi4.Mul(7))
}

// Round90 snaps a to the nearest multiple of 90° within 45°. Angles that snap
// to 0° (or 360°) return zero.
func Round90(a Angle) Angle {
	return snap(a, Pi4, Pi2, Pi, Pi2.Mul(3))
}

// IsMultipleOf90 reports whether a lies within eps of 0°, 90°, 180° or 270°,
// modulo a full turn.
func IsMultipleOf90(a, eps Angle) bool {
	return EqWithOverflow360(a, Zero[AngleDim](), eps) ||
		EqWithOverflow360(a, Pi2, eps) ||
		EqWithOverflow360(a, Pi, eps) ||
		EqWithOverflow360(a, Pi2.Mul(3), eps)
}

// Straighten snaps a to 90°, 180°, 270° or 0° when it lies within eps of one
// of them (360° snaps to 0°). Other angles pass through unchanged.
func Straighten(a, eps Angle) Angle {
	switch {
	case Eq(a, Pi2, eps):
		return Pi2
	case Eq(a, Pi, eps):
		return Pi
	case Eq(a, Pi2.Mul(3), eps):
		return Pi2.Mul(3)
	case IsZero(a, eps) || Eq(a, FullTurn, eps):
		return Zero[AngleDim]()
	}
	return a
}
