package units

import (
	"math"
	"strconv"
)

// Scale is a multiplicative factor relative to a dimension's canonical scale.
type Scale float64

// Decimal prefixes.
const (
	Giga  Scale = 1e9
	Mega  Scale = 1e6
	Kilo  Scale = 1e3
	Hecto Scale = 1e2
	Deca  Scale = 1e1
	One   Scale = 1
	Deci  Scale = 1e-1
	Centi Scale = 1e-2
	Milli Scale = 1e-3
	Micro Scale = 1e-6
	Nano  Scale = 1e-9
)

// Non-decimal factors.
const (
	Sixty            Scale = 60   // minutes to seconds, hours to minutes
	ThirtySixHundred Scale = 3600 // hours to seconds
	DegToRad         Scale = math.Pi / 180
	StatuteMile      Scale = 1609.344 // miles to meters
)

// RadToDeg converts radians to degrees.
const RadToDeg = 180 / math.Pi

var prefixes = map[Scale]string{
	Giga:  "G",
	Mega:  "M",
	Kilo:  "k",
	Hecto: "h",
	Deca:  "da",
	One:   "",
	Deci:  "d",
	Centi: "c",
	Milli: "m",
	Micro: "µ",
	Nano:  "n",
}

// Valid reports whether s is a usable multiplier: finite and strictly positive.
func (s Scale) Valid() bool {
	f := float64(s)
	return f > 0 && !math.IsInf(f, 0)
}

// Prefix returns the SI symbol prefix for decimal scales ("k", "c", "m", ...).
// ok is false for non-decimal scales.
func (s Scale) Prefix() (prefix string, ok bool) {
	prefix, ok = prefixes[s]
	return prefix, ok
}

func (s Scale) String() string {
	switch s {
	case Sixty:
		return "x60"
	case ThirtySixHundred:
		return "x3600"
	case DegToRad:
		return "deg->rad"
	}
	return "x" + strconv.FormatFloat(float64(s), 'g', -1, 64)
}
