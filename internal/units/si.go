package units

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// siEquivalent maps a canonical value to SI: si = canonical*factor + offset.
type siEquivalent struct {
	dims   unit.Dimensions
	factor float64
	offset float64
}

var siBase = map[Dimension]siEquivalent{
	DimTime:     {dims: unit.Dimensions{unit.TimeDim: 1}, factor: 1},
	DimDistance: {dims: unit.Dimensions{unit.LengthDim: 1}, factor: 1},
	DimWeight:   {dims: unit.Dimensions{unit.MassDim: 1}, factor: 1e-3},
	DimAngle:    {dims: unit.Dimensions{unit.AngleDim: 1}, factor: 1},
	DimVoltage: {dims: unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.CurrentDim: -1,
	}, factor: 1},
	DimCurrent: {dims: unit.Dimensions{unit.CurrentDim: 1}, factor: 1},
	DimResistance: {dims: unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.CurrentDim: -2,
	}, factor: 1},
	DimSpeed:           {dims: unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}, factor: 1},
	DimAcceleration:    {dims: unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}, factor: 1},
	DimAngularVelocity: {dims: unit.Dimensions{unit.AngleDim: 1, unit.TimeDim: -1}, factor: 1},
	DimTemperature:     {dims: unit.Dimensions{unit.TemperatureDim: 1}, factor: 1, offset: 273.15},
	// 1 Mx = 1e-8 Wb
	DimMagneticFlux: {dims: unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, unit.CurrentDim: -1,
	}, factor: 1e-8},
	// 1 G = 1e-4 T
	DimMagneticFluxDensity: {dims: unit.Dimensions{
		unit.MassDim: 1, unit.TimeDim: -2, unit.CurrentDim: -1,
	}, factor: 1e-4},
}

func siFor(d Dimension) (siEquivalent, error) {
	base, ok := siBase[d.Base()]
	if !ok {
		return siEquivalent{}, fmt.Errorf("units: %s: %w", d, ErrNoSIEquivalent)
	}
	if !d.IsSquared() {
		return base, nil
	}
	if base.offset != 0 {
		return siEquivalent{}, fmt.Errorf("units: %s has an affine SI scale: %w", d, ErrNoSIEquivalent)
	}
	dims := make(unit.Dimensions, len(base.dims))
	for k, v := range base.dims {
		dims[k] = 2 * v
	}
	return siEquivalent{dims: dims, factor: base.factor * base.factor}, nil
}

// ToSI converts q to a gonum SI unit value. Weights become kilograms,
// temperatures kelvin, magnetic flux webers and flux density teslas.
func ToSI[D Dim](q Quantity[D]) (*unit.Unit, error) {
	eq, err := siFor(q.Dimension())
	if err != nil {
		return nil, err
	}
	return unit.New(q.v*eq.factor+eq.offset, eq.dims), nil
}

// FromSI converts a gonum SI unit value to a quantity of dimension D. It
// fails with ErrDimensionMismatch if the SI dimensions of u do not match D.
func FromSI[D Dim](u *unit.Unit) (Quantity[D], error) {
	d := dimOf[D]()
	eq, err := siFor(d)
	if err != nil {
		return Quantity[D]{}, err
	}
	if u == nil {
		return Quantity[D]{}, fmt.Errorf("units: nil SI value for %s", d)
	}
	if !unit.DimensionsMatch(u, unit.New(1, eq.dims)) {
		return Quantity[D]{}, fmt.Errorf("units: SI value %v is not a %s: %w", u, d, ErrDimensionMismatch)
	}
	return Quantity[D]{v: (u.Value() - eq.offset) / eq.factor}, nil
}
