package units

import "fmt"

// Dimension tags the physical category of a quantity. Every base dimension is
// immediately followed by its squared counterpart.
type Dimension uint8

// DimNone is the zero Dimension. It names no physical category.
const DimNone Dimension = 0

const (
	DimTime Dimension = iota + 1 // [s]
	DimTime2
	DimDistance // [m]
	DimDistance2
	DimWeight // [g]
	DimWeight2
	DimAngle // [rad]
	DimAngle2
	DimVoltage // [V]
	DimVoltage2
	DimCurrent // [A]
	DimCurrent2
	DimResistance // [Ω]
	DimResistance2
	DimSpeed // [m/s]
	DimSpeed2
	DimAcceleration // [m/s²]
	DimAcceleration2
	DimAngularVelocity // [rad/s]
	DimAngularVelocity2
	DimTemperature // [°C]
	DimTemperature2
	DimMagneticFlux // [Mx]
	DimMagneticFlux2
	DimMagneticFluxDensity // [G]
	DimMagneticFluxDensity2

	dimEnd
)

type dimensionInfo struct {
	name   string
	symbol string // canonical unit symbol
}

var baseDimensions = map[Dimension]dimensionInfo{
	DimTime:                {"time", "s"},
	DimDistance:            {"distance", "m"},
	DimWeight:              {"weight", "g"},
	DimAngle:               {"angle", "rad"},
	DimVoltage:             {"voltage", "V"},
	DimCurrent:             {"current", "A"},
	DimResistance:          {"resistance", "Ω"},
	DimSpeed:               {"speed", "m/s"},
	DimAcceleration:        {"acceleration", "m/s²"},
	DimAngularVelocity:     {"angular_velocity", "rad/s"},
	DimTemperature:         {"temperature", "°C"},
	DimMagneticFlux:        {"magnetic_flux", "Mx"},
	DimMagneticFluxDensity: {"magnetic_flux_density", "G"},
}

// Dimensions returns every valid dimension tag in declaration order.
func Dimensions() []Dimension {
	out := make([]Dimension, 0, dimEnd-1)
	for d := DimTime; d < dimEnd; d++ {
		out = append(out, d)
	}
	return out
}

// Valid reports whether d is a declared dimension.
func (d Dimension) Valid() bool {
	return d > DimNone && d < dimEnd
}

// IsSquared reports whether d is the squared counterpart of a base dimension.
func (d Dimension) IsSquared() bool {
	return d.Valid() && d%2 == 0
}

// Squared returns the squared counterpart of a base dimension.
func (d Dimension) Squared() (Dimension, bool) {
	if !d.Valid() || d.IsSquared() {
		return DimNone, false
	}
	return d + 1, true
}

// Base returns the base dimension of d; base dimensions return themselves.
func (d Dimension) Base() Dimension {
	if d.IsSquared() {
		return d - 1
	}
	return d
}

// Symbol returns the symbol of the canonical unit of d, e.g. "m" or "m²".
func (d Dimension) Symbol() string {
	if !d.Valid() {
		return "?"
	}
	info := baseDimensions[d.Base()]
	if d.IsSquared() {
		if info.symbol == "m/s" || info.symbol == "rad/s" || info.symbol == "m/s²" {
			return "(" + info.symbol + ")²"
		}
		return info.symbol + "²"
	}
	return info.symbol
}

func (d Dimension) String() string {
	if !d.Valid() {
		if d == DimNone {
			return "none"
		}
		return fmt.Sprintf("Dimension(%d)", uint8(d))
	}
	name := baseDimensions[d.Base()].name
	if d.IsSquared() {
		return name + "²"
	}
	return name
}

// Dim is implemented by the zero-size marker types that parameterise
// Quantity and Unit. Each marker maps to exactly one Dimension.
type Dim interface {
	Dimension() Dimension
}

// dimOf returns the Dimension of marker type D.
func dimOf[D Dim]() Dimension {
	var d D
	return d.Dimension()
}

// Dimension markers.
type (
	TimeDim                 struct{}
	Time2Dim                struct{}
	DistanceDim             struct{}
	Distance2Dim            struct{}
	WeightDim               struct{}
	Weight2Dim              struct{}
	AngleDim                struct{}
	Angle2Dim               struct{}
	VoltageDim              struct{}
	Voltage2Dim             struct{}
	CurrentDim              struct{}
	Current2Dim             struct{}
	ResistanceDim           struct{}
	Resistance2Dim          struct{}
	SpeedDim                struct{}
	Speed2Dim               struct{}
	AccelerationDim         struct{}
	Acceleration2Dim        struct{}
	AngularVelocityDim      struct{}
	AngularVelocity2Dim     struct{}
	TemperatureDim          struct{}
	Temperature2Dim         struct{}
	MagneticFluxDim         struct{}
	MagneticFlux2Dim        struct{}
	MagneticFluxDensityDim  struct{}
	MagneticFluxDensity2Dim struct{}
)

func (TimeDim) Dimension() Dimension                 { return DimTime }
func (Time2Dim) Dimension() Dimension                { return DimTime2 }
func (DistanceDim) Dimension() Dimension             { return DimDistance }
func (Distance2Dim) Dimension() Dimension            { return DimDistance2 }
func (WeightDim) Dimension() Dimension               { return DimWeight }
func (Weight2Dim) Dimension() Dimension              { return DimWeight2 }
func (AngleDim) Dimension() Dimension                { return DimAngle }
func (Angle2Dim) Dimension() Dimension               { return DimAngle2 }
func (VoltageDim) Dimension() Dimension              { return DimVoltage }
func (Voltage2Dim) Dimension() Dimension             { return DimVoltage2 }
func (CurrentDim) Dimension() Dimension              { return DimCurrent }
func (Current2Dim) Dimension() Dimension             { return DimCurrent2 }
func (ResistanceDim) Dimension() Dimension           { return DimResistance }
func (Resistance2Dim) Dimension() Dimension          { return DimResistance2 }
func (SpeedDim) Dimension() Dimension                { return DimSpeed }
func (Speed2Dim) Dimension() Dimension               { return DimSpeed2 }
func (AccelerationDim) Dimension() Dimension         { return DimAcceleration }
func (Acceleration2Dim) Dimension() Dimension        { return DimAcceleration2 }
func (AngularVelocityDim) Dimension() Dimension      { return DimAngularVelocity }
func (AngularVelocity2Dim) Dimension() Dimension     { return DimAngularVelocity2 }
func (TemperatureDim) Dimension() Dimension          { return DimTemperature }
func (Temperature2Dim) Dimension() Dimension         { return DimTemperature2 }
func (MagneticFluxDim) Dimension() Dimension         { return DimMagneticFlux }
func (MagneticFlux2Dim) Dimension() Dimension        { return DimMagneticFlux2 }
func (MagneticFluxDensityDim) Dimension() Dimension  { return DimMagneticFluxDensity }
func (MagneticFluxDensity2Dim) Dimension() Dimension { return DimMagneticFluxDensity2 }

// Quantity types, one per dimension.
type (
	Time                 = Quantity[TimeDim]
	Time2                = Quantity[Time2Dim]
	Distance             = Quantity[DistanceDim]
	Distance2            = Quantity[Distance2Dim]
	Weight               = Quantity[WeightDim]
	Weight2              = Quantity[Weight2Dim]
	Angle                = Quantity[AngleDim]
	Angle2               = Quantity[Angle2Dim]
	Voltage              = Quantity[VoltageDim]
	Voltage2             = Quantity[Voltage2Dim]
	Current              = Quantity[CurrentDim]
	Current2             = Quantity[Current2Dim]
	Resistance           = Quantity[ResistanceDim]
	Resistance2          = Quantity[Resistance2Dim]
	Speed                = Quantity[SpeedDim]
	Speed2               = Quantity[Speed2Dim]
	Acceleration         = Quantity[AccelerationDim]
	Acceleration2        = Quantity[Acceleration2Dim]
	AngularVelocity      = Quantity[AngularVelocityDim]
	AngularVelocity2     = Quantity[AngularVelocity2Dim]
	Temperature          = Quantity[TemperatureDim]
	Temperature2         = Quantity[Temperature2Dim]
	MagneticFlux         = Quantity[MagneticFluxDim]
	MagneticFlux2        = Quantity[MagneticFlux2Dim]
	MagneticFluxDensity  = Quantity[MagneticFluxDensityDim]
	MagneticFluxDensity2 = Quantity[MagneticFluxDensity2Dim]
)
