package units

// Time.
var (
	Nanosecond  = Prefixed[TimeDim](Nano, "s")
	Microsecond = Prefixed[TimeDim](Micro, "s")
	Millisecond = Prefixed[TimeDim](Milli, "s")
	Second      = Prefixed[TimeDim](One, "s")
	Minute      = Basic[TimeDim](Sixty, "min")
	Hour        = Basic[TimeDim](ThirtySixHundred, "h")

	Millisecond2 = Square[Time2Dim](Millisecond)
	Second2      = Square[Time2Dim](Second)
)

// Distance.
var (
	Nanometer  = Prefixed[DistanceDim](Nano, "m")
	Micrometer = Prefixed[DistanceDim](Micro, "m")
	Millimeter = Prefixed[DistanceDim](Milli, "m")
	Centimeter = Prefixed[DistanceDim](Centi, "m")
	Decimeter  = Prefixed[DistanceDim](Deci, "m")
	Meter      = Prefixed[DistanceDim](One, "m")
	Kilometer  = Prefixed[DistanceDim](Kilo, "m")
	Mile       = Basic[DistanceDim](StatuteMile, "mi")

	Millimeter2 = Square[Distance2Dim](Millimeter)
	Centimeter2 = Square[Distance2Dim](Centimeter)
	Meter2      = Square[Distance2Dim](Meter)
	Kilometer2  = Square[Distance2Dim](Kilometer)
)

// Weight.
var (
	Milligram = Prefixed[WeightDim](Milli, "g")
	Gram      = Prefixed[WeightDim](One, "g")
	Kilogram  = Prefixed[WeightDim](Kilo, "g")
	Megagram  = Prefixed[WeightDim](Mega, "g")

	Gram2     = Square[Weight2Dim](Gram)
	Kilogram2 = Square[Weight2Dim](Kilogram)
)

// Angle.
var (
	Microradian = Prefixed[AngleDim](Micro, "rad")
	Milliradian = Prefixed[AngleDim](Milli, "rad")
	Radian      = Prefixed[AngleDim](One, "rad")
	Degree      = Basic[AngleDim](DegToRad, "°")

	Radian2 = Square[Angle2Dim](Radian)
	Degree2 = Square[Angle2Dim](Degree)
)

// Electrical.
var (
	Microvolt = Prefixed[VoltageDim](Micro, "V")
	Millivolt = Prefixed[VoltageDim](Milli, "V")
	Volt      = Prefixed[VoltageDim](One, "V")
	Kilovolt  = Prefixed[VoltageDim](Kilo, "V")
	Volt2     = Square[Voltage2Dim](Volt)

	Microampere = Prefixed[CurrentDim](Micro, "A")
	Milliampere = Prefixed[CurrentDim](Milli, "A")
	Ampere      = Prefixed[CurrentDim](One, "A")
	Ampere2     = Square[Current2Dim](Ampere)

	Milliohm = Prefixed[ResistanceDim](Milli, "Ω")
	Ohm      = Prefixed[ResistanceDim](One, "Ω")
	Kiloohm  = Prefixed[ResistanceDim](Kilo, "Ω")
	Megaohm  = Prefixed[ResistanceDim](Mega, "Ω")
	Ohm2     = Square[Resistance2Dim](Ohm)
)

// Temperature and magnetism.
var (
	Millicelsius = Prefixed[TemperatureDim](Milli, "°C")
	Celsius      = Prefixed[TemperatureDim](One, "°C")
	Celsius2     = Square[Temperature2Dim](Celsius)

	Maxwell     = Prefixed[MagneticFluxDim](One, "Mx")
	Kilomaxwell = Prefixed[MagneticFluxDim](Kilo, "Mx")
	Megamaxwell = Prefixed[MagneticFluxDim](Mega, "Mx")
	Maxwell2    = Square[MagneticFlux2Dim](Maxwell)

	Milligauss = Prefixed[MagneticFluxDensityDim](Milli, "G")
	Gauss      = Prefixed[MagneticFluxDensityDim](One, "G")
	Kilogauss  = Prefixed[MagneticFluxDensityDim](Kilo, "G")
	Gauss2     = Square[MagneticFluxDensity2Dim](Gauss)
)

// Derived kinematic units.
var (
	KmPerHour = DivUnit[SpeedDim](Kilometer, Hour).WithSymbol("km/h")
	MPerSec   = DivUnit[SpeedDim](Meter, Second)
	CmPerSec  = DivUnit[SpeedDim](Centimeter, Second)
	MmPerSec  = DivUnit[SpeedDim](Millimeter, Second)
	MiPerHour = DivUnit[SpeedDim](Mile, Hour).WithSymbol("mph")

	MPerSec2  = DivUnit[AccelerationDim](MPerSec, Second).WithSymbol("m/s²")
	CmPerSec2 = DivUnit[AccelerationDim](CmPerSec, Second).WithSymbol("cm/s²")
	MmPerSec2 = DivUnit[AccelerationDim](MmPerSec, Second).WithSymbol("mm/s²")

	RadPerSec = DivUnit[AngularVelocityDim](Radian, Second)
	DegPerSec = DivUnit[AngularVelocityDim](Degree, Second)
)
