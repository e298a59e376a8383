package units

import (
	"errors"
	"testing"

	"github.com/banshee-data/quantity/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitMultipliers(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"millimeter", Millimeter.Multiplier(), 1e-3},
		{"kilometer", Kilometer.Multiplier(), 1e3},
		{"hour", Hour.Multiplier(), 3600},
		{"minute", Minute.Multiplier(), 60},
		{"degree", Degree.Multiplier(), 0.017453292519943295},
		{"km/h", KmPerHour.Multiplier(), 1000.0 / 3600.0},
		{"cm/s", CmPerSec.Multiplier(), 0.01},
		{"cm/s²", CmPerSec2.Multiplier(), 0.01},
		{"deg/s", DegPerSec.Multiplier(), 0.017453292519943295},
		{"cm²", Centimeter2.Multiplier(), 1e-4},
		{"km²", Kilometer2.Multiplier(), 1e6},
		{"mph", MiPerHour.Multiplier(), 0.44704},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.got, 1e-12)
		})
	}
}

func TestUnitSymbols(t *testing.T) {
	assert.Equal(t, "cm", Centimeter.Symbol())
	assert.Equal(t, "s", Second.String())
	assert.Equal(t, "µs", Microsecond.Symbol())
	assert.Equal(t, "cm²", Centimeter2.Symbol())
	assert.Equal(t, "cm/s", CmPerSec.Symbol())
	assert.Equal(t, "km/h", KmPerHour.Symbol())
	assert.Equal(t, "rad/s", RadPerSec.Symbol())
	assert.Equal(t, "distance", Unit[DistanceDim]{}.String())
}

func TestUnitDimensions(t *testing.T) {
	assert.Equal(t, DimSpeed, KmPerHour.Dimension())
	assert.Equal(t, DimAcceleration, MPerSec2.Dimension())
	assert.Equal(t, DimAngularVelocity, DegPerSec.Dimension())
	assert.Equal(t, DimDistance2, Meter2.Dimension())
}

func TestComposeUnits(t *testing.T) {
	t.Run("division composes multipliers", func(t *testing.T) {
		u, err := ComposeUnits[SpeedDim](Millimeter, Millisecond, OpDiv)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, u.Multiplier(), 1e-12)
		assert.Equal(t, "mm/ms", u.Symbol())
	})

	t.Run("multiplication composes multipliers", func(t *testing.T) {
		u, err := ComposeUnits[DistanceDim](KmPerHour, Hour, OpMul)
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, u.Multiplier(), 1e-9)
		assert.Equal(t, "km/h·h", u.Symbol())
	})

	t.Run("angle is absorbed", func(t *testing.T) {
		u, err := ComposeUnits[DistanceDim](Centimeter, Degree, OpMul)
		require.NoError(t, err)
		assert.InDelta(t, 0.01*0.017453292519943295, u.Multiplier(), 1e-15)
	})

	t.Run("undeclared pairing", func(t *testing.T) {
		_, err := ComposeUnits[SpeedDim](Second, Meter, OpDiv)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	})

	t.Run("declared pairing with the wrong result", func(t *testing.T) {
		_, err := ComposeUnits[AccelerationDim](Meter, Second, OpDiv)
		require.Error(t, err)
		var dimErr *DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, DimSpeed, dimErr.Got)
		assert.Equal(t, DimAcceleration, dimErr.Want)
		assert.Contains(t, err.Error(), "yields speed, not acceleration")
	})

	t.Run("bare unit operand", func(t *testing.T) {
		_, err := ComposeUnits[SpeedDim](Unit[DistanceDim]{}, Second, OpDiv)
		assert.True(t, errors.Is(err, ErrUndefinedConversion))
	})

	t.Run("panicking forms", func(t *testing.T) {
		testutil.AssertPanicsWith(t, ErrDimensionMismatch, func() {
			_ = MulUnit[SpeedDim](Meter, Second)
		})
		testutil.AssertPanicsWith(t, ErrDimensionMismatch, func() {
			_ = DivUnit[TimeDim](Meter, Gram)
		})
	})
}

func TestBareUnitIsNotLiteralConstructible(t *testing.T) {
	var bare Unit[DistanceDim]
	assert.False(t, bare.Explicit())

	_, err := bare.TryNew(3)
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, DimDistance, convErr.Dim)
	assert.Equal(t, "new", convErr.Op)

	_, err = Meter.New(3).TryIn(bare)
	assert.True(t, errors.Is(err, ErrUndefinedConversion))

	testutil.AssertPanicsWith(t, ErrUndefinedConversion, func() { _ = New(1, bare) })
	testutil.AssertPanicsWith(t, ErrUndefinedConversion, func() { _ = Meter.New(1).In(bare) })
}

func TestBasicRejectsInvalidScale(t *testing.T) {
	for _, s := range []Scale{0, -1} {
		err := testutil.Recovered(func() { _ = Basic[TimeDim](s, "bad") })
		assert.Error(t, err, "scale %v", float64(s))
	}
}

func TestScales(t *testing.T) {
	p, ok := Kilo.Prefix()
	assert.True(t, ok)
	assert.Equal(t, "k", p)
	_, ok = Sixty.Prefix()
	assert.False(t, ok)
	assert.Equal(t, "deg->rad", DegToRad.String())
	assert.True(t, Nano.Valid())
	assert.False(t, Scale(0).Valid())
	assert.InDelta(t, 57.29577951308232, RadToDeg, 1e-12)
}
