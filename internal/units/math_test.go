package units

import (
	"testing"

	"github.com/banshee-data/quantity/internal/numeric"
	"github.com/stretchr/testify/assert"
)

func TestAbsSign(t *testing.T) {
	tests := []struct {
		name string
		q    Distance
		abs  float64
		sign numeric.Sign
	}{
		{"positive", Centimeter.New(3), 3, numeric.Positive},
		{"negative", Centimeter.New(-3), 3, numeric.Negative},
		{"zero", Zero[DistanceDim](), 0, numeric.Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.abs, Abs(tt.q).In(Centimeter), 1e-12)
			assert.Equal(t, tt.sign, Sign(tt.q))
		})
	}
}

func TestMinMaxAvg(t *testing.T) {
	a := Millimeter.New(15)
	b := Centimeter.New(1)

	assert.True(t, Min(a, b).Equal(b))
	assert.True(t, Min(b, a).Equal(b))
	assert.True(t, Max(a, b).Equal(a))
	assert.InDelta(t, 12.5, Avg(a, b).In(Millimeter), 1e-9)
}

func TestClampAndBetween(t *testing.T) {
	lo := Second.New(1)
	hi := Minute.New(1)

	assert.True(t, Clamp(Hour.New(1), lo, hi).Equal(hi))
	assert.True(t, Clamp(Millisecond.New(3), hi, lo).Equal(lo))
	assert.True(t, Clamp(Second.New(30), lo, hi).Equal(Second.New(30)))
	assert.True(t, IsBetween(Second.New(30), hi, lo))
	assert.False(t, IsBetween(Hour.New(1), lo, hi))
}

func TestPythag(t *testing.T) {
	t.Run("3-4-5", func(t *testing.T) {
		h := Pythag(Centimeter.New(3), Centimeter.New(4))
		assert.InDelta(t, 5.0, h.In(Centimeter), 1e-9)
	})

	t.Run("mixed scales", func(t *testing.T) {
		h := Pythag(Millimeter.New(30), Centimeter.New(4))
		assert.InDelta(t, 0.05, h.In(Meter), 1e-12)
	})

	t.Run("three components", func(t *testing.T) {
		h := Pythag(Meter.New(1), Meter.New(2), Meter.New(2))
		assert.InDelta(t, 3.0, h.In(Meter), 1e-12)
	})

	t.Run("square stays in the operand dimension", func(t *testing.T) {
		sq := PythagSquare(Meter.New(3), Meter.New(4))
		assert.Equal(t, DimDistance, sq.Dimension())
		assert.InDelta(t, 25.0, sq.In(Meter), 1e-12)
	})
}
