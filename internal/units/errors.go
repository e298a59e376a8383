package units

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports arithmetic or comparison between dimensions
	// that have no declared relationship.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrUndefinedConversion reports a construction or read through a unit
	// that carries no explicit scale, such as the zero Unit.
	ErrUndefinedConversion = errors.New("undefined conversion")

	// ErrNoSIEquivalent reports a dimension that has no linear SI counterpart.
	ErrNoSIEquivalent = errors.New("no SI equivalent")
)

// DimensionError describes a rejected combination of two dimensions.
type DimensionError struct {
	Op    string
	Left  Dimension
	Right Dimension
	// Want is the dimension the caller expected the combination to yield.
	// It is DimNone when the combination itself is undefined.
	Want Dimension
	// Got is the dimension the algebra actually yields when Want is set.
	Got Dimension
}

func (e *DimensionError) Error() string {
	if e.Want == DimNone {
		return fmt.Sprintf("units: %s %s %s: %v", e.Left, e.Op, e.Right, ErrDimensionMismatch)
	}
	return fmt.Sprintf("units: %s %s %s yields %s, not %s: %v", e.Left, e.Op, e.Right, e.Got, e.Want, ErrDimensionMismatch)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ConversionError describes a construction or read through a unit without an
// explicit scale.
type ConversionError struct {
	Op  string
	Dim Dimension
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("units: %s: %s unit has no explicit scale: %v", e.Op, e.Dim, ErrUndefinedConversion)
}

func (e *ConversionError) Unwrap() error { return ErrUndefinedConversion }
