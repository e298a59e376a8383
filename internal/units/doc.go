// Package units implements dimension-tagged quantities.
//
// A Quantity[D] wraps a single float64 stored in the canonical scale of its
// dimension D (seconds, meters, grams, radians, m/s, ...). Values enter and
// leave through a Unit[D], which rescales between the caller's scale and the
// canonical one, so quantities built from millimeters and kilometers combine
// without explicit conversion.
//
// Addition, subtraction, comparison and tolerant equality take operands of the
// same Quantity[D] type, so mixing dimensions there fails to compile.
// Multiplication and division between different dimensions go through Mul and
// Div, whose result dimension is named by the caller and checked against the
// dimension algebra (see MulDim and DivDim) when the call is made. A mismatch
// panics with a *DimensionError; TryMul and TryDiv return it instead.
package units
