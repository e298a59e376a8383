package numeric

import "golang.org/x/exp/constraints"

// AddOverflow returns value+incr wrapped into [0, exclusiveMax).
func AddOverflow[T constraints.Integer](value, incr, exclusiveMax T) T {
	return (value%exclusiveMax + incr%exclusiveMax) % exclusiveMax
}

// SubUnderflow returns value-sub wrapped into [0, exclusiveMax).
func SubUnderflow[T constraints.Integer](value, sub, exclusiveMax T) T {
	return (value%exclusiveMax + exclusiveMax - sub%exclusiveMax) % exclusiveMax
}

// IncrOverflow returns value+1, or 0 when that reaches exclusiveMax.
func IncrOverflow[T constraints.Integer](value, exclusiveMax T) T {
	value++
	if value == exclusiveMax {
		return 0
	}
	return value
}

// DecrUnderflow returns value-1, or exclusiveMax-1 when value is 0.
func DecrUnderflow[T constraints.Integer](value, exclusiveMax T) T {
	if value == 0 {
		return exclusiveMax - 1
	}
	return value - 1
}
