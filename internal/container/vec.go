package container

import (
	"fmt"
	"iter"
	"slices"
)

// Vec is a list with a fixed capacity. Appending to a full Vec drops the
// values that do not fit.
type Vec[T comparable] struct {
	data []T
}

// NewVec returns an empty Vec that holds at most capacity elements. It panics
// if capacity is negative.
func NewVec[T comparable](capacity int) *Vec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("container: negative capacity %d", capacity))
	}
	return &Vec[T]{data: make([]T, 0, capacity)}
}

// VecOf returns a Vec holding values with capacity equal to their count.
func VecOf[T comparable](values ...T) *Vec[T] {
	v := NewVec[T](len(values))
	v.Append(values...)
	return v
}

func (v *Vec[T]) Len() int       { return len(v.data) }
func (v *Vec[T]) Cap() int       { return cap(v.data) }
func (v *Vec[T]) Empty() bool    { return len(v.data) == 0 }
func (v *Vec[T]) Full() bool     { return len(v.data) == cap(v.data) }
func (v *Vec[T]) At(i int) T     { return v.data[i] }
func (v *Vec[T]) Set(i int, x T) { v.data[i] = x }

// Append adds as many of values as fit and returns how many were added.
func (v *Vec[T]) Append(values ...T) int {
	n := min(len(values), cap(v.data)-len(v.data))
	v.data = append(v.data, values[:n]...)
	return n
}

// Insert places x at index i, shifting later elements back. It reports
// false if the Vec is full or i is out of range.
func (v *Vec[T]) Insert(i int, x T) bool {
	if v.Full() || i < 0 || i > len(v.data) {
		return false
	}
	v.data = slices.Insert(v.data, i, x)
	return true
}

// Remove deletes the element at index i. It reports false if i is out of
// range.
func (v *Vec[T]) Remove(i int) bool {
	if i < 0 || i >= len(v.data) {
		return false
	}
	v.data = slices.Delete(v.data, i, i+1)
	return true
}

// RemoveValue deletes the first element equal to x and reports whether one
// was found.
func (v *Vec[T]) RemoveValue(x T) bool {
	return v.Remove(v.Find(x))
}

// Find returns the index of the first element equal to x, or -1.
func (v *Vec[T]) Find(x T) int {
	return slices.Index(v.data, x)
}

// Clear removes every element, keeping the capacity.
func (v *Vec[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// All yields the elements in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

// Slice returns a copy of the elements.
func (v *Vec[T]) Slice() []T {
	return slices.Clone(v.data)
}
