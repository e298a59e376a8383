package container

import (
	"fmt"
	"iter"

	"github.com/banshee-data/quantity/internal/numeric"
)

// RingBuffer holds the most recent values up to a fixed capacity. When full,
// appending overwrites the oldest element. Index 0 is always the oldest.
type RingBuffer[T any] struct {
	data  []T
	begin int
	size  int
}

// NewRingBuffer returns an empty buffer that holds capacity elements. It
// panics if capacity is not positive.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("container: ring buffer capacity must be positive, got %d", capacity))
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

func (r *RingBuffer[T]) Len() int    { return r.size }
func (r *RingBuffer[T]) Cap() int    { return len(r.data) }
func (r *RingBuffer[T]) Empty() bool { return r.size == 0 }
func (r *RingBuffer[T]) Full() bool  { return r.size == len(r.data) }

func (r *RingBuffer[T]) idx(pos int) int {
	return numeric.AddOverflow(r.begin, pos, len(r.data))
}

// At returns the element at pos, counted from the oldest. It panics if pos
// is out of range.
func (r *RingBuffer[T]) At(pos int) T {
	if pos < 0 || pos >= r.size {
		panic(fmt.Sprintf("container: index %d out of range [0, %d)", pos, r.size))
	}
	return r.data[r.idx(pos)]
}

// Newest returns the most recently appended element.
func (r *RingBuffer[T]) Newest() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.data[r.idx(r.size-1)], true
}

// Append adds values in order, overwriting the oldest elements once full.
func (r *RingBuffer[T]) Append(values ...T) {
	for _, x := range values {
		if r.Full() {
			r.data[r.begin] = x
			r.begin = numeric.IncrOverflow(r.begin, len(r.data))
			continue
		}
		r.data[r.idx(r.size)] = x
		r.size++
	}
}

// Clear empties the buffer.
func (r *RingBuffer[T]) Clear() {
	clear(r.data)
	r.begin, r.size = 0, 0
}

// All yields the elements from oldest to newest.
func (r *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.size {
			if !yield(i, r.data[r.idx(i)]) {
				return
			}
		}
	}
}

// Slice returns the elements from oldest to newest.
func (r *RingBuffer[T]) Slice() []T {
	out := make([]T, 0, r.size)
	for _, x := range r.All() {
		out = append(out, x)
	}
	return out
}
