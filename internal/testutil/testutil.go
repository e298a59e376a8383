// Package testutil provides shared test helpers.
//
// The quantity packages report programmer errors by panicking with typed
// errors; the helpers here recover those panics and match them with
// errors.Is so tests can assert on the failure kind.
package testutil

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// AssertNear fails the test if got differs from want by more than tol.
func AssertNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (±%v)", got, want, tol)
	}
}

// AssertNaN fails the test if v is not NaN.
func AssertNaN(t *testing.T, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Errorf("got %v, want NaN", v)
	}
}

// Recovered runs fn and returns the value it panicked with as an error,
// or nil if it returned normally.
func Recovered(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}

// AssertPanicsWith fails the test unless fn panics with an error matching target.
func AssertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	err := Recovered(fn)
	if err == nil {
		t.Fatalf("expected panic matching %v, got none", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic %v does not match %v", err, target)
	}
}
