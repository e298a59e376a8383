package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) { called = true })
	Logf("test message")
	assert.True(t, called, "custom logger was not called")

	called = false
	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("test message") })
	assert.False(t, called, "no-op logger should not reach the previous logger")
}

func TestCapture(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var lines []string
	restore := Capture(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	Logf("iteration %d", 3)
	restore()

	assert.Equal(t, []string{"iteration 3"}, lines)
	Logf("after restore %d", 4)
	assert.Len(t, lines, 1)
}

func TestLogfDefault(t *testing.T) {
	assert.NotNil(t, Logf)
	assert.NotPanics(t, func() { Logf("test message: %s", "value") })
}
