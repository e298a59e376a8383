// Package monitoring holds the diagnostic logger shared by the clustering
// code and the command-line tools.
package monitoring

import "log"

// LogFunc has the signature of log.Printf.
type LogFunc func(format string, v ...interface{})

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced by SetLogger.
var Logf LogFunc = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f LogFunc) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf to f and returns a function that restores the
// previous logger.
func Capture(f LogFunc) (restore func()) {
	prev := Logf
	SetLogger(f)
	return func() { Logf = prev }
}
