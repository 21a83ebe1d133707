// Package monitoring holds the process-wide diagnostic logger. The scoring
// engine itself never logs (it is a pure function); logging happens at the
// edges: API handlers, the batch worker, and storage.
package monitoring

import "log"

// Logf is the package-level diagnostic logger, defaulting to log.Printf.
// Tests and embedding callers can redirect or mute it with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// Debugf is the verbose logger. It is a no-op unless enabled with SetDebug.
var Debugf func(format string, v ...interface{}) = noop

func noop(string, ...interface{}) {}

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = noop
		return
	}
	Logf = f
}

// SetDebug routes Debugf through the main logger when enabled.
func SetDebug(enabled bool) {
	if enabled {
		Debugf = func(format string, v ...interface{}) {
			Logf("debug: "+format, v...)
		}
		return
	}
	Debugf = noop
}
