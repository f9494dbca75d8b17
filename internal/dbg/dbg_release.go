//go:build !debug

package dbg

// Printf is a no-op in release builds.
func Printf(format string, v ...interface{}) {}
