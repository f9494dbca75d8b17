//go:build debug

package dbg

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[linedetect DEBUG] ", log.LstdFlags)

// Printf logs a debug trace message.
func Printf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
