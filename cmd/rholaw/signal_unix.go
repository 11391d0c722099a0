//go:build !windows

package main

import (
	"os"
	"syscall"
)

// interruptSignals cancel a running simulation. On Unix systems this
// includes both SIGINT and SIGTERM.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
