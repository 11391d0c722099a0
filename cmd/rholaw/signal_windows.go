//go:build windows

package main

import "os"

// interruptSignals cancel a running simulation. On Windows only
// os.Interrupt is delivered.
var interruptSignals = []os.Signal{os.Interrupt}
