// ABOUTME: Termination signals on platforms without Unix signals.

//go:build !unix

package terminal

import "os"

var exitSignals = []os.Signal{os.Interrupt}
