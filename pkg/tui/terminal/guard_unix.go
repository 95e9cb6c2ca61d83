// ABOUTME: Unix termination signals that trigger terminal restoration.

//go:build unix

package terminal

import (
	"os"
	"syscall"
)

// exitSignals are delivered even in raw mode: SIGINT and SIGQUIT can
// still arrive through kill(1).
var exitSignals = []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
