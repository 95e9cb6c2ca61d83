//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"fmt"
)

type sysState struct{}

var errUnsupported = fmt.Errorf("termios: %w", errors.ErrUnsupported)

// Capture is unsupported on this platform.
func Capture(fd int) (Attributes, error) { return Attributes{}, errUnsupported }

// Apply is unsupported on this platform.
func Apply(fd int, attrs Attributes) error { return errUnsupported }

func readFd(fd int, p []byte) (int, error) { return 0, errUnsupported }
