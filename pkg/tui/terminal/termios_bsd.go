//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA
	// TIOCSETAF is tcsetattr(TCSAFLUSH).
	ioctlWriteTermiosFlush = unix.TIOCSETAF
)
