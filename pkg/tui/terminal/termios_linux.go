package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSF is tcsetattr(TCSAFLUSH).
	ioctlWriteTermiosFlush = unix.TCSETSF
)
