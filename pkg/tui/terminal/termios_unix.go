// ABOUTME: OS boundary for terminal attributes: tcgetattr/tcsetattr via golang.org/x/sys/unix.
// ABOUTME: Translates between the packed termios flag words and the named Attributes fields.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"golang.org/x/sys/unix"
)

type sysState = unix.Termios

// Capture reads the current configuration of the terminal behind fd.
func Capture(fd int) (Attributes, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return Attributes{}, newSyscallError("tcgetattr", err)
	}
	return fromTermios(*t), nil
}

// Apply writes attrs to the terminal behind fd. Pending input is discarded
// and pending output drained before the change takes effect.
func Apply(fd int, attrs Attributes) error {
	t := toTermios(attrs)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, &t); err != nil {
		return newSyscallError("tcsetattr", err)
	}
	return nil
}

// readFd performs a single read(2). A zero-length read, EINTR and EAGAIN
// all report (0, nil): the VTIME window expired without data.
func readFd(fd int, p []byte) (int, error) {
	n, err := unix.Read(fd, p)
	switch err {
	case nil:
		return n, nil
	case unix.EINTR, unix.EAGAIN:
		return 0, nil
	default:
		return 0, newSyscallError("read", err)
	}
}

func fromTermios(t unix.Termios) Attributes {
	a := Attributes{
		Echo:          t.Lflag&unix.ECHO != 0,
		Canonical:     t.Lflag&unix.ICANON != 0,
		Signals:       t.Lflag&unix.ISIG != 0,
		ExtendedInput: t.Lflag&unix.IEXTEN != 0,

		FlowControl:    t.Iflag&unix.IXON != 0,
		CRToNL:         t.Iflag&unix.ICRNL != 0,
		BreakInterrupt: t.Iflag&unix.BRKINT != 0,
		ParityCheck:    t.Iflag&unix.INPCK != 0,
		StripHighBit:   t.Iflag&unix.ISTRIP != 0,

		OutputProcessing: t.Oflag&unix.OPOST != 0,

		MinBytes: t.Cc[unix.VMIN],
		Timeout:  t.Cc[unix.VTIME],

		sys: t,
	}

	switch t.Cflag & unix.CSIZE {
	case unix.CS5:
		a.CharSize = 5
	case unix.CS6:
		a.CharSize = 6
	case unix.CS7:
		a.CharSize = 7
	default:
		a.CharSize = 8
	}
	return a
}

func toTermios(a Attributes) unix.Termios {
	t := a.sys

	setFlag(&t.Lflag, unix.ECHO, a.Echo)
	setFlag(&t.Lflag, unix.ICANON, a.Canonical)
	setFlag(&t.Lflag, unix.ISIG, a.Signals)
	setFlag(&t.Lflag, unix.IEXTEN, a.ExtendedInput)

	setFlag(&t.Iflag, unix.IXON, a.FlowControl)
	setFlag(&t.Iflag, unix.ICRNL, a.CRToNL)
	setFlag(&t.Iflag, unix.BRKINT, a.BreakInterrupt)
	setFlag(&t.Iflag, unix.INPCK, a.ParityCheck)
	setFlag(&t.Iflag, unix.ISTRIP, a.StripHighBit)

	setFlag(&t.Oflag, unix.OPOST, a.OutputProcessing)

	t.Cflag &^= unix.CSIZE
	switch a.CharSize {
	case 5:
		t.Cflag |= unix.CS5
	case 6:
		t.Cflag |= unix.CS6
	case 7:
		t.Cflag |= unix.CS7
	default:
		t.Cflag |= unix.CS8
	}

	t.Cc[unix.VMIN] = a.MinBytes
	t.Cc[unix.VTIME] = a.Timeout
	return t
}

// setFlag sets or clears mask in word. Flag words are 32 bits on Linux and
// 64 bits on Darwin.
func setFlag[T ~uint32 | ~uint64](word *T, mask T, on bool) {
	if on {
		*word |= mask
	} else {
		*word &^= mask
	}
}
