// ABOUTME: Error taxonomy for terminal configuration: not-a-tty, syscall failure, closed session.
// ABOUTME: SyscallError preserves the OS error code for diagnostics.

package terminal

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrNotATty is returned when a descriptor does not refer to a terminal device.
	ErrNotATty = errors.New("not a terminal")

	// ErrAlreadyClosed is returned when a closed Session is asked to transition.
	// It indicates a caller bug.
	ErrAlreadyClosed = errors.New("terminal session already closed")
)

// SyscallError records a failed OS-level terminal operation.
type SyscallError struct {
	Op  string
	Err syscall.Errno
}

func (e *SyscallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SyscallError) Unwrap() error { return e.Err }

// Code returns the raw OS error number.
func (e *SyscallError) Code() int { return int(e.Err) }

// newSyscallError maps err to the package taxonomy. ENOTTY becomes
// ErrNotATty; any other errno is wrapped in a SyscallError.
func newSyscallError(op string, err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errno == syscall.ENOTTY {
		return ErrNotATty
	}
	return &SyscallError{Op: op, Err: errno}
}
