// ABOUTME: Defines the Terminal interface for attribute capture/apply and byte I/O.
// ABOUTME: Abstracts the device so sessions can target a real TTY or a virtual one.

package terminal

// Terminal abstracts the configuration and byte-level I/O of a terminal
// device. A Terminal borrows its descriptor; it never closes it.
type Terminal interface {
	Capture() (Attributes, error)
	Apply(attrs Attributes) error
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
