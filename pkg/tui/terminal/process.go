// ABOUTME: ProcessTerminal implements Terminal on the process's stdin/stdout.
// ABOUTME: Configuration and reads go through the input descriptor; writes go to the output.

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input file (usually
// os.Stdin) and an output writer (usually os.Stdout). The descriptor is
// borrowed: ProcessTerminal never closes it.
type ProcessTerminal struct {
	fd  int
	out io.Writer
}

// NewProcessTerminal returns a ProcessTerminal for in and out.
// It fails with ErrNotATty when in is not a terminal device.
func NewProcessTerminal(in *os.File, out io.Writer) (*ProcessTerminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotATty)
	}
	return &ProcessTerminal{fd: fd, out: out}, nil
}

// Capture reads the terminal's current attributes.
func (t *ProcessTerminal) Capture() (Attributes, error) {
	return Capture(t.fd)
}

// Apply writes attrs to the terminal.
func (t *ProcessTerminal) Apply(attrs Attributes) error {
	return Apply(t.fd, attrs)
}

// Read performs one read(2) on the input descriptor. Unlike os.File.Read,
// an expired read timeout yields (0, nil) rather than io.EOF.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return readFd(t.fd, p)
}

// Write sends bytes to the output.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
