// ABOUTME: Reader performs bounded-wait, single-byte reads from a raw terminal.
// ABOUTME: A timeout with no input is reported as ok=false, never as an error.

package terminal

import "fmt"

// Reader reads input one byte at a time. With the raw-mode read policy
// (MinBytes 0, Timeout 1) each Poll waits at most 100ms.
type Reader struct {
	term Terminal
	buf  [1]byte
}

// NewReader returns a Reader over t.
func NewReader(t Terminal) *Reader {
	return &Reader{term: t}
}

// Poll reads at most one byte. It returns ok=false with a nil error when
// the read timeout expired with no input.
func (r *Reader) Poll() (b byte, ok bool, err error) {
	n, err := r.term.Read(r.buf[:])
	if err != nil {
		return 0, false, fmt.Errorf("reading input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return r.buf[0], true, nil
}
