// ABOUTME: Key echo loop: prints the numeric value of every input byte, plus the character when printable
// ABOUTME: Stops cleanly on the quit key; polls the context between bounded reads

package keyecho

import (
	"context"
	"fmt"
	"io"

	pilog "github.com/mauromedda/kilo-go/internal/log"
)

// ByteSource yields one input byte per call, reporting ok=false when the
// bounded wait expired with no input. *terminal.Reader satisfies it.
type ByteSource interface {
	Poll() (b byte, ok bool, err error)
}

// Loop echoes input bytes to an output until the quit key arrives.
type Loop struct {
	src  ByteSource
	out  io.Writer
	quit byte
}

// New returns a Loop reading from src and writing to out.
func New(src ByteSource, out io.Writer, quit byte) *Loop {
	return &Loop{src: src, out: out, quit: quit}
}

// Run echoes bytes until the quit key is read (nil), ctx is done
// (ctx.Err()), or reading or writing fails.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, ok, err := l.src.Poll()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if _, err := io.WriteString(l.out, Format(b)); err != nil {
			return fmt.Errorf("echoing byte %d: %w", b, err)
		}

		if b == l.quit {
			pilog.Debug("quit key %d received", b)
			return nil
		}
	}
}

// Format renders b as its decimal value, followed by the character in
// parentheses when b is printable ASCII. Lines end in CRLF because output
// post-processing is off in raw mode.
func Format(b byte) string {
	if !IsPrintable(b) {
		return fmt.Sprintf("%d\r\n", b)
	}
	return fmt.Sprintf("%d ('%c')\r\n", b, b)
}

// IsPrintable reports whether b is a printable ASCII character. Control
// bytes and bytes of multi-byte UTF-8 sequences are not.
func IsPrintable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
