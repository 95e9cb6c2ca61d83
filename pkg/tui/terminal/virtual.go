// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Stores attributes in memory, records applies, queues input and captures output.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// CookedAttributes returns a typical interactive terminal configuration:
// echoing, line-buffered, signals and flow control on.
func CookedAttributes() Attributes {
	return Attributes{
		Echo:             true,
		Canonical:        true,
		Signals:          true,
		ExtendedInput:    true,
		FlowControl:      true,
		CRToNL:           true,
		BreakInterrupt:   true,
		OutputProcessing: true,
		CharSize:         8,
		MinBytes:         1,
		Timeout:          0,
	}
}

// VirtualTerminal is a fake Terminal for unit tests.
// A read with no queued input behaves like an expired read timeout.
type VirtualTerminal struct {
	mu       sync.Mutex
	attrs    Attributes
	applied  []Attributes
	captures int
	input    []byte
	buf      bytes.Buffer

	captureErr error
	applyErr   error
	readErr    error
}

// NewVirtualTerminal returns a VirtualTerminal configured with attrs.
func NewVirtualTerminal(attrs Attributes) *VirtualTerminal {
	return &VirtualTerminal{attrs: attrs}
}

// Capture returns the current attributes.
func (v *VirtualTerminal) Capture() (Attributes, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.captures++
	if v.captureErr != nil {
		return Attributes{}, v.captureErr
	}
	return v.attrs, nil
}

// Apply records attrs and makes them current.
func (v *VirtualTerminal) Apply(attrs Attributes) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.applyErr != nil {
		return v.applyErr
	}
	v.attrs = attrs
	v.applied = append(v.applied, attrs)
	return nil
}

// Read pops at most len(p) queued input bytes.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.readErr != nil {
		return 0, v.readErr
	}
	n := copy(p, v.input)
	v.input = v.input[n:]
	return n, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input bytes for subsequent reads.
func (v *VirtualTerminal) Feed(b ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, b...)
}

// Attributes returns the currently applied attributes.
func (v *VirtualTerminal) Attributes() Attributes {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.attrs
}

// Applied returns every attribute set written so far, oldest first.
func (v *VirtualTerminal) Applied() []Attributes {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]Attributes(nil), v.applied...)
}

// CaptureCount returns how many times Capture was called.
func (v *VirtualTerminal) CaptureCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.captures
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// SetCaptureError makes subsequent Capture calls fail with err.
func (v *VirtualTerminal) SetCaptureError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.captureErr = err
}

// SetApplyError makes subsequent Apply calls fail with err.
func (v *VirtualTerminal) SetApplyError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.applyErr = err
}

// SetReadError makes subsequent Read calls fail with err.
func (v *VirtualTerminal) SetReadError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}
