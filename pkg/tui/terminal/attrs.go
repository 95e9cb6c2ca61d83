// ABOUTME: Attributes is an immutable snapshot of terminal configuration with named fields.
// ABOUTME: DeriveRaw computes the raw-mode variant of a cooked snapshot without any I/O.

package terminal

// Attributes is a snapshot of a terminal's configuration. It is a plain
// value: copy it freely and compare it with ==.
//
// The named fields are the settings raw mode cares about. Every other bit
// of the platform configuration travels in sys, untouched, so applying a
// captured value writes back exactly what was read.
type Attributes struct {
	// Local modes.
	Echo          bool
	Canonical     bool
	Signals       bool
	ExtendedInput bool

	// Input modes.
	FlowControl    bool
	CRToNL         bool
	BreakInterrupt bool
	ParityCheck    bool
	StripHighBit   bool

	// Output modes.
	OutputProcessing bool

	// CharSize is the number of bits per byte, 5 through 8.
	CharSize int

	// MinBytes is the minimum number of bytes a read waits for.
	MinBytes uint8

	// Timeout is the read timeout in tenths of a second.
	Timeout uint8

	sys sysState
}

// Raw-mode read policy: return as soon as any byte is available, or after
// 100ms with nothing.
const (
	rawMinBytes = 0
	rawTimeout  = 1
)

// DeriveRaw returns the raw-mode variant of a. Echo, line buffering,
// signal generation, flow control, extended input processing, CR-to-NL
// translation, output post-processing, break interrupts, parity checking
// and high-bit stripping are disabled; characters are 8 bits and reads
// return after at most one decisecond. a itself is not modified.
func DeriveRaw(a Attributes) Attributes {
	raw := a

	raw.Echo = false
	raw.Canonical = false
	raw.Signals = false
	raw.ExtendedInput = false

	raw.FlowControl = false
	raw.CRToNL = false
	raw.BreakInterrupt = false
	raw.ParityCheck = false
	raw.StripHighBit = false

	raw.OutputProcessing = false

	raw.CharSize = 8
	raw.MinBytes = rawMinBytes
	raw.Timeout = rawTimeout

	return raw
}

// IsRaw reports whether a already carries every setting DeriveRaw applies.
func (a Attributes) IsRaw() bool {
	return !a.Echo && !a.Canonical && !a.Signals && !a.ExtendedInput &&
		!a.FlowControl && !a.CRToNL && !a.BreakInterrupt && !a.ParityCheck && !a.StripHighBit &&
		!a.OutputProcessing &&
		a.CharSize == 8 && a.MinBytes == rawMinBytes && a.Timeout == rawTimeout
}
