// ABOUTME: Session owns terminal mode transitions: capture once, enter raw, restore verbatim, close.
// ABOUTME: It is the only writer of terminal configuration and binds the ExitGuard on raw entry.

package terminal

import (
	"fmt"
	"os"
	"sync"
)

// Mode is the lifecycle state of a Session.
type Mode int

const (
	ModeUninitialized Mode = iota
	ModeCooked
	ModeRaw
	ModeClosed
)

func (m Mode) String() string {
	switch m {
	case ModeUninitialized:
		return "uninitialized"
	case ModeCooked:
		return "cooked"
	case ModeRaw:
		return "raw"
	case ModeClosed:
		return "closed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Session owns the mode of one terminal. At most one Session may be
// active per terminal; the caller enforces that.
type Session struct {
	mu       sync.Mutex
	term     Terminal
	original Attributes
	captured bool
	mode     Mode
	guard    *ExitGuard

	fatalf  func(format string, args ...any)
	exit    func(code int)
	signals []os.Signal
}

// Option configures a Session.
type Option func(*Session)

// WithFatalLogger sets the sink for fatal conditions such as a failed
// restore. The default writes to os.Stderr.
func WithFatalLogger(fn func(format string, args ...any)) Option {
	return func(s *Session) { s.fatalf = fn }
}

// WithExitFunc replaces os.Exit for the guard's signal and panic paths.
func WithExitFunc(fn func(code int)) Option {
	return func(s *Session) { s.exit = fn }
}

// WithSignals overrides the termination signals the guard listens for.
// An empty list disables signal handling.
func WithSignals(sigs ...os.Signal) Option {
	return func(s *Session) { s.signals = sigs }
}

// NewSession returns an uninitialized Session for t.
func NewSession(t Terminal, opts ...Option) *Session {
	s := &Session{
		term:    t,
		mode:    ModeUninitialized,
		fatalf:  stderrFatalf,
		exit:    os.Exit,
		signals: exitSignals,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func stderrFatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal: "+format+"\r\n", args...)
}

// Mode returns the current lifecycle state.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// Original returns the attributes captured on first raw entry, and
// whether a capture has happened.
func (s *Session) Original() (Attributes, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.original, s.captured
}

// EnterRaw switches the terminal to raw mode and returns the guard that
// restores it. The original attributes are captured on the first call
// only. On failure the session keeps its previous mode.
//
// Calling EnterRaw while already raw returns the bound guard without
// touching the terminal.
func (s *Session) EnterRaw() (*ExitGuard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case ModeClosed:
		return nil, ErrAlreadyClosed
	case ModeRaw:
		return s.guard, nil
	}

	original := s.original
	if !s.captured {
		attrs, err := s.term.Capture()
		if err != nil {
			return nil, fmt.Errorf("capturing terminal attributes: %w", err)
		}
		original = attrs
	}

	// The guard listens for signals before the terminal turns raw. A signal
	// arriving during the apply waits on s.mu and restores afterwards.
	guard := s.guard
	if guard == nil {
		guard = newExitGuard(s)
	}

	if err := s.term.Apply(DeriveRaw(original)); err != nil {
		if guard != s.guard {
			guard.disarm()
		}
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	if !s.captured {
		s.original = original
		s.captured = true
	}
	s.mode = ModeRaw
	s.guard = guard
	return guard, nil
}

// Restore re-applies the captured original attributes. It is a no-op
// unless the session is raw, so it is safe on any exit path. A failed
// restore is reported through the fatal logger and returned; the session
// still moves to cooked.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.restoreLocked()
}

func (s *Session) restoreLocked() error {
	if s.mode != ModeRaw {
		return nil
	}
	s.mode = ModeCooked

	if err := s.term.Apply(s.original); err != nil {
		s.fatalf("restoring terminal attributes: %v", err)
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}

// Close restores the terminal if needed and retires the session. No
// further transitions are permitted afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeClosed {
		return ErrAlreadyClosed
	}
	err := s.restoreLocked()
	s.mode = ModeClosed
	return err
}
