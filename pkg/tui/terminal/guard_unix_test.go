// ABOUTME: Tests the ExitGuard signal path by delivering a real signal to the test process.

//go:build unix

package terminal

import (
	"syscall"
	"testing"
	"time"
)

func TestExitGuard_SignalRestoresAndExits(t *testing.T) {
	vt := NewVirtualTerminal(CookedAttributes())
	codes := make(chan int, 1)
	s, _ := newTestSession(vt,
		WithSignals(syscall.SIGUSR1),
		WithExitFunc(func(code int) { codes <- code }),
	)

	guard, err := s.EnterRaw()
	if err != nil {
		t.Fatalf("EnterRaw() error: %v", err)
	}

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case code := <-codes:
		if want := 128 + int(syscall.SIGUSR1); code != want {
			t.Errorf("exit code = %d, want %d", code, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("signal did not trigger exit")
	}

	if got := vt.Attributes(); got != CookedAttributes() {
		t.Errorf("terminal not restored after signal: %+v", got)
	}
	if got := s.Mode(); got != ModeClosed {
		t.Errorf("Mode() = %v, want %v", got, ModeClosed)
	}

	// The deferred release after a signal must not restore again.
	if err := guard.Release(); err != nil {
		t.Errorf("Release() after signal error: %v", err)
	}
	if got := len(vt.Applied()); got != 2 {
		t.Errorf("len(Applied()) = %d, want 2", got)
	}
}

func TestExitGuard_ReleaseStopsListener(t *testing.T) {
	vt := NewVirtualTerminal(CookedAttributes())
	s, _ := newTestSession(vt, WithSignals(syscall.SIGUSR2))

	guard, err := s.EnterRaw()
	if err != nil {
		t.Fatalf("EnterRaw() error: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	// goleak in TestMain fails the package if the listener is still running.
}

// signalingTerminal raises sig against the test process while the first
// attribute write is in flight.
type signalingTerminal struct {
	*VirtualTerminal
	sig  syscall.Signal
	sent bool
}

func (s *signalingTerminal) Apply(attrs Attributes) error {
	if !s.sent {
		s.sent = true
		if err := syscall.Kill(syscall.Getpid(), s.sig); err != nil {
			return err
		}
		// Give the runtime time to route the signal while the apply is pending.
		time.Sleep(20 * time.Millisecond)
	}
	return s.VirtualTerminal.Apply(attrs)
}

func TestExitGuard_SignalDuringRawApply(t *testing.T) {
	vt := NewVirtualTerminal(CookedAttributes())
	st := &signalingTerminal{VirtualTerminal: vt, sig: syscall.SIGUSR1}
	codes := make(chan int, 1)
	s := NewSession(st,
		WithSignals(syscall.SIGUSR1),
		WithFatalLogger(func(string, ...any) {}),
		WithExitFunc(func(code int) { codes <- code }),
	)

	guard, err := s.EnterRaw()
	if err != nil {
		t.Fatalf("EnterRaw() error: %v", err)
	}

	select {
	case code := <-codes:
		if want := 128 + int(syscall.SIGUSR1); code != want {
			t.Errorf("exit code = %d, want %d", code, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("signal raised during raw entry was not handled")
	}

	if got := vt.Attributes(); got != CookedAttributes() {
		t.Errorf("terminal left raw after signal during entry: %+v", got)
	}
	if got := s.Mode(); got != ModeClosed {
		t.Errorf("Mode() = %v, want %v", got, ModeClosed)
	}
	_ = guard.Release()
}

func TestSession_FailedEnterRawDisarmsGuard(t *testing.T) {
	vt := NewVirtualTerminal(CookedAttributes())
	vt.SetApplyError(&SyscallError{Op: "tcsetattr", Err: syscall.EIO})
	s, _ := newTestSession(vt, WithSignals(syscall.SIGUSR2))

	if _, err := s.EnterRaw(); err == nil {
		t.Fatal("EnterRaw() error = nil, want EIO")
	}
	if got := s.Mode(); got != ModeUninitialized {
		t.Errorf("Mode() = %v, want %v", got, ModeUninitialized)
	}

	vt.SetApplyError(nil)
	guard, err := s.EnterRaw()
	if err != nil {
		t.Fatalf("EnterRaw() retry error: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if got := vt.Attributes(); got != CookedAttributes() {
		t.Errorf("attributes after Release = %+v, want original", got)
	}
	// goleak in TestMain fails the package if the disarmed listener survives.
}
