// ABOUTME: ExitGuard ties a Session's restore to every exit path: defer, panic, and termination signals.
// ABOUTME: Release runs restore and close exactly once, whichever path gets there first.

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"
)

// ExitGuard restores its Session when released. Obtain one from
// Session.EnterRaw and defer Release in the scope that owns the terminal:
//
//	guard, err := session.EnterRaw()
//	if err != nil {
//		return err
//	}
//	defer guard.Release()
//	defer guard.RestoreOnPanic()
type ExitGuard struct {
	session *Session
	exit    func(code int)

	claimed  atomic.Bool
	finished chan struct{}
	err      error

	sigCh chan os.Signal
	stop  chan struct{}
	done  chan struct{}
}

// newExitGuard binds a guard to s and starts listening for signals.
// Called with s.mu held.
func newExitGuard(s *Session) *ExitGuard {
	g := &ExitGuard{
		session:  s,
		exit:     s.exit,
		finished: make(chan struct{}),
	}
	if len(s.signals) > 0 {
		g.sigCh = make(chan os.Signal, 1)
		g.stop = make(chan struct{})
		g.done = make(chan struct{})
		signal.Notify(g.sigCh, s.signals...)
		go g.listen()
	}
	return g
}

// listen waits for a termination signal, restores the terminal, and exits
// with the conventional 128+signo status.
func (g *ExitGuard) listen() {
	defer close(g.done)
	defer signal.Stop(g.sigCh)

	select {
	case <-g.stop:
	case sig := <-g.sigCh:
		if !g.claimed.CompareAndSwap(false, true) {
			return
		}
		g.finish()
		g.exit(signalExitCode(sig))
	}
}

// Release restores the terminal and closes the session. Only the first
// call does the work; later or concurrent calls wait for it and return
// the same result.
func (g *ExitGuard) Release() error {
	if !g.claimed.CompareAndSwap(false, true) {
		<-g.finished
		return g.err
	}
	if g.stop != nil {
		close(g.stop)
		<-g.done
	}
	g.finish()
	return g.err
}

// disarm retires a guard whose raw-mode entry failed, without touching the
// session. It does not wait for the listener: a signal it already claimed
// needs s.mu, which the caller holds.
func (g *ExitGuard) disarm() {
	if !g.claimed.CompareAndSwap(false, true) {
		return
	}
	if g.stop != nil {
		close(g.stop)
	}
	close(g.finished)
}

func (g *ExitGuard) finish() {
	defer close(g.finished)

	err := g.session.Restore()
	if cerr := g.session.Close(); err == nil && !errors.Is(cerr, ErrAlreadyClosed) {
		err = cerr
	}
	g.err = err
}

// RestoreOnPanic should be deferred directly in the goroutine that owns
// the terminal. On panic it releases the guard, prints the panic value and
// stack trace, then exits with code 1.
func (g *ExitGuard) RestoreOnPanic() {
	r := recover()
	if r == nil {
		return
	}

	_ = g.Release()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	g.exit(1)
}

func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
