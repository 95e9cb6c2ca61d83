// ABOUTME: CLI entry point for kilo: puts stdin into raw mode and echoes each key byte
// ABOUTME: Restores the terminal on quit, error, panic or termination signal; no flags

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/keyecho"
	pilog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run owns the terminal session for the lifetime of the program and
// returns the process exit code. All deferred restores complete before
// main calls os.Exit.
func run(stdin *os.File, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}
	defer closeLog()

	tty, err := terminal.NewProcessTerminal(stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}

	return runWith(tty, cfg, stderr)
}

// runWith drives the raw-mode session on tty. Every fatal condition,
// including a failed restore, is reported on stderr even when logging goes
// to a file.
func runWith(tty terminal.Terminal, cfg *config.Settings, stderr io.Writer, opts ...terminal.Option) int {
	opts = append([]terminal.Option{terminal.WithFatalLogger(pilog.Fatal)}, opts...)
	session := terminal.NewSession(tty, opts...)
	guard, err := session.EnterRaw()
	if err != nil {
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}
	defer guard.Release()
	defer guard.RestoreOnPanic()

	pilog.Debug("raw mode on, quit key %d", cfg.QuitKey)

	loop := keyecho.New(terminal.NewReader(tty), tty, cfg.QuitKey)
	if err := loop.Run(context.Background()); err != nil {
		// Restore first so the diagnostic prints on a cooked terminal.
		if rerr := guard.Release(); rerr != nil {
			fmt.Fprintf(stderr, "kilo: %v\n", rerr)
		}
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}

	if err := guard.Release(); err != nil {
		fmt.Fprintf(stderr, "kilo: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging applies the configured level and, when a log file is set,
// sends log output there instead of stderr.
func setupLogging(cfg *config.Settings, stderr io.Writer) (func(), error) {
	pilog.SetLevel(cfg.LogLevel)
	pilog.SetOutput(stderr)

	if cfg.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := pilog.SetOutput(f)
	return func() {
		pilog.SetOutput(prev)
		_ = f.Close()
	}, nil
}
