// ABOUTME: Tests for environment-driven Settings loading
// ABOUTME: Covers defaults, log level parsing, log file expansion and quit key notation

package config

import (
	"testing"

	pilog "github.com/mauromedda/kilo-go/internal/log"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvQuitKey, "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.LogLevel != pilog.LevelInfo {
		t.Errorf("LogLevel = %v; want %v", s.LogLevel, pilog.LevelInfo)
	}
	if s.LogFile != "" {
		t.Errorf("LogFile = %q; want empty", s.LogFile)
	}
	if s.QuitKey != DefaultQuitKey {
		t.Errorf("QuitKey = %q; want %q", s.QuitKey, DefaultQuitKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KILO_TEST_DIR", "/tmp/kilo")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "${KILO_TEST_DIR}/kilo.log")
	t.Setenv(EnvQuitKey, "x")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.LogLevel != pilog.LevelDebug {
		t.Errorf("LogLevel = %v; want %v", s.LogLevel, pilog.LevelDebug)
	}
	if s.LogFile != "/tmp/kilo/kilo.log" {
		t.Errorf("LogFile = %q; want %q", s.LogFile, "/tmp/kilo/kilo.log")
	}
	if s.QuitKey != 'x' {
		t.Errorf("QuitKey = %q; want %q", s.QuitKey, 'x')
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		level string
		quit  string
	}{
		{name: "bad level", level: "loud"},
		{name: "multi-byte quit key", quit: "quit"},
		{name: "bad caret key", quit: "^1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.level)
			t.Setenv(EnvQuitKey, tt.quit)

			if _, err := Load(); err == nil {
				t.Error("Load() error = nil; want error")
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want byte
	}{
		{in: "q", want: 'q'},
		{in: "^C", want: 0x03},
		{in: "^c", want: 0x03},
		{in: "^[", want: 0x1b},
		{in: "^@", want: 0x00},
		{in: "^?", want: 0x7f},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseKey(tt.in)
			if err != nil {
				t.Fatalf("parseKey(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseKey(%q) = %#x; want %#x", tt.in, got, tt.want)
			}
		})
	}
}
