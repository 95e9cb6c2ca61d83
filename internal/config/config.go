// ABOUTME: Settings loaded from KILO_* environment variables; there is no config file or flag
// ABOUTME: Covers log level, optional log file and the quit key of the key echo loop

package config

import (
	"fmt"
	"log/slog"
	"os"

	pilog "github.com/mauromedda/kilo-go/internal/log"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "KILO_LOG_LEVEL"
	EnvLogFile  = "KILO_LOG_FILE"
	EnvQuitKey  = "KILO_QUIT_KEY"
)

// DefaultQuitKey ends the key echo loop.
const DefaultQuitKey byte = 'q'

// Settings holds the resolved configuration.
type Settings struct {
	LogLevel slog.Level
	LogFile  string
	QuitKey  byte
}

// Load resolves Settings from the environment. Unset variables take their
// defaults; malformed values are errors.
func Load() (*Settings, error) {
	s := &Settings{
		LogLevel: pilog.LevelInfo,
		QuitKey:  DefaultQuitKey,
	}

	lvl, err := pilog.ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	s.LogLevel = lvl

	s.LogFile = expandEnv(os.Getenv(EnvLogFile))

	if v := os.Getenv(EnvQuitKey); v != "" {
		key, err := parseKey(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvQuitKey, err)
		}
		s.QuitKey = key
	}

	return s, nil
}

// parseKey accepts a single byte ("x") or caret notation for control
// keys ("^C" is 0x03, "^?" is DEL).
func parseKey(v string) (byte, error) {
	switch {
	case len(v) == 1:
		return v[0], nil
	case len(v) == 2 && v[0] == '^':
		c := v[1]
		if c == '?' {
			return 0x7f, nil
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < '@' || c > '_' {
			return 0, fmt.Errorf("invalid control key %q", v)
		}
		return c & 0x1f, nil
	default:
		return 0, fmt.Errorf("quit key must be one byte or ^X, got %q", v)
	}
}
