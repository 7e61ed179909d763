// Package logging configures the zerolog logger shared by the browser runtime
// and the visiq command line.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// EnvLogNoColor disables colour in the command line console writer.
// The log level itself is config (VISIQ_LOG_LEVEL, read by package config).
const EnvLogNoColor = "VISIQ_LOG_NOCOLOR"

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileBrowser
	ProfileTest
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// Configure builds the process logger for profile writing to out.
// An empty or unknown level keeps the profile default. The caller decides
// the level; Configure reads no environment for it.
func Configure(profile Profile, out io.Writer, level string) zerolog.Logger {
	lvl := defaultLevel(profile)
	if parsed, ok := ParseLevel(level); ok {
		lvl = parsed
	}

	var l zerolog.Logger
	switch profile {
	case ProfileRuntime:
		cw := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    os.Getenv(EnvLogNoColor) != "",
		}
		l = zerolog.New(cw).With().Timestamp().Logger()
	case ProfileBrowser:
		// JSON lines; the console writer routes them by level.
		l = zerolog.New(out).With().Timestamp().Logger()
	default:
		l = zerolog.New(out)
	}
	l = l.Level(lvl)

	mu.Lock()
	logger = l
	mu.Unlock()
	return l
}

// L returns the configured logger. Before Configure it discards everything.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func defaultLevel(profile Profile) zerolog.Level {
	switch profile {
	case ProfileTest:
		return zerolog.DebugLevel
	case ProfileBrowser:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLevel maps a case-insensitive level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return zerolog.NoLevel, false
	}
	if raw == "warning" {
		raw = "warn"
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return lvl, true
}
