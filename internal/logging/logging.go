// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "DRIVECFG_LOG_LEVEL"

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

// Configure installs the global logger once per process.
// level comes from the config file; the environment wins over it.
func Configure(app string, profile Profile, level string) {
	configureOnce.Do(func() {
		log.Logger = New(os.Stderr, app, profile, level)
	})
}

// New builds a console logger without touching global state.
func New(out io.Writer, app string, profile Profile, level string) zerolog.Logger {
	lvl := defaultLevel(profile)
	if l, ok := ParseLevel(level); ok {
		lvl = l
	}
	if l, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		lvl = l
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    profile == ProfileTest,
	}

	ctx := zerolog.New(output).Level(lvl).With()
	if profile == ProfileRuntime {
		ctx = ctx.Timestamp()
	}
	return ctx.Str("app", app).Logger()
}

func defaultLevel(profile Profile) zerolog.Level {
	if profile == ProfileTest {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// ParseLevel maps a level name to a zerolog level.
// The second result is false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
