package log

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrUnknownLogLevel indicates an unrecognized log level string.
var ErrUnknownLogLevel = errors.New("unknown log level")

// Level is a log severity, ordered from least to most verbose.
//
// A handler configured at a given Level emits every record that is at least
// as severe, so [LevelInfo] emits error, warn and info records.
type Level int

const (
	// LevelError is the least verbose level.
	LevelError Level = iota
	// LevelWarn emits warnings and errors.
	LevelWarn
	// LevelInfo emits informational messages and above.
	LevelInfo
	// LevelDebug emits debug messages and above, and selects [ModeVerbose].
	LevelDebug
	// LevelTrace emits everything.
	LevelTrace
)

// SlogLevelTrace is the [slog.Level] used for [LevelTrace] records.
const SlogLevelTrace = slog.LevelDebug - 4

var levelStrings = []string{"error", "warn", "info", "debug", "trace"}

// String returns the lowercase name of l.
func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return "unknown"
	}

	return levelStrings[l]
}

// Tag returns the one-letter tag printed in front of each message.
func (l Level) Tag() string {
	switch l {
	case LevelError:
		return "E"
	case LevelWarn:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	case LevelTrace:
		return "T"
	}

	return "?"
}

// Slog returns the [slog.Level] corresponding to l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	}

	return SlogLevelTrace
}

// Mode returns the [Mode] a handler configured at l renders with.
func (l Level) Mode() Mode {
	if l >= LevelDebug {
		return ModeVerbose
	}

	return ModeTerse
}

// Allows reports whether a record at level rec passes a threshold of l.
func (l Level) Allows(rec Level) bool {
	return rec <= l
}

// LevelFromSlog maps a [slog.Level] to the nearest [Level] at or below it.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	}

	return LevelTrace
}

// ParseLevel parses a log level string and returns the corresponding [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}

	return 0, ErrUnknownLogLevel
}

// GetAllLevelStrings returns the accepted level names, least verbose first.
func GetAllLevelStrings() []string {
	return append([]string(nil), levelStrings...)
}

// Mode selects how much detail the cli format renders. It is fixed when a
// [Handler] is built and never changes per record.
type Mode int

const (
	// ModeTerse renders "TAG: message".
	ModeTerse Mode = iota
	// ModeVerbose adds a timestamp and the source location.
	ModeVerbose
)

func (m Mode) String() string {
	if m == ModeVerbose {
		return "verbose"
	}

	return "terse"
}
