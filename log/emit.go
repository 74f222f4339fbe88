package log

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Errorf logs a formatted message at [LevelError] through [slog.Default].
func Errorf(format string, args ...any) {
	logf(LevelError, format, args...)
}

// Warnf logs a formatted message at [LevelWarn] through [slog.Default].
func Warnf(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Infof logs a formatted message at [LevelInfo] through [slog.Default].
func Infof(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Debugf logs a formatted message at [LevelDebug] through [slog.Default].
func Debugf(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Tracef logs a formatted message at [LevelTrace] through [slog.Default].
func Tracef(format string, args ...any) {
	logf(LevelTrace, format, args...)
}

// Trace logs msg and key-value pairs at [LevelTrace], which [slog.Logger]
// has no method for.
func Trace(msg string, args ...any) {
	emit(LevelTrace, msg, args...)
}

func logf(level Level, format string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(context.Background(), level.Slog()) {
		return
	}

	emitTo(h, level, fmt.Sprintf(format, args...))
}

func emit(level Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(context.Background(), level.Slog()) {
		return
	}

	emitTo(h, level, msg, args...)
}

// emitTo skips runtime.Callers, itself, the unexported helper and the
// exported function so the record points at the call site.
func emitTo(h slog.Handler, level Level, msg string, args ...any) {
	var pcs [1]uintptr

	runtime.Callers(4, pcs[:])

	r := slog.NewRecord(time.Now(), level.Slog(), msg, pcs[0])
	r.Add(args...)

	//nolint:errcheck // Handler errors have nowhere to go from a log call.
	h.Handle(context.Background(), r)
}
