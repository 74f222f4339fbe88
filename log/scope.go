package log

import (
	"context"
	"log/slog"
	"runtime"
)

// target decides which records pass for a configured module and level.
//
// Records from inside the module pass at level and above. Records from
// elsewhere pass at [LevelWarn] and above when level is verbose, and never
// otherwise.
type target struct {
	module string
	level  Level
}

// others returns the threshold for records outside the module, and false if
// they are suppressed entirely.
func (t target) others() (Level, bool) {
	if t.module == "" {
		return t.level, true
	}

	if t.level.Mode() == ModeVerbose {
		return LevelWarn, true
	}

	return 0, false
}

// enabled is the coarse check made before a record is built: it passes any
// level that either threshold could emit.
func (t target) enabled(l slog.Level) bool {
	lvl := LevelFromSlog(l)
	if t.level.Allows(lvl) {
		return true
	}

	other, ok := t.others()

	return ok && other.Allows(lvl)
}

// allows is the precise check once the record's origin is known.
func (t target) allows(lvl Level, frame runtime.Frame) bool {
	if frame.Function == "" || inModule(frame.Function, t.module) {
		return t.level.Allows(lvl)
	}

	other, ok := t.others()

	return ok && other.Allows(lvl)
}

// scopedHandler applies [target] filtering in front of a handler that does
// not know about modules.
type scopedHandler struct {
	inner  slog.Handler
	target target
}

// Scope wraps h so that it only receives records allowed for module at
// level. h itself should accept every level.
func Scope(h slog.Handler, module string, level Level) slog.Handler {
	return &scopedHandler{
		inner:  h,
		target: target{module: module, level: level},
	}
}

func (s *scopedHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return s.target.enabled(l) && s.inner.Enabled(ctx, l)
}

//nolint:gocritic // slog.Handler passes records by value.
func (s *scopedHandler) Handle(ctx context.Context, r slog.Record) error {
	if !s.target.allows(LevelFromSlog(r.Level), callerFrame(r.PC)) {
		return nil
	}

	return s.inner.Handle(ctx, r)
}

func (s *scopedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &scopedHandler{inner: s.inner.WithAttrs(attrs), target: s.target}
}

func (s *scopedHandler) WithGroup(name string) slog.Handler {
	return &scopedHandler{inner: s.inner.WithGroup(name), target: s.target}
}
