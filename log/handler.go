package log

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-logfmt/logfmt"
)

const verboseTimeFormat = "15:04:05.000"

var tagColors = map[Level]*color.Color{
	LevelError: forcedColor(color.FgRed),
	LevelWarn:  forcedColor(color.FgYellow),
	LevelInfo:  forcedColor(color.FgGreen),
	LevelDebug: forcedColor(color.FgCyan),
	LevelTrace: forcedColor(color.FgMagenta),
}

// forcedColor ignores color's own terminal detection; each stream decides
// for itself.
func forcedColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()

	return c
}

type stream struct {
	w     io.Writer
	color bool
}

// output owns both streams. One mutex guards them so that lines written to
// stdout and stderr never interleave.
type output struct {
	stdout stream
	stderr stream
	mu     sync.Mutex
}

func (o *output) streamFor(lvl Level) *stream {
	if lvl <= LevelWarn {
		return &o.stderr
	}

	return &o.stdout
}

func (o *output) write(s *stream, b []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, err := s.w.Write(b)

	return err
}

// Handler is the cli-format [slog.Handler].
//
// Terse handlers (configured at info and below) write "TAG: message".
// Verbose handlers (debug and trace) write
// "[15:04:05.000] [   file.go:042] TAG: message". Error and warn records go
// to stderr and the rest to stdout. The [Mode] is fixed when the Handler is
// built; only the tag and its color vary per record.
//
// Create instances with [New].
type Handler struct {
	out    *output
	names  func(Level) string
	group  string
	attrs  []byte
	target target
	mode   Mode
}

// New creates a [Handler] for records from module at level.
//
// Records from packages outside module are dropped in terse mode and shown
// from [LevelWarn] up in verbose mode. An empty module matches everything.
func New(module string, level Level, opts ...Option) *Handler {
	o := newOptions(opts)

	h := &Handler{
		out: &output{
			stdout: stream{w: o.stdout, color: o.color.enabledFor(o.stdout)},
			stderr: stream{w: o.stderr, color: o.color.enabledFor(o.stderr)},
		},
		names:  o.names,
		target: target{module: module, level: level},
		mode:   level.Mode(),
	}

	if o.minimal && h.mode == ModeTerse {
		h.names = func(Level) string { return "" }
	}

	return h
}

// Level returns the configured level.
func (h *Handler) Level() Level {
	return h.target.level
}

// Mode returns the [Mode] chosen when h was built.
func (h *Handler) Mode() Mode {
	return h.mode
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.target.enabled(l)
}

// Handle implements [slog.Handler].
//
//nolint:gocritic // slog.Handler passes records by value.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	lvl := LevelFromSlog(r.Level)

	frame := callerFrame(r.PC)
	if !h.target.allows(lvl, frame) {
		return nil
	}

	s := h.out.streamFor(lvl)
	buf := make([]byte, 0, 128)

	if h.mode == ModeVerbose {
		t := r.Time
		if t.IsZero() {
			t = time.Now()
		}

		buf = append(buf, '[')
		buf = t.Local().AppendFormat(buf, verboseTimeFormat)
		buf = append(buf, ']')

		if frame.File != "" {
			buf = append(buf, " ["...)
			buf = appendLocation(buf, frame.File, frame.Line)
			buf = append(buf, ']')
		}

		buf = append(buf, ' ')
	}

	if name := h.names(lvl); name != "" {
		if c, ok := tagColors[lvl]; ok && s.color {
			name = c.Sprint(name)
		}

		buf = append(buf, name...)
		buf = append(buf, ": "...)
	}

	buf = appendPrefix(buf, h.target.level)
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)

		return true
	})

	buf = append(buf, '\n')

	return h.out.write(s, buf)
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := *h
	h2.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, h.group, a)
	}

	return &h2
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.group = h.group + name + "."

	return &h2
}

// appendAttr appends a as " key=value", flattening groups into dotted keys.
// Attributes whose key cannot be encoded are dropped.
func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}

		return buf
	}

	var kv bytes.Buffer

	enc := logfmt.NewEncoder(&kv)

	err := enc.EncodeKeyval(prefix+a.Key, a.Value.Any())
	if errors.Is(err, logfmt.ErrUnsupportedValueType) {
		// Structs, maps and the like fall back to their fmt form.
		err = enc.EncodeKeyval(prefix+a.Key, a.Value.String())
	}

	if err != nil {
		return buf
	}

	buf = append(buf, ' ')

	return append(buf, kv.Bytes()...)
}
