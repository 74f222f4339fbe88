package log

import (
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// ErrUnknownColorMode indicates an unrecognized color mode string.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode controls whether level tags are colored.
type ColorMode string

const (
	// ColorAuto colors a stream only when it is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors every stream.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses a color mode string and returns the corresponding
// [ColorMode].
func ParseColorMode(mode string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(mode))
	if slices.Contains([]ColorMode{ColorAuto, ColorAlways, ColorNever}, m) {
		return m, nil
	}

	return "", ErrUnknownColorMode
}

// GetAllColorModeStrings returns the accepted color mode names.
func GetAllColorModeStrings() []string {
	return []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
}

// enabledFor resolves m for a single output stream.
func (m ColorMode) enabledFor(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}

// Option configures handlers built by [New], [NewHandler] and [Init].
type Option func(*options)

type options struct {
	stdout  io.Writer
	stderr  io.Writer
	names   func(Level) string
	color   ColorMode
	minimal bool
}

func newOptions(opts []Option) options {
	o := options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		names:  Level.Tag,
		color:  ColorAuto,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOutput replaces the standard output and standard error streams.
// Error and warn records go to stderr, everything else to stdout.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithColor sets the [ColorMode]. The default is [ColorAuto].
func WithColor(mode ColorMode) Option {
	return func(o *options) {
		o.color = mode
	}
}

// WithLevelNames replaces the level tag. Returning an empty string omits the
// tag and its ": " separator.
func WithLevelNames(fn func(Level) string) Option {
	return func(o *options) {
		if fn != nil {
			o.names = fn
		}
	}
}

// WithMinimal drops level tags when the handler is terse. It has no effect
// in verbose mode.
func WithMinimal() Option {
	return func(o *options) {
		o.minimal = true
	}
}
