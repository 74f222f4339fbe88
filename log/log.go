package log

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	charmlog "charm.land/log/v2"
)

// Format represents the log output format.
type Format string

const (
	// FormatCLI outputs the compact tag-prefixed lines described on [Handler].
	FormatCLI Format = "cli"
	// FormatText outputs human-readable lines with timestamps and callers.
	FormatText Format = "text"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
)

var allFormats = []Format{FormatCLI, FormatText, FormatJSON, FormatLogfmt}

var (
	// ErrAlreadyInitialized indicates that a logger was already installed in
	// this process.
	ErrAlreadyInitialized = errors.New("logger already initialized")
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var installed atomic.Bool

// Init builds a cli-format [Handler] for module at level and installs it as
// the process-wide default logger. See [Install].
func Init(module string, level Level, opts ...Option) error {
	return Install(New(module, level, opts...))
}

// Install makes h the handler of [slog.Default]. Only the first call in a
// process succeeds; later calls return [ErrAlreadyInitialized] and leave the
// installed handler in place. A nil h returns [ErrInvalidArgument] without
// taking the slot.
func Install(h slog.Handler) error {
	if h == nil {
		return fmt.Errorf("%w: nil handler", ErrInvalidArgument)
	}

	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	slog.SetDefault(slog.New(h))

	return nil
}

// NewHandler creates a [slog.Handler] for module at level in the given
// format. Formats other than [FormatCLI] write every record to the stderr
// stream configured by [WithOutput].
func NewHandler(module string, level Level, format Format, opts ...Option) slog.Handler {
	if format == FormatCLI {
		return New(module, level, opts...)
	}

	o := newOptions(opts)

	var inner slog.Handler

	switch format {
	case FormatText:
		inner = charmlog.NewWithOptions(o.stderr, charmlog.Options{
			Level:           charmlog.Level(SlogLevelTrace),
			Prefix:          module,
			ReportTimestamp: true,
			ReportCaller:    level.Mode() == ModeVerbose,
		})

	case FormatJSON:
		inner = slog.NewJSONHandler(o.stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     SlogLevelTrace,
		})

	case FormatLogfmt:
		inner = slog.NewTextHandler(o.stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     SlogLevelTrace,
		})

	default:
		return nil
	}

	return Scope(inner, module, level)
}

// NewHandlerFromStrings creates a [slog.Handler] from level and format
// strings.
func NewHandlerFromStrings(module, logLevel, logFormat string, opts ...Option) (slog.Handler, error) {
	lvl, err := ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(module, lvl, format, opts...), nil
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains(allFormats, logFmt) {
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	s := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		s = append(s, string(f))
	}

	return s
}
