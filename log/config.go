package log

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level  string
	Format string
	Color  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig(module string) *Config {
	return &Config{
		Module: module,
		Flags:  f,
	}
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Init] to install the logger once flags
// are parsed.
type Config struct {
	// Module is the package path whose records are filtered at Level.
	Module string
	Level  string
	Format string
	Color  string
	Flags  Flags
}

// NewConfig returns a new [Config] for module with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig(module string) *Config {
	f := Flags{
		Level:  "log-level",
		Format: "log-format",
		Color:  "log-color",
	}

	return f.NewConfig(module)
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatCLI),
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
	flags.StringVar(&c.Color, c.Flags.Color, string(ColorAuto),
		fmt.Sprintf("log color, one of: %s", GetAllColorModeStrings()))
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := []struct {
		flag   string
		values []string
	}{
		{c.Flags.Level, GetAllLevelStrings()},
		{c.Flags.Format, GetAllFormatStrings()},
		{c.Flags.Color, GetAllColorModeStrings()},
	}

	for _, comp := range completions {
		err := cmd.RegisterFlagCompletionFunc(comp.flag,
			cobra.FixedCompletions(comp.values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", comp.flag, err)
		}
	}

	return nil
}

// NewHandler creates a [slog.Handler] from the values stored in c. Empty
// values fall back to the flag defaults.
func (c *Config) NewHandler(opts ...Option) (slog.Handler, error) {
	colorMode := string(ColorAuto)
	if c.Color != "" {
		colorMode = c.Color
	}

	mode, err := ParseColorMode(colorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	level := c.Level
	if level == "" {
		level = LevelInfo.String()
	}

	format := c.Format
	if format == "" {
		format = string(FormatCLI)
	}

	opts = append([]Option{WithColor(mode)}, opts...)

	return NewHandlerFromStrings(c.Module, level, format, opts...)
}

// Init builds a handler with [Config.NewHandler] and passes it to [Install].
func (c *Config) Init(opts ...Option) error {
	h, err := c.NewHandler(opts...)
	if err != nil {
		return err
	}

	return Install(h)
}
