// Package log configures process-wide logging for command-line tools on top
// of [log/slog].
//
// [Init] installs a [Handler] as the [slog.Default] handler. The handler's
// configured [Level] decides both filtering and layout: terse levels
// ([LevelError], [LevelWarn], [LevelInfo]) print
//
//	I: Test info message.
//
// while verbose levels ([LevelDebug], [LevelTrace]) add a timestamp and the
// source location:
//
//	[14:03:27.512] [   main.go:006] D: Test debug message.
//
// Error and warn records are written to stderr, the rest to stdout. Only
// records from the target module are filtered at the configured level;
// records from other packages are shown from [LevelWarn] up in verbose mode
// and dropped otherwise.
//
// A logger can be installed once per process; later calls to [Init] or
// [Install] return [ErrAlreadyInitialized]:
//
//	if err := log.Init("example.com/mytool", log.LevelInfo); err != nil {
//	    fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
//	}
//
//	slog.Info("Test info message.")
//	log.Tracef("state: %v", state)
//
// CLI applications can expose the level, format and color via flags with
// [Config], which uses [github.com/spf13/pflag] and shell completion support
// via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig("example.com/mytool")
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
//	    return cfg.Init()
//	}
//
// Besides the cli format, [NewHandler] builds text, JSON and logfmt handlers
// that share the same module filtering.
package log
