// Command logdemo prints one record per severity through the termlog
// initializer, to preview the output of each level, format and color mode.
//
// # Usage
//
//	logdemo [--log-level=info] [--log-format=cli] [--log-color=auto] [--prefix=name]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/termlog/log"
	"go.jacobcolvin.com/termlog/version"
)

const module = "main"

func main() {
	cfg := log.NewConfig(module)

	var prefix string

	rootCmd := &cobra.Command{
		Use:           "logdemo",
		Short:         "Preview termlog output",
		Version:       version.Get().String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.Init()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(prefix)
		},
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "prefix every line with [name]")

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(prefix string) error {
	if prefix != "" {
		p, err := log.SetPrefix(prefix)
		if err != nil {
			return fmt.Errorf("set prefix: %w", err)
		}

		defer p.Clear()
	}

	slog.Error("Test error message.")
	slog.Warn("Test warn message.")
	slog.Info("Test info message.", "pid", os.Getpid())
	slog.Debug("Test debug message.")
	log.Trace("Test trace message.")

	return nil
}
