// Package cli implements the todo command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todo/internal/options"
	"github.com/mesh-intelligence/todo/internal/paths"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// Version is the todo release.
const Version = "0.1.0"

// Exit codes. Every failure kind exits the same way.
const (
	exitSuccess = 0
	exitFailure = 1
)

// NewRootCmd creates the todo command. Flag parsing is left to the options
// package, so cobra hands the raw tokens to RunE.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todo --csv-file <path> [options]",
		Short: "Track todos in a CSV file",
		Long: `todo adds, completes, and displays todos stored in a CSV file.
Every action is selected by options on a single invocation.

` + options.Usage(options.DefaultRegistry()),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runRoot,
	}
}

// Execute runs the root command with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

func runRoot(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	cfg, cfgErr := loadConfigFromEnv()
	logger := newLogger(stderr, cfg.LogLevel)
	if cfgErr != nil {
		logger.Error("Something went wrong!", "err", cfgErr)
		return cfgErr
	}

	logger.Debug("starting", "version", Version, "backend", cfg.Backend, "output", cfg.Output)

	err := invoke(cmd.OutOrStdout(), logger, cfg, args)
	if err != nil {
		report(stderr, logger, err)
	}
	return err
}

// loadConfigFromEnv resolves the config directory and loads config.yaml.
// On failure it still returns the default config so a logger can be built.
func loadConfigFromEnv() (types.Config, error) {
	dir, err := paths.ResolveConfigDir()
	if err != nil {
		return defaultConfig(), fmt.Errorf("resolve config dir: %w", err)
	}
	return loadConfig(dir)
}

// report logs err and, for command-line errors, prints the flag reference.
func report(w io.Writer, logger *log.Logger, err error) {
	logger.Error("Something went wrong!", "err", err)

	var optErr *options.Error
	if errors.As(err, &optErr) {
		fmt.Fprintln(w)
		fmt.Fprint(w, options.Usage(options.DefaultRegistry()))
	}
}
