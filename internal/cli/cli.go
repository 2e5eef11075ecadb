// Package cli parses command-line arguments into an expedition.Config and
// maps usage problems to exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samdwyer/pyramid/internal/expedition"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse applies command-line flags on top of base, which normally comes from
// the environment. It returns the resulting config, true if the program
// should exit cleanly (help was shown), or an *ExitError.
func Parse(args []string, output io.Writer, base expedition.Config) (*expedition.Config, bool, error) {
	flagSet := flag.NewFlagSet("pyramid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pyramid - search a pyramid for its treasure chambers.

Usage:
  pyramid [options] [MAP]

Arguments:
  MAP
    Path to a .json or .hcl pyramid, or embed:<name> for a bundled one.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := base
	flagSet.StringVar(&cfg.Source, "map", base.Source, "Pyramid file path or embed:<name>.")
	flagSet.BoolVar(&cfg.Generate, "generate", base.Generate, "Search a randomly generated pyramid.")
	flagSet.Int64Var(&cfg.Seed, "seed", base.Seed, "Seed for -generate. 0 picks a random seed.")
	flagSet.BoolVar(&cfg.View, "view", base.View, "Replay the search in the terminal.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", base.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", base.LogFormat, "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch flagSet.NArg() {
	case 0:
	case 1:
		cfg.Source = flagSet.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: "at most one MAP argument is allowed"}
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
}

// NewLogger builds the logger described by cfg, writing to stderr.
func NewLogger(cfg *expedition.Config) *slog.Logger {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
