// Package main is the entry point for the pyramid treasure search.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pyramid/internal/cli"
	"github.com/samdwyer/pyramid/internal/ctxlog"
	"github.com/samdwyer/pyramid/internal/expedition"
	"github.com/samdwyer/pyramid/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, logging and telemetry, then runs one expedition.
func run(ctx context.Context, out io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out, expedition.ConfigFromEnv())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg)
	ctx = ctxlog.WithLogger(ctx, logger)

	if cfg.Honeycomb.Enabled() {
		shutdown, err := telemetry.Setup(ctx, cfg.Honeycomb)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Search will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("Error shutting down telemetry.", "error", err)
				}
			}()
		}
	}

	_, err = expedition.New(*cfg).Run(ctx, out)
	return err
}
