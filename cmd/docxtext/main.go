package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/docxtext/internal/app"
)

func main() {
	// Logging setup. Warnings and errors only unless DOCXTEXT_VERBOSE is set,
	// so a normal run leaves stderr empty.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps run errors to the process status. Extraction failures never
// reach here; they are written into the output files.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		log.Warn().Msg("interrupted")
		return 130
	default:
		log.Error().Err(err).Msg("run failed")
		return 1
	}
}

func run(ctx context.Context, cfg app.Config, paths []string, stdout io.Writer) error {
	a, err := app.New(cfg, stdout)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx, paths)
}
