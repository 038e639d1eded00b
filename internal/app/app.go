package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/docxtext/internal/extract"
)

// ErrWriteFailed is returned by Run when at least one output file could not
// be written. Extraction failures never produce it; they become file content.
var ErrWriteFailed = errors.New("write failed")

type App struct {
	cfg       Config
	extractor extract.Extractor
	stdout    io.Writer
}

// New builds an App. Progress lines go to stdout; a nil stdout discards them.
func New(cfg Config, stdout io.Writer) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if stdout == nil {
		stdout = io.Discard
	}
	log.Debug().
		Str("version", BuildVersion).
		Str("commit", BuildCommit).
		Str("entry", cfg.Entry).
		Str("stripper", cfg.Stripper).
		Str("encoding", cfg.Encoding).
		Msg("converter ready")
	return &App{
		cfg:       cfg,
		extractor: extract.ArchiveExtractor{Options: cfg.extractOptions()},
		stdout:    stdout,
	}, nil
}

// Run converts each path in order, writing <path><suffix> next to it. Files
// are processed one at a time; ctx is checked before each file.
func (a *App) Run(ctx context.Context, paths []string) error {
	entries := make([]manifestEntry, 0, len(paths))
	failedWrites := 0

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Processing %s...\n", p)
		res := a.extractor.Extract(p)
		text := res.String()
		log.Debug().Str("path", p).Bool("ok", res.OK()).Int("chars", len(text)).AnErr("cause", res.Err).Msg("extracted")

		out := outputPath(p, a.cfg.OutputSuffix)
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			log.Error().Err(err).Str("out", out).Msg("write output")
			failedWrites++
			e := newManifestEntry(i+1, p, out, res, text)
			e.WriteError = err.Error()
			entries = append(entries, e)
			continue
		}
		if a.cfg.PDF {
			pdfOut := pdfPath(p)
			if err := writeTextPDF(text, pdfOut); err != nil {
				log.Warn().Err(err).Str("out", pdfOut).Msg("pdf rendition failed")
			}
		}
		fmt.Fprintf(a.stdout, "Wrote to %s\n", out)

		entries = append(entries, newManifestEntry(i+1, p, out, res, text))
	}

	if a.cfg.ManifestPath != "" {
		meta := manifestMeta{
			Version:     BuildVersion,
			Commit:      BuildCommit,
			Entry:       a.cfg.Entry,
			Encoding:    a.cfg.Encoding,
			Stripper:    a.cfg.Stripper,
			FileCount:   len(entries),
			GeneratedAt: time.Now().UTC(),
		}
		if err := writeManifest(a.cfg.ManifestPath, meta, entries); err != nil {
			log.Error().Err(err).Str("manifest", a.cfg.ManifestPath).Msg("write manifest")
			failedWrites++
		}
	}

	if failedWrites > 0 {
		return fmt.Errorf("%w: %d output(s)", ErrWriteFailed, failedWrites)
	}
	return nil
}
