// Package pipeline wires the stripper and normalizer into the
// per-document corpus build flow.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wtee/encorpulators/internal/config"
	"github.com/wtee/encorpulators/internal/corpus"
	"github.com/wtee/encorpulators/internal/decode"
	"github.com/wtee/encorpulators/internal/logger"
	"github.com/wtee/encorpulators/internal/normalizer"
	"github.com/wtee/encorpulators/internal/stripper"
)

// Pipeline processes documents one at a time, start to finish. It
// carries no state between documents; the scan state is created fresh
// inside the stripper per call.
type Pipeline struct {
	stripper   *stripper.Stripper
	normalizer *normalizer.Normalizer
	mode       decode.Mode
	dryRun     bool
	log        *logger.Logger
}

// New builds a pipeline from validated configuration.
func New(cfg *config.Config, log *logger.Logger) (*Pipeline, error) {
	mode, err := decode.ParseMode(cfg.Input.ErrorMode)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		stripper:   stripper.NewStripper(),
		normalizer: normalizer.NewNormalizer(cfg.Sentences.MinLength),
		mode:       mode,
		dryRun:     cfg.Output.DryRun,
		log:        log,
	}, nil
}

// Run processes a single document and appends its normalized output to
// the corpus. A document that strips or normalizes to nothing is valid
// and appends nothing.
func (p *Pipeline) Run(inputPath, outputPath string) (corpus.Stats, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return corpus.Stats{}, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	body, err := p.stripper.Strip(f, p.mode)
	if err != nil {
		return corpus.Stats{}, fmt.Errorf("failed to strip %s: %w", inputPath, err)
	}

	text := p.normalizer.Normalize(body)

	stats := corpus.Count(filepath.Base(inputPath), text)
	stats.BodyLines = len(body)

	p.log.Debug("document normalized",
		"document", stats.Source,
		"body_lines", stats.BodyLines,
		"sentences", stats.Sentences,
	)

	if p.dryRun {
		return stats, nil
	}

	if err := corpus.Append(outputPath, text); err != nil {
		return stats, err
	}

	return stats, nil
}

// RunDir processes every regular file in dir, one at a time, in
// directory-listing order. A failed document is logged and skipped;
// output already appended for earlier documents is never rolled back.
func (p *Pipeline) RunDir(dir, outputPath string) ([]corpus.Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var all []corpus.Stats

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		stats, runErr := p.Run(path, outputPath)
		if runErr != nil {
			p.log.Error("document failed, skipping", "document", path, "error", runErr)

			continue
		}

		p.log.Info("document processed",
			"document", entry.Name(),
			"sentences", stats.Sentences,
			"words", stats.Words,
		)

		all = append(all, stats)
	}

	return all, nil
}
