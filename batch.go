package eojeol

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

// BatchTagger tags many phrases concurrently. Every worker creates its own
// Tagger from the factory, since analyzer handles cannot be shared.
type BatchTagger struct {
	factory func() (*Tagger, error)
	workers int
	logger  *slog.Logger
}

type BatchOption func(*BatchTagger)

func WithWorkers(n int) BatchOption {
	return func(b *BatchTagger) {
		if n > 0 {
			b.workers = n
		}
	}
}

func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchTagger) {
		b.logger = logger
	}
}

func NewBatchTagger(factory func() (*Tagger, error), options ...BatchOption) *BatchTagger {
	b := &BatchTagger{
		factory: factory,
		workers: DefaultWorkers,
	}
	for _, option := range options {
		option(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Pos tags every phrase and returns the outputs in input order. The first
// error cancels the remaining work.
func (b *BatchTagger) Pos(ctx context.Context, phrases []string, options ...PosOption) ([]Output, error) {
	results := make([]Output, len(phrases))
	if len(phrases) == 0 {
		return results, nil
	}
	workers := min(b.workers, len(phrases))
	b.logger.Info("starting batch tagging",
		"phrases", len(phrases),
		"workers", workers,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range phrases {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			tagger, err := b.factory()
			if err != nil {
				return err
			}
			defer tagger.Close()

			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				out, err := tagger.Pos(phrases[i], options...)
				if err != nil {
					return fmt.Errorf("phrase %d: %w", i, err)
				}
				results[i] = out
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	b.logger.Info("batch tagging complete",
		"phrases", len(phrases),
		"elapsed", time.Since(startTime),
	)
	return results, nil
}
