package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/orgscan/orgscan/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent enrichment of many organizations.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Processor because it keeps the Processor focused
// on single-record enrichment and gives the fan-out policy one home.
type BatchProcessor struct {
	// processor enriches individual organizations.
	processor *Processor

	// concurrency is the maximum number of organizations processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithConcurrency sets the maximum number of concurrent workers.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchProcessor creates a BatchProcessor around the given Processor.
func NewBatchProcessor(processor *Processor, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		processor:   processor,
		concurrency: 100,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(bp)
	}

	return bp
}

// ProcessBatch enriches all organizations concurrently and returns one
// enriched record per input record, in input order.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it's simpler and handles the concurrency correctly.
// Workers never return errors (per-organization failures are absorbed by
// the Processor), so the only error surface is context cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, orgs []model.Organization) ([]*model.EnrichedOrganization, error) {
	bp.logger.Info("starting batch processing",
		"total_organizations", len(orgs),
		"concurrency", bp.concurrency,
	)

	start := time.Now()

	// Indexed writes into a pre-allocated slice keep input order without
	// locking: each worker owns exactly one slot.
	results := make([]*model.EnrichedOrganization, len(orgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, org := range orgs {
		i, org := i, org
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = bp.processor.Process(ctx, org)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	bp.logger.Info("batch processing complete",
		"total_organizations", len(orgs),
		"elapsed", time.Since(start),
	)

	return results, nil
}
