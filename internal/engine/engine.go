package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/service"
)

// Engine runs a screening batch: fetch hits per supplier, classify,
// aggregate, summarize. Suppliers are independent of each other, so they
// are processed by a fixed pool of workers; the policy configuration is
// read-only for the duration of a run.
type Engine struct {
	client     service.ScreeningClient
	classifier *Classifier
	workers    int
	// OnResult, when set, is called once per completed supplier (from
	// worker goroutines, serialized). Used for progress reporting.
	OnResult func(model.SupplierResult)
}

// Config holds configuration options for the batch engine.
type Config struct {
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// New creates a batch engine with the default configuration.
func New(client service.ScreeningClient, classifier *Classifier) *Engine {
	return NewWithConfig(client, classifier, DefaultConfig())
}

// NewWithConfig creates a batch engine with custom configuration.
func NewWithConfig(client service.ScreeningClient, classifier *Classifier, config Config) *Engine {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Engine{
		client:     client,
		classifier: classifier,
		workers:    config.Workers,
	}
}

// Run screens and classifies every supplier and returns the per-supplier
// results in input order together with the batch summary. A failure on one
// supplier (screening error or malformed hit) is recorded in that
// supplier's result and never aborts the rest of the batch. Run returns an
// error only when the context is canceled.
func (e *Engine) Run(ctx context.Context, suppliers []model.Supplier) ([]model.SupplierResult, model.BatchSummary, error) {
	slog.Info("Starting screening batch", "suppliers", len(suppliers), "workers", e.workers)

	results := make([]model.SupplierResult, len(suppliers))
	jobs := make(chan int)

	var notifyMu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.screenOne(ctx, suppliers[i])
				if e.OnResult != nil {
					notifyMu.Lock()
					e.OnResult(results[i])
					notifyMu.Unlock()
				}
			}
		}()
	}

	canceled := false
dispatch:
	for i := range suppliers {
		select {
		case <-ctx.Done():
			canceled = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		return nil, model.BatchSummary{}, ctx.Err()
	}

	summary := Summarize(results)
	slog.Info("Screening batch complete",
		"suppliers", summary.Suppliers,
		"true_positives", summary.TruePositives,
		"needs_review", summary.NeedsReview,
		"suppressed_hits", summary.SuppressedHits,
		"errored", summary.Errored)
	return results, summary, nil
}

// screenOne fetches and classifies a single supplier. Errors are folded
// into the result so the caller's loop stays uniform.
func (e *Engine) screenOne(ctx context.Context, supplier model.Supplier) model.SupplierResult {
	result := model.SupplierResult{Supplier: supplier}

	hits, err := e.client.Screen(ctx, supplier)
	if err != nil {
		result.Err = fmt.Errorf("screening %q: %w", supplier.Name, err)
		return result
	}

	dispositions, err := e.classifier.Classify(supplier, hits)
	if err != nil {
		result.Err = err
		return result
	}

	result.Verdict = Aggregate(supplier, dispositions)
	return result
}
