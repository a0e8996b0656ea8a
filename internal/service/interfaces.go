// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/surfaid/vetflow/internal/model"
)

// ScreeningClient is the external watchlist screening service. It returns
// every candidate match for the supplier, in the order the service ranks
// them; an empty slice means the supplier is unknown to the watchlists.
type ScreeningClient interface {
	Screen(ctx context.Context, supplier model.Supplier) ([]model.ScreeningHit, error)
}

// ScanCache persists raw screening responses keyed by supplier content
// hash so re-runs do not repeat API calls for unchanged rows.
type ScanCache interface {
	Get(ctx context.Context, supplierHash string) ([]byte, error)
	Put(ctx context.Context, supplierHash string, response []byte) error
	Close() error
}

// SupplierSource reads the suppliers to screen, typically from a
// spreadsheet.
type SupplierSource interface {
	Read(ctx context.Context) ([]model.Supplier, error)
}

// ReportWriter persists the outcome of a run for the human reviewer.
type ReportWriter interface {
	Write(ctx context.Context, results []model.SupplierResult, summary model.BatchSummary) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
