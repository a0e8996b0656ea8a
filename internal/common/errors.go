// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Cache errors.
	ErrNotFound = errors.New("not found")

	// Screening service errors.
	ErrScreeningFailed = errors.New("screening request failed")
	ErrRateLimit       = errors.New("rate limit exceeded")

	// Batch errors.
	ErrNoSuppliers = errors.New("no suppliers to screen")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InvalidHitError reports a structurally malformed screening hit: the
// required matched name is missing. It aborts classification for the one
// supplier it belongs to, never the batch.
type InvalidHitError struct {
	Supplier string
	Index    int
}

func (e *InvalidHitError) Error() string {
	return fmt.Sprintf("invalid screening hit %d for supplier %q: missing matched name", e.Index, e.Supplier)
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
