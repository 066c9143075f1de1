package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/allisson/itemsapi/internal/errors"
)

// Pinger is the subset of *sql.DB used by the health probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthChecker probes the store with a bounded timeout.
type HealthChecker struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthChecker creates a HealthChecker for the given database.
func NewHealthChecker(db *sql.DB, timeout time.Duration) *HealthChecker {
	return newHealthChecker(db, timeout)
}

func newHealthChecker(pinger Pinger, timeout time.Duration) *HealthChecker {
	return &HealthChecker{pinger: pinger, timeout: timeout}
}

// Check pings the store and returns ErrUnavailable when it does not answer
// within the configured timeout.
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrUnavailable, err)
	}
	return nil
}
