package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/itemsapi/internal/errors"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func TestHealthChecker_Check(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		checker := newHealthChecker(pingerFunc(func(ctx context.Context) error {
			return nil
		}), time.Second)

		assert.NoError(t, checker.Check(context.Background()))
	})

	t.Run("Error_PingFails", func(t *testing.T) {
		refused := errors.New("connection refused")
		checker := newHealthChecker(pingerFunc(func(ctx context.Context) error {
			return refused
		}), time.Second)

		err := checker.Check(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		assert.ErrorIs(t, err, refused)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Error_TimeoutBoundsHangingProbe", func(t *testing.T) {
		checker := newHealthChecker(pingerFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}), 20*time.Millisecond)

		start := time.Now()
		err := checker.Check(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
