package usecase

import (
	"context"
	"time"

	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
	"github.com/allisson/itemsapi/internal/metrics"
)

const metricsDomain = "items"

// itemUseCaseWithMetrics decorates ItemUseCase with metrics instrumentation.
type itemUseCaseWithMetrics struct {
	next    ItemUseCase
	metrics metrics.BusinessMetrics
}

// NewItemUseCaseWithMetrics wraps an ItemUseCase with metrics recording.
func NewItemUseCaseWithMetrics(useCase ItemUseCase, m metrics.BusinessMetrics) ItemUseCase {
	return &itemUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *itemUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	i.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (i *itemUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID int64,
	input *itemDomain.CreateItemInput,
) (*itemDomain.Item, error) {
	start := time.Now()
	item, err := i.next.Create(ctx, ownerID, input)
	i.record(ctx, "item_create", start, err)
	return item, err
}

func (i *itemUseCaseWithMetrics) Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error) {
	start := time.Now()
	item, err := i.next.Get(ctx, ownerID, id)
	i.record(ctx, "item_get", start, err)
	return item, err
}

func (i *itemUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*itemDomain.Item, error) {
	start := time.Now()
	items, err := i.next.List(ctx, ownerID, offset, limit)
	i.record(ctx, "item_list", start, err)
	return items, err
}

func (i *itemUseCaseWithMetrics) Update(
	ctx context.Context,
	ownerID, id int64,
	input *itemDomain.UpdateItemInput,
) (*itemDomain.Item, error) {
	start := time.Now()
	item, err := i.next.Update(ctx, ownerID, id, input)
	i.record(ctx, "item_update", start, err)
	return item, err
}

func (i *itemUseCaseWithMetrics) Delete(ctx context.Context, ownerID, id int64) error {
	start := time.Now()
	err := i.next.Delete(ctx, ownerID, id)
	i.record(ctx, "item_delete", start, err)
	return err
}
