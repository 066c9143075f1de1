package usecase

import (
	"context"
	"time"

	"github.com/allisson/itemsapi/internal/database"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

// itemUseCase implements ItemUseCase.
type itemUseCase struct {
	txManager database.TxManager
	itemRepo  ItemRepository
}

// Create stores a new item owned by ownerID.
func (i *itemUseCase) Create(
	ctx context.Context,
	ownerID int64,
	input *itemDomain.CreateItemInput,
) (*itemDomain.Item, error) {
	item := &itemDomain.Item{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := i.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *itemUseCase) Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error) {
	return i.itemRepo.Get(ctx, ownerID, id)
}

func (i *itemUseCase) List(ctx context.Context, ownerID int64, offset, limit int) ([]*itemDomain.Item, error) {
	return i.itemRepo.List(ctx, ownerID, offset, limit)
}

// Update applies a partial update. An update without fields returns the item unchanged
// without writing.
func (i *itemUseCase) Update(
	ctx context.Context,
	ownerID, id int64,
	input *itemDomain.UpdateItemInput,
) (*itemDomain.Item, error) {
	var item *itemDomain.Item

	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := i.itemRepo.Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if !input.IsEmpty() {
			input.Apply(current)
			if err := i.itemRepo.Update(ctx, current); err != nil {
				return err
			}
		}

		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (i *itemUseCase) Delete(ctx context.Context, ownerID, id int64) error {
	return i.itemRepo.Delete(ctx, ownerID, id)
}

// NewItemUseCase creates a new ItemUseCase.
func NewItemUseCase(txManager database.TxManager, itemRepo ItemRepository) ItemUseCase {
	return &itemUseCase{
		txManager: txManager,
		itemRepo:  itemRepo,
	}
}
