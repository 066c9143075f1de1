// Package usecase implements the owner scoped item operations.
package usecase

import (
	"context"

	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

// ItemRepository defines persistence operations for items.
// Every read and write except Create is scoped by (id, owner_id).
type ItemRepository interface {
	// Create stores a new item and assigns its ID.
	Create(ctx context.Context, item *itemDomain.Item) error

	// Get retrieves an item owned by ownerID. Returns ErrItemNotFound otherwise.
	Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error)

	// List retrieves the items of ownerID ordered by ID ascending.
	List(ctx context.Context, ownerID int64, offset, limit int) ([]*itemDomain.Item, error)

	// Update overwrites title and description of an item owned by item.OwnerID.
	Update(ctx context.Context, item *itemDomain.Item) error

	// Delete physically removes an item owned by ownerID. Returns ErrItemNotFound otherwise.
	Delete(ctx context.Context, ownerID, id int64) error
}

// ItemUseCase defines the item operations available to an authenticated client.
// Items owned by other clients are indistinguishable from missing ones.
type ItemUseCase interface {
	Create(ctx context.Context, ownerID int64, input *itemDomain.CreateItemInput) (*itemDomain.Item, error)
	Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error)
	List(ctx context.Context, ownerID int64, offset, limit int) ([]*itemDomain.Item, error)
	Update(ctx context.Context, ownerID, id int64, input *itemDomain.UpdateItemInput) (*itemDomain.Item, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
