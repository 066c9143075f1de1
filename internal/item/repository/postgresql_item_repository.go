// Package repository implements data persistence for items.
//
// Every query except INSERT is scoped by (id, owner_id), so a row owned by another client
// is reported exactly like a missing row.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/itemsapi/internal/database"
	apperrors "github.com/allisson/itemsapi/internal/errors"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

const itemColumns = `id, owner_id, title, description, created_at`

// PostgreSQLItemRepository implements Item persistence for PostgreSQL.
type PostgreSQLItemRepository struct {
	db *sql.DB
}

// Create inserts a new Item and stores the assigned id back on it.
func (p *PostgreSQLItemRepository) Create(ctx context.Context, item *itemDomain.Item) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO items (owner_id, title, description, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		item.OwnerID,
		item.Title,
		item.Description,
		item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create item")
	}
	return nil
}

func (p *PostgreSQLItemRepository) Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND owner_id = $2`

	item, err := scanItem(querier.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemDomain.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get item")
	}

	return item, nil
}

func (p *PostgreSQLItemRepository) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*itemDomain.Item, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + itemColumns + ` FROM items
			  WHERE owner_id = $1
			  ORDER BY id ASC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list items")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanItems(rows)
}

func (p *PostgreSQLItemRepository) Update(ctx context.Context, item *itemDomain.Item) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE items SET title = $1, description = $2 WHERE id = $3 AND owner_id = $4`

	result, err := querier.ExecContext(ctx, query, item.Title, item.Description, item.ID, item.OwnerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update item")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return itemDomain.ErrItemNotFound
	}

	return nil
}

func (p *PostgreSQLItemRepository) Delete(ctx context.Context, ownerID, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	result, err := querier.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete item")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return itemDomain.ErrItemNotFound
	}

	return nil
}

// NewPostgreSQLItemRepository creates a new PostgreSQL Item repository.
func NewPostgreSQLItemRepository(db *sql.DB) *PostgreSQLItemRepository {
	return &PostgreSQLItemRepository{db: db}
}
