package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/itemsapi/internal/database"
	apperrors "github.com/allisson/itemsapi/internal/errors"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

// MySQLItemRepository implements Item persistence for MySQL.
type MySQLItemRepository struct {
	db *sql.DB
}

// Create inserts a new Item and stores the assigned id back on it.
func (m *MySQLItemRepository) Create(ctx context.Context, item *itemDomain.Item) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO items (owner_id, title, description, created_at) VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, item.OwnerID, item.Title, item.Description, item.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create item")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get item id")
	}
	item.ID = id

	return nil
}

func (m *MySQLItemRepository) Get(ctx context.Context, ownerID, id int64) (*itemDomain.Item, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ? AND owner_id = ?`

	item, err := scanItem(querier.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemDomain.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get item")
	}

	return item, nil
}

func (m *MySQLItemRepository) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*itemDomain.Item, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + itemColumns + ` FROM items
			  WHERE owner_id = ?
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list items")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanItems(rows)
}

// Update overwrites title and description. MySQL reports zero affected rows when the values
// are unchanged, so existence is established by the caller's prior Get.
func (m *MySQLItemRepository) Update(ctx context.Context, item *itemDomain.Item) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE items SET title = ?, description = ? WHERE id = ? AND owner_id = ?`

	_, err := querier.ExecContext(ctx, query, item.Title, item.Description, item.ID, item.OwnerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update item")
	}

	return nil
}

func (m *MySQLItemRepository) Delete(ctx context.Context, ownerID, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM items WHERE id = ? AND owner_id = ?`

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

// NewMySQLItemRepository creates a new MySQL Item repository.
func NewMySQLItemRepository(db *sql.DB) *MySQLItemRepository {
	return &MySQLItemRepository{db: db}
}
