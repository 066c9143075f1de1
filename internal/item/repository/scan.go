package repository

import (
	"database/sql"

	apperrors "github.com/allisson/itemsapi/internal/errors"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*itemDomain.Item, error) {
	var item itemDomain.Item

	if err := row.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.CreatedAt); err != nil {
		return nil, err
	}

	return &item, nil
}

func scanItems(rows *sql.Rows) ([]*itemDomain.Item, error) {
	items := make([]*itemDomain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan item")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate items")
	}

	return items, nil
}
