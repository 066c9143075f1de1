package domain

import (
	"github.com/allisson/itemsapi/internal/errors"
)

// ErrItemNotFound covers both a missing item and an item owned by another client.
var ErrItemNotFound = errors.Wrap(errors.ErrNotFound, "item not found")
