package dto

import (
	"time"

	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

// ItemResponse represents an item in API responses.
type ItemResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapItemToResponse converts a domain item to an API response.
func MapItemToResponse(item *itemDomain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

// ListItemsResponse represents a paginated list of items.
type ListItemsResponse struct {
	Data []ItemResponse `json:"data"`
}

// MapItemsToListResponse converts a slice of domain items to a list API response.
func MapItemsToListResponse(items []*itemDomain.Item) ListItemsResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, MapItemToResponse(item))
	}
	return ListItemsResponse{Data: responses}
}
