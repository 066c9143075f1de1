// Package domain defines the item resource owned by a single client.
package domain

import (
	"time"
)

// Item is a record owned by exactly one client. OwnerID is stamped at creation and never reassigned.
type Item struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	CreatedAt   time.Time
}

// CreateItemInput contains the fields of a new item.
type CreateItemInput struct {
	Title       string
	Description string
}

// UpdateItemInput contains the optional fields of an item update. Nil fields are left untouched.
type UpdateItemInput struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update carries no field at all.
func (u *UpdateItemInput) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// Apply copies the non-nil fields of the update onto item.
func (u *UpdateItemInput) Apply(item *Item) {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
}
