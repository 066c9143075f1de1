// Package dto provides data transfer objects for item requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/itemsapi/internal/validation"
)

// CreateItemRequest contains the parameters for creating an item.
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks if the create item request is valid.
func (r *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, customValidation.RequiredText()...),
		validation.Field(&r.Description, customValidation.FreeText()...),
	)
}

// UpdateItemRequest contains the optional fields of an item update.
type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Validate checks if the update item request is valid.
func (r *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, customValidation.PatchText()...),
		validation.Field(&r.Description, customValidation.FreeText()...),
	)
}
