// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/itemsapi/internal/validation"
)

// CreateClientRequest contains the parameters for creating a new client.
type CreateClientRequest struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// Validate checks if the create client request is valid.
func (r *CreateClientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, customValidation.RequiredText()...),
	)
}

// UpdateClientRequest contains the optional fields of a client update.
type UpdateClientRequest struct {
	Name                  *string `json:"name"`
	IsAdmin               *bool   `json:"is_admin"`
	RegenerateCredentials bool    `json:"regenerate_credentials"`
}

// Validate checks if the update client request is valid.
func (r *UpdateClientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, customValidation.PatchText()...),
	)
}

// IssueTokenRequest carries the form fields of the client credentials grant.
// Missing fields are not a validation error; they fail authentication instead.
type IssueTokenRequest struct {
	GrantType    string `form:"grant_type"`
	ClientID     string `form:"client_id"`
	ClientSecret string `form:"client_secret"` //nolint:gosec // plaintext, never logged
}
