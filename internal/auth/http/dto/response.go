package dto

import (
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

// ClientResponse represents a client in API responses (excludes the secret hash).
type ClientResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ClientID  string     `json:"client_id"`
	IsAdmin   bool       `json:"is_admin"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// MapClientToResponse converts a domain client to an API response.
func MapClientToResponse(client *authDomain.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		ClientID:  client.OAuthID,
		IsAdmin:   client.IsAdmin,
		IsActive:  client.IsActive(),
		CreatedAt: client.CreatedAt,
		DeletedAt: client.DeletedAt,
	}
}

// ClientWithCredentialsResponse is a client plus its plaintext secret.
// SECURITY: only returned on creation or credential regeneration.
type ClientWithCredentialsResponse struct {
	ClientResponse
	ClientSecret string `json:"client_secret,omitempty"` //nolint:gosec // returned once
}

// ListClientsResponse represents a paginated list of clients in API responses.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
}

// MapClientsToListResponse converts a slice of domain clients to a list API response.
func MapClientsToListResponse(clients []*authDomain.Client) ListClientsResponse {
	clientResponses := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		clientResponses = append(clientResponses, MapClientToResponse(client))
	}
	return ListClientsResponse{
		Data: clientResponses,
	}
}

// IssueTokenResponse is the OAuth2 token response.
type IssueTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
