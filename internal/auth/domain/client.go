package domain

import (
	"time"
)

// Client represents an API principal authenticating with client credentials.
// Clients are soft deleted: DeletedAt is set once and the row is never removed.
type Client struct {
	ID         int64      // Storage assigned identifier
	Name       string     // Human-readable client name
	OAuthID    string     // External client_id presented at the token endpoint, globally unique
	SecretHash string     //nolint:gosec // hashed client secret (not plaintext)
	IsAdmin    bool       // Whether the client may call the client management routes
	CreatedAt  time.Time  // Set once on insert
	DeletedAt  *time.Time // Soft delete marker (nil while active)
}

// IsActive reports whether the client has not been soft deleted.
func (c *Client) IsActive() bool {
	return c.DeletedAt == nil
}

// Credentials is a freshly generated client_id/client_secret pair plus the secret hash to persist.
// SECURITY: ClientSecret is plaintext and must only leave the process once, in the creation response.
type Credentials struct {
	ClientID     string
	ClientSecret string //nolint:gosec // plaintext, returned once
	SecretHash   string
}

// CreateClientInput contains the parameters for creating a new client.
// Credentials are always generated by the server.
type CreateClientInput struct {
	Name    string
	IsAdmin bool
}

// CreateClientOutput contains the created client and its plaintext credentials.
type CreateClientOutput struct {
	Client       *Client
	ClientID     string
	ClientSecret string //nolint:gosec // plaintext, returned once
}

// UpdateClientInput contains the mutable fields of a client.
// Nil pointers leave the field untouched.
type UpdateClientInput struct {
	Name                  *string
	IsAdmin               *bool
	RegenerateCredentials bool
}

// UpdateClientOutput contains the updated client and, when regenerated, the new plaintext credentials.
type UpdateClientOutput struct {
	Client       *Client
	ClientID     string
	ClientSecret string //nolint:gosec // plaintext, set only when credentials were regenerated
}

// BootstrapClientInput registers a client with operator supplied credentials.
// Used to seed the initial admin and external clients from configuration.
type BootstrapClientInput struct {
	Name         string
	IsAdmin      bool
	ClientID     string
	ClientSecret string //nolint:gosec // plaintext from configuration, never logged
}
