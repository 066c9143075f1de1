// Package domain defines authentication and authorization domain models.
// Implements OAuth2 client credentials with bearer access tokens and an admin flag per client.
package domain

const (
	// GrantTypeClientCredentials is the only grant type accepted by the token endpoint.
	GrantTypeClientCredentials = "client_credentials"

	// TokenTypeBearer is the token type reported to callers and expected in the Authorization header.
	TokenTypeBearer = "bearer"
)
