package domain

import (
	"time"
)

// TokenClaims is the decoded claim set of an access token.
type TokenClaims struct {
	Subject   string    // Client OAuthID
	ExpiresAt time.Time // Absolute expiration instant
}

// IssueTokenInput carries the token endpoint form fields.
type IssueTokenInput struct {
	GrantType    string
	ClientID     string
	ClientSecret string //nolint:gosec // plaintext, never logged
}

// IssueTokenOutput is the access token handed back to an authenticated client.
type IssueTokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// AccessRequest is what the access guard decides on. It is built once per request.
type AccessRequest struct {
	AuthorizationHeader string
	RequireAdmin        bool
}
