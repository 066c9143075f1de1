// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

// ClientRepository defines persistence operations for client accounts (the client directory).
// Implementations must support transaction-aware operations via context propagation.
type ClientRepository interface {
	// Create stores a new client and assigns its ID. Returns ErrDuplicateClientID on a taken oauth_id.
	Create(ctx context.Context, client *authDomain.Client) error

	// Update overwrites the mutable columns of an active client. DeletedAt is ignored.
	// Returns ErrClientNotFound or ErrClientInactive when no active row matches.
	Update(ctx context.Context, client *authDomain.Client) error

	// SoftDelete sets deleted_at on an active client. Returns ErrClientNotFound or ErrClientInactive.
	SoftDelete(ctx context.Context, id int64, at time.Time) error

	// Get retrieves a client by ID regardless of activity. Returns ErrClientNotFound if not found.
	Get(ctx context.Context, id int64) (*authDomain.Client, error)

	// GetByOAuthID retrieves a client by its external client_id regardless of activity.
	// Returns ErrClientNotFound if not found.
	GetByOAuthID(ctx context.Context, oauthID string) (*authDomain.Client, error)

	// List retrieves clients ordered by ID ascending with pagination support.
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*authDomain.Client, error)
}

// ClientUseCase defines the admin operations over client accounts.
type ClientUseCase interface {
	// Create registers a client with server generated credentials.
	// The plaintext secret in the output is never retrievable again.
	Create(
		ctx context.Context,
		createClientInput *authDomain.CreateClientInput,
	) (*authDomain.CreateClientOutput, error)

	// Bootstrap registers a client with the given credentials unless its client_id already exists.
	// The boolean result reports whether a new client was created.
	Bootstrap(ctx context.Context, input *authDomain.BootstrapClientInput) (*authDomain.Client, bool, error)

	// List returns active clients, or every client when includeDeleted is set.
	List(ctx context.Context, includeDeleted bool, offset, limit int) ([]*authDomain.Client, error)

	// Get returns an active client. Returns ErrClientNotFound or ErrClientInactive.
	Get(ctx context.Context, id int64) (*authDomain.Client, error)

	// Update applies a partial update and optionally regenerates credentials in one transaction.
	// Returns ErrClientNotFound or ErrClientInactive.
	Update(
		ctx context.Context,
		id int64,
		updateClientInput *authDomain.UpdateClientInput,
	) (*authDomain.UpdateClientOutput, error)

	// Delete soft deletes an active client. Returns ErrClientNotFound or ErrClientInactive.
	Delete(ctx context.Context, id int64) error
}

// TokenUseCase defines the client credentials grant.
type TokenUseCase interface {
	// Issue validates the grant, authenticates the client and mints an access token.
	// Every rejection is reported as ErrInvalidCredentials.
	Issue(
		ctx context.Context,
		issueTokenInput *authDomain.IssueTokenInput,
	) (*authDomain.IssueTokenOutput, error)

	// Authenticate verifies a client_id/client_secret pair. It does not check activity.
	Authenticate(ctx context.Context, clientID, clientSecret string) (*authDomain.Client, error)
}

// AccessGuard decides whether a request may proceed and resolves its principal.
type AccessGuard interface {
	// Authorize returns the active client behind the request's bearer token.
	// Errors wrap ErrUnauthorized, except ErrAdminRequired which wraps ErrForbidden.
	Authorize(ctx context.Context, accessRequest *authDomain.AccessRequest) (*authDomain.Client, error)
}
