package usecase

import (
	"context"
	"errors"
	"strings"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authService "github.com/allisson/itemsapi/internal/auth/service"
)

const bearerPrefix = "bearer "

// accessState accumulates what the checks learn about a request.
type accessState struct {
	request *authDomain.AccessRequest
	token   string
	claims  *authDomain.TokenClaims
	client  *authDomain.Client
}

// accessCheck is one step of the guard. The first failing step decides the outcome.
type accessCheck func(ctx context.Context, state *accessState) error

// accessGuard implements AccessGuard as an ordered list of checks.
type accessGuard struct {
	clientRepo ClientRepository
	tokenCodec authService.TokenCodec
	checks     []accessCheck
}

// Authorize runs every check in order and returns the resolved client.
func (g *accessGuard) Authorize(
	ctx context.Context,
	accessRequest *authDomain.AccessRequest,
) (*authDomain.Client, error) {
	state := &accessState{request: accessRequest}

	for _, check := range g.checks {
		if err := check(ctx, state); err != nil {
			return nil, err
		}
	}

	return state.client, nil
}

// extractBearer accepts "Bearer <token>" with a case-insensitive scheme.
func (g *accessGuard) extractBearer(_ context.Context, state *accessState) error {
	header := state.request.AuthorizationHeader
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return authDomain.ErrNotAuthenticated
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return authDomain.ErrNotAuthenticated
	}

	state.token = token
	return nil
}

func (g *accessGuard) decodeToken(_ context.Context, state *accessState) error {
	claims, err := g.tokenCodec.Decode(state.token)
	if err != nil {
		if errors.Is(err, authDomain.ErrExpiredToken) {
			return authDomain.ErrExpiredToken
		}
		return authDomain.ErrInvalidToken
	}

	if claims.Subject == "" {
		return authDomain.ErrInvalidToken
	}

	state.claims = claims
	return nil
}

// loadSubject is the only directory read of a request. Nothing is cached between requests.
func (g *accessGuard) loadSubject(ctx context.Context, state *accessState) error {
	client, err := g.clientRepo.GetByOAuthID(ctx, state.claims.Subject)
	if err != nil {
		if errors.Is(err, authDomain.ErrClientNotFound) {
			return authDomain.ErrTokenSubjectNotFound
		}
		return err
	}

	state.client = client
	return nil
}

func (g *accessGuard) requireActive(_ context.Context, state *accessState) error {
	if !state.client.IsActive() {
		return authDomain.ErrTokenSubjectInactive
	}
	return nil
}

func (g *accessGuard) requireAdmin(_ context.Context, state *accessState) error {
	if state.request.RequireAdmin && !state.client.IsAdmin {
		return authDomain.ErrAdminRequired
	}
	return nil
}

// NewAccessGuard creates an AccessGuard backed by the client directory and token codec.
func NewAccessGuard(clientRepo ClientRepository, tokenCodec authService.TokenCodec) AccessGuard {
	g := &accessGuard{
		clientRepo: clientRepo,
		tokenCodec: tokenCodec,
	}
	g.checks = []accessCheck{
		g.extractBearer,
		g.decodeToken,
		g.loadSubject,
		g.requireActive,
		g.requireAdmin,
	}
	return g
}
