package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/metrics"
)

const metricsDomain = "auth"

func recordOperation(
	ctx context.Context,
	m metrics.BusinessMetrics,
	operation string,
	start time.Time,
	err error,
) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// clientUseCaseWithMetrics decorates ClientUseCase with metrics instrumentation.
type clientUseCaseWithMetrics struct {
	next    ClientUseCase
	metrics metrics.BusinessMetrics
}

// NewClientUseCaseWithMetrics wraps a ClientUseCase with metrics recording.
func NewClientUseCaseWithMetrics(useCase ClientUseCase, m metrics.BusinessMetrics) ClientUseCase {
	return &clientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for client creation operations.
func (c *clientUseCaseWithMetrics) Create(
	ctx context.Context,
	createClientInput *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	start := time.Now()
	output, err := c.next.Create(ctx, createClientInput)
	recordOperation(ctx, c.metrics, "client_create", start, err)
	return output, err
}

// Bootstrap records metrics for client bootstrap operations.
func (c *clientUseCaseWithMetrics) Bootstrap(
	ctx context.Context,
	input *authDomain.BootstrapClientInput,
) (*authDomain.Client, bool, error) {
	start := time.Now()
	client, created, err := c.next.Bootstrap(ctx, input)
	recordOperation(ctx, c.metrics, "client_bootstrap", start, err)
	return client, created, err
}

// List records metrics for client list operations.
func (c *clientUseCaseWithMetrics) List(
	ctx context.Context,
	includeDeleted bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	start := time.Now()
	clients, err := c.next.List(ctx, includeDeleted, offset, limit)
	recordOperation(ctx, c.metrics, "client_list", start, err)
	return clients, err
}

// Get records metrics for client retrieval operations.
func (c *clientUseCaseWithMetrics) Get(ctx context.Context, id int64) (*authDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Get(ctx, id)
	recordOperation(ctx, c.metrics, "client_get", start, err)
	return client, err
}

// Update records metrics for client update operations.
func (c *clientUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	updateClientInput *authDomain.UpdateClientInput,
) (*authDomain.UpdateClientOutput, error) {
	start := time.Now()
	output, err := c.next.Update(ctx, id, updateClientInput)
	recordOperation(ctx, c.metrics, "client_update", start, err)
	return output, err
}

// Delete records metrics for client deletion operations.
func (c *clientUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	recordOperation(ctx, c.metrics, "client_delete", start, err)
	return err
}

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	issueTokenInput *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, issueTokenInput)
	recordOperation(ctx, t.metrics, "token_issue", start, err)
	return output, err
}

// Authenticate records metrics for credential verification.
func (t *tokenUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	clientID, clientSecret string,
) (*authDomain.Client, error) {
	start := time.Now()
	client, err := t.next.Authenticate(ctx, clientID, clientSecret)
	recordOperation(ctx, t.metrics, "client_authenticate", start, err)
	return client, err
}

// accessGuardWithMetrics decorates AccessGuard with metrics instrumentation.
type accessGuardWithMetrics struct {
	next    AccessGuard
	metrics metrics.BusinessMetrics
}

// NewAccessGuardWithMetrics wraps an AccessGuard with metrics recording.
func NewAccessGuardWithMetrics(guard AccessGuard, m metrics.BusinessMetrics) AccessGuard {
	return &accessGuardWithMetrics{
		next:    guard,
		metrics: m,
	}
}

// Authorize records metrics for access decisions.
func (a *accessGuardWithMetrics) Authorize(
	ctx context.Context,
	accessRequest *authDomain.AccessRequest,
) (*authDomain.Client, error) {
	start := time.Now()
	client, err := a.next.Authorize(ctx, accessRequest)
	recordOperation(ctx, a.metrics, "access_authorize", start, err)
	if reason := denialReason(err); reason != "" {
		a.metrics.RecordAccessDenied(ctx, reason)
	}
	return client, err
}

// denialReason maps guard rejections to a metric label. Storage failures are not denials.
func denialReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, authDomain.ErrNotAuthenticated):
		return "missing_credentials"
	case errors.Is(err, authDomain.ErrExpiredToken):
		return "expired_token"
	case errors.Is(err, authDomain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, authDomain.ErrTokenSubjectNotFound):
		return "unknown_subject"
	case errors.Is(err, authDomain.ErrTokenSubjectInactive):
		return "inactive_subject"
	case errors.Is(err, authDomain.ErrAdminRequired):
		return "admin_required"
	default:
		return ""
	}
}
