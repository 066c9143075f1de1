package usecase

import (
	"context"
	"errors"
	"log/slog"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authService "github.com/allisson/itemsapi/internal/auth/service"
	"github.com/allisson/itemsapi/internal/config"
)

// tokenUseCase implements TokenUseCase for the client credentials grant.
type tokenUseCase struct {
	config        *config.Config
	clientRepo    ClientRepository
	secretService authService.SecretService
	tokenCodec    authService.TokenCodec
	logger        *slog.Logger
}

// Issue authenticates a client and mints a bearer token with sub set to the client's oauth_id.
//
// Unsupported grant types, unknown clients, wrong secrets and soft deleted clients all
// surface as ErrInvalidCredentials. The real reason is only logged at debug level.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	issueTokenInput *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	if issueTokenInput.GrantType != authDomain.GrantTypeClientCredentials {
		t.logger.DebugContext(ctx, "token request rejected",
			slog.String("reason", authDomain.ErrUnsupportedGrantType.Error()),
			slog.String("grant_type", issueTokenInput.GrantType),
		)
		return nil, authDomain.ErrInvalidCredentials
	}

	client, err := t.Authenticate(ctx, issueTokenInput.ClientID, issueTokenInput.ClientSecret)
	if err != nil {
		if errors.Is(err, authDomain.ErrInvalidCredentials) {
			t.logger.DebugContext(ctx, "token request rejected",
				slog.String("reason", "credentials did not match"),
			)
		}
		return nil, err
	}

	if !client.IsActive() {
		t.logger.DebugContext(ctx, "token request rejected",
			slog.String("reason", authDomain.ErrClientInactive.Error()),
			slog.Int64("client_id", client.ID),
		)
		return nil, authDomain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := t.tokenCodec.Mint(client.OAuthID, t.config.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		AccessToken: accessToken,
		TokenType:   authDomain.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate looks the client up by client_id and verifies the secret against its hash.
// Empty inputs are rejected before touching the directory. Storage failures propagate as-is.
func (t *tokenUseCase) Authenticate(
	ctx context.Context,
	clientID, clientSecret string,
) (*authDomain.Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	client, err := t.clientRepo.GetByOAuthID(ctx, clientID)
	if err != nil {
		if errors.Is(err, authDomain.ErrClientNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.secretService.CompareSecret(clientSecret, client.SecretHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return client, nil
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	config *config.Config,
	clientRepo ClientRepository,
	secretService authService.SecretService,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) TokenUseCase {
	return &tokenUseCase{
		config:        config,
		clientRepo:    clientRepo,
		secretService: secretService,
		tokenCodec:    tokenCodec,
		logger:        logger,
	}
}
