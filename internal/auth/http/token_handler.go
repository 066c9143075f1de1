package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/auth/http/dto"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
	"github.com/allisson/itemsapi/internal/httputil"
)

// TokenHandler handles the OAuth2 token endpoint.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// IssueTokenHandler issues an access token for the client credentials grant.
// POST /api/auth/token - form encoded grant_type, client_id and client_secret.
// Returns 200 OK with access_token, token_type and expires_at. Every failure is 401.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		h.logger.Debug("token request rejected", slog.String("reason", "unparseable form"))
		httputil.HandleErrorGin(c, authDomain.ErrInvalidCredentials, h.logger)
		return
	}

	input := &authDomain.IssueTokenInput{
		GrantType:    req.GrantType,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
	}

	output, err := h.tokenUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.IssueTokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}
