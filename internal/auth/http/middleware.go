package http

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
	"github.com/allisson/itemsapi/internal/httputil"
)

// AuthenticationMiddleware requires a valid bearer token from an active client.
//
// The resolved client is stored in the request context; handlers read it with GetClient.
// Rejections are 401 with a "WWW-Authenticate: Bearer" challenge.
func AuthenticationMiddleware(guard authUseCase.AccessGuard, logger *slog.Logger) gin.HandlerFunc {
	return accessMiddleware(guard, false, logger)
}

// AdminMiddleware requires a valid bearer token from an active admin client.
// Authenticated non-admin clients get 403.
func AdminMiddleware(guard authUseCase.AccessGuard, logger *slog.Logger) gin.HandlerFunc {
	return accessMiddleware(guard, true, logger)
}

func accessMiddleware(guard authUseCase.AccessGuard, requireAdmin bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessRequest := &authDomain.AccessRequest{
			AuthorizationHeader: c.GetHeader("Authorization"),
			RequireAdmin:        requireAdmin,
		}

		client, err := guard.Authorize(c.Request.Context(), accessRequest)
		if err != nil {
			logAccessDenied(c, err, logger)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClient(c.Request.Context(), client)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("access granted",
			slog.Int64("client_id", client.ID),
			slog.String("client_name", client.Name),
			slog.Bool("admin_route", requireAdmin))

		c.Next()
	}
}

func logAccessDenied(c *gin.Context, err error, logger *slog.Logger) {
	var message string
	switch {
	case errors.Is(err, authDomain.ErrNotAuthenticated):
		message = "authentication failed: missing or malformed authorization header"
	case errors.Is(err, authDomain.ErrExpiredToken):
		message = "authentication failed: token expired"
	case errors.Is(err, authDomain.ErrInvalidToken):
		message = "authentication failed: invalid token"
	case errors.Is(err, authDomain.ErrTokenSubjectNotFound):
		message = "authentication failed: token subject not found"
	case errors.Is(err, authDomain.ErrTokenSubjectInactive):
		message = "authentication failed: token subject inactive"
	case errors.Is(err, authDomain.ErrAdminRequired):
		message = "authorization failed: admin required"
	default:
		return
	}

	logger.Debug(message, slog.String("path", c.FullPath()))
}
