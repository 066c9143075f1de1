package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/itemsapi/internal/config"
)

const corsWildcard = "*"

// corsMiddleware builds the CORS handler from CORS_ENABLED and CORS_ALLOW_ORIGINS.
// The second return value is false when CORS should not be installed at all.
//
// Callers authenticate with bearer tokens, so credentials are never allowed cross-origin.
func corsMiddleware(cfg *config.Config, logger *slog.Logger) (gin.HandlerFunc, bool) {
	if !cfg.CORSEnabled {
		return nil, false
	}

	origins := splitOrigins(cfg.CORSAllowOrigins)
	if len(origins) == 0 {
		logger.Warn("cors enabled without origins, skipping")
		return nil, false
	}

	corsConfig := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, corsWildcard) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	logger.Info("cors enabled", slog.Any("origins", origins))

	return cors.New(corsConfig), true
}

// splitOrigins splits a comma separated origin list, dropping blanks.
func splitOrigins(raw string) []string {
	var origins []string
	for origin := range strings.SplitSeq(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
