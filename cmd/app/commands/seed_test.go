package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/config"
)

func TestRunSeed(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adminInput := &authDomain.BootstrapClientInput{
		Name:         "admin",
		IsAdmin:      true,
		ClientID:     "admin-id",
		ClientSecret: "admin-secret",
	}
	externalInput := &authDomain.BootstrapClientInput{
		Name:         "external",
		ClientID:     "external-id",
		ClientSecret: "external-secret",
	}

	t.Run("creates-both", func(t *testing.T) {
		cfg := &config.Config{
			AdminClientID:        "admin-id",
			AdminClientSecret:    "admin-secret",
			ExternalClientID:     "external-id",
			ExternalClientSecret: "external-secret",
		}

		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Bootstrap", ctx, adminInput).
			Return(&authDomain.Client{ID: 1, IsAdmin: true}, true, nil)
		mockUseCase.On("Bootstrap", ctx, externalInput).
			Return(&authDomain.Client{ID: 2}, true, nil)

		require.NoError(t, RunSeed(ctx, mockUseCase, logger, cfg))
		mockUseCase.AssertExpectations(t)
	})

	t.Run("idempotent", func(t *testing.T) {
		cfg := &config.Config{AdminClientID: "admin-id", AdminClientSecret: "admin-secret"}

		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Bootstrap", ctx, adminInput).
			Return(&authDomain.Client{ID: 1, IsAdmin: true}, false, nil)

		require.NoError(t, RunSeed(ctx, mockUseCase, logger, cfg))
		mockUseCase.AssertNumberOfCalls(t, "Bootstrap", 1)
	})

	t.Run("nothing-configured", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}

		require.NoError(t, RunSeed(ctx, mockUseCase, logger, &config.Config{}))
		mockUseCase.AssertNotCalled(t, "Bootstrap", mock.Anything, mock.Anything)
	})

	t.Run("missing-secret", func(t *testing.T) {
		mockUseCase := &mockClientUseCase{}

		err := RunSeed(ctx, mockUseCase, logger, &config.Config{ExternalClientID: "external-id"})

		require.ErrorContains(t, err, "no client_secret")
		mockUseCase.AssertNotCalled(t, "Bootstrap", mock.Anything, mock.Anything)
	})

	t.Run("usecase-error", func(t *testing.T) {
		cfg := &config.Config{AdminClientID: "admin-id", AdminClientSecret: "admin-secret"}

		mockUseCase := &mockClientUseCase{}
		mockUseCase.On("Bootstrap", ctx, adminInput).Return(nil, false, errors.New("connection refused"))

		err := RunSeed(ctx, mockUseCase, logger, cfg)

		require.ErrorContains(t, err, `failed to seed client "admin"`)
	})
}
