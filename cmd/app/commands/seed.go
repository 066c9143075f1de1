package commands

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
	"github.com/allisson/itemsapi/internal/config"
)

// bootstrapClients lists the configured seed clients. Pairs with an empty client_id are skipped.
func bootstrapClients(cfg *config.Config) []*authDomain.BootstrapClientInput {
	candidates := []*authDomain.BootstrapClientInput{
		{
			Name:         "admin",
			IsAdmin:      true,
			ClientID:     cfg.AdminClientID,
			ClientSecret: cfg.AdminClientSecret,
		},
		{
			Name:         "external",
			IsAdmin:      false,
			ClientID:     cfg.ExternalClientID,
			ClientSecret: cfg.ExternalClientSecret,
		},
	}

	inputs := make([]*authDomain.BootstrapClientInput, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ClientID == "" {
			continue
		}
		inputs = append(inputs, candidate)
	}
	return inputs
}

// RunSeed creates the admin and external clients from configuration.
// It is idempotent: a client_id that already exists is left untouched, even when soft deleted.
func RunSeed(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	cfg *config.Config,
) error {
	inputs := bootstrapClients(cfg)
	if len(inputs) == 0 {
		logger.Warn("no bootstrap clients configured")
		return nil
	}

	for _, input := range inputs {
		if input.ClientSecret == "" {
			return fmt.Errorf("client %q has a client_id but no client_secret", input.Name)
		}

		client, created, err := clientUseCase.Bootstrap(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to seed client %q: %w", input.Name, err)
		}

		if created {
			logger.Info("bootstrap client created",
				slog.String("name", input.Name),
				slog.Int64("id", client.ID),
				slog.Bool("is_admin", client.IsAdmin),
			)
		} else {
			logger.Info("bootstrap client already exists", slog.String("name", input.Name))
		}
	}

	return nil
}
