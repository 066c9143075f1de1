package commands

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
)

// UpdateClientOptions carries the update-client flags. Nil pointers leave the field untouched.
type UpdateClientOptions struct {
	ID                    int64
	Name                  *string
	IsAdmin               *bool
	RegenerateCredentials bool
	Format                string
}

// RunUpdateClient applies a partial update to an active client.
// When credentials are regenerated the new secret is printed once and the old pair stops working.
//
// Requirements: Database must be migrated and the client must exist.
func RunUpdateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	opts UpdateClientOptions,
	io IOTuple,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if opts.ID <= 0 {
		return fmt.Errorf("invalid client id: %d", opts.ID)
	}
	if opts.Name != nil && *opts.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	logger.Info("updating client",
		slog.Int64("id", opts.ID),
		slog.Bool("regenerate_credentials", opts.RegenerateCredentials),
	)

	output, err := clientUseCase.Update(ctx, opts.ID, &authDomain.UpdateClientInput{
		Name:                  opts.Name,
		IsAdmin:               opts.IsAdmin,
		RegenerateCredentials: opts.RegenerateCredentials,
	})
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	logger.Info("client updated successfully", slog.Int64("id", output.Client.ID))

	return writeCredentials(io.Writer, opts.Format, credentialsOutput{
		ID:           output.Client.ID,
		Name:         output.Client.Name,
		IsAdmin:      output.Client.IsAdmin,
		ClientID:     output.Client.OAuthID,
		ClientSecret: output.ClientSecret,
	})
}
