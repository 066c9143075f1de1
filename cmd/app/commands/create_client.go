package commands

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
)

// RunCreateClient registers a client with server generated credentials and prints them once.
//
// Requirements: Database must be migrated and accessible.
func RunCreateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	name string,
	isAdmin bool,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	logger.Info("creating new client", slog.String("name", name), slog.Bool("is_admin", isAdmin))

	output, err := clientUseCase.Create(ctx, &authDomain.CreateClientInput{
		Name:    name,
		IsAdmin: isAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("client created successfully",
		slog.Int64("id", output.Client.ID),
		slog.String("name", name),
	)

	return writeCredentials(io.Writer, format, credentialsOutput{
		ID:           output.Client.ID,
		Name:         output.Client.Name,
		IsAdmin:      output.Client.IsAdmin,
		ClientID:     output.ClientID,
		ClientSecret: output.ClientSecret,
	})
}
