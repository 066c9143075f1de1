// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	authService "github.com/allisson/itemsapi/internal/auth/service"
	"github.com/allisson/itemsapi/internal/database"
)

// clientUseCase implements ClientUseCase.
type clientUseCase struct {
	txManager     database.TxManager
	clientRepo    ClientRepository
	secretService authService.SecretService
}

// Create generates credentials and persists a new Client.
func (c *clientUseCase) Create(
	ctx context.Context,
	createClientInput *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	creds, err := c.secretService.GenerateCredentials()
	if err != nil {
		return nil, err
	}

	client := &authDomain.Client{
		Name:       createClientInput.Name,
		OAuthID:    creds.ClientID,
		SecretHash: creds.SecretHash,
		IsAdmin:    createClientInput.IsAdmin,
		CreatedAt:  time.Now().UTC(),
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return &authDomain.CreateClientOutput{
		Client:       client,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	}, nil
}

// Bootstrap creates a client with fixed credentials. An existing client_id is left untouched,
// whatever its state.
func (c *clientUseCase) Bootstrap(
	ctx context.Context,
	input *authDomain.BootstrapClientInput,
) (*authDomain.Client, bool, error) {
	existing, err := c.clientRepo.GetByOAuthID(ctx, input.ClientID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, authDomain.ErrClientNotFound) {
		return nil, false, err
	}

	secretHash, err := c.secretService.HashSecret(input.ClientSecret)
	if err != nil {
		return nil, false, err
	}

	client := &authDomain.Client{
		Name:       input.Name,
		OAuthID:    input.ClientID,
		SecretHash: secretHash,
		IsAdmin:    input.IsAdmin,
		CreatedAt:  time.Now().UTC(),
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		return nil, false, err
	}

	return client, true, nil
}

// List retrieves clients, skipping soft deleted ones unless includeDeleted is set.
func (c *clientUseCase) List(
	ctx context.Context,
	includeDeleted bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	return c.clientRepo.List(ctx, !includeDeleted, offset, limit)
}

// Get retrieves an active client by ID.
func (c *clientUseCase) Get(ctx context.Context, id int64) (*authDomain.Client, error) {
	return c.getActive(ctx, id)
}

// Update applies the non-nil fields and, when requested, swaps in freshly generated credentials.
// Reads and writes share one transaction.
func (c *clientUseCase) Update(
	ctx context.Context,
	id int64,
	updateClientInput *authDomain.UpdateClientInput,
) (*authDomain.UpdateClientOutput, error) {
	var output *authDomain.UpdateClientOutput

	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		client, err := c.getActive(ctx, id)
		if err != nil {
			return err
		}

		if updateClientInput.Name != nil {
			client.Name = *updateClientInput.Name
		}
		if updateClientInput.IsAdmin != nil {
			client.IsAdmin = *updateClientInput.IsAdmin
		}

		result := &authDomain.UpdateClientOutput{Client: client}

		if updateClientInput.RegenerateCredentials {
			creds, err := c.secretService.GenerateCredentials()
			if err != nil {
				return err
			}
			client.OAuthID = creds.ClientID
			client.SecretHash = creds.SecretHash
			result.ClientID = creds.ClientID
			result.ClientSecret = creds.ClientSecret
		}

		if err := c.clientRepo.Update(ctx, client); err != nil {
			return err
		}

		output = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Delete soft deletes an active client by stamping DeletedAt.
func (c *clientUseCase) Delete(ctx context.Context, id int64) error {
	return c.clientRepo.SoftDelete(ctx, id, time.Now().UTC())
}

func (c *clientUseCase) getActive(ctx context.Context, id int64) (*authDomain.Client, error) {
	client, err := c.clientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !client.IsActive() {
		return nil, authDomain.ErrClientInactive
	}
	return client, nil
}

// NewClientUseCase creates a new ClientUseCase with the provided dependencies.
func NewClientUseCase(
	txManager database.TxManager,
	clientRepo ClientRepository,
	secretService authService.SecretService,
) ClientUseCase {
	return &clientUseCase{
		txManager:     txManager,
		clientRepo:    clientRepo,
		secretService: secretService,
	}
}
