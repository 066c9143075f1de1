package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

// mockClientUseCase is a mock implementation of usecase.ClientUseCase.
type mockClientUseCase struct {
	mock.Mock
}

func (m *mockClientUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateClientInput,
) (*authDomain.CreateClientOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.CreateClientOutput), args.Error(1)
}

func (m *mockClientUseCase) Bootstrap(
	ctx context.Context,
	input *authDomain.BootstrapClientInput,
) (*authDomain.Client, bool, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*authDomain.Client), args.Bool(1), args.Error(2)
}

func (m *mockClientUseCase) List(
	ctx context.Context,
	includeDeleted bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	args := m.Called(ctx, includeDeleted, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Client), args.Error(1)
}

func (m *mockClientUseCase) Get(ctx context.Context, id int64) (*authDomain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Client), args.Error(1)
}

func (m *mockClientUseCase) Update(
	ctx context.Context,
	id int64,
	input *authDomain.UpdateClientInput,
) (*authDomain.UpdateClientOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.UpdateClientOutput), args.Error(1)
}

func (m *mockClientUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
