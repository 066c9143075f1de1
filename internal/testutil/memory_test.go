package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

func TestMemoryClientRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClientRepository()

	first := &authDomain.Client{Name: "a", OAuthID: "id-a", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	err := repo.Create(ctx, &authDomain.Client{Name: "dup", OAuthID: "id-a"})
	assert.ErrorIs(t, err, authDomain.ErrDuplicateClientID)

	second := &authDomain.Client{Name: "b", OAuthID: "id-b"}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.SoftDelete(ctx, second.ID, time.Now()))
	assert.ErrorIs(t, repo.SoftDelete(ctx, second.ID, time.Now()), authDomain.ErrClientInactive)
	assert.ErrorIs(t, repo.SoftDelete(ctx, 99, time.Now()), authDomain.ErrClientNotFound)

	second.Name = "revived"
	second.DeletedAt = nil
	assert.ErrorIs(t, repo.Update(ctx, second), authDomain.ErrClientInactive)

	err = repo.Create(ctx, &authDomain.Client{Name: "reuse", OAuthID: "id-b"})
	assert.ErrorIs(t, err, authDomain.ErrDuplicateClientID)

	active, err := repo.List(ctx, true, 0, 10)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	all, err := repo.List(ctx, false, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := repo.GetByOAuthID(ctx, "id-b")
	require.NoError(t, err)
	assert.False(t, got.IsActive())
	assert.Equal(t, "b", got.Name)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, authDomain.ErrClientNotFound)
}

func TestMemoryItemRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository()

	item := &itemDomain.Item{OwnerID: 1, Title: "mine"}
	require.NoError(t, repo.Create(ctx, item))

	_, err := repo.Get(ctx, 2, item.ID)
	assert.ErrorIs(t, err, itemDomain.ErrItemNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 2, item.ID), itemDomain.ErrItemNotFound)

	others, err := repo.List(ctx, 2, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, others)

	item.Title = "renamed"
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.Get(ctx, 1, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, repo.Delete(ctx, 1, item.ID))
	_, err = repo.Get(ctx, 1, item.ID)
	assert.ErrorIs(t, err, itemDomain.ErrItemNotFound)
}

func TestPage(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, page(rows, 0, 2))
	assert.Equal(t, []int{5}, page(rows, 4, 2))
	assert.Empty(t, page(rows, 10, 2))
}
