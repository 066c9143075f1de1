package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

func TestMySQLItemRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	item := newTestItem()
	mock.ExpectExec("INSERT INTO items").
		WithArgs(item.OwnerID, item.Title, item.Description, item.CreatedAt).
		WillReturnResult(sqlmock.NewResult(21, 1))

	repo := NewMySQLItemRepository(db)
	require.NoError(t, repo.Create(context.Background(), item))

	assert.Equal(t, int64(21), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLItemRepository_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM items WHERE id = \\? AND owner_id = \\?").
			WithArgs(int64(21), int64(3)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames).
				AddRow(int64(21), int64(3), "groceries", "milk", testCreatedAt))

		repo := NewMySQLItemRepository(db)
		item, err := repo.Get(context.Background(), 3, 21)

		require.NoError(t, err)
		assert.Equal(t, "milk", item.Description)
	})

	t.Run("Error_NotOwnedOrMissing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM items").WillReturnError(sql.ErrNoRows)

		repo := NewMySQLItemRepository(db)
		_, err = repo.Get(context.Background(), 4, 21)

		assert.ErrorIs(t, err, itemDomain.ErrItemNotFound)
	})
}

func TestMySQLItemRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT (.+) FROM items\\s+WHERE owner_id = \\?").
		WithArgs(int64(3), 10, 20).
		WillReturnRows(sqlmock.NewRows(itemColumnNames).
			AddRow(int64(30), int64(3), "a", "x", testCreatedAt))

	repo := NewMySQLItemRepository(db)
	items, err := repo.List(context.Background(), 3, 20, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLItemRepository_Update(t *testing.T) {
	t.Run("Success_UnchangedRowIsNotAnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		item := newTestItem()
		item.ID = 21
		mock.ExpectExec("UPDATE items SET title = \\?, description = \\? WHERE id = \\? AND owner_id = \\?").
			WithArgs(item.Title, item.Description, item.ID, item.OwnerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMySQLItemRepository(db)
		assert.NoError(t, repo.Update(context.Background(), item))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE items").WillReturnError(assert.AnError)

		repo := NewMySQLItemRepository(db)
		assert.ErrorIs(t, repo.Update(context.Background(), newTestItem()), assert.AnError)
	})
}

func TestMySQLItemRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM items WHERE id = \\? AND owner_id = \\?").
			WithArgs(int64(21), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLItemRepository(db)
		assert.NoError(t, repo.Delete(context.Background(), 3, 21))
	})

	t.Run("Error_NotOwnedOrMissing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMySQLItemRepository(db)
		assert.ErrorIs(t, repo.Delete(context.Background(), 4, 21), itemDomain.ErrItemNotFound)
	})
}
