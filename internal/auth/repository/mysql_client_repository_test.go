package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

func TestNewMySQLClientRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLClientRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLClientRepository{}, repo)
}

func TestMySQLClientRepository_Create(t *testing.T) {
	t.Run("Success_AssignsLastInsertID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		client := newTestClient()
		mock.ExpectExec("INSERT INTO clients").
			WithArgs(client.Name, client.OAuthID, client.SecretHash, client.IsAdmin, client.CreatedAt).
			WillReturnResult(sqlmock.NewResult(12, 1))

		repo := NewMySQLClientRepository(db)
		err = repo.Create(context.Background(), client)

		require.NoError(t, err)
		assert.Equal(t, int64(12), client.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEntry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO clients").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'oauth-billing'"})

		repo := NewMySQLClientRepository(db)
		err = repo.Create(context.Background(), newTestClient())
		assert.ErrorIs(t, err, authDomain.ErrDuplicateClientID)
	})

	t.Run("Error_OtherServerError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO clients").
			WillReturnError(&mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"})

		repo := NewMySQLClientRepository(db)
		err = repo.Create(context.Background(), newTestClient())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrDuplicateClientID)
	})
}

func TestMySQLClientRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		client := newTestClient()
		client.ID = 3

		mock.ExpectExec("UPDATE clients (.+) WHERE id = \\? AND deleted_at IS NULL").
			WithArgs(client.Name, client.OAuthID, client.SecretHash, client.IsAdmin, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLClientRepository(db)
		assert.NoError(t, repo.Update(context.Background(), client))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_NothingChanged", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		client := newTestClient()
		client.ID = 3

		mock.ExpectExec("UPDATE clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT deleted_at IS NULL FROM clients WHERE id = \\? FOR UPDATE").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(true))

		repo := NewMySQLClientRepository(db)
		assert.NoError(t, repo.Update(context.Background(), client))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DeletedConcurrently", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT deleted_at IS NULL FROM clients").
			WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(false))

		repo := NewMySQLClientRepository(db)
		err = repo.Update(context.Background(), newTestClient())
		assert.ErrorIs(t, err, authDomain.ErrClientInactive)
	})

	t.Run("Error_DuplicateEntry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE clients").WillReturnError(&mysql.MySQLError{Number: 1062})

		repo := NewMySQLClientRepository(db)
		err = repo.Update(context.Background(), newTestClient())
		assert.ErrorIs(t, err, authDomain.ErrDuplicateClientID)
	})
}

func TestMySQLClientRepository_SoftDelete(t *testing.T) {
	deletedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE clients SET deleted_at = \\? WHERE id = \\? AND deleted_at IS NULL").
			WithArgs(deletedAt, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLClientRepository(db)
		assert.NoError(t, repo.SoftDelete(context.Background(), 3, deletedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_AlreadyDeleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT deleted_at IS NULL FROM clients").
			WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(false))

		repo := NewMySQLClientRepository(db)
		err = repo.SoftDelete(context.Background(), 3, deletedAt)
		assert.ErrorIs(t, err, authDomain.ErrClientInactive)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT deleted_at IS NULL FROM clients").WillReturnError(sql.ErrNoRows)

		repo := NewMySQLClientRepository(db)
		err = repo.SoftDelete(context.Background(), 3, deletedAt)
		assert.ErrorIs(t, err, authDomain.ErrClientNotFound)
	})
}

func TestMySQLClientRepository_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = \\?").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(clientColumnNames).
				AddRow(int64(3), "billing", "oauth-billing", "hash", false, time.Now(), nil))

		repo := NewMySQLClientRepository(db)
		client, err := repo.Get(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "billing", client.Name)
		assert.Nil(t, client.DeletedAt)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM clients").WillReturnError(sql.ErrNoRows)

		repo := NewMySQLClientRepository(db)
		_, err = repo.Get(context.Background(), 3)
		assert.ErrorIs(t, err, authDomain.ErrClientNotFound)
	})
}

func TestMySQLClientRepository_GetByOAuthID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE oauth_id = \\?").
		WithArgs("oauth-billing").
		WillReturnRows(sqlmock.NewRows(clientColumnNames).
			AddRow(int64(3), "billing", "oauth-billing", "hash", false, time.Now(), nil))

	repo := NewMySQLClientRepository(db)
	client, err := repo.GetByOAuthID(context.Background(), "oauth-billing")

	require.NoError(t, err)
	assert.Equal(t, int64(3), client.ID)
}

func TestMySQLClientRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	deletedAt := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM clients").
		WithArgs(false, 50, 0).
		WillReturnRows(sqlmock.NewRows(clientColumnNames).
			AddRow(int64(1), "admin", "oauth-admin", "hash", true, time.Now(), nil).
			AddRow(int64(2), "gone", "oauth-gone", "hash", false, time.Now(), deletedAt))

	repo := NewMySQLClientRepository(db)
	clients, err := repo.List(context.Background(), false, 0, 50)

	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.True(t, clients[0].IsActive())
	assert.False(t, clients[1].IsActive())
}
