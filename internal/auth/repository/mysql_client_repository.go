package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/database"
	apperrors "github.com/allisson/itemsapi/internal/errors"
)

const (
	mysqlClientColumns = `id, name, oauth_id, oauth_secret_hash, is_admin, created_at, deleted_at`

	mysqlClientActive = `SELECT deleted_at IS NULL FROM clients WHERE id = ? FOR UPDATE`

	// mysqlDuplicateEntry is the server error number for a unique key violation.
	mysqlDuplicateEntry = 1062
)

// MySQLClientRepository implements Client persistence for MySQL.
type MySQLClientRepository struct {
	db *sql.DB
}

// Create inserts a new Client and stores the auto increment id back on it.
func (m *MySQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO clients (name, oauth_id, oauth_secret_hash, is_admin, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.Name,
		client.OAuthID,
		client.SecretHash,
		client.IsAdmin,
		client.CreatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return authDomain.ErrDuplicateClientID
		}
		return apperrors.Wrap(err, "failed to create client")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get client id")
	}
	client.ID = id

	return nil
}

// Update overwrites the mutable columns of an active Client. deleted_at is never written here.
func (m *MySQLClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients
			  SET name = ?,
				  oauth_id = ?,
				  oauth_secret_hash = ?,
				  is_admin = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.Name,
		client.OAuthID,
		client.SecretHash,
		client.IsAdmin,
		client.ID,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return authDomain.ErrDuplicateClientID
		}
		return apperrors.Wrap(err, "failed to update client")
	}

	return m.checkAffected(ctx, querier, result, client.ID)
}

// SoftDelete stamps deleted_at on an active Client.
func (m *MySQLClientRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, at, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}

	return m.checkAffected(ctx, querier, result, id)
}

// checkAffected re-reads the row when nothing matched. MySQL also reports zero affected
// rows for a write that changes nothing, which is a success.
func (m *MySQLClientRepository) checkAffected(
	ctx context.Context,
	querier database.Querier,
	result sql.Result,
	id int64,
) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows > 0 {
		return nil
	}
	return unmatchedClientError(ctx, querier, mysqlClientActive, id)
}

// Get retrieves a Client by its storage id, active or not.
func (m *MySQLClientRepository) Get(ctx context.Context, id int64) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlClientColumns + ` FROM clients WHERE id = ?`

	client, err := scanClient(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	return client, nil
}

// GetByOAuthID retrieves a Client by its external client_id, active or not.
func (m *MySQLClientRepository) GetByOAuthID(ctx context.Context, oauthID string) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlClientColumns + ` FROM clients WHERE oauth_id = ?`

	client, err := scanClient(querier.QueryRowContext(ctx, query, oauthID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client by oauth id")
	}

	return client, nil
}

// List retrieves clients ordered by id. When activeOnly is set soft deleted rows are skipped.
func (m *MySQLClientRepository) List(
	ctx context.Context,
	activeOnly bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlClientColumns + ` FROM clients
			  WHERE (? = FALSE OR deleted_at IS NULL)
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanClients(rows)
}

func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}

// NewMySQLClientRepository creates a new MySQL Client repository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}
