// Package repository implements data persistence for client accounts.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// Clients are never physically removed. SoftDelete stamps deleted_at once, and every write
// is guarded by "deleted_at IS NULL" so a concurrent update cannot revive a deleted client.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/database"
	apperrors "github.com/allisson/itemsapi/internal/errors"
)

const (
	postgresClientColumns = `id, name, oauth_id, oauth_secret_hash, is_admin, created_at, deleted_at`

	postgresClientActive = `SELECT deleted_at IS NULL FROM clients WHERE id = $1 FOR UPDATE`
)

// PostgreSQLClientRepository implements Client persistence for PostgreSQL.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// Create inserts a new Client and stores the assigned id back on it.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO clients (name, oauth_id, oauth_secret_hash, is_admin, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		client.Name,
		client.OAuthID,
		client.SecretHash,
		client.IsAdmin,
		client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrDuplicateClientID
		}
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Update overwrites the mutable columns of an active Client. deleted_at is never written here.
func (p *PostgreSQLClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE clients
			  SET name = $1,
				  oauth_id = $2,
				  oauth_secret_hash = $3,
				  is_admin = $4
			  WHERE id = $5 AND deleted_at IS NULL`

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
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrDuplicateClientID
		}
		return apperrors.Wrap(err, "failed to update client")
	}

	return p.checkAffected(ctx, querier, result, client.ID)
}

// SoftDelete stamps deleted_at on an active Client.
func (p *PostgreSQLClientRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE clients SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, at, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}

	return p.checkAffected(ctx, querier, result, id)
}

func (p *PostgreSQLClientRepository) checkAffected(
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
	return unmatchedClientError(ctx, querier, postgresClientActive, id)
}

// Get retrieves a Client by its storage id, active or not.
func (p *PostgreSQLClientRepository) Get(ctx context.Context, id int64) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresClientColumns + ` FROM clients WHERE id = $1`

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
func (p *PostgreSQLClientRepository) GetByOAuthID(ctx context.Context, oauthID string) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresClientColumns + ` FROM clients WHERE oauth_id = $1`

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
func (p *PostgreSQLClientRepository) List(
	ctx context.Context,
	activeOnly bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresClientColumns + ` FROM clients
			  WHERE ($1 = false OR deleted_at IS NULL)
			  ORDER BY id ASC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanClients(rows)
}

func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// NewPostgreSQLClientRepository creates a new PostgreSQL Client repository.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}
