package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/database"
	apperrors "github.com/allisson/itemsapi/internal/errors"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*authDomain.Client, error) {
	var (
		client    authDomain.Client
		deletedAt sql.NullTime
	)

	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.OAuthID,
		&client.SecretHash,
		&client.IsAdmin,
		&client.CreatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		t := deletedAt.Time
		client.DeletedAt = &t
	}

	return &client, nil
}

func scanClients(rows *sql.Rows) ([]*authDomain.Client, error) {
	clients := make([]*authDomain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client")
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}

// unmatchedClientError explains a write guarded by "deleted_at IS NULL" that touched no row.
// query must select one boolean "is active" column with a locking read, so a repeatable-read
// transaction still sees a soft delete committed after its snapshot.
// A nil result means the row is active and the write was a no-op.
func unmatchedClientError(ctx context.Context, querier database.Querier, query string, id int64) error {
	var active bool
	err := querier.QueryRowContext(ctx, query, id).Scan(&active)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return authDomain.ErrClientNotFound
	case err != nil:
		return apperrors.Wrap(err, "failed to check client state")
	case !active:
		return authDomain.ErrClientInactive
	}
	return nil
}
