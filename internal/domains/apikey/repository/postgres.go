package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studenthub-backend/internal/domains/apikey/model"
)

// postgresRepository implements RepositoryInterface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new api-key repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, keyHash string) error {
	query := "INSERT INTO api_keys (key_hash, active) VALUES ($1, TRUE)"
	if _, err := r.pool.Exec(ctx, query, keyHash); err != nil {
		return fmt.Errorf("failed to insert api key: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByHash(ctx context.Context, keyHash string) (*model.APIKey, error) {
	query := "SELECT key_hash, active, created_at FROM api_keys WHERE key_hash = $1"

	var key model.APIKey
	err := r.pool.QueryRow(ctx, query, keyHash).Scan(&key.KeyHash, &key.Active, &key.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}

	return &key, nil
}

// Deactivate flips active to false. Keys are never physically deleted.
func (r *postgresRepository) Deactivate(ctx context.Context, keyHash string) (bool, error) {
	query := "UPDATE api_keys SET active = FALSE WHERE key_hash = $1"
	tag, err := r.pool.Exec(ctx, query, keyHash)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate api key: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
