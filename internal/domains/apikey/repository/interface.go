package repository

import (
	"context"

	"studenthub-backend/internal/domains/apikey/model"
)

// RepositoryInterface is the api-key data-access contract. Keys are
// addressed by token digest; GetByHash returns (nil, nil) when absent
// and Deactivate returns false when nothing matched.
type RepositoryInterface interface {
	Insert(ctx context.Context, keyHash string) error
	GetByHash(ctx context.Context, keyHash string) (*model.APIKey, error)
	Deactivate(ctx context.Context, keyHash string) (bool, error)
}
