package service

import (
	"context"

	"studenthub-backend/internal/domains/apikey/model"
)

// ServiceInterface is the access-control contract. Authenticate is also
// consumed by the gate middleware wrapping the record routes.
type ServiceInterface interface {
	Issue(ctx context.Context) (*model.IssuedKey, error)
	Authenticate(ctx context.Context, token string) (model.AuthResult, error)
	Revoke(ctx context.Context, token string) error
}
