package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"studenthub-backend/internal/domains/apikey/model"
	"studenthub-backend/internal/domains/apikey/repository"
)

// tokenBytes sets the entropy of issued tokens: 16 random bytes give
// 128 bits, rendered as 32 hex characters.
const tokenBytes = 16

type apiKeyService struct {
	repo      repository.RepositoryInterface
	opTimeout time.Duration
}

// NewAPIKeyService creates the access-control service.
func NewAPIKeyService(repo repository.RepositoryInterface, opTimeout time.Duration) ServiceInterface {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &apiKeyService{repo: repo, opTimeout: opTimeout}
}

// hashToken derives the storage key for a token. Only the digest is
// persisted, so a leaked table does not leak usable credentials.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Issue generates a fresh token, stores its digest as active and hands
// the plaintext back exactly once.
func (s *apiKeyService) Issue(ctx context.Context) (*model.IssuedKey, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	token := hex.EncodeToString(buf)

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.repo.Insert(ctx, hashToken(token)); err != nil {
		log.Error().Err(err).Msg("api key issuance failed")
		return nil, model.NewStorageUnavailable(err)
	}

	return &model.IssuedKey{APIKey: token}, nil
}

// Authenticate classifies a presented token. The error return is only
// non-nil when the store itself failed; every recognizable outcome is
// an AuthResult.
func (s *apiKeyService) Authenticate(ctx context.Context, token string) (model.AuthResult, error) {
	if token == "" {
		return model.AuthMissing, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	key, err := s.repo.GetByHash(ctx, hashToken(token))
	if err != nil {
		log.Error().Err(err).Msg("api key lookup failed")
		return model.AuthInvalid, model.NewStorageUnavailable(err)
	}
	if key == nil {
		return model.AuthInvalid, nil
	}
	if !key.Active {
		return model.AuthInactive, nil
	}

	return model.AuthValid, nil
}

// Revoke deactivates an issued key. There is no reactivation path.
func (s *apiKeyService) Revoke(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	deactivated, err := s.repo.Deactivate(ctx, hashToken(token))
	if err != nil {
		log.Error().Err(err).Msg("api key revocation failed")
		return model.NewStorageUnavailable(err)
	}
	if !deactivated {
		return model.NewKeyNotFound()
	}

	return nil
}
