package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studenthub-backend/internal/domains/apikey/model"
)

type fakeKeyRepo struct {
	mu       sync.Mutex
	keys     map[string]*model.APIKey
	failWith error
}

func newFakeKeyRepo() *fakeKeyRepo {
	return &fakeKeyRepo{keys: make(map[string]*model.APIKey)}
}

func (f *fakeKeyRepo) Insert(_ context.Context, keyHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.keys[keyHash] = &model.APIKey{KeyHash: keyHash, Active: true, CreatedAt: time.Now()}
	return nil
}

func (f *fakeKeyRepo) GetByHash(_ context.Context, keyHash string) (*model.APIKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	key, ok := f.keys[keyHash]
	if !ok {
		return nil, nil
	}
	copied := *key
	return &copied, nil
}

func (f *fakeKeyRepo) Deactivate(_ context.Context, keyHash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	key, ok := f.keys[keyHash]
	if !ok {
		return false, nil
	}
	key.Active = false
	return true, nil
}

var hexToken32 = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestIssueReturnsOpaqueToken(t *testing.T) {
	repo := newFakeKeyRepo()
	svc := NewAPIKeyService(repo, 0)

	issued, err := svc.Issue(context.Background())
	require.NoError(t, err)

	// 32 lowercase hex characters: 128 bits of randomness.
	assert.Regexp(t, hexToken32, issued.APIKey)

	// Only the digest is at rest, never the token itself.
	_, stored := repo.keys[issued.APIKey]
	assert.False(t, stored)
	assert.Len(t, repo.keys, 1)
}

func TestIssueProducesDistinctTokens(t *testing.T) {
	svc := NewAPIKeyService(newFakeKeyRepo(), 0)

	first, err := svc.Issue(context.Background())
	require.NoError(t, err)
	second, err := svc.Issue(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.APIKey, second.APIKey)
}

func TestAuthenticateVerdicts(t *testing.T) {
	repo := newFakeKeyRepo()
	svc := NewAPIKeyService(repo, 0)

	issued, err := svc.Issue(context.Background())
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, model.AuthMissing, result)
	})

	t.Run("never issued", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
		require.NoError(t, err)
		assert.Equal(t, model.AuthInvalid, result)
	})

	t.Run("issued and active", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), issued.APIKey)
		require.NoError(t, err)
		assert.Equal(t, model.AuthValid, result)
	})

	t.Run("revoked", func(t *testing.T) {
		require.NoError(t, svc.Revoke(context.Background(), issued.APIKey))

		result, err := svc.Authenticate(context.Background(), issued.APIKey)
		require.NoError(t, err)
		assert.Equal(t, model.AuthInactive, result)
	})
}

func TestRevokeUnknownKey(t *testing.T) {
	svc := NewAPIKeyService(newFakeKeyRepo(), 0)

	err := svc.Revoke(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.True(t, model.IsKeyNotFound(err))
}

func TestStoreFailuresSurface(t *testing.T) {
	repo := newFakeKeyRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewAPIKeyService(repo, 0)

	_, err := svc.Issue(context.Background())
	var keyErr *model.APIKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", keyErr.Code)

	_, err = svc.Authenticate(context.Background(), "sometoken")
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", keyErr.Code)
}
