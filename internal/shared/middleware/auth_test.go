package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"studenthub-backend/internal/domains/apikey/model"
)

// stubKeyService returns canned verdicts keyed by token.
type stubKeyService struct {
	verdicts map[string]model.AuthResult
	err      error
}

func (s *stubKeyService) Issue(context.Context) (*model.IssuedKey, error) {
	return nil, errors.New("not implemented")
}

func (s *stubKeyService) Revoke(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubKeyService) Authenticate(_ context.Context, token string) (model.AuthResult, error) {
	if s.err != nil {
		return model.AuthInvalid, s.err
	}
	if token == "" {
		return model.AuthMissing, nil
	}
	if verdict, ok := s.verdicts[token]; ok {
		return verdict, nil
	}
	return model.AuthInvalid, nil
}

func newGatedRouter(keys *stubKeyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(APIKeyAuth(keys))
	protected.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	keys := &stubKeyService{verdicts: map[string]model.AuthResult{
		"good-key":    model.AuthValid,
		"revoked-key": model.AuthInactive,
	}}
	router := newGatedRouter(keys)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"valid key passes", "good-key", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"unknown key", "bad-key", http.StatusUnauthorized},
		{"revoked key", "revoked-key", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.Header.Set(APIKeyHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKeyAuthStoreFailure(t *testing.T) {
	keys := &stubKeyService{err: errors.New("connection refused")}
	router := newGatedRouter(keys)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(APIKeyHeader, "good-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A store fault is not a verdict about the credential.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "temporarily unavailable")
}
