package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// APIKey is an issued credential at rest. Only the digest of the token
// is stored; the plaintext is returned once at issuance and is never
// retrievable again.
type APIKey struct {
	KeyHash   string    `json:"-" db:"key_hash"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AuthResult is the verdict of presenting a credential. Only Valid
// permits record operations.
type AuthResult int

const (
	AuthMissing AuthResult = iota // no credential supplied
	AuthInvalid                   // token matches no issued key
	AuthInactive                  // key exists but was revoked
	AuthValid
)

func (r AuthResult) String() string {
	switch r {
	case AuthMissing:
		return "missing"
	case AuthInvalid:
		return "invalid"
	case AuthInactive:
		return "inactive"
	case AuthValid:
		return "valid"
	default:
		return "unknown"
	}
}

// IssuedKey is the one-time issuance response.
type IssuedKey struct {
	APIKey string `json:"apiKey"`
}

// RevokeRequest deactivates an issued key by its plaintext token.
type RevokeRequest struct {
	Key string `json:"key"`
}

func (r RevokeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
		),
	)
}
