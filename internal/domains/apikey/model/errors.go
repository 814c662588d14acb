package model

import (
	"errors"
	"fmt"
	"net/http"
)

// APIKeyError định nghĩa base error cho apikey domain
type APIKeyError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *APIKeyError) Unwrap() error {
	return e.Err
}

func NewKeyNotFound() *APIKeyError {
	return &APIKeyError{
		Code:    "API_KEY_NOT_FOUND",
		Message: "API key not found",
	}
}

func NewValidationError(err error) *APIKeyError {
	return &APIKeyError{
		Code:    "API_KEY_VALIDATION",
		Message: err.Error(),
		Err:     err,
	}
}

func NewStorageUnavailable(err error) *APIKeyError {
	return &APIKeyError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "API key storage is unavailable",
		Err:     err,
	}
}

func IsKeyNotFound(err error) bool {
	var keyErr *APIKeyError
	return errors.As(err, &keyErr) && keyErr.Code == "API_KEY_NOT_FOUND"
}

// GetErrorResponse chuyển APIKeyError sang HTTP response
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var keyErr *APIKeyError
	if !errors.As(err, &keyErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch keyErr.Code {
	case "API_KEY_NOT_FOUND":
		return http.StatusNotFound, keyErr.Message, keyErr.Code
	case "API_KEY_VALIDATION":
		return http.StatusBadRequest, keyErr.Message, keyErr.Code
	case "STORAGE_UNAVAILABLE":
		return http.StatusInternalServerError, "API key storage is unavailable", keyErr.Code
	default:
		return http.StatusInternalServerError, "Internal server error", keyErr.Code
	}
}
