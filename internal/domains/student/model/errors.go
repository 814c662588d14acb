package model

import (
	"errors"
	"fmt"
	"net/http"
)

// StudentError định nghĩa base error cho student domain
type StudentError struct {
	Code    string // Error code duy nhất (VD: "STUDENT_NOT_FOUND")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *StudentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *StudentError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewStudentNotFound(id int64) *StudentError {
	return &StudentError{
		Code:    "STUDENT_NOT_FOUND",
		Message: fmt.Sprintf("Student %d not found", id),
	}
}

func NewInvalidStudentID(raw string) *StudentError {
	return &StudentError{
		Code:    "INVALID_STUDENT_ID",
		Message: fmt.Sprintf("Invalid student id: %q", raw),
	}
}

func NewInvalidGenderCode(raw string) *StudentError {
	return &StudentError{
		Code:    "INVALID_GENDER_CODE",
		Message: fmt.Sprintf("Invalid gender code %q: expected 0 (%s) or 1 (%s)", raw, GenderFemale, GenderMale),
	}
}

func NewInvalidBirthMonth(raw string) *StudentError {
	return &StudentError{
		Code:    "INVALID_BIRTH_MONTH",
		Message: fmt.Sprintf("Invalid birth month %q: expected 1-12", raw),
	}
}

func NewValidationError(err error) *StudentError {
	return &StudentError{
		Code:    "STUDENT_VALIDATION",
		Message: err.Error(),
		Err:     err,
	}
}

func NewStorageUnavailable(err error) *StudentError {
	return &StudentError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "Student storage is unavailable",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsStudentNotFound(err error) bool {
	var stuErr *StudentError
	return errors.As(err, &stuErr) && stuErr.Code == "STUDENT_NOT_FOUND"
}

func IsStorageUnavailable(err error) bool {
	var stuErr *StudentError
	return errors.As(err, &stuErr) && stuErr.Code == "STORAGE_UNAVAILABLE"
}

func IsDomainError(err error) bool {
	var stuErr *StudentError
	return errors.As(err, &stuErr)
}

// GetErrorResponse chuyển StudentError sang HTTP response
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var stuErr *StudentError
	if !errors.As(err, &stuErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch stuErr.Code {
	case "STUDENT_NOT_FOUND":
		return http.StatusNotFound, stuErr.Message, stuErr.Code

	case "INVALID_STUDENT_ID", "INVALID_GENDER_CODE", "INVALID_BIRTH_MONTH", "STUDENT_VALIDATION":
		return http.StatusBadRequest, stuErr.Message, stuErr.Code

	case "STORAGE_UNAVAILABLE":
		// Internal detail stays in the log, not in the response.
		return http.StatusInternalServerError, "Student storage is unavailable", stuErr.Code

	default:
		return http.StatusInternalServerError, "Internal server error", stuErr.Code
	}
}
