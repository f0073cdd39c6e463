package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrDeviceNotFound      = errors.New("device not found")
	ErrSerialRequired      = errors.New("serial parameter is required")
	ErrCriteriaKeyExists   = errors.New("criteria key already exists")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeDeviceNotFound    = "DEVICE_NOT_FOUND"
	ErrCodeSerialRequired    = "SERIAL_REQUIRED"
	ErrCodeCriteriaKeyExists = "CRITERIA_KEY_EXISTS"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeCacheError        = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapDeviceNotFound(id int64) *BusinessError {
	return NewBusinessError(
		ErrCodeDeviceNotFound,
		fmt.Sprintf("Device with ID %d not found", id),
		ErrDeviceNotFound,
	)
}

func WrapDeviceNotFoundBySerial(serial string) *BusinessError {
	return NewBusinessError(
		ErrCodeDeviceNotFound,
		fmt.Sprintf("Device with serial %q not found", serial),
		ErrDeviceNotFound,
	)
}

func WrapCriteriaKeyExists(key string) *BusinessError {
	return NewBusinessError(
		ErrCodeCriteriaKeyExists,
		fmt.Sprintf("Criteria key %q is already in use", key),
		ErrCriteriaKeyExists,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
