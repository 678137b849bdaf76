package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents internal error codes
type ErrorCode int

const (
	// Success
	ErrCodeOK ErrorCode = 0

	// Caller errors
	ErrCodeInvalidConfig ErrorCode = 1000

	// Process errors
	ErrCodeInternal    ErrorCode = 2000
	ErrCodeUnavailable ErrorCode = 2001
)

// String returns a short name for the code, used as a log field
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidConfig:
		return "invalid_config"
	case ErrCodeUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// EnergyError represents a structured error with code and context
type EnergyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *EnergyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *EnergyError) Unwrap() error {
	return e.Cause
}

// NewEnergyError creates a new EnergyError
func NewEnergyError(code ErrorCode, message string, cause error) *EnergyError {
	return &EnergyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Cause:   cause,
	}
}

// WithDetail adds a detail to the error
func (e *EnergyError) WithDetail(key string, value interface{}) *EnergyError {
	e.Details[key] = value
	return e
}

func InvalidConfig(field, reason string) *EnergyError {
	return NewEnergyError(ErrCodeInvalidConfig, fmt.Sprintf("%s %s", field, reason), nil).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

func InternalError(message string, cause error) *EnergyError {
	return NewEnergyError(ErrCodeInternal, message, cause)
}

func Unavailable(message string, cause error) *EnergyError {
	return NewEnergyError(ErrCodeUnavailable, message, cause)
}

// IsEnergyError reports whether err, or anything it wraps, is an EnergyError
func IsEnergyError(err error) bool {
	var ee *EnergyError
	return stderrors.As(err, &ee)
}

// GetCode extracts the error code from an error chain
func GetCode(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var ee *EnergyError
	if stderrors.As(err, &ee) {
		return ee.Code
	}
	return ErrCodeInternal
}
