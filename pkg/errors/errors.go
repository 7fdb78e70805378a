package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeFetch represents failures of the external profile lookup
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeSchema represents lookup responses that do not match the expected shape
	ErrorTypeSchema ErrorType = "schema"
	// ErrorTypeRecorder represents memory store write failures
	ErrorTypeRecorder ErrorType = "recorder"
	// ErrorTypeTool represents tool dispatch errors
	ErrorTypeTool ErrorType = "tool"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Fetch Errors

// FetchError is returned when the external profile lookup fails
// (network, auth, non-2xx status).
type FetchError struct {
	*BaseError
	Login string
}

func NewFetchError(login, message string, err error) *FetchError {
	return &FetchError{
		BaseError: NewBaseError(ErrorTypeFetch, message, err),
		Login:     login,
	}
}

// SchemaError is returned when the lookup succeeded but the payload does not
// conform to the expected profile shape.
type SchemaError struct {
	*BaseError
	Field string
}

func NewSchemaError(field, message string, err error) *SchemaError {
	return &SchemaError{
		BaseError: NewBaseError(ErrorTypeSchema, message, err),
		Field:     field,
	}
}

// Recorder Errors

// RecorderError is returned when the memory store write fails. It is always
// recovered by the pipeline and never reaches the invoking host.
type RecorderError struct {
	*BaseError
}

func NewRecorderError(message string, err error) *RecorderError {
	return &RecorderError{
		BaseError: NewBaseError(ErrorTypeRecorder, message, err),
	}
}

// IsFetchError reports whether err is (or wraps) a FetchError
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsSchemaError reports whether err is (or wraps) a SchemaError
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
