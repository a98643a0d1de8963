// Package errors defines the error taxonomy for the parallel loop engine.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the parallel package.
const (
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeInvalidRange = "INVALID_RANGE" // begin >= end
	CodeInvalidStep  = "INVALID_STEP"  // step <= 0
	CodeInvalidChunk = "INVALID_CHUNK" // explicit chunk <= 0
	CodeBodyFailure  = "BODY_FAILURE"  // compute/combine failed
)

// AppError represents an engine error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances for the caller-argument predicates in spec §7.1.
var (
	ErrInvalidRange = New(CodeInvalidRange, "begin must be < end")
	ErrInvalidStep  = New(CodeInvalidStep, "step must be > 0")
	ErrInvalidChunk = New(CodeInvalidChunk, "chunk must be > 0")
	ErrBodyFailure  = New(CodeBodyFailure, "loop body failed")
)

// IsInvalidRange reports whether err is (or wraps) a begin<end violation.
func IsInvalidRange(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}

// IsInvalidStep reports whether err is (or wraps) a step>0 violation.
func IsInvalidStep(err error) bool {
	return errors.Is(err, ErrInvalidStep)
}

// IsInvalidChunk reports whether err is (or wraps) a chunk>0 violation.
func IsInvalidChunk(err error) bool {
	return errors.Is(err, ErrInvalidChunk)
}

// IsBodyFailure reports whether err originated from a compute/combine call
// rather than from argument validation.
func IsBodyFailure(err error) bool {
	return errors.Is(err, ErrBodyFailure)
}

// GetErrorCode extracts the error code from an error, or CodeUnknown.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
