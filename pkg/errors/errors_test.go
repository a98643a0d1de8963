package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			err:      New(CodeInvalidRange, "begin must be < end"),
			expected: "[INVALID_RANGE] begin must be < end",
		},
		{
			name:     "with underlying error",
			err:      Wrap(CodeBodyFailure, "compute failed", errors.New("index out of range")),
			expected: "[BODY_FAILURE] compute failed: index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Wrap(CodeBodyFailure, "combine failed", underlying)

	unwrapped := err.Unwrap()
	assert.Equal(t, underlying, unwrapped)
}

func TestAppError_Is(t *testing.T) {
	err1 := New(CodeInvalidStep, "error 1")
	err2 := New(CodeInvalidStep, "error 2")
	err3 := New(CodeInvalidChunk, "error 3")

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestIsInvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "invalid range", err: ErrInvalidRange, expected: true},
		{name: "wrapped invalid range", err: Wrap(CodeInvalidRange, "begin>=end", errors.New("5>=5")), expected: true},
		{name: "other error", err: ErrInvalidStep, expected: false},
		{name: "nil error", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInvalidRange(tt.err))
		})
	}
}

func TestIsInvalidStep(t *testing.T) {
	assert.True(t, IsInvalidStep(ErrInvalidStep))
	assert.False(t, IsInvalidStep(ErrInvalidRange))
}

func TestIsInvalidChunk(t *testing.T) {
	assert.True(t, IsInvalidChunk(ErrInvalidChunk))
	assert.False(t, IsInvalidChunk(ErrInvalidRange))
}

func TestIsBodyFailure(t *testing.T) {
	assert.True(t, IsBodyFailure(ErrBodyFailure))
	assert.False(t, IsBodyFailure(ErrInvalidRange))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "app error",
			err:      New(CodeInvalidRange, "begin>=end"),
			expected: CodeInvalidRange,
		},
		{
			name:     "wrapped app error",
			err:      Wrap(CodeBodyFailure, "compute", errors.New("inner")),
			expected: CodeBodyFailure,
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: CodeUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "app error",
			err:      New(CodeInvalidChunk, "chunk must be > 0"),
			expected: "chunk must be > 0",
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: "standard error",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorMessage(tt.err))
		})
	}
}
