// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "message only",
			err:      NewValidationError("start date is required"),
			expected: "start date is required",
		},
		{
			name:     "message with wrapped error",
			err:      NewInternalError("failed to store task", errors.New("kv timeout")),
			expected: "failed to store task: kv timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("kv timeout")
	err := NewInternalError("failed to store task", inner)
	assert.ErrorIs(t, err, inner)

	wrapped := fmt.Errorf("outer: %w", err)
	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{name: "validation", err: NewValidationError("bad input"), expected: ErrorTypeValidation},
		{name: "not found", err: NewNotFoundError("task not found"), expected: ErrorTypeNotFound},
		{name: "conflict", err: NewConflictError("revision mismatch"), expected: ErrorTypeConflict},
		{name: "internal", err: NewInternalError("boom"), expected: ErrorTypeInternal},
		{name: "unavailable", err: NewUnavailableError("store down"), expected: ErrorTypeUnavailable},
		{name: "plain error defaults to internal", err: errors.New("plain"), expected: ErrorTypeInternal},
		{name: "wrapped domain error", err: fmt.Errorf("outer: %w", NewNotFoundError("gone")), expected: ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorType(tt.err))
		})
	}
}
