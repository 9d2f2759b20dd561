package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{Method: "GET", Path: "/cards/1", StatusCode: 500, Message: "boom"},
			expected: "GET /cards/1: status 500: boom",
		},
		{
			name:     "without message",
			err:      &APIError{Method: "PUT", Path: "/statements/2", StatusCode: 403},
			expected: "PUT /statements/2: status 403",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	notFound := fmt.Errorf("load: %w", &APIError{Method: "GET", Path: "/x", StatusCode: http.StatusNotFound})
	serverErr := fmt.Errorf("load: %w", &APIError{Method: "GET", Path: "/x", StatusCode: http.StatusInternalServerError})

	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(serverErr, ErrNotFound))
}

func TestDecodeError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &DecodeError{Path: "/cards/1", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "/cards/1")
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "statement id", Value: "abc", Reason: "must be a positive integer"}
	assert.Equal(t, "invalid statement id 'abc': must be a positive integer", err.Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 502, StatusCode(fmt.Errorf("wrap: %w", &APIError{StatusCode: 502})))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
	assert.Equal(t, 0, StatusCode(nil))
}
