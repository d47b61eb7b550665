package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, StatusInternalServerError},
		{"validation", NewInvalidRequestError("Invalid email address", nil), StatusBadRequest},
		{"rate limit", NewRateLimitExceededError("slow down", nil), StatusTooManyRequests},
		{"malformed body", NewMalformedRequestBodyError("bad json", nil), StatusInternalServerError},
		{"misconfigured", NewServiceMisconfiguredError("not configured", nil), StatusInternalServerError},
		{"dispatch", NewDispatchFailedError("smtp down", nil), StatusInternalServerError},
		{"not found", NewNotFoundError("missing", nil), StatusNotFound},
		{"plain error", stderrors.New("boom"), StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", NewInvalidRequestError("inner", nil)), StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(tc.err))
		})
	}
}

func TestGetHumanReadableMessage_DoesNotLeakCause(t *testing.T) {
	cause := stderrors.New("535 5.7.8 Username and Password not accepted")
	err := NewDispatchFailedError("Failed to send message", cause)

	assert.Equal(t, "Failed to send message", GetHumanReadableMessage(err))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(cause))
	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewServiceMisconfiguredError("x", nil))

	assert.True(t, IsType(err, ErrorTypeServiceMisconfigured))
	assert.False(t, IsType(err, ErrorTypeDispatchFailed))
	assert.False(t, IsType(nil, ErrorTypeDispatchFailed))
}
