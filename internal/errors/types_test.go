package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeValidationFailed, "field missing")
	assert.Equal(t, "VALIDATION_FAILED: field missing", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), ErrCodeUpstreamAPI, "call failed")
	assert.Equal(t, "UPSTREAM_API: call failed: boom", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, ErrCodeUpstreamAPI, "call failed")
	assert.True(t, stderrors.Is(err, cause))
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input").
		WithContext("field", "to").
		WithContext("length", 3)

	require.NotNil(t, err.Context)
	assert.Equal(t, "to", err.Context["field"])
	assert.Equal(t, 3, err.Context["length"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeValidationFailed, GetCode(New(ErrCodeValidationFailed, "x")))
	assert.Equal(t, ErrCodeInternalError, GetCode(fmt.Errorf("plain error")))
}

func TestGetUserMessage(t *testing.T) {
	err := New(ErrCodeNotConfigured, "creds missing").WithUserMessage("WhatsApp API not configured")
	assert.Equal(t, "WhatsApp API not configured", GetUserMessage(err))

	assert.Equal(t, "An internal error occurred", GetUserMessage(fmt.Errorf("plain")))
	assert.Equal(t, "An internal error occurred", GetUserMessage(New(ErrCodeInternalError, "no user message")))
}
