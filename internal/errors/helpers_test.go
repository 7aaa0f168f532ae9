package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("to", "to is required")
	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Equal(t, "to", err.Context["field"])
	assert.Contains(t, err.UserMessage, "to")
}

func TestNewNotConfiguredError(t *testing.T) {
	err := NewNotConfiguredError()
	assert.Equal(t, ErrCodeNotConfigured, err.Code)
	assert.Equal(t, "WhatsApp API not configured", err.UserMessage)
}

func TestNewUpstreamError(t *testing.T) {
	details := `{"error":{"code":190}}`
	err := NewUpstreamError("/v18.0/123/messages", 401, details, fmt.Errorf("status 401"))

	assert.Equal(t, ErrCodeUpstreamAPI, err.Code)
	assert.Equal(t, 401, err.Context["status_code"])
	assert.Equal(t, details, err.Context["details"])
}

func TestUpstreamDetails(t *testing.T) {
	err := NewUpstreamError("/messages", 500, "provider said no", fmt.Errorf("x"))
	assert.Equal(t, "provider said no", UpstreamDetails(err))

	assert.Empty(t, UpstreamDetails(fmt.Errorf("plain")))
	assert.Empty(t, UpstreamDetails(New(ErrCodeUpstreamAPI, "no details attached")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: NewValidationError("to", "missing"), want: http.StatusBadRequest},
		{name: "not configured", err: NewNotConfiguredError(), want: http.StatusBadRequest},
		{name: "invalid input", err: New(ErrCodeInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "upstream", err: NewUpstreamError("/m", 500, "", fmt.Errorf("x")), want: http.StatusInternalServerError},
		{name: "webhook parse", err: NewWebhookParseError(fmt.Errorf("x")), want: http.StatusInternalServerError},
		{name: "webhook verify", err: New(ErrCodeWebhookVerify, "bad token"), want: http.StatusForbidden},
		{name: "not found", err: New(ErrCodeNotFound, "missing"), want: http.StatusNotFound},
		{name: "timeout", err: New(ErrCodeTimeout, "slow"), want: http.StatusGatewayTimeout},
		{name: "plain error", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
