package errors

import (
	"fmt"
	"net/http"
)

// Common error creators for frequent use cases

// NewValidationError creates a validation error with field context
func NewValidationError(field, message string) *AppError {
	return New(ErrCodeValidationFailed, message).
		WithContext("field", field).
		WithUserMessage(fmt.Sprintf("Missing or invalid %s", field))
}

// NewNotConfiguredError signals that provider credentials have not been set
func NewNotConfiguredError() *AppError {
	return New(ErrCodeNotConfigured, "provider credentials not configured").
		WithUserMessage("WhatsApp API not configured")
}

// NewUpstreamError creates an error for a failed provider API call. The
// provider's response body is carried verbatim in the details context so
// operators can diagnose from the dashboard.
func NewUpstreamError(endpoint string, statusCode int, details string, err error) *AppError {
	return Wrap(err, ErrCodeUpstreamAPI, "provider API call failed").
		WithContext("endpoint", endpoint).
		WithContext("status_code", statusCode).
		WithContext("details", details).
		WithUserMessage("Failed to send message")
}

// NewWebhookParseError creates an error for an unparseable webhook payload
func NewWebhookParseError(err error) *AppError {
	return Wrap(err, ErrCodeWebhookParse, "webhook payload parse failed").
		WithUserMessage("Malformed webhook payload")
}

// NewConfigError creates a configuration error
func NewConfigError(key, message string) *AppError {
	return New(ErrCodeInvalidConfig, message).
		WithContext("config_key", key).
		WithUserMessage("Configuration error")
}

// UpstreamDetails extracts the verbatim provider details from an upstream
// error, or the empty string when none are attached.
func UpstreamDetails(err error) string {
	if appErr, ok := err.(*AppError); ok && appErr.Context != nil {
		if d, ok := appErr.Context["details"].(string); ok {
			return d
		}
	}
	return ""
}

// HTTPStatus maps an error to the HTTP status code the API surface returns.
// Validation and not-configured failures are client errors; upstream and
// parse failures surface as server errors.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeNotConfigured:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeWebhookVerify:
		return http.StatusForbidden
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
