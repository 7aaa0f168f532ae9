package validation

import (
	"fmt"
	"strings"
	"unicode"

	"warelay/internal/constants"
	"warelay/internal/errors"
)

// ValidatePhoneNumber validates phone number format and length. Numbers are
// the Cloud API wa_id form: digits with an optional leading plus.
func ValidatePhoneNumber(phone string) error {
	if phone == "" {
		return invalidInput("phone number cannot be empty")
	}

	cleaned := strings.TrimPrefix(phone, "+")

	if len(cleaned) < constants.MinPhoneNumberLength {
		return invalidInput(fmt.Sprintf("phone number must be at least %d digits", constants.MinPhoneNumberLength))
	}

	if len(cleaned) > constants.MaxPhoneNumberLength {
		return invalidInput(fmt.Sprintf("phone number too long (max %d digits)", constants.MaxPhoneNumberLength))
	}

	for _, char := range cleaned {
		if !unicode.IsDigit(char) {
			return invalidInput("phone number must contain only digits")
		}
	}

	return nil
}

// ValidateMessageText validates an outbound message body
func ValidateMessageText(text string) error {
	if text == "" {
		return invalidInput("message cannot be empty")
	}

	if len(text) > constants.MaxMessageLength {
		return invalidInput(fmt.Sprintf("message too long (max %d characters)", constants.MaxMessageLength))
	}

	return nil
}

// ValidateDisplayName validates a contact rename target
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidInput("name cannot be empty")
	}

	if len(name) > 256 {
		return invalidInput("name too long (max 256 characters)")
	}

	for _, char := range name {
		if char == '\x00' || char == '\n' || char == '\r' {
			return invalidInput("name contains invalid characters")
		}
	}

	return nil
}

// invalidInput builds a client-facing validation failure; the message is
// safe to surface as-is.
func invalidInput(message string) *errors.AppError {
	return errors.New(errors.ErrCodeInvalidInput, message).WithUserMessage(message)
}
