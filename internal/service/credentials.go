package service

import (
	"sync"

	"warelay/internal/errors"
	"warelay/internal/privacy"
	"warelay/pkg/whatsapp/types"
)

// CredentialStore holds the provider credentials and the webhook verify
// token. Credentials arrive from the dashboard at runtime and are read on
// every outbound call; state lives for the process lifetime only.
type CredentialStore struct {
	mu          sync.RWMutex
	creds       types.Credentials
	verifyToken string
}

// ConfigStatus is the masked view of the credential state returned to the
// dashboard. The access token is never exposed in any form.
type ConfigStatus struct {
	Configured    bool    `json:"configured"`
	PhoneNumberID *string `json:"phoneNumberId"`
}

// NewCredentialStore creates a store with the webhook verify token and
// optional pre-seeded credentials.
func NewCredentialStore(verifyToken string, seed types.Credentials) *CredentialStore {
	return &CredentialStore{
		creds:       seed,
		verifyToken: verifyToken,
	}
}

// SetCredentials replaces the credential pair. Both fields are required.
func (s *CredentialStore) SetCredentials(phoneNumberID, accessToken string) error {
	if phoneNumberID == "" {
		return errors.NewValidationError("phoneNumberId", "phoneNumberId is required")
	}
	if accessToken == "" {
		return errors.NewValidationError("accessToken", "accessToken is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = types.Credentials{
		PhoneNumberID: phoneNumberID,
		AccessToken:   accessToken,
	}
	return nil
}

// Snapshot returns a copy of the current credentials
func (s *CredentialStore) Snapshot() types.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Status returns whether the relay is configured plus the masked phone
// number ID, nil when no ID has been set.
func (s *CredentialStore) Status() ConfigStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := ConfigStatus{Configured: s.creds.Configured()}
	if s.creds.PhoneNumberID != "" {
		masked := privacy.MaskPhoneNumberID(s.creds.PhoneNumberID)
		status.PhoneNumberID = &masked
	}
	return status
}

// VerifyToken checks a webhook subscription handshake token
func (s *CredentialStore) VerifyToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verifyToken != "" && token == s.verifyToken
}

// SetVerifyToken replaces the verify token, used on config reload
func (s *CredentialStore) SetVerifyToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifyToken = token
}
