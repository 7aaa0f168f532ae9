package service

import (
	"context"
	"sync"

	"warelay/internal/errors"
	"warelay/internal/metrics"
	"warelay/internal/models"
	"warelay/internal/privacy"
	"warelay/internal/validation"
	"warelay/pkg/whatsapp/types"

	"github.com/sirupsen/logrus"
)

// RelayService owns the ledger, directory and credential store and is the
// only mutation path into them. One mutex guards ledger and directory
// together so the two-step new-message reconciliation is never interleaved
// with a send or a read.
type RelayService struct {
	mu         sync.Mutex
	ledger     *Ledger
	directory  *Directory
	reconciler *Reconciler
	creds      *CredentialStore
	sender     types.Sender
	logger     *logrus.Logger
}

// NewRelayService wires the relay core. The sender is the narrow outbound
// interface; tests substitute a mock.
func NewRelayService(creds *CredentialStore, sender types.Sender, logger *logrus.Logger) *RelayService {
	ledger := NewLedger()
	directory := NewDirectory()
	return &RelayService{
		ledger:     ledger,
		directory:  directory,
		reconciler: NewReconciler(ledger, directory, logger),
		creds:      creds,
		sender:     sender,
		logger:     logger,
	}
}

// SendMessage validates the request, forwards it to the provider and, on
// success, records it in the ledger and directory. Returns the provider
// message ID.
func (s *RelayService) SendMessage(ctx context.Context, to, text string) (string, error) {
	creds := s.creds.Snapshot()
	if !creds.Configured() {
		return "", errors.NewNotConfiguredError()
	}

	if to == "" {
		return "", errors.NewValidationError("to", "to is required")
	}
	if text == "" {
		return "", errors.NewValidationError("message", "message is required")
	}
	if err := validation.ValidatePhoneNumber(to); err != nil {
		return "", err
	}
	if err := validation.ValidateMessageText(text); err != nil {
		return "", err
	}

	s.logger.WithField("to", privacy.MaskPhoneNumber(to)).Info("Sending message")

	// The outbound call happens outside the lock; only the bookkeeping
	// after a confirmed send needs it.
	resp, err := s.sender.SendText(ctx, creds, to, text)
	if err != nil {
		metrics.IncrementCounter("messages_send_failed_total", nil, "Failed outbound sends")
		return "", err
	}

	s.mu.Lock()
	record := s.ledger.AppendSent(to, text, resp.MessageID())
	s.directory.UpsertFromSend(to, text, record.Timestamp)
	s.mu.Unlock()

	metrics.IncrementCounter("messages_sent_total", nil, "Outbound messages sent")

	s.logger.WithFields(logrus.Fields{
		"to":         privacy.MaskPhoneNumber(to),
		"message_id": privacy.MaskMessageID(resp.MessageID()),
	}).Info("Message sent")

	return resp.MessageID(), nil
}

// ProcessWebhook applies one webhook payload through the reconciler
func (s *RelayService) ProcessWebhook(payload *models.WebhookPayload) ReconcileResult {
	s.mu.Lock()
	result := s.reconciler.Apply(payload)
	s.mu.Unlock()

	metrics.IncrementCounter("webhook_payloads_total", nil, "Webhook payloads processed")
	if result.NewMessages > 0 {
		metrics.AddToCounter("webhook_messages_total", float64(result.NewMessages), nil, "Inbound messages ingested")
	}
	if result.StatusUpdates > 0 {
		metrics.AddToCounter("webhook_status_updates_total", float64(result.StatusUpdates), nil, "Delivery status updates applied")
	}
	if result.Skipped > 0 {
		metrics.AddToCounter("webhook_events_skipped_total", float64(result.Skipped), nil, "Webhook sub-events skipped as malformed")
		s.logger.WithField("skipped", result.Skipped).Warn("Skipped malformed webhook events")
	}

	return result
}

// Messages returns the message history for a number, empty for unknown
// numbers.
func (s *RelayService) Messages(number string) []models.MessageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ListFor(number)
}

// Contacts returns all contact summaries, most recently active first
func (s *RelayService) Contacts() []models.ContactSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.List()
}

// MarkRead resets the unread counter for a number
func (s *RelayService) MarkRead(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directory.MarkRead(number)
}

// RenameContact sets a contact's display name, registering the number as a
// contact with no history when it is unknown.
func (s *RelayService) RenameContact(number, name string) error {
	if err := validation.ValidateDisplayName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.directory.Rename(number, name)
	return nil
}

// SetCredentials updates the provider credentials
func (s *RelayService) SetCredentials(phoneNumberID, accessToken string) error {
	return s.creds.SetCredentials(phoneNumberID, accessToken)
}

// ConfigStatus returns the masked credential status
func (s *RelayService) ConfigStatus() ConfigStatus {
	return s.creds.Status()
}

// VerifyWebhookToken checks the subscription handshake token
func (s *RelayService) VerifyWebhookToken(token string) bool {
	return s.creds.VerifyToken(token)
}
