package service

import (
	"strconv"

	"warelay/internal/constants"
	"warelay/internal/models"
	"warelay/internal/privacy"

	"github.com/sirupsen/logrus"
)

// Reconciler applies one inbound webhook payload to the ledger and
// directory. A payload batches events across a nested entry/changes
// structure; each event is handled independently and a malformed event is
// skipped without aborting the rest of the payload.
type Reconciler struct {
	ledger    *Ledger
	directory *Directory
	logger    *logrus.Logger
}

// ReconcileResult summarizes what one payload changed. Skipped counts the
// sub-events dropped for missing or unusable fields; it feeds the
// diagnostic counter without changing external behavior.
type ReconcileResult struct {
	NewMessages   int
	StatusUpdates int
	Skipped       int
}

// NewReconciler creates a reconciler over the given ledger and directory
func NewReconciler(ledger *Ledger, directory *Directory, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		ledger:    ledger,
		directory: directory,
		logger:    logger,
	}
}

// Apply walks every change in the payload and applies its message and
// status events. The caller must hold the relay lock: a new-message event
// is a ledger append plus a directory upsert and the pair must never be
// observed torn.
func (r *Reconciler) Apply(payload *models.WebhookPayload) ReconcileResult {
	var result ReconcileResult

	if payload == nil || payload.Object != models.WebhookObjectBusinessAccount {
		return result
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != models.WebhookFieldMessages {
				continue
			}
			r.applyValue(&change.Value, &result)
		}
	}

	return result
}

func (r *Reconciler) applyValue(value *models.WebhookValue, result *ReconcileResult) {
	for i := range value.Statuses {
		if r.applyStatus(&value.Statuses[i]) {
			result.StatusUpdates++
		} else {
			result.Skipped++
		}
	}

	for i := range value.Messages {
		if r.applyMessage(&value.Messages[i], value) {
			result.NewMessages++
		} else {
			result.Skipped++
		}
	}
}

// applyStatus handles one delivery-status event. Unknown message IDs are
// not an error: the provider reports on messages this process never sent.
func (r *Reconciler) applyStatus(status *models.WebhookStatus) bool {
	if status.ID == "" || status.Status == "" {
		return false
	}

	parsed, ok := models.ParseDeliveryStatus(status.Status)
	if !ok {
		r.logger.WithFields(logrus.Fields{
			"message_id": privacy.MaskMessageID(status.ID),
			"status":     status.Status,
		}).Debug("Ignoring unrecognized delivery status")
		return false
	}

	updated := r.ledger.UpdateStatus(status.ID, parsed)
	r.logger.WithFields(logrus.Fields{
		"message_id": privacy.MaskMessageID(status.ID),
		"status":     parsed,
		"matched":    updated,
	}).Debug("Processed status event")

	return true
}

// applyMessage handles one inbound message event: a ledger append and a
// directory upsert as one unit.
func (r *Reconciler) applyMessage(msg *models.WebhookMessage, value *models.WebhookValue) bool {
	if msg.From == "" || msg.ID == "" {
		return false
	}

	timestampSec, err := strconv.ParseInt(msg.Timestamp, 10, 64)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"message_id": privacy.MaskMessageID(msg.ID),
			"timestamp":  msg.Timestamp,
		}).Debug("Skipping message event with unusable timestamp")
		return false
	}

	text := constants.MediaPlaceholder
	if msg.Text != nil && msg.Text.Body != "" {
		text = msg.Text.Body
	}

	record := r.ledger.AppendReceived(msg.From, text, timestampSec, msg.ID)
	r.directory.UpsertFromReceive(msg.From, text, record.Timestamp, value.ProfileNameFor(msg.From))

	r.logger.WithFields(logrus.Fields{
		"from":       privacy.MaskPhoneNumber(msg.From),
		"message_id": privacy.MaskMessageID(msg.ID),
		"type":       msg.Type,
	}).Info("Received message")

	return true
}
