package service

import (
	"time"

	"warelay/internal/models"
)

// Ledger is the append-only per-contact message history. Sequences are
// keyed by phone number; insertion order is arrival order and records are
// never removed. The ledger is not safe for concurrent use on its own; the
// owning RelayService serializes access (see relay.go).
type Ledger struct {
	records map[string][]*models.MessageRecord
	now     func() time.Time
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		records: make(map[string][]*models.MessageRecord),
		now:     time.Now,
	}
}

// AppendSent records an outbound message. The provider message ID comes
// from the send call's response; the timestamp is local send time.
func (l *Ledger) AppendSent(number, text, providerMessageID string) *models.MessageRecord {
	record := &models.MessageRecord{
		Direction:         models.DirectionSent,
		Text:              text,
		Timestamp:         l.now().UnixMilli(),
		ProviderMessageID: providerMessageID,
		DeliveryStatus:    models.DeliveryStatusSent,
	}
	l.records[number] = append(l.records[number], record)
	return record
}

// AppendReceived records an inbound message. The provider supplies its
// timestamp in seconds; it is stored in milliseconds.
func (l *Ledger) AppendReceived(number, text string, providerTimestampSec int64, providerMessageID string) *models.MessageRecord {
	record := &models.MessageRecord{
		Direction:         models.DirectionReceived,
		Text:              text,
		Timestamp:         providerTimestampSec * 1000,
		ProviderMessageID: providerMessageID,
		DeliveryStatus:    models.DeliveryStatusReceived,
		IsNew:             true,
	}
	l.records[number] = append(l.records[number], record)
	return record
}

// FindByProviderID scans all contacts' sequences for a record with the
// given provider message ID. Status callbacks do not carry the contact
// number, so the scan is across the whole ledger.
func (l *Ledger) FindByProviderID(id string) *models.MessageRecord {
	if id == "" {
		return nil
	}
	for _, seq := range l.records {
		for _, record := range seq {
			if record.ProviderMessageID == id {
				return record
			}
		}
	}
	return nil
}

// UpdateStatus mutates the delivery status of the record with the given
// provider message ID. Unknown IDs are a no-op: the process may not have
// tracked every message the provider reports on.
func (l *Ledger) UpdateStatus(id string, status models.DeliveryStatus) bool {
	record := l.FindByProviderID(id)
	if record == nil {
		return false
	}
	record.DeliveryStatus = status
	return true
}

// ListFor returns the message sequence for a number, empty for unknown
// numbers. The returned slice is a copy of record values so callers never
// hold mutable references into the ledger.
func (l *Ledger) ListFor(number string) []models.MessageRecord {
	seq := l.records[number]
	out := make([]models.MessageRecord, len(seq))
	for i, record := range seq {
		out[i] = *record
	}
	return out
}

// Len returns the total number of records across all contacts
func (l *Ledger) Len() int {
	total := 0
	for _, seq := range l.records {
		total += len(seq)
	}
	return total
}
