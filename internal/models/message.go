package models

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusRead      DeliveryStatus = "read"
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusReceived  DeliveryStatus = "received"
)

// ParseDeliveryStatus maps a provider status string onto a DeliveryStatus.
// Unknown values are returned as-is so callers can decide whether to keep them.
func ParseDeliveryStatus(s string) (DeliveryStatus, bool) {
	switch DeliveryStatus(s) {
	case DeliveryStatusSent, DeliveryStatusDelivered, DeliveryStatusRead, DeliveryStatusFailed:
		return DeliveryStatus(s), true
	}
	return DeliveryStatus(s), false
}

// MessageRecord is one entry in a contact's message history. Records are
// append-only; only DeliveryStatus changes after creation, and only through
// status reconciliation.
type MessageRecord struct {
	Direction         Direction      `json:"direction"`
	Text              string         `json:"text"`
	Timestamp         int64          `json:"timestamp"`
	ProviderMessageID string         `json:"messageId"`
	DeliveryStatus    DeliveryStatus `json:"status"`
	IsNew             bool           `json:"isNew,omitempty"`
}
