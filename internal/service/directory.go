package service

import (
	"sort"

	"warelay/internal/models"
)

// Directory holds one ContactSummary per phone number, derived from ledger
// activity. Like the Ledger it is unsynchronized; the owning RelayService
// guards both behind one mutex.
type Directory struct {
	contacts map[string]*models.ContactSummary
	order    map[string]int // creation order, tie-break for List
	nextSeq  int
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{
		contacts: make(map[string]*models.ContactSummary),
		order:    make(map[string]int),
	}
}

// UpsertFromSend records outbound activity for a number. Creates the
// summary with the number as display name when absent; never touches the
// unread counter.
func (d *Directory) UpsertFromSend(number, text string, timestamp int64) *models.ContactSummary {
	contact, ok := d.contacts[number]
	if !ok {
		contact = d.create(number, number)
	}
	contact.LastMessageText = text
	contact.LastMessageTime = timestamp
	return contact
}

// UpsertFromReceive records inbound activity. The profile name is applied
// only at creation time; later messages never overwrite an existing display
// name. Each inbound message increments the unread counter.
func (d *Directory) UpsertFromReceive(number, text string, timestamp int64, profileName string) *models.ContactSummary {
	contact, ok := d.contacts[number]
	if !ok {
		name := profileName
		if name == "" {
			name = number
		}
		contact = d.create(number, name)
	}
	contact.LastMessageText = text
	contact.LastMessageTime = timestamp
	contact.UnreadCount++
	return contact
}

// MarkRead resets the unread counter; no-op for unknown numbers
func (d *Directory) MarkRead(number string) {
	if contact, ok := d.contacts[number]; ok {
		contact.UnreadCount = 0
	}
}

// Rename sets a contact's display name. Renaming an unknown number
// registers it as a contact with no message history.
func (d *Directory) Rename(number, name string) *models.ContactSummary {
	contact, ok := d.contacts[number]
	if !ok {
		return d.create(number, name)
	}
	contact.DisplayName = name
	return contact
}

// Get returns the summary for a number, nil when unknown
func (d *Directory) Get(number string) *models.ContactSummary {
	return d.contacts[number]
}

// List returns all summaries sorted by last activity, newest first. Ties
// keep creation order.
func (d *Directory) List() []models.ContactSummary {
	out := make([]models.ContactSummary, 0, len(d.contacts))
	for _, contact := range d.contacts {
		out = append(out, *contact)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastMessageTime != out[j].LastMessageTime {
			return out[i].LastMessageTime > out[j].LastMessageTime
		}
		return d.order[out[i].Number] < d.order[out[j].Number]
	})
	return out
}

func (d *Directory) create(number, displayName string) *models.ContactSummary {
	contact := &models.ContactSummary{
		Number:      number,
		DisplayName: displayName,
	}
	d.contacts[number] = contact
	d.order[number] = d.nextSeq
	d.nextSeq++
	return contact
}
