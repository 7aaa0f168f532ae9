package models

// ContactSummary is the per-number summary shown in the dashboard contact
// list. It is derived from ledger activity and never deleted.
type ContactSummary struct {
	Number          string `json:"number"`
	DisplayName     string `json:"name"`
	LastMessageText string `json:"lastMessage"`
	LastMessageTime int64  `json:"lastMessageTime"`
	UnreadCount     int    `json:"unreadCount"`
}

// GetDisplayName returns the display name, falling back to the number.
func (c *ContactSummary) GetDisplayName() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Number
}
