package types

import "time"

// MessagingProduct is the constant product discriminator the Cloud API
// expects in every request envelope.
const MessagingProduct = "whatsapp"

// ClientConfig configures a Cloud API client
type ClientConfig struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

// Credentials is the per-request credential pair. Credentials are passed per
// call because the dashboard can change them at runtime.
type Credentials struct {
	PhoneNumberID string
	AccessToken   string
}

// Configured reports whether both credential fields are present
func (c Credentials) Configured() bool {
	return c.PhoneNumberID != "" && c.AccessToken != ""
}

// SendTextRequest is the Cloud API text-message envelope
type SendTextRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}

type TextBody struct {
	Body string `json:"body"`
}

// SendMessageResponse is the Cloud API response to a successful send
type SendMessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// MessageID returns the provider-assigned ID of the sent message, or the
// empty string when the response carried none.
func (r *SendMessageResponse) MessageID() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

// ErrorResponse is the Graph API error envelope returned on failed calls
type ErrorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FbtraceID string `json:"fbtrace_id"`
	} `json:"error"`
}
