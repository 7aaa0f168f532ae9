package types

import "context"

// Sender is the narrow outbound-call interface the relay core depends on,
// so the ledger and reconciliation logic are testable without a network.
type Sender interface {
	SendText(ctx context.Context, creds Credentials, to, text string) (*SendMessageResponse, error)
}
