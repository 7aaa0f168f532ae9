package constants

// Default server configuration values
const (
	DefaultServerPort            = 3000
	DefaultServerReadTimeoutSec  = 15
	DefaultServerWriteTimeoutSec = 15
	DefaultServerIdleTimeoutSec  = 60
	DefaultGracefulShutdownSec   = 30
)

// Default Cloud API values
const (
	DefaultAPIBaseURL     = "https://graph.facebook.com"
	DefaultAPIVersion     = "v18.0"
	DefaultHTTPTimeoutSec = 30
)

// Media messages are stored with a placeholder body; only text bodies are
// relayed to the dashboard.
const MediaPlaceholder = "[Media message]"

// Webhook handshake mode accepted during subscription verification
const WebhookModeSubscribe = "subscribe"

// Validation limits
const (
	MinPhoneNumberLength = 7
	MaxPhoneNumberLength = 20
	MaxMessageLength     = 4096
)

const ServerErrorChannelSize = 1
