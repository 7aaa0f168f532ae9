package models

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	WhatsApp WhatsAppConfig `json:"whatsapp"`
	Webhook  WebhookConfig  `json:"webhook"`
	Tracing  TracingConfig  `json:"tracing"`
	LogLevel string         `json:"log_level"`
}

// ServerConfig holds HTTP server related configurations
type ServerConfig struct {
	Port            int    `json:"port"`
	StaticDir       string `json:"static_dir"`
	ReadTimeoutSec  int    `json:"readTimeoutSec"`
	WriteTimeoutSec int    `json:"writeTimeoutSec"`
	IdleTimeoutSec  int    `json:"idleTimeoutSec"`
}

// WhatsAppConfig holds Cloud API related configurations. PhoneNumberID and
// AccessToken may be pre-seeded here; otherwise they arrive at runtime via
// the config endpoint.
type WhatsAppConfig struct {
	APIBaseURL    string `json:"api_base_url"`
	APIVersion    string `json:"api_version"`
	TimeoutSec    int    `json:"timeoutSec"`
	PhoneNumberID string `json:"phone_number_id"`
	AccessToken   string `json:"access_token"`
}

// WebhookConfig holds the webhook subscription handshake settings
type WebhookConfig struct {
	VerifyToken string `json:"verify_token"`
}

// TracingConfig holds OpenTelemetry settings
type TracingConfig struct {
	Enabled        bool    `json:"enabled"`
	ServiceName    string  `json:"service_name"`
	ServiceVersion string  `json:"service_version"`
	Environment    string  `json:"environment"`
	OTLPEndpoint   string  `json:"otlp_endpoint"`
	SampleRate     float64 `json:"sample_rate"`
	UseStdout      bool    `json:"use_stdout"`
}

type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string {
	return e.Message
}
