package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"warelay/internal/errors"
	"warelay/pkg/whatsapp/types"
)

// Client talks to the WhatsApp Cloud API messages endpoint. It is stateless
// with respect to credentials; callers pass them per request.
type Client struct {
	baseURL    string
	apiVersion string
	client     *http.Client
}

// NewClient creates a Cloud API client. The HTTP timeout bounds the whole
// outbound call; expiry surfaces as an upstream failure.
func NewClient(cfg types.ClientConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// SendText sends a text message and returns the provider response carrying
// the assigned message ID.
func (c *Client) SendText(ctx context.Context, creds types.Credentials, to, text string) (*types.SendMessageResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, creds.PhoneNumberID)

	payload := types.SendTextRequest{
		MessagingProduct: types.MessagingProduct,
		To:               to,
		Type:             "text",
		Text:             types.TextBody{Body: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError(endpoint, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamError(endpoint, resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Provider error bodies are passed through verbatim for diagnosis
		return nil, errors.NewUpstreamError(endpoint, resp.StatusCode, string(respBody),
			fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	var result types.SendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.NewUpstreamError(endpoint, resp.StatusCode, string(respBody),
			fmt.Errorf("failed to decode response: %w", err))
	}

	if result.MessageID() == "" {
		return nil, errors.NewUpstreamError(endpoint, resp.StatusCode, string(respBody),
			fmt.Errorf("response carried no message ID"))
	}

	return &result, nil
}
