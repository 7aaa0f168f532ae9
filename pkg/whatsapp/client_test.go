package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warelay/internal/errors"
	"warelay/pkg/whatsapp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() types.Credentials {
	return types.Credentials{
		PhoneNumberID: "109876543210987",
		AccessToken:   "test-token",
	}
}

func TestSendText(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody types.SendTextRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"messaging_product": "whatsapp",
			"contacts": [{"input": "15551234567", "wa_id": "15551234567"}],
			"messages": [{"id": "wamid.out.1"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{
		BaseURL:    server.URL,
		APIVersion: "v18.0",
		Timeout:    5 * time.Second,
	})

	resp, err := client.SendText(context.Background(), testCreds(), "15551234567", "hi")
	require.NoError(t, err)
	assert.Equal(t, "wamid.out.1", resp.MessageID())

	assert.Equal(t, "/v18.0/109876543210987/messages", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "whatsapp", gotBody.MessagingProduct)
	assert.Equal(t, "15551234567", gotBody.To)
	assert.Equal(t, "text", gotBody.Type)
	assert.Equal(t, "hi", gotBody.Text.Body)
}

func TestSendTextProviderError(t *testing.T) {
	providerBody := `{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(providerBody))
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{BaseURL: server.URL, APIVersion: "v18.0", Timeout: 5 * time.Second})

	_, err := client.SendText(context.Background(), testCreds(), "15551234567", "hi")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstreamAPI, errors.GetCode(err))
	assert.Equal(t, providerBody, errors.UpstreamDetails(err), "provider body passes through verbatim")
}

func TestSendTextNoMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"messaging_product": "whatsapp", "messages": []}`))
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{BaseURL: server.URL, APIVersion: "v18.0", Timeout: 5 * time.Second})

	_, err := client.SendText(context.Background(), testCreds(), "15551234567", "hi")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstreamAPI, errors.GetCode(err))
}

func TestSendTextMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{BaseURL: server.URL, APIVersion: "v18.0", Timeout: 5 * time.Second})

	_, err := client.SendText(context.Background(), testCreds(), "15551234567", "hi")
	require.Error(t, err)
}

func TestSendTextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{BaseURL: server.URL, APIVersion: "v18.0", Timeout: 50 * time.Millisecond})

	_, err := client.SendText(context.Background(), testCreds(), "15551234567", "hi")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstreamAPI, errors.GetCode(err), "timeouts surface as upstream failures")
}

func TestSendTextContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(types.ClientConfig{BaseURL: server.URL, APIVersion: "v18.0", Timeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SendText(ctx, testCreds(), "15551234567", "hi")
	require.Error(t, err)
}
