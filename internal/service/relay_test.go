package service

import (
	"context"
	"testing"

	"warelay/internal/errors"
	"warelay/internal/models"
	"warelay/pkg/whatsapp/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	lastTo    string
	lastText  string
	lastCreds types.Credentials
	messageID string
	err       error
	calls     int
}

func (m *mockSender) SendText(ctx context.Context, creds types.Credentials, to, text string) (*types.SendMessageResponse, error) {
	m.calls++
	m.lastCreds = creds
	m.lastTo = to
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	resp := &types.SendMessageResponse{}
	resp.Messages = append(resp.Messages, struct {
		ID string `json:"id"`
	}{ID: m.messageID})
	return resp, nil
}

func newTestRelay(t *testing.T, sender *mockSender) *RelayService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	creds := NewCredentialStore("verify-token", types.Credentials{})
	return NewRelayService(creds, sender, logger)
}

func configureRelay(t *testing.T, relay *RelayService) {
	t.Helper()
	require.NoError(t, relay.SetCredentials("109876543210987", "access-token"))
}

func TestSendMessage(t *testing.T) {
	sender := &mockSender{messageID: "wamid.out.1"}
	relay := newTestRelay(t, sender)
	configureRelay(t, relay)

	messageID, err := relay.SendMessage(context.Background(), "15551234567", "hi")
	require.NoError(t, err)
	assert.Equal(t, "wamid.out.1", messageID)
	assert.Equal(t, "15551234567", sender.lastTo)
	assert.Equal(t, "hi", sender.lastText)
	assert.Equal(t, "109876543210987", sender.lastCreds.PhoneNumberID)

	messages := relay.Messages("15551234567")
	require.Len(t, messages, 1)
	assert.Equal(t, models.DirectionSent, messages[0].Direction)
	assert.Equal(t, "hi", messages[0].Text)
	assert.Equal(t, models.DeliveryStatusSent, messages[0].DeliveryStatus)
	assert.Equal(t, "wamid.out.1", messages[0].ProviderMessageID)

	contacts := relay.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "15551234567", contacts[0].Number)
	assert.Equal(t, "hi", contacts[0].LastMessageText)
	assert.Zero(t, contacts[0].UnreadCount)
}

func TestSendMessageUnconfigured(t *testing.T) {
	sender := &mockSender{messageID: "wamid.out.1"}
	relay := newTestRelay(t, sender)

	_, err := relay.SendMessage(context.Background(), "15551234567", "hi")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotConfigured, errors.GetCode(err))
	assert.Zero(t, sender.calls)
	assert.Empty(t, relay.Messages("15551234567"))
}

func TestSendMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		to   string
		text string
	}{
		{name: "missing to", to: "", text: "hi"},
		{name: "missing message", to: "15551234567", text: ""},
		{name: "non-numeric to", to: "not-a-number", text: "hi"},
		{name: "too short to", to: "123", text: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockSender{messageID: "wamid.out.1"}
			relay := newTestRelay(t, sender)
			configureRelay(t, relay)

			_, err := relay.SendMessage(context.Background(), tt.to, tt.text)
			require.Error(t, err)
			assert.Zero(t, sender.calls, "provider must not be called on invalid input")
			assert.Empty(t, relay.Messages(tt.to))
		})
	}
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	sender := &mockSender{err: errors.NewUpstreamError("/messages", 500, `{"error":{"message":"boom"}}`, assert.AnError)}
	relay := newTestRelay(t, sender)
	configureRelay(t, relay)

	_, err := relay.SendMessage(context.Background(), "15551234567", "hi")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstreamAPI, errors.GetCode(err))
	assert.Empty(t, relay.Messages("15551234567"), "failed sends are not recorded")
	assert.Empty(t, relay.Contacts())
}

func TestProcessWebhookStatusAfterSend(t *testing.T) {
	sender := &mockSender{messageID: "wamid.out.1"}
	relay := newTestRelay(t, sender)
	configureRelay(t, relay)

	_, err := relay.SendMessage(context.Background(), "15551234567", "hi")
	require.NoError(t, err)

	result := relay.ProcessWebhook(statusPayload("wamid.out.1", "delivered"))
	assert.Equal(t, 1, result.StatusUpdates)
	assert.Equal(t, models.DeliveryStatusDelivered, relay.Messages("15551234567")[0].DeliveryStatus)
}

func TestProcessWebhookNewMessage(t *testing.T) {
	relay := newTestRelay(t, &mockSender{})

	result := relay.ProcessWebhook(messagePayload("15557654321", "hello", "1700000000", "wamid.1", "Alice"))
	assert.Equal(t, 1, result.NewMessages)

	contacts := relay.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Alice", contacts[0].DisplayName)
	assert.Equal(t, 1, contacts[0].UnreadCount)
}

func TestMarkRead(t *testing.T) {
	relay := newTestRelay(t, &mockSender{})
	relay.ProcessWebhook(messagePayload("15557654321", "hello", "1700000000", "wamid.1", ""))
	relay.ProcessWebhook(messagePayload("15557654321", "again", "1700000100", "wamid.2", ""))
	require.Equal(t, 2, relay.Contacts()[0].UnreadCount)

	relay.MarkRead("15557654321")
	assert.Zero(t, relay.Contacts()[0].UnreadCount)
}

func TestRenameContact(t *testing.T) {
	relay := newTestRelay(t, &mockSender{})

	require.NoError(t, relay.RenameContact("15550000001", "Carol"))
	contacts := relay.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Carol", contacts[0].DisplayName)
	assert.Empty(t, contacts[0].LastMessageText)

	assert.Error(t, relay.RenameContact("15550000001", ""), "empty name is rejected")
	assert.Error(t, relay.RenameContact("15550000001", "  "), "blank name is rejected")
}

func TestVerifyWebhookToken(t *testing.T) {
	relay := newTestRelay(t, &mockSender{})
	assert.True(t, relay.VerifyWebhookToken("verify-token"))
	assert.False(t, relay.VerifyWebhookToken("wrong"))
	assert.False(t, relay.VerifyWebhookToken(""))
}

func TestConfigStatus(t *testing.T) {
	relay := newTestRelay(t, &mockSender{})

	status := relay.ConfigStatus()
	assert.False(t, status.Configured)
	assert.Nil(t, status.PhoneNumberID)

	configureRelay(t, relay)
	status = relay.ConfigStatus()
	assert.True(t, status.Configured)
	require.NotNil(t, status.PhoneNumberID)
	assert.Equal(t, "***0987", *status.PhoneNumberID)
}
