package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "empty", phone: "", want: ""},
		{name: "plain number", phone: "15551234567", want: "*******4567"},
		{name: "plus prefix", phone: "+15551234567", want: "+*******4567"},
		{name: "short number", phone: "123", want: "***"},
		{name: "short with plus", phone: "+123", want: "+***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhoneNumber(tt.phone))
		})
	}
}

func TestMaskPhoneNumberID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "empty", id: "", want: ""},
		{name: "typical id", id: "109876543210987", want: "***0987"},
		{name: "short id", id: "98", want: "***98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhoneNumberID(tt.id))
		})
	}
}

func TestMaskAccessToken(t *testing.T) {
	assert.Empty(t, MaskAccessToken(""))
	masked := MaskAccessToken("EAAGxxxxSecretxxxx")
	assert.Equal(t, "********", masked)
	assert.NotContains(t, masked, "Secret")
}

func TestMaskMessageID(t *testing.T) {
	assert.Empty(t, MaskMessageID(""))
	assert.Equal(t, "****", MaskMessageID("abcd"))

	masked := MaskMessageID("wamid.HBgLMTU1NTEyMzQ1NjcVAgARGBI1234ABCD")
	assert.Contains(t, masked, "1234ABCD")
	assert.NotContains(t, masked, "wamid.")
}

func TestMaskSensitiveFields(t *testing.T) {
	fields := map[string]interface{}{
		"to":              "15551234567",
		"phone_number_id": "109876543210987",
		"access_token":    "EAAGsecret",
		"message_id":      "wamid.ABCDEFGH12345678",
		"count":           3,
		"note":            "untouched",
	}

	masked := MaskSensitiveFields(fields)
	assert.Equal(t, "*******4567", masked["to"])
	assert.Equal(t, "***0987", masked["phone_number_id"])
	assert.Equal(t, "********", masked["access_token"])
	assert.NotEqual(t, fields["message_id"], masked["message_id"])
	assert.Equal(t, 3, masked["count"])
	assert.Equal(t, "untouched", masked["note"])

	assert.Nil(t, MaskSensitiveFields(nil))
}
