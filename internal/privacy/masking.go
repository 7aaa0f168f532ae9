package privacy

import (
	"strings"
)

// MaskPhoneNumber masks a phone number showing only the last 4 digits
// Example: "+1234567890" -> "+******7890"
func MaskPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	if strings.HasPrefix(phone, "+") {
		if len(phone) <= 5 {
			return "+" + strings.Repeat("*", len(phone)-1)
		}
		return "+" + strings.Repeat("*", len(phone)-5) + phone[len(phone)-4:]
	}

	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// MaskPhoneNumberID masks a Cloud API phone number ID for display, keeping
// only the last 4 characters. This is the form returned by the config
// status endpoint.
// Example: "109876543210987" -> "***0987"
func MaskPhoneNumberID(id string) string {
	if id == "" {
		return ""
	}
	if len(id) <= 4 {
		return "***" + id
	}
	return "***" + id[len(id)-4:]
}

// MaskAccessToken fully masks an access token; tokens are never partially
// revealed anywhere, including logs.
func MaskAccessToken(token string) string {
	if token == "" {
		return ""
	}
	return "********"
}

// MaskMessageID masks a provider message ID while keeping the tail for log
// correlation. Example: "wamid.HBgLMTU1..." -> "****MTU1"
func MaskMessageID(messageID string) string {
	return maskString(messageID, 8)
}

// maskString masks a string showing only the last n characters
func maskString(s string, keepLast int) string {
	if s == "" {
		return ""
	}
	if len(s) <= keepLast {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-keepLast) + s[len(s)-keepLast:]
}

// MaskSensitiveFields applies appropriate masking to common logging fields
func MaskSensitiveFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}

	masked := make(map[string]interface{})
	for k, v := range fields {
		s, isString := v.(string)
		if !isString {
			masked[k] = v
			continue
		}
		switch k {
		case "phone", "phone_number", "from", "to", "number":
			masked[k] = MaskPhoneNumber(s)
		case "phone_number_id", "phoneNumberId":
			masked[k] = MaskPhoneNumberID(s)
		case "access_token", "accessToken", "token":
			masked[k] = MaskAccessToken(s)
		case "message_id", "messageId", "msg_id":
			masked[k] = MaskMessageID(s)
		default:
			masked[k] = v
		}
	}

	return masked
}
