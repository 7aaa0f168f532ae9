package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactSummaryGetDisplayName(t *testing.T) {
	named := ContactSummary{Number: "15550002222", DisplayName: "Ada"}
	assert.Equal(t, "Ada", named.GetDisplayName())

	unnamed := ContactSummary{Number: "15550002222"}
	assert.Equal(t, "15550002222", unnamed.GetDisplayName())
}
