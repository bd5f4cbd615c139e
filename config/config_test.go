package config

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestMaskSensitiveValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "mask token",
			value:    "abc123def456",
			expected: "abc1********",
		},
		{
			name:     "mask short token",
			value:    "abc",
			expected: "***",
		},
		{
			name:     "empty token",
			value:    "",
			expected: "(not set)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskSensitiveValue(tt.value)
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestRowsMaskSecrets(t *testing.T) {
	cfg := Default()
	cfg.Token = "test-token-123456"
	cfg.AnthropicAPIKey = "sk-ant-abcdef"

	rows := cfg.Rows()
	be.Equal(t, 6, len(rows))
	for _, row := range rows {
		be.Equal(t, 3, len(row))
		be.False(t, strings.Contains(row[1], "123456"))
		be.False(t, strings.Contains(row[1], "abcdef"))
	}

	rendered := cfg.Table().String()
	be.True(t, strings.Contains(rendered, DefaultBaseURL))
	be.True(t, strings.Contains(rendered, "test*"))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	be.Equal(t, DefaultBaseURL, cfg.BaseURL)
	be.Equal(t, DefaultTimeout, cfg.Timeout)
	be.Equal(t, DefaultCurrency, cfg.Currency)
	be.False(t, cfg.SuggestionsEnabled())
}
