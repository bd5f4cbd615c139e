// Package config holds the ledgerly settings and renders them for display.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Defaults.
const (
	DefaultBaseURL  = "http://localhost:5000/api"
	DefaultTimeout  = 15 * time.Second
	DefaultCurrency = "USD"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// BaseURL is the root of the ledgerly REST API
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
	// Token is the bearer token sent to the API
	Token string `toml:"token" mapstructure:"token"`
	// Timeout bounds each HTTP request
	Timeout time.Duration `toml:"timeout" mapstructure:"timeout"`
	// Currency is used when displaying amounts
	Currency string `toml:"currency" mapstructure:"currency"`
	// AnthropicAPIKey enables category suggestions
	AnthropicAPIKey string `toml:"anthropic_api_key" mapstructure:"anthropic_api_key"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		Currency: DefaultCurrency,
	}
}

// SuggestionsEnabled reports whether an AI provider is configured.
func (c Config) SuggestionsEnabled() bool {
	return c.AnthropicAPIKey != ""
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// Rows returns the settings as setting/value/description rows with secrets
// masked.
func (c Config) Rows() [][]string {
	return [][]string{
		{"Debug", strconv.FormatBool(c.Debug), "Enable debug logging"},
		{"Base URL", c.BaseURL, "Root URL of the ledgerly API"},
		{"Token", maskSensitiveValue(c.Token), "API bearer token"},
		{"Timeout", c.Timeout.String(), "HTTP request timeout"},
		{"Currency", c.Currency, "Currency used to display amounts"},
		{"Anthropic API Key", maskSensitiveValue(c.AnthropicAPIKey), "Enables AI category suggestions"},
	}
}

// Table renders the settings as a bordered table.
func (c Config) Table() *table.Table {
	highlight := lipgloss.Color("#ffd644")

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(highlight)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(highlight).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("SETTING", "VALUE", "DESCRIPTION").
		Rows(c.Rows()...)
}
