package config

import "time"

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default values for configuration.
const (
	DefaultFormat         = FormatText
	DefaultWebhookTimeout = 10 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}
