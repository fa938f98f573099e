package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and applies per-field defaults.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format: unknown format %q (valid: text, json)", cfg.Output.Format)
	}

	if err := validatePrefixes("in_app.include", cfg.InApp.Include); err != nil {
		return err
	}
	if err := validatePrefixes("in_app.exclude", cfg.InApp.Exclude); err != nil {
		return err
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validatePrefixes(field string, prefixes []string) error {
	for i, p := range prefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s[%d]: prefix must not be empty", field, i)
		}
	}
	return nil
}

func validateWebhook(w *WebhookConfig) error {
	if w.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(w.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	switch w.Trigger {
	case WebhookTriggerOnCrash, WebhookTriggerAlways, WebhookTriggerNever:
	case "":
		w.Trigger = WebhookTriggerOnCrash
	default:
		return fmt.Errorf("invalid trigger %q (valid: on_crash, always, never)", w.Trigger)
	}

	if w.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	return nil
}
