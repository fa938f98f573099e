// Package config provides configuration loading and validation for ThreadLens.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	InApp    InAppRules      `yaml:"in_app,omitempty"`
	Output   OutputConfig    `yaml:"output,omitempty"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// InAppRules classify stack frames as application code by prefix, for
// payloads whose platform left frames unclassified.
type InAppRules struct {
	// Include lists module/package/filename prefixes treated as
	// application code.
	Include []string `yaml:"include,omitempty"`

	// Exclude lists prefixes treated as library or runtime code.
	// Exclude wins over include.
	Exclude []string `yaml:"exclude,omitempty"`
}

// OutputConfig sets output defaults; command-line flags override it.
type OutputConfig struct {
	// Format is the default output format (text or json).
	Format string `yaml:"format,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnCrash fires only when the event contains a crashed
	// thread (default).
	WebhookTriggerOnCrash WebhookTrigger = "on_crash"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending thread reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_crash" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
