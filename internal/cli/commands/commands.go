// Package commands implements the ThreadLens subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/threadlens/threadlens/pkg/config"
	"github.com/threadlens/threadlens/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// loadOptionalConfig loads a config file when a path was given, the default
// config otherwise.
func loadOptionalConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newFormatter selects a formatter by name. An empty name means text.
func newFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "", config.FormatText:
		return output.NewTextFormatter(opts), nil
	case config.FormatJSON:
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: text, json)", format)
	}
}

// commandContext returns the cobra command context, falling back to
// context.Background.
func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
