package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a ThreadLens configuration file without inspecting an event.

Checks:
  - YAML syntax
  - Output format
  - In-app prefix rules
  - Webhook endpoints`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd.Context())
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Output format:    %s\n", cfg.Output.Format)
	fmt.Fprintf(w, "  In-app includes:  %d prefix(es)\n", len(cfg.InApp.Include))
	fmt.Fprintf(w, "  In-app excludes:  %d prefix(es)\n", len(cfg.InApp.Exclude))
	fmt.Fprintf(w, "  Webhooks:         %d\n", len(cfg.Webhooks))

	for i, hook := range cfg.Webhooks {
		name := hook.Name
		if name == "" {
			name = hook.URL
		}
		fmt.Fprintf(w, "    %d. [%s] %s\n", i+1, hook.Trigger, name)
	}

	return nil
}
