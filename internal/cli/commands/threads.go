package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/pkg/classify"
	"github.com/threadlens/threadlens/pkg/config"
	"github.com/threadlens/threadlens/pkg/event"
	"github.com/threadlens/threadlens/pkg/output"
	"github.com/threadlens/threadlens/pkg/webhook"
)

// ThreadsOptions holds command-line options for the threads command.
type ThreadsOptions struct {
	Config      string
	Output      string
	Raw         bool
	Verbose     bool
	Quiet       bool
	FailOnCrash bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewThreadsCommand creates the threads command.
func NewThreadsCommand() *cobra.Command {
	opts := &ThreadsOptions{}

	cmd := &cobra.Command{
		Use:   "threads <event-file>",
		Short: "Summarize every thread of a crash event",
		Long: `Summarize every thread of a crash event for display in a thread list.

For each thread the stack trace to analyze is selected (exception-correlated
traces take precedence over thread-level ones, raw over processed with
--raw), the most relevant frame is picked, and a short label plus trimmed
source filename are derived. Crashed threads are listed first and marked
with '*', the current thread with '>'.

Exit codes:
  0 - Report generated
  1 - Crashed thread present (with --fail-on-crash)
  2 - Usage, configuration, or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreads(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with in-app rules and output defaults")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Prefer raw (unprocessed) stack traces")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show event metadata with the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no per-thread rows")
	cmd.Flags().BoolVar(&opts.FailOnCrash, "fail-on-crash", false, "Exit 1 when the event contains a crashed thread")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_crash", "When to fire webhook (on_crash|always|never)")

	return cmd
}

func runThreads(cmd *cobra.Command, args []string, opts *ThreadsOptions) error {
	ctx := commandContext(cmd.Context())

	cfg, err := loadOptionalConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	evt, err := event.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading event: %w", err)
	}

	classify.New(cfg.InApp).Apply(evt)

	report := output.NewReport(evt, args[0], opts.Raw)

	format := opts.Output
	if format == "" {
		format = cfg.Output.Format
	}
	formatter, err := newFormatter(format, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	sendWebhooks(ctx, cmd, report, cfg, opts)

	if opts.FailOnCrash && report.HasCrash() {
		ExitCode = 1
	}
	return nil
}

// sendWebhooks fires the configured webhooks plus any flag-level one.
// Failures are warnings, not errors; the report was already produced.
func sendWebhooks(ctx context.Context, cmd *cobra.Command, report *output.Report, cfg *config.Config, opts *ThreadsOptions) {
	hooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	hooks = append(hooks, cfg.Webhooks...)
	if opts.WebhookURL != "" {
		hooks = append(hooks, config.WebhookConfig{
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
		})
	}
	if len(hooks) == 0 {
		return
	}

	client := webhook.NewClient()
	for i := range hooks {
		h := &hooks[i]
		if !webhook.ShouldSend(h.Trigger, report) {
			continue
		}
		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     h.URL,
			Token:   h.Token,
			Timeout: h.Timeout,
		})
		if !resp.Success() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: webhook %s failed: %v\n", h.URL, resp.Error)
		}
	}
}
