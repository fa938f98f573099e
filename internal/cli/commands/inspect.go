package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/pkg/classify"
	"github.com/threadlens/threadlens/pkg/event"
	"github.com/threadlens/threadlens/pkg/summary"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Config string
	Raw    bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <event-file>",
		Short: "Show an overview of a crash event",
		Long: `Show a one-shot overview of a crash event: identifiers, thread and
exception counts, and a summary of the crashed thread if one is present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with in-app rules")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Prefer raw (unprocessed) stack traces")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
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

	w := cmd.OutOrStdout()

	if evt.ID != "" {
		fmt.Fprintf(w, "Event:     %s\n", evt.ID)
	}
	if evt.Platform != "" {
		fmt.Fprintf(w, "Platform:  %s\n", evt.Platform)
	}

	crashed, current := 0, 0
	for i := range evt.Threads {
		if evt.Threads[i].Crashed {
			crashed++
		}
		if evt.Threads[i].Current {
			current++
		}
	}
	fmt.Fprintf(w, "Threads:   %d (%d crashed, %d current)\n", len(evt.Threads), crashed, current)

	if evt.Exception != nil && len(evt.Exception.Values) > 0 {
		fmt.Fprintf(w, "Exception: %d value(s)\n", len(evt.Exception.Values))
		for i := range evt.Exception.Values {
			v := &evt.Exception.Values[i]
			fmt.Fprintf(w, "  %d. %s\n", i+1, exceptionHeadline(v))
		}
	} else {
		fmt.Fprintln(w, "Exception: none")
	}

	for i := range evt.Threads {
		t := &evt.Threads[i]
		if !t.Crashed {
			continue
		}
		info := summary.Summarize(t, evt, opts.Raw)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Crashed thread %d", t.ID)
		if t.Name != nil && *t.Name != "" {
			fmt.Fprintf(w, " (%s)", *t.Name)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Label: %s\n", info.Label)
		if info.Filename != nil {
			fmt.Fprintf(w, "  File:  %s\n", *info.Filename)
		}
		if t.State != nil {
			fmt.Fprintf(w, "  State: %s\n", summary.DisplayState(*t.State))
		}
	}

	return nil
}

// exceptionHeadline describes one exception value: "Type: message", with
// thread attribution when present.
func exceptionHeadline(v *event.ExceptionValue) string {
	headline := "(unnamed)"
	if v.Type != nil && *v.Type != "" {
		headline = *v.Type
	}
	if v.Value != nil && *v.Value != "" {
		headline += ": " + *v.Value
	}
	if v.ThreadID != nil {
		headline += fmt.Sprintf(" [thread %d]", *v.ThreadID)
	}
	return headline
}
