package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/pkg/classify"
	"github.com/threadlens/threadlens/pkg/event"
	"github.com/threadlens/threadlens/pkg/summary"
)

// FramesOptions holds command-line options for the frames command.
type FramesOptions struct {
	Config string
	Thread int64
	Raw    bool
}

// NewFramesCommand creates the frames command.
func NewFramesCommand() *cobra.Command {
	opts := &FramesOptions{}

	cmd := &cobra.Command{
		Use:   "frames <event-file>",
		Short: "Show the selected stack trace for one thread",
		Long: `Show the stack trace that summarization would analyze for one thread,
frame by frame, outermost first.

The relevant frame (the one the thread label derives from) is marked with
'>'; in-app frames are marked with '*'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrames(cmd, args, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.Thread, "thread", "t", 0, "Thread id (required)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with in-app rules")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Prefer raw (unprocessed) stack traces")
	_ = cmd.MarkFlagRequired("thread")

	return cmd
}

func runFrames(cmd *cobra.Command, args []string, opts *FramesOptions) error {
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

	var thread *event.Thread
	for i := range evt.Threads {
		if evt.Threads[i].ID == opts.Thread {
			thread = &evt.Threads[i]
			break
		}
	}
	if thread == nil {
		return fmt.Errorf("no thread with id %d in %s", opts.Thread, args[0])
	}

	w := cmd.OutOrStdout()

	st := summary.SelectStacktrace(thread, evt, opts.Raw)
	if st == nil || len(st.Frames) == 0 {
		fmt.Fprintf(w, "no stack trace for thread %d\n", opts.Thread)
		return nil
	}

	relevant := summary.RelevantFrame(st)

	fmt.Fprintf(w, "%-3s %4s %-45s %s\n", "", "#", "FUNCTION", "LOCATION")
	for i := range st.Frames {
		f := &st.Frames[i]
		marker := " "
		if f == relevant {
			marker = ">"
		}
		inApp := " "
		if f.InApp != nil && *f.InApp {
			inApp = "*"
		}
		fmt.Fprintf(w, "%s%s  %4d %-45s %s\n", marker, inApp, i, frameFunction(f), frameLocation(f))
	}

	return nil
}

// frameFunction returns the frame's function name, "-" when absent.
func frameFunction(f *event.Frame) string {
	if f.Function != nil && *f.Function != "" {
		return *f.Function
	}
	return "-"
}

// frameLocation returns the most specific location attribute of a frame:
// filename (with line when known), else package, else module.
func frameLocation(f *event.Frame) string {
	if f.Filename != nil && *f.Filename != "" {
		if f.Line > 0 {
			return fmt.Sprintf("%s:%d", *f.Filename, f.Line)
		}
		return *f.Filename
	}
	if f.Package != nil && *f.Package != "" {
		return *f.Package
	}
	if f.Module != nil && *f.Module != "" {
		return *f.Module
	}
	return "-"
}
