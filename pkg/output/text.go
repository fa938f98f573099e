package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "ThreadLens: %d threads, %d crashed, %d unresolved\n",
		report.Summary.Threads,
		report.Summary.Crashed,
		report.Summary.Unresolved)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== ThreadLens Thread Report ===")
	fmt.Fprintln(w)

	if len(report.Threads) == 0 {
		fmt.Fprintln(w, "No threads in event")
	} else {
		fmt.Fprintf(w, "%-3s %5s %-24s %-14s %-40s %s\n", "", "ID", "NAME", "STATE", "LABEL", "FILE")
		for i := range report.Threads {
			f.formatRow(&report.Threads[i], w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d threads, %d crashed, %d exception value(s), %d unresolved\n",
		report.Summary.Threads,
		report.Summary.Crashed,
		report.Summary.Exceptions,
		report.Summary.Unresolved)

	if f.opts.Verbose {
		if report.Metadata.EventID != "" {
			fmt.Fprintf(w, "Event:    %s\n", report.Metadata.EventID)
		}
		if report.Metadata.Platform != "" {
			fmt.Fprintf(w, "Platform: %s\n", report.Metadata.Platform)
		}
		fmt.Fprintf(w, "Source:   %s\n", report.Metadata.Source)
		if report.Metadata.RawPreferred {
			fmt.Fprintln(w, "Traces:   raw (unprocessed)")
		}
	}

	return nil
}

// formatRow prints one thread. Crashed threads are marked "*", the current
// thread ">".
func (f *TextFormatter) formatRow(row *ThreadRow, w io.Writer) {
	marker := " "
	if row.Current {
		marker = ">"
	}
	if row.Crashed {
		marker = "*"
	}

	name := row.Name
	if name == "" {
		name = "-"
	}
	state := row.State
	if state == "" {
		state = "-"
	}
	file := row.Filename
	if file == "" {
		file = "-"
	}

	fmt.Fprintf(w, "%-3s %5d %-24s %-14s %-40s %s\n", marker, row.ID, name, state, row.Label, file)
}
