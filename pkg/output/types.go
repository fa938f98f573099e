// Package output provides formatting and output generation for thread
// reports.
package output

import (
	"time"

	"github.com/threadlens/threadlens/pkg/event"
	"github.com/threadlens/threadlens/pkg/summary"
)

// ThreadRow is one thread of the report, in display order.
type ThreadRow struct {
	// ID is the thread id.
	ID int64 `json:"id"`

	// Name is the thread name, empty if the platform reported none.
	Name string `json:"name,omitempty"`

	// State is the canonical display state, empty if unknown.
	State string `json:"state,omitempty"`

	// Label describes where the thread was; never empty.
	Label string `json:"label"`

	// Filename is the trimmed source filename, empty if the relevant
	// frame carried none.
	Filename string `json:"filename,omitempty"`

	// Crashed marks the thread that caused the event.
	Crashed bool `json:"crashed,omitempty"`

	// Current marks the thread that captured the event.
	Current bool `json:"current,omitempty"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Threads is the number of threads captured with the event.
	Threads int `json:"threads"`

	// Crashed is the number of crashed threads.
	Crashed int `json:"crashed"`

	// Exceptions is the number of exception values on the event.
	Exceptions int `json:"exceptions"`

	// Unresolved is the number of threads whose label fell back to the
	// sentinel.
	Unresolved int `json:"unresolved"`
}

// Metadata provides context about the run.
type Metadata struct {
	// EventID is the upstream event identifier, if any.
	EventID string `json:"event_id,omitempty"`

	// Platform is the reporting platform, if any.
	Platform string `json:"platform,omitempty"`

	// Source is the event file that was inspected.
	Source string `json:"source"`

	// RawPreferred records whether raw traces were requested.
	RawPreferred bool `json:"raw_preferred,omitempty"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Report is the complete thread report for one event.
type Report struct {
	Summary  Summary     `json:"summary"`
	Threads  []ThreadRow `json:"threads"`
	Metadata Metadata    `json:"metadata"`
}

// NewReport summarizes every thread of an event, in display order.
func NewReport(evt *event.Event, source string, preferRaw bool) *Report {
	report := &Report{
		Metadata: Metadata{
			EventID:      evt.ID,
			Platform:     evt.Platform,
			Source:       source,
			RawPreferred: preferRaw,
			GeneratedAt:  time.Now(),
		},
	}

	ordered := summary.DisplayOrder(evt.Threads)
	for i := range ordered {
		t := &ordered[i]
		info := summary.Summarize(t, evt, preferRaw)

		row := ThreadRow{
			ID:      t.ID,
			Label:   info.Label,
			Crashed: t.Crashed,
			Current: t.Current,
		}
		if t.Name != nil {
			row.Name = *t.Name
		}
		if t.State != nil {
			row.State = summary.DisplayState(*t.State)
		}
		if info.Filename != nil {
			row.Filename = *info.Filename
		}
		report.Threads = append(report.Threads, row)

		if t.Crashed {
			report.Summary.Crashed++
		}
		if info.Label == summary.UnknownLabel {
			report.Summary.Unresolved++
		}
	}

	report.Summary.Threads = len(evt.Threads)
	if evt.Exception != nil {
		report.Summary.Exceptions = len(evt.Exception.Values)
	}

	return report
}

// HasCrash returns true if the event contained a crashed thread.
func (r *Report) HasCrash() bool {
	return r.Summary.Crashed > 0
}
