// Package summary derives display summaries for the threads of a crash
// event: which frame each thread was in and which source file.
//
// Everything here is a pure function over the immutable event model. There
// is no I/O and no state; every function is safe for unbounded concurrent
// use. Missing data is represented as nil fields and the UnknownLabel
// sentinel, never as an error.
package summary

import "github.com/threadlens/threadlens/pkg/event"

// UnknownLabel is the fallback label when nothing about a thread's position
// can be resolved.
const UnknownLabel = "<unknown>"

// ThreadInfo is the derived display summary for one thread.
type ThreadInfo struct {
	// Label is a short human-readable description of where the thread was.
	// Never empty; falls back to UnknownLabel.
	Label string `json:"label"`

	// Filename is the trimmed source filename of the relevant frame, nil
	// when the frame carried none. May be set even when Label fell back to
	// the sentinel.
	Filename *string `json:"filename,omitempty"`
}

// Summarize derives the display summary for one thread of an event.
//
// preferRaw requests the unprocessed traces where available; the flag is
// threaded through trace selection end-to-end. Label precedence is on field
// presence, not emptiness: function name, then trimmed package, then module,
// then the sentinel.
func Summarize(thread *event.Thread, evt *event.Event, preferRaw bool) ThreadInfo {
	info := ThreadInfo{Label: UnknownLabel}

	st := SelectStacktrace(thread, evt, preferRaw)
	if st == nil || len(st.Frames) == 0 {
		return info
	}

	frame := RelevantFrame(st)

	if frame.Filename != nil {
		trimmed := TrimFilename(*frame.Filename)
		info.Filename = &trimmed
	}

	switch {
	case frame.Function != nil:
		info.Label = *frame.Function
	case frame.Package != nil:
		info.Label = TrimPackage(*frame.Package)
	case frame.Module != nil:
		info.Label = *frame.Module
	}
	// A present-but-empty attribute must not produce an empty label.
	if info.Label == "" {
		info.Label = UnknownLabel
	}
	return info
}
