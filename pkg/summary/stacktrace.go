package summary

import "github.com/threadlens/threadlens/pkg/event"

// SelectStacktrace picks the stack trace to analyze for a thread.
//
// Precedence, first match wins:
//
//  1. An exception value correlated to the thread. When several values carry
//     the thread's id, the last one in sequence order wins. The matched value
//     fully determines the result: its raw trace when preferRaw is set and
//     present, else its processed trace, which may be nil. Thread-level
//     traces are never consulted once a match existed, even when the matched
//     value carries no traces at all.
//  2. The thread's raw trace, when preferRaw is set and it is present.
//  3. The thread's processed trace, which may be nil.
//
// An exception group with no value matching the thread falls through to the
// thread-level traces like any other non-match.
func SelectStacktrace(thread *event.Thread, evt *event.Event, preferRaw bool) *event.Stacktrace {
	if group := ThreadException(evt, thread); group != nil {
		if match := lastMatchingValue(group, thread.ID); match != nil {
			if preferRaw && match.RawStacktrace != nil {
				return match.RawStacktrace
			}
			return match.Stacktrace
		}
	}

	if preferRaw && thread.RawStacktrace != nil {
		return thread.RawStacktrace
	}
	return thread.Stacktrace
}

// lastMatchingValue scans the ordered values from the end and returns the
// first one correlated to id, making the last match in sequence order win.
// Nil when no value matches.
func lastMatchingValue(group *event.ExceptionGroup, id int64) *event.ExceptionValue {
	for i := len(group.Values) - 1; i >= 0; i-- {
		v := &group.Values[i]
		if v.ThreadID != nil && *v.ThreadID == id {
			return v
		}
	}
	return nil
}
