package summary

import "github.com/threadlens/threadlens/pkg/event"

// ThreadException returns the exception group attributed to a thread of the
// event, nil when the event carries none. An event holds at most one group;
// attribution to individual threads happens through the thread ids on the
// group's values, which trace selection correlates against.
func ThreadException(evt *event.Event, thread *event.Thread) *event.ExceptionGroup {
	if evt == nil {
		return nil
	}
	return evt.Exception
}
