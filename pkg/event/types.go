// Package event defines the typed crash-event model: one error occurrence
// with the threads, exceptions, and stack traces captured alongside it.
package event

// Frame is one call-site entry in a stack trace.
//
// Every identifying attribute is optional. A nil pointer means the attribute
// was absent from the payload, which is distinct from a present empty string;
// the label fallback chain in the summary package depends on that distinction.
type Frame struct {
	// Filename is the source file the frame was executing in.
	Filename *string `json:"filename,omitempty"`

	// Function is the symbol name.
	Function *string `json:"function,omitempty"`

	// Package is the library or binary identifier, often a shared-object
	// path (e.g. "/usr/lib/system/libdispatch.dylib").
	Package *string `json:"package,omitempty"`

	// Module is the logical module path (e.g. "com.example.app.MainActivity").
	Module *string `json:"module,omitempty"`

	// InApp marks the frame as application code rather than library or
	// runtime code. Nil when the platform did not classify the frame.
	InApp *bool `json:"in_app,omitempty"`

	// Line is the source line number, 0 if unknown.
	Line int `json:"lineno,omitempty"`
}

// Stacktrace is an ordered call-frame sequence: outermost call first,
// innermost (most recent) call last.
type Stacktrace struct {
	Frames []Frame `json:"frames"`
}

// Thread is one execution thread captured at the time of the event.
type Thread struct {
	// ID is unique within an event. Exception values correlate to the
	// thread that raised them through this id.
	ID int64 `json:"id"`

	// Name is the thread name, if the platform reports one.
	Name *string `json:"name,omitempty"`

	// State is the raw platform thread state (e.g. "RUNNABLE", "Waiting").
	State *string `json:"state,omitempty"`

	// Crashed marks the thread that caused the event.
	Crashed bool `json:"crashed,omitempty"`

	// Current marks the thread that captured the event.
	Current bool `json:"current,omitempty"`

	// Stacktrace is the processed (post-cleanup) trace, if any.
	Stacktrace *Stacktrace `json:"stacktrace,omitempty"`

	// RawStacktrace is the original unprocessed trace, if any. The two
	// trace fields are independent; either may be absent.
	RawStacktrace *Stacktrace `json:"raw_stacktrace,omitempty"`
}

// ExceptionValue is a single raised error captured within an event,
// optionally correlated to the thread that raised it.
type ExceptionValue struct {
	// Type is the error type name (e.g. "NullPointerException").
	Type *string `json:"type,omitempty"`

	// Value is the error message.
	Value *string `json:"value,omitempty"`

	// ThreadID correlates the value to a thread of the event.
	ThreadID *int64 `json:"thread_id,omitempty"`

	// Stacktrace is the value's processed trace, if any.
	Stacktrace *Stacktrace `json:"stacktrace,omitempty"`

	// RawStacktrace is the value's unprocessed trace, if any.
	RawStacktrace *Stacktrace `json:"raw_stacktrace,omitempty"`
}

// ExceptionGroup holds the ordered exception values of an event. Order is
// significant: when several values correlate to the same thread, the last
// one wins.
type ExceptionGroup struct {
	Values []ExceptionValue `json:"values"`
}

// Event is one error occurrence. It is created by ingestion and read-only
// to everything downstream.
type Event struct {
	// ID is the upstream event identifier.
	ID string

	// Platform is the reporting platform (e.g. "java", "cocoa").
	Platform string

	// Exception holds the event's exception values, if any were captured.
	Exception *ExceptionGroup

	// Threads are the threads captured at the time of the event.
	Threads []Thread
}
