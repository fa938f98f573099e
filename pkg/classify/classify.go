// Package classify marks stack frames as application code using configured
// prefix rules, for payloads whose platform did not classify frames itself.
package classify

import (
	"strings"

	"github.com/threadlens/threadlens/pkg/config"
	"github.com/threadlens/threadlens/pkg/event"
)

// Classifier applies in-app prefix rules to the frames of an event.
type Classifier struct {
	include []string
	exclude []string
}

// New creates a classifier from config rules.
func New(rules config.InAppRules) *Classifier {
	return &Classifier{
		include: rules.Include,
		exclude: rules.Exclude,
	}
}

// Apply sets Frame.InApp on every frame of evt that the payload left
// unclassified, across thread-level and exception-level traces. Frames
// already carrying an in-app flag are not touched. Exclude rules win over
// include rules.
func (c *Classifier) Apply(evt *event.Event) {
	if evt == nil || (len(c.include) == 0 && len(c.exclude) == 0) {
		return
	}

	for i := range evt.Threads {
		t := &evt.Threads[i]
		c.applyTrace(t.Stacktrace)
		c.applyTrace(t.RawStacktrace)
	}

	if evt.Exception != nil {
		for i := range evt.Exception.Values {
			v := &evt.Exception.Values[i]
			c.applyTrace(v.Stacktrace)
			c.applyTrace(v.RawStacktrace)
		}
	}
}

func (c *Classifier) applyTrace(st *event.Stacktrace) {
	if st == nil {
		return
	}
	for i := range st.Frames {
		f := &st.Frames[i]
		if f.InApp != nil {
			continue
		}
		if matchesAny(f, c.exclude) {
			f.InApp = boolPtr(false)
			continue
		}
		if matchesAny(f, c.include) {
			f.InApp = boolPtr(true)
		}
	}
}

// matchesAny checks the frame's module, package, and filename against the
// prefix list.
func matchesAny(f *event.Frame, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPrefix(f.Module, p) || hasPrefix(f.Package, p) || hasPrefix(f.Filename, p) {
			return true
		}
	}
	return false
}

func hasPrefix(s *string, prefix string) bool {
	return s != nil && strings.HasPrefix(*s, prefix)
}

func boolPtr(b bool) *bool {
	return &b
}
