package classify

import (
	"testing"

	"github.com/threadlens/threadlens/pkg/config"
	"github.com/threadlens/threadlens/pkg/event"
)

func strPtr(s string) *string { return &s }

func singleFrameEvent(f event.Frame) *event.Event {
	return &event.Event{
		Threads: []event.Thread{{
			ID:         1,
			Stacktrace: &event.Stacktrace{Frames: []event.Frame{f}},
		}},
	}
}

func TestApply_IncludeMarksInApp(t *testing.T) {
	c := New(config.InAppRules{Include: []string{"com.example."}})

	evt := singleFrameEvent(event.Frame{Module: strPtr("com.example.Worker")})
	c.Apply(evt)

	got := evt.Threads[0].Stacktrace.Frames[0].InApp
	if got == nil || !*got {
		t.Errorf("InApp = %v, want true", got)
	}
}

func TestApply_ExcludeWinsOverInclude(t *testing.T) {
	c := New(config.InAppRules{
		Include: []string{"com."},
		Exclude: []string{"com.google."},
	})

	evt := singleFrameEvent(event.Frame{Module: strPtr("com.google.gson.Gson")})
	c.Apply(evt)

	got := evt.Threads[0].Stacktrace.Frames[0].InApp
	if got == nil || *got {
		t.Errorf("InApp = %v, want false (exclude wins)", got)
	}
}

func TestApply_ExistingFlagUntouched(t *testing.T) {
	c := New(config.InAppRules{Include: []string{"com.example."}})

	inApp := false
	evt := singleFrameEvent(event.Frame{Module: strPtr("com.example.Worker"), InApp: &inApp})
	c.Apply(evt)

	got := evt.Threads[0].Stacktrace.Frames[0].InApp
	if got == nil || *got {
		t.Errorf("InApp = %v, want the payload's false preserved", got)
	}
}

func TestApply_NoMatchLeavesNil(t *testing.T) {
	c := New(config.InAppRules{Include: []string{"com.example."}})

	evt := singleFrameEvent(event.Frame{Module: strPtr("java.lang.Thread")})
	c.Apply(evt)

	if got := evt.Threads[0].Stacktrace.Frames[0].InApp; got != nil {
		t.Errorf("InApp = %v, want nil", *got)
	}
}

func TestApply_MatchesPackageAndFilename(t *testing.T) {
	c := New(config.InAppRules{Include: []string{"/app/"}})

	evt := &event.Event{
		Threads: []event.Thread{{
			ID: 1,
			Stacktrace: &event.Stacktrace{Frames: []event.Frame{
				{Package: strPtr("/app/bin/worker")},
				{Filename: strPtr("/app/src/worker.py")},
			}},
		}},
	}
	c.Apply(evt)

	for i, f := range evt.Threads[0].Stacktrace.Frames {
		if f.InApp == nil || !*f.InApp {
			t.Errorf("frame %d: InApp = %v, want true", i, f.InApp)
		}
	}
}

func TestApply_ExceptionTracesClassified(t *testing.T) {
	c := New(config.InAppRules{Include: []string{"com.example."}})

	evt := &event.Event{
		Exception: &event.ExceptionGroup{Values: []event.ExceptionValue{{
			RawStacktrace: &event.Stacktrace{Frames: []event.Frame{
				{Module: strPtr("com.example.App")},
			}},
		}}},
	}
	c.Apply(evt)

	got := evt.Exception.Values[0].RawStacktrace.Frames[0].InApp
	if got == nil || !*got {
		t.Errorf("exception frame InApp = %v, want true", got)
	}
}

func TestApply_NoRulesIsNoop(t *testing.T) {
	c := New(config.InAppRules{})

	evt := singleFrameEvent(event.Frame{Module: strPtr("com.example.Worker")})
	c.Apply(evt)

	if got := evt.Threads[0].Stacktrace.Frames[0].InApp; got != nil {
		t.Errorf("InApp = %v, want nil (no rules)", *got)
	}
}
