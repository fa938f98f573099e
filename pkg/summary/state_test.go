package summary

import "testing"

func TestDisplayState(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"RUNNABLE", StateRunnable},
		{"Runnable", StateRunnable},
		{"Running", StateRunnable},
		{"TIMED_WAITING", StateTimedWaiting},
		{"timed waiting", StateTimedWaiting},
		{"BLOCKED", StateBlocked},
		{"WAITING", StateWaiting},
		{"Parked", StateWaiting},
		{"NEW", StateNew},
		{"TERMINATED", StateTerminated},
		{"Dead", StateTerminated},
		{"kCFRunLoop", "kCFRunLoop"}, // unrecognized passes through
		{"", ""},
	}
	for _, tt := range tests {
		got := DisplayState(tt.input)
		if got != tt.want {
			t.Errorf("DisplayState(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
