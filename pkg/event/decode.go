package event

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// payload mirrors the wire shape of a crash event: the thread and exception
// lists arrive wrapped in {"values": [...]} containers.
type payload struct {
	EventID   string          `json:"event_id"`
	Platform  string          `json:"platform"`
	Exception *ExceptionGroup `json:"exception"`
	Threads   *threadValues   `json:"threads"`
}

type threadValues struct {
	Values []Thread `json:"values"`
}

// Decode reads a crash-event JSON payload. Absent sections decode to nil;
// only malformed JSON is an error.
func Decode(r io.Reader) (*Event, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}

	evt := &Event{
		ID:        p.EventID,
		Platform:  p.Platform,
		Exception: p.Exception,
	}
	if p.Threads != nil {
		evt.Threads = p.Threads.Values
	}
	return evt, nil
}

// Load reads and decodes a crash-event file.
func Load(path string) (*Event, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided event path is expected
	if err != nil {
		return nil, fmt.Errorf("opening event file: %w", err)
	}
	defer f.Close()

	evt, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return evt, nil
}
