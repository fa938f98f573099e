package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// sampleEvent is a crash event with an exception correlated to the crashed
// thread and one quiet background thread.
const sampleEvent = `{
  "event_id": "cafe1234",
  "platform": "java",
  "exception": {
    "values": [
      {
        "type": "IllegalStateException",
        "value": "queue closed",
        "thread_id": 1,
        "stacktrace": {
          "frames": [
            {"function": "run", "module": "java.lang.Thread"},
            {"function": "poll", "module": "com.example.Queue", "filename": "/app/src/Queue.java", "lineno": 87}
          ]
        }
      }
    ]
  },
  "threads": {
    "values": [
      {"id": 1, "name": "main", "state": "RUNNABLE", "crashed": true, "current": true},
      {"id": 2, "name": "gc", "stacktrace": {"frames": [{"function": "collect", "module": "java.gc"}]}}
    ]
  }
}`

func writeEventFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create event file: %v", err)
	}
	return path
}

func runCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNewThreadsCommand(t *testing.T) {
	cmd := NewThreadsCommand()

	if cmd.Use != "threads <event-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"config", "output", "raw", "verbose", "quiet", "fail-on-crash", "webhook-url"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewFramesCommand(t *testing.T) {
	cmd := NewFramesCommand()

	if cmd.Use != "frames <event-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if cmd.Flags().Lookup("thread") == nil {
		t.Error("Missing flag: thread")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	out, err := runCommand(t, cmd, nil)
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "threadlens") {
		t.Errorf("version output = %q", out)
	}
}

func TestRunValidate_Success(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	config := `in_app:
  include: ["com.example."]
  exclude: ["java."]
output:
  format: text
webhooks:
  - url: https://hooks.example.com/crash
`
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	out, err := runCommand(t, NewValidateCommand(), []string{configPath})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid!") {
		t.Errorf("validate output = %q", out)
	}
	if !strings.Contains(out, "Webhooks:         1") {
		t.Errorf("validate output missing webhook count: %q", out)
	}
}

func TestRunValidate_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: xml\n"), 0o644); err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	if _, err := runCommand(t, NewValidateCommand(), []string{configPath}); err == nil {
		t.Error("validate expected error for bad format")
	}
}
