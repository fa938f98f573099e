package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/threadlens/threadlens/pkg/config"
	"github.com/threadlens/threadlens/pkg/output"
)

func crashReport(crashed int) *output.Report {
	return &output.Report{
		Summary: output.Summary{Threads: 3, Crashed: crashed},
	}
}

func TestShouldSend(t *testing.T) {
	tests := []struct {
		trigger config.WebhookTrigger
		crashed int
		want    bool
	}{
		{config.WebhookTriggerAlways, 0, true},
		{config.WebhookTriggerAlways, 1, true},
		{config.WebhookTriggerNever, 1, false},
		{config.WebhookTriggerOnCrash, 0, false},
		{config.WebhookTriggerOnCrash, 1, true},
		{"", 0, false}, // empty trigger behaves as on_crash
		{"", 1, true},
	}
	for _, tt := range tests {
		got := ShouldSend(tt.trigger, crashReport(tt.crashed))
		if got != tt.want {
			t.Errorf("ShouldSend(%q, crashed=%d) = %v, want %v", tt.trigger, tt.crashed, got, tt.want)
		}
	}
}

func TestSend(t *testing.T) {
	var gotAuth, gotAgent string
	var gotBody output.Report

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), crashReport(1), SendOptions{
		URL:   server.URL,
		Token: "secret",
	})

	if !resp.Success() {
		t.Fatalf("Send() failed: %v", resp.Error)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotAgent != "threadlens-webhook" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if gotBody.Summary.Crashed != 1 {
		t.Errorf("posted Crashed = %d, want 1", gotBody.Summary.Crashed)
	}
}

func TestSend_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), crashReport(0), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Error("Send() reported success for a 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	resp := NewClient().Send(context.Background(), crashReport(0), SendOptions{
		URL:     "http://127.0.0.1:1/hook",
		Timeout: time.Second,
	})
	if resp.Success() || resp.Error == nil {
		t.Error("Send() expected a connection error")
	}
}
