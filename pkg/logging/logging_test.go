package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Info("saved lists", "identity", "bob", "count", 2)
	log.Debug("hidden")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "saved lists" || rec["identity"] != "bob" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, "text")

	log.Info("quiet")
	log.Warn("malformed lists", "key", "lists:bob")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line should be filtered at warn: %q", out)
	}
	if !strings.Contains(out, "malformed lists") || !strings.Contains(out, "key=lists:bob") {
		t.Errorf("expected warn line with attrs, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal writer should not get color codes: %q", out)
	}
}
