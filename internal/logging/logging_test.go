package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_ErrorIncludesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO")

	logger.Error("boom", "component", "test")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "boom" {
		t.Errorf("expected msg=boom, got %v", entry["msg"])
	}
	if _, ok := entry["stacktrace"]; !ok {
		t.Error("expected stacktrace attribute on ERROR record")
	}
}

func TestNew_InfoHasNoStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO").With("service", "contact")

	logger.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := entry["stacktrace"]; ok {
		t.Error("INFO record should not carry a stacktrace")
	}
	if entry["service"] != "contact" {
		t.Errorf("expected With attrs to survive, got %v", entry["service"])
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")

	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered at WARN, got %s", buf.String())
	}
}
