package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"glyphgen/internal/logging"
	"glyphgen/internal/services"
)

func TestNewConsoleIncludesComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "resolver").Info("jobs resolved", logging.Int("jobs", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO resolver: jobs resolved") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "jobs=3") {
		t.Fatalf("expected attribute in console line: %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", logging.String("subset", "vowels"))

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"subset":"vowels"`) {
		t.Fatalf("unexpected json line: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithEngine(ctx, "xelatex")
	logging.WithContext(ctx, logger).Info("render started")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") || !strings.Contains(line, "engine=xelatex") {
		t.Fatalf("expected context fields in line: %q", line)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic or emit")
}
