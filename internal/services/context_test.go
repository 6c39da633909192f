package services

import (
	"context"
	"testing"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")
	id, ok := RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("expected run id to round-trip, got %q ok=%v", id, ok)
	}
}

func TestRunIDEmptyIsNoop(t *testing.T) {
	ctx := WithRunID(context.Background(), "")
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("empty run id should not be stored")
	}
}

func TestEngineRoundTrip(t *testing.T) {
	ctx := WithEngine(context.Background(), "pango")
	engine, ok := EngineFromContext(ctx)
	if !ok || engine != "pango" {
		t.Fatalf("expected engine to round-trip, got %q ok=%v", engine, ok)
	}
}
