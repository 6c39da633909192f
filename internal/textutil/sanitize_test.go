package textutil

import "testing"

func TestEscapeNamePassthrough(t *testing.T) {
	got, err := EscapeName("vowels_basic-01")
	if err != nil {
		t.Fatalf("EscapeName returned error: %v", err)
	}
	if got != "vowels_basic-01" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestEscapeNameReplacesUnsafeRunes(t *testing.T) {
	got, err := EscapeName("ka (क)")
	if err != nil {
		t.Fatalf("EscapeName returned error: %v", err)
	}
	if got != "ka__क_" {
		t.Fatalf("unexpected escape result: %q", got)
	}
}

func TestEscapeNameKeepsNonLatinLetters(t *testing.T) {
	cases := map[string]string{
		"क":    "क",
		"ख":    "ख",
		"гора": "гора",
		"१२३":  "१२३",
		"अ/आ":  "अ_आ",
		// Combining marks are not letters; the virama becomes an underscore.
		"क्ष": "क_ष",
	}
	for input, want := range cases {
		got, err := EscapeName(input)
		if err != nil {
			t.Fatalf("EscapeName(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("EscapeName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEscapeNameTrimsWhitespace(t *testing.T) {
	got, err := EscapeName("  aksara  ")
	if err != nil {
		t.Fatalf("EscapeName returned error: %v", err)
	}
	if got != "aksara" {
		t.Fatalf("unexpected escape result: %q", got)
	}
}

func TestEscapeNameRejectsEmptyResult(t *testing.T) {
	if _, err := EscapeName("   "); err == nil {
		t.Fatal("expected error for whitespace-only name")
	}
}
