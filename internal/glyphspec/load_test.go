package glyphspec_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glyphgen/internal/glyphspec"
	"glyphgen/internal/services"
)

const sampleDoc = `{
  "settings": {
    "name": "devanagari",
    "defaultFont": "Noto Sans Devanagari",
    "pango": "pango:<span font='{1}'>{0}</span>",
    "xelatex": "\\font\\f=\"{1}\" \\f {0}"
  },
  "subsets": {
    "vowels": [
      {"name": "a", "renditions": [{"utf8": "अ"}]},
      {"name": "aa", "alts": ["ā"], "renditions": [{"utf8": "आ"}, {"utf8": "ा", "pango-flip": true}]}
    ],
    "consonants": [
      {"name": "ka", "renditions": [{"utf8": "क", "font": "Annapurna SIL"}]}
    ]
  }
}`

func TestParsePreservesSubsetOrder(t *testing.T) {
	doc, err := glyphspec.Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Subsets) != 2 {
		t.Fatalf("expected 2 subsets, got %d", len(doc.Subsets))
	}
	if doc.Subsets[0].Name != "vowels" || doc.Subsets[1].Name != "consonants" {
		t.Fatalf("subset order not preserved: %q, %q", doc.Subsets[0].Name, doc.Subsets[1].Name)
	}
}

func TestParseOrderIndependentOfLexicalSort(t *testing.T) {
	// "zz" sorts after "aa" but appears first; document order must win.
	docJSON := `{
	  "settings": {"name": "x", "pango": "p:{0}"},
	  "subsets": {
	    "zz": [{"name": "one", "renditions": [{"utf8": "1"}]}],
	    "aa": [{"name": "two", "renditions": [{"utf8": "2"}]}]
	  }
	}`
	doc, err := glyphspec.Parse(strings.NewReader(docJSON))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if doc.Subsets[0].Name != "zz" || doc.Subsets[1].Name != "aa" {
		t.Fatalf("expected document order zz,aa; got %q,%q", doc.Subsets[0].Name, doc.Subsets[1].Name)
	}
}

func TestParseDecodesEntryFields(t *testing.T) {
	doc, err := glyphspec.Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	vowels := doc.Subsets[0]
	if len(vowels.Entries) != 2 {
		t.Fatalf("expected 2 vowel entries, got %d", len(vowels.Entries))
	}
	aa := vowels.Entries[1]
	if len(aa.Alts) != 1 || aa.Alts[0] != "ā" {
		t.Fatalf("alts not recorded: %#v", aa.Alts)
	}
	if len(aa.Renditions) != 2 {
		t.Fatalf("expected 2 renditions, got %d", len(aa.Renditions))
	}
	if !aa.Renditions[1].PangoFlip {
		t.Fatal("pango-flip not decoded")
	}

	ka := doc.Subsets[1].Entries[0]
	if ka.Renditions[0].Font != "Annapurna SIL" {
		t.Fatalf("rendition font not decoded: %q", ka.Renditions[0].Font)
	}
	if doc.EntryCount() != 3 {
		t.Fatalf("unexpected entry count: %d", doc.EntryCount())
	}
}

func TestParseRejectsMissingSettings(t *testing.T) {
	_, err := glyphspec.Parse(strings.NewReader(`{"subsets": {}}`))
	if err == nil {
		t.Fatal("expected error for missing settings")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestParseRejectsMissingSubsets(t *testing.T) {
	_, err := glyphspec.Parse(strings.NewReader(`{"settings": {"name": "x"}}`))
	if err == nil {
		t.Fatal("expected error for missing subsets")
	}
}

func TestParseRejectsSubsetsOfWrongShape(t *testing.T) {
	_, err := glyphspec.Parse(strings.NewReader(`{"settings": {"name": "x"}, "subsets": []}`))
	if err == nil {
		t.Fatal("expected error for non-object subsets")
	}
}

func TestParseRejectsEntryWithoutRenditions(t *testing.T) {
	docJSON := `{
	  "settings": {"name": "x"},
	  "subsets": {"v": [{"name": "a", "renditions": []}]}
	}`
	_, err := glyphspec.Parse(strings.NewReader(docJSON))
	if err == nil {
		t.Fatal("expected error for entry without renditions")
	}
	if !strings.Contains(err.Error(), "\"a\"") {
		t.Fatalf("error should name the entry: %v", err)
	}
}

func TestParseRejectsUnnamedEntry(t *testing.T) {
	docJSON := `{
	  "settings": {"name": "x"},
	  "subsets": {"v": [{"renditions": [{"utf8": "a"}]}]}
	}`
	if _, err := glyphspec.Parse(strings.NewReader(docJSON)); err == nil {
		t.Fatal("expected error for unnamed entry")
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := glyphspec.Parse(strings.NewReader(`{"settings":`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	doc, err := glyphspec.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Settings.Name != "devanagari" {
		t.Fatalf("unexpected settings name: %q", doc.Settings.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := glyphspec.Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
