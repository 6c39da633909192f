package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glyphgen/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "glyphgen", "state")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Tools.Magick != "magick" || cfg.Tools.Xelatex != "xelatex" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if cfg.Render.PangoDensity != 600 || cfg.Render.XelatexDensity != 1200 {
		t.Fatalf("unexpected render defaults: %+v", cfg.Render)
	}
	if cfg.Render.PangoResize != "25%" {
		t.Fatalf("unexpected pango resize default: %q", cfg.Render.PangoResize)
	}
	if !cfg.Manifest.Enabled {
		t.Fatal("expected manifest enabled by default")
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`output_dir = "` + filepath.Join(dir, "out") + `"`,
		"[tools]",
		`magick = "magick-7"`,
		"[render]",
		"pango_density = 300",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit file to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.OutputDir != filepath.Join(dir, "out") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.Tools.Magick != "magick-7" {
		t.Fatalf("unexpected magick binary: %q", cfg.Tools.Magick)
	}
	if cfg.Render.PangoDensity != 300 {
		t.Fatalf("unexpected pango density: %d", cfg.Render.PangoDensity)
	}
	// Unset sections keep defaults.
	if cfg.Render.XelatexDensity != 1200 {
		t.Fatalf("unexpected xelatex density: %d", cfg.Render.XelatexDensity)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestLoadRejectsBadResize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[render]\npango_resize = \"25\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for non-percentage resize")
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/specs")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "specs") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[tools]") {
		t.Fatalf("sample config missing tools section: %q", data)
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
