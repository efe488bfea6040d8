package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Input != "input" || cfg.Output != "output" {
		t.Errorf("unexpected directories: %q, %q", cfg.Input, cfg.Output)
	}
	if cfg.BaselinePages != 3 {
		t.Errorf("BaselinePages = %d, want 3", cfg.BaselinePages)
	}
	if cfg.MinConfidence != 0.4 {
		t.Errorf("MinConfidence = %v, want 0.4", cfg.MinConfidence)
	}
	if cfg.Compact {
		t.Error("Compact should default to false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outliner.yaml")
	body := "input: /tmp/docs\nmin_confidence: 0.6\ncompact: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Input != "/tmp/docs" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.MinConfidence != 0.6 {
		t.Errorf("MinConfidence = %v, want 0.6", cfg.MinConfidence)
	}
	if !cfg.Compact {
		t.Error("Compact should be true")
	}
	// Unset fields still pick up defaults.
	if cfg.Output != "output" {
		t.Errorf("Output = %q, want \"output\"", cfg.Output)
	}
	if cfg.BaselinePages != 3 {
		t.Errorf("BaselinePages = %d, want 3", cfg.BaselinePages)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestStem(t *testing.T) {
	tests := []struct{ in, want string }{
		{"docs/report.pdf", "report"},
		{"report.pdf", "report"},
		{"archive.v2.pdf", "archive.v2"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := stem(tt.in); got != tt.want {
			t.Errorf("stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
