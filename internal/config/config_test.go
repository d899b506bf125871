package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ProposalMaxChars != 1500 {
		t.Errorf("ProposalMaxChars = %d, want 1500", cfg.ProposalMaxChars)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want gemini-2.0-flash", cfg.Model)
	}
	if len(cfg.Services) != 5 {
		t.Fatalf("len(Services) = %d, want 5", len(cfg.Services))
	}
	if cfg.Services[0].Name != "Career Development Coaching" {
		t.Errorf("Services[0].Name = %q", cfg.Services[0].Name)
	}
	if cfg.Author.Name == "" {
		t.Error("Author.Name should not be empty")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Missing file falls back to defaults
	if cfg.ProposalMaxChars != 1500 {
		t.Errorf("ProposalMaxChars = %d, want 1500", cfg.ProposalMaxChars)
	}
	if len(cfg.Services) != 5 {
		t.Errorf("len(Services) = %d, want 5", len(cfg.Services))
	}
}

func TestLoad_Overlay(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{
		"author": {"name": "Test Coach", "headline": "Coach", "experience": "Ten years."},
		"model": "gemini-2.5-pro",
		"proposal_max_chars": 900,
		"web_port": 9999,
		"disabled_tools": ["request_export"]
	}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Author.Name != "Test Coach" {
		t.Errorf("Author.Name = %q, want Test Coach", cfg.Author.Name)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want gemini-2.5-pro", cfg.Model)
	}
	if cfg.ProposalMaxChars != 900 {
		t.Errorf("ProposalMaxChars = %d, want 900", cfg.ProposalMaxChars)
	}
	if cfg.WebPort != 9999 {
		t.Errorf("WebPort = %d, want 9999", cfg.WebPort)
	}
	// Unset fields keep defaults
	if len(cfg.Services) != 5 {
		t.Errorf("len(Services) = %d, want 5 (default catalog)", len(cfg.Services))
	}
	if cfg.WebBind != "127.0.0.1" {
		t.Errorf("WebBind = %q, want 127.0.0.1", cfg.WebBind)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "request_export" {
		t.Errorf("DisabledTools = %v", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load() should fail on invalid JSON")
	}
}

func TestMerge_ServicesReplacedWholesale(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{
		Services: []ServiceOffering{{Name: "Mentoring", Description: "One on one mentoring."}},
	}

	merged := Merge(base, overlay)

	if len(merged.Services) != 1 {
		t.Fatalf("len(Services) = %d, want 1", len(merged.Services))
	}
	if merged.Services[0].Name != "Mentoring" {
		t.Errorf("Services[0].Name = %q, want Mentoring", merged.Services[0].Name)
	}
	if merged.HasService("Training") {
		t.Error("overlay catalog should fully replace the default catalog")
	}
}

func TestAPIKey_EnvPrecedence(t *testing.T) {
	cfg := &Config{GeminiAPIKey: "from-config"}

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	if got := cfg.APIKey(); got != "from-config" {
		t.Errorf("APIKey() = %q, want from-config", got)
	}

	t.Setenv("GOOGLE_API_KEY", "from-google-env")
	if got := cfg.APIKey(); got != "from-google-env" {
		t.Errorf("APIKey() = %q, want from-google-env", got)
	}

	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	if got := cfg.APIKey(); got != "from-gemini-env" {
		t.Errorf("APIKey() = %q, want from-gemini-env", got)
	}
}

func TestHasService(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.HasService("Resume Writing") {
		t.Error("HasService(Resume Writing) = false, want true")
	}
	if cfg.HasService("resume writing") {
		t.Error("HasService is case-sensitive; lowercase should not match")
	}
	if cfg.HasService("") {
		t.Error("HasService(\"\") = true, want false")
	}
}

func TestServiceNames(t *testing.T) {
	cfg := DefaultConfig()
	names := cfg.ServiceNames()

	if len(names) != 5 {
		t.Fatalf("len = %d, want 5", len(names))
	}
	if names[3] != "Resume Writing" {
		t.Errorf("names[3] = %q, want Resume Writing", names[3])
	}
}
