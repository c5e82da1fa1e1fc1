package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DefaultModel != "" {
		t.Errorf("DefaultModel = %q, want empty", cfg.DefaultModel)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
	if cfg.Markdown.Style != "dark" {
		t.Errorf("Markdown.Style = %q, want dark", cfg.Markdown.Style)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.DefaultModel = "llama-3.2-3b"
	cfg.Verbose = true
	cfg.CopyToClipboard = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.DefaultModel != "llama-3.2-3b" {
		t.Errorf("DefaultModel = %q, want llama-3.2-3b", loaded.DefaultModel)
	}
	if !loaded.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !loaded.CopyToClipboard {
		t.Error("CopyToClipboard = false, want true")
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chatsafe")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() error = nil, want parse failure")
	}
	// Defaults still come back usable
	if cfg.Markdown.Style != "dark" {
		t.Errorf("Markdown.Style = %q, want dark fallback", cfg.Markdown.Style)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("config path is not a directory")
	}
}
