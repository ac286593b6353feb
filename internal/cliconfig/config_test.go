package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir 'data', got %s", cfg.DataDir)
	}
	if cfg.DefaultLanguage != "eng" {
		t.Errorf("expected default default_language 'eng', got %s", cfg.DefaultLanguage)
	}
	if cfg.AnnotationFormat != "double-colon" {
		t.Errorf("expected default annotation_format 'double-colon', got %s", cfg.AnnotationFormat)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	content := []byte("data_dir: /srv/utoken-data\ndefault_language: spa\n")
	if err := os.WriteFile(filepath.Join(tmpDir, "utoken.yml"), content, 0o644); err != nil {
		t.Fatalf("writing utoken.yml: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config file, got %v", err)
	}
	if cfg.DataDir != "/srv/utoken-data" {
		t.Errorf("expected data_dir from file, got %s", cfg.DataDir)
	}
	if cfg.DefaultLanguage != "spa" {
		t.Errorf("expected default_language from file, got %s", cfg.DefaultLanguage)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	content := []byte("default_language: spa\n")
	if err := os.WriteFile(filepath.Join(tmpDir, "utoken.yml"), content, 0o644); err != nil {
		t.Fatalf("writing utoken.yml: %v", err)
	}
	os.Setenv("UTOKEN_DEFAULT_LANGUAGE", "deu")
	defer os.Unsetenv("UTOKEN_DEFAULT_LANGUAGE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.DefaultLanguage != "deu" {
		t.Errorf("expected env var to override file, got %s", cfg.DefaultLanguage)
	}
}
