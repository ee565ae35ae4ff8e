package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	m := &Manager{configPath: filepath.Join(t.TempDir(), ".repopitch.json")}

	config, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.DefaultTheme != "modern" {
		t.Errorf("expected default theme modern, got %s", config.DefaultTheme)
	}
	if config.DefaultTone != "balanced" {
		t.Errorf("expected default tone balanced, got %s", config.DefaultTone)
	}
	if config.ServerAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", config.ServerAddr)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := &Manager{configPath: filepath.Join(t.TempDir(), ".repopitch.json")}

	saved := &Config{
		DefaultTheme: "bold",
		DefaultTone:  "technical",
		ServerAddr:   ":9090",
	}
	if err := m.Save(saved); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, saved)
	}
}

func TestLoadFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".repopitch.json")
	if err := os.WriteFile(path, []byte(`{"default_theme":"classic"}`), 0600); err != nil {
		t.Fatal(err)
	}
	m := &Manager{configPath: path}

	config, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.DefaultTheme != "classic" {
		t.Errorf("expected classic, got %s", config.DefaultTheme)
	}
	if config.DefaultTone != "balanced" {
		t.Errorf("expected empty tone to default to balanced, got %s", config.DefaultTone)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".repopitch.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	m := &Manager{configPath: path}

	if _, err := m.Load(); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
