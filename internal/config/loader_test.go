package config

import (
	"os"
	"path/filepath"
	"testing"
)

type mockFS struct {
	home  string
	files map[string][]byte
}

func (m *mockFS) UserHomeDir() (string, error) { return m.home, nil }
func (m *mockFS) ReadFile(path string) ([]byte, error) {
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func configPath(home string) string {
	return filepath.Join(home, ".config", ConfigDir, ConfigFile)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{home: "/home/u", files: map[string][]byte{}})

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesPresentKeysOnly(t *testing.T) {
	fs := &mockFS{home: "/home/u", files: map[string][]byte{
		configPath("/home/u"): []byte(`{"cache_file": ".cache/sums.json", "concurrency": 4}`),
	}}

	cfg, err := NewLoaderWithFS(fs).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CacheFile != ".cache/sums.json" {
		t.Errorf("cache_file not applied: %q", cfg.CacheFile)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("concurrency not applied: %d", cfg.Concurrency)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("absent key should keep default, got %q", cfg.LogLevel)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	fs := &mockFS{home: "/home/u", files: map[string][]byte{
		configPath("/home/u"): []byte(`{broken`),
	}}

	if _, err := NewLoaderWithFS(fs).Load(); err == nil {
		t.Error("malformed config should be an error")
	}
}

func TestLoadValidationFailure(t *testing.T) {
	fs := &mockFS{home: "/home/u", files: map[string][]byte{
		configPath("/home/u"): []byte(`{"log_level": "loud"}`),
	}}

	if _, err := NewLoaderWithFS(fs).Load(); err == nil {
		t.Error("invalid log level should be an error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}

	cfg.Concurrency = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative concurrency should fail validation")
	}
}
