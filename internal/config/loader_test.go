package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesFallback(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "session:\n  lives: 5\n  course: custom.csv\nghosts:\n  max_rendered: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Session.Lives != 5 || cfg.Session.Course != "custom.csv" {
		t.Errorf("session config parsed wrong: %+v", cfg.Session)
	}
	if cfg.Ghosts.MaxRendered != 2 {
		t.Errorf("ghost config parsed wrong: %+v", cfg.Ghosts)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("a missing explicit config path must fail loudly")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("::not yaml::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("an unparseable explicit config must fail loudly")
	}
}
