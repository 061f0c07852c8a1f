package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg.JournalDir == "" {
		t.Fatal("JournalDir should default, got empty")
	}
	if len(cfg.Systems) == 0 {
		t.Fatal("Systems should default, got empty")
	}
	if cfg.PollInterval() != 2*time.Second {
		t.Fatalf("PollInterval() = %v, want 2s", cfg.PollInterval())
	}
	if cfg.Debug {
		t.Fatal("Debug should default to false")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
journal_dir = "` + filepath.Join(dir, "logs") + `"
poll_seconds = 5
systems = ["Ground Ops", "Tower"]
debug = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.JournalDir != filepath.Join(dir, "logs") {
		t.Fatalf("JournalDir = %q", cfg.JournalDir)
	}
	if cfg.PollInterval() != 5*time.Second {
		t.Fatalf("PollInterval() = %v, want 5s", cfg.PollInterval())
	}
	if len(cfg.Systems) != 2 || cfg.Systems[0] != "Ground Ops" {
		t.Fatalf("Systems = %#v", cfg.Systems)
	}
	if !cfg.Debug {
		t.Fatal("Debug = false, want true")
	}
	if cfg.DebugLogPath == "" {
		t.Fatal("DebugLogPath should keep its default when unset")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("journal_dir = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}
}

func TestLoad_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`journal_dir = "~/skylog-test-logs"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := filepath.Join(home, "skylog-test-logs")
	if cfg.JournalDir != want {
		t.Fatalf("JournalDir = %q, want %q", cfg.JournalDir, want)
	}
}
