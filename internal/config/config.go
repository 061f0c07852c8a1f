package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything Skylog reads from its config file.
type Config struct {
	JournalDir   string   // root directory for per-day entry files
	Systems      []string // subsystem choices offered by the entry form
	PollSeconds  int      // journal refresh cadence
	Debug        bool     // enable diagnostic logging
	DebugLogPath string   // where diagnostics go when Debug is set
}

const (
	defaultConfigPath   = "~/.config/skylog/config.toml"
	defaultJournalDir   = "~/.local/share/skylog/logs"
	defaultDebugLogPath = "~/.local/state/skylog/skylog.log"
	defaultPollSeconds  = 2
)

// DefaultSystems is the subsystem list offered when the config names none.
func DefaultSystems() []string {
	return []string{
		"Flight Control",
		"Navigation",
		"Radar",
		"Communications",
		"Fuel Management",
		"Engine Control",
		"Flight Data Recorder",
		"Avionics Software",
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		JournalDir   string   `toml:"journal_dir"`
		Systems      []string `toml:"systems"`
		PollSeconds  int      `toml:"poll_seconds"`
		Debug        bool     `toml:"debug"`
		DebugLogPath string   `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.JournalDir); dir != "" {
		cfg.JournalDir = mustExpand(dir)
	}
	if len(raw.Systems) > 0 {
		cfg.Systems = raw.Systems
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	cfg.Debug = raw.Debug
	if p := strings.TrimSpace(raw.DebugLogPath); p != "" {
		cfg.DebugLogPath = mustExpand(p)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		JournalDir:   mustExpand(defaultJournalDir),
		Systems:      DefaultSystems(),
		PollSeconds:  defaultPollSeconds,
		DebugLogPath: mustExpand(defaultDebugLogPath),
	}
}

// PollInterval returns the refresh cadence as a duration.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return defaultPollSeconds * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
