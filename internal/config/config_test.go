package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Motion.RevealThreshold != nil || cfg.Company.Name != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[company]
name = "Acme Homes"
phone = "(555) 000-0000"

[motion]
reveal-threshold = 0.25
counter-duration-ms = 1200
particles = false

[contact]
submit-delay-ms = 500

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Company.Name == nil || *cfg.Company.Name != "Acme Homes" {
		t.Fatalf("unexpected company name: %v", cfg.Company.Name)
	}
	if cfg.Motion.RevealThreshold == nil || *cfg.Motion.RevealThreshold != 0.25 {
		t.Fatalf("unexpected reveal threshold: %v", cfg.Motion.RevealThreshold)
	}
	if cfg.Motion.CounterDuration == nil || *cfg.Motion.CounterDuration != 1200 {
		t.Fatalf("unexpected counter duration: %v", cfg.Motion.CounterDuration)
	}
	if cfg.Motion.Particles == nil || *cfg.Motion.Particles {
		t.Fatalf("expected particles disabled")
	}
	if cfg.Motion.HeaderThreshold != nil {
		t.Fatalf("expected unset header threshold")
	}
	if cfg.Contact.SubmitDelay == nil || *cfg.Contact.SubmitDelay != 500 {
		t.Fatalf("unexpected submit delay: %v", cfg.Contact.SubmitDelay)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[motion]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "homeward", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "homeward", "homeward.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
