package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"autostart/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Launch.DelayMS != 200 {
		t.Fatalf("unexpected default delay: %d", cfg.Launch.DelayMS)
	}
	if cfg.Launch.StartupDelayMS != 0 {
		t.Fatalf("unexpected default startup delay: %d", cfg.Launch.StartupDelayMS)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	wantHistory := filepath.Join(tempHome, ".local", "state", "autostart-launcher", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "launcher.toml")

	type payload struct {
		Launch struct {
			StartupDelayMS int `toml:"startup_delay_ms"`
			DelayMS        int `toml:"delay_ms"`
		} `toml:"launch"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Launch.StartupDelayMS = 1000
	custom.Launch.DelayMS = 50
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Launch.StartupDelayMS != 1000 || cfg.Launch.DelayMS != 50 {
		t.Fatalf("unexpected delays: %+v", cfg.Launch)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format after normalization, got %q", cfg.Logging.Format)
	}
}

func TestLoadRuleTables(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "launcher.toml")
	contents := `
[[apps]]
name = "Blocked App"
allow = false

[[apps]]
name = "Slow App"
delay_ms = 1500

[[dirs]]
path = "/usr/share/autostart"
allow = false
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	blocked := cfg.FindApp("Blocked App")
	if blocked == nil {
		t.Fatal("expected rule for Blocked App")
	}
	if blocked.Allowed() {
		t.Fatal("expected Blocked App to be disallowed")
	}
	if _, ok := blocked.DelayOverride(); ok {
		t.Fatal("expected no delay override for Blocked App")
	}

	slow := cfg.FindApp("Slow App")
	if slow == nil {
		t.Fatal("expected rule for Slow App")
	}
	if !slow.Allowed() {
		t.Fatal("absent allow field should default to allowed")
	}
	if delay, ok := slow.DelayOverride(); !ok || delay != 1500 {
		t.Fatalf("unexpected delay override: %d, %v", delay, ok)
	}

	if cfg.FindApp("Unlisted") != nil {
		t.Fatal("expected nil rule for unlisted app")
	}
	if !cfg.FindApp("Unlisted").Allowed() {
		t.Fatal("nil rule should default to allowed")
	}

	if !cfg.DirBlocked("/usr/share/autostart") {
		t.Fatal("expected /usr/share/autostart to be blocked")
	}
	if cfg.DirBlocked("/etc/xdg/autostart") {
		t.Fatal("directory without a rule should not be blocked")
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.DelayMS = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative delay")
	}

	cfg = config.Default()
	cfg.Launch.StartupDelayMS = -5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative startup delay")
	}

	cfg = config.Default()
	cfg.Apps = []config.AppRule{{Name: ""}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unnamed app rule")
	}

	cfg = config.Default()
	negative := -100
	cfg.Apps = []config.AppRule{{Name: "App", DelayMS: &negative}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative delay override")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	// Validate it decodes
	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Launch.DelayMS != 200 {
		t.Fatalf("sample delay should match the default, got %d", cfg.Launch.DelayMS)
	}
}
