package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Launch contains the staggered-launch timing policy.
type Launch struct {
	// StartupDelayMS is slept before the first queued application.
	StartupDelayMS int `toml:"startup_delay_ms"`
	// DelayMS is slept before every subsequent application.
	DelayMS int `toml:"delay_ms"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the launch-history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// AppRule overrides admission and timing for a single application, matched
// by its unlocalized descriptor Name. Absent fields keep the global policy.
type AppRule struct {
	Name    string `toml:"name"`
	Allow   *bool  `toml:"allow"`
	DelayMS *int   `toml:"delay_ms"`
}

// Allowed reports whether the rule admits the application. A nil rule or an
// unset allow field defaults to allowed.
func (r *AppRule) Allowed() bool {
	return r == nil || r.Allow == nil || *r.Allow
}

// DelayOverride returns the per-application delay in milliseconds and
// whether one is configured.
func (r *AppRule) DelayOverride() (int, bool) {
	if r == nil || r.DelayMS == nil {
		return 0, false
	}
	return *r.DelayMS, true
}

// DirRule overrides admission for an entire scan directory.
type DirRule struct {
	Path  string `toml:"path"`
	Allow *bool  `toml:"allow"`
}

// Allowed reports whether the directory may be scanned.
func (r *DirRule) Allowed() bool {
	return r == nil || r.Allow == nil || *r.Allow
}

// Config encapsulates all configuration values for the autostart launcher.
//
// Sections by subsystem:
//   - Launch: startup and inter-application delays
//   - Logging: log format and level
//   - History: launch-history persistence
//   - Apps: per-application allow/delay rules
//   - Dirs: per-directory allow rules
type Config struct {
	Launch  Launch    `toml:"launch"`
	Logging Logging   `toml:"logging"`
	History History   `toml:"history"`
	Apps    []AppRule `toml:"apps"`
	Dirs    []DirRule `toml:"dirs"`
}

// FindApp returns the rule matching the given application name exactly, or
// nil when no rule exists. The first matching rule wins.
func (c *Config) FindApp(name string) *AppRule {
	for i := range c.Apps {
		if c.Apps[i].Name == name {
			return &c.Apps[i]
		}
	}
	return nil
}

// DirBlocked reports whether a scan directory is blocked by configuration.
// Directories without a rule are scanned.
func (c *Config) DirBlocked(path string) bool {
	for i := range c.Dirs {
		if c.Dirs[i].Path == path {
			return !c.Dirs[i].Allowed()
		}
	}
	return false
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/autostart-launcher/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
