package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	if err := c.normalizeRules(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeRules() error {
	for i := range c.Apps {
		c.Apps[i].Name = strings.TrimSpace(c.Apps[i].Name)
	}
	for i := range c.Dirs {
		expanded, err := expandPath(strings.TrimSpace(c.Dirs[i].Path))
		if err != nil {
			return fmt.Errorf("dirs[%d].path: %w", i, err)
		}
		c.Dirs[i].Path = expanded
	}
	return nil
}
