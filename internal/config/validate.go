package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLaunch(); err != nil {
		return err
	}
	if err := c.validateRules(); err != nil {
		return err
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLaunch() error {
	if c.Launch.StartupDelayMS < 0 {
		return errors.New("launch.startup_delay_ms must be >= 0")
	}
	if c.Launch.DelayMS < 0 {
		return errors.New("launch.delay_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateRules() error {
	for i := range c.Apps {
		rule := &c.Apps[i]
		if rule.Name == "" {
			return fmt.Errorf("apps[%d].name must be set", i)
		}
		if delay, ok := rule.DelayOverride(); ok && delay < 0 {
			return fmt.Errorf("apps[%d].delay_ms must be >= 0", i)
		}
	}
	for i := range c.Dirs {
		if c.Dirs[i].Path == "" {
			return fmt.Errorf("dirs[%d].path must be set", i)
		}
	}
	return nil
}
