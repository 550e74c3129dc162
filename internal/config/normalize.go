package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeRoots(); err != nil {
		return err
	}
	if err := c.normalizeHeroic(); err != nil {
		return err
	}
	if err := c.normalizeTitles(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeDiagnostics()
	return nil
}

func (c *Config) normalizeRoots() error {
	for i := range c.Roots {
		expanded, err := expandPath(strings.TrimSpace(c.Roots[i].Path))
		if err != nil {
			return fmt.Errorf("roots[%d].path: %w", i, err)
		}
		c.Roots[i].Path = expanded
	}
	return nil
}

func (c *Config) normalizeHeroic() error {
	var err error
	if c.Heroic.LegendaryConfigDir, err = expandPath(strings.TrimSpace(c.Heroic.LegendaryConfigDir)); err != nil {
		return fmt.Errorf("heroic.legendary_config_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTitles() error {
	if strings.TrimSpace(c.Titles.DatabasePath) == "" {
		c.Titles.DatabasePath = defaultTitleDBPath
	}
	var err error
	if c.Titles.DatabasePath, err = expandPath(c.Titles.DatabasePath); err != nil {
		return fmt.Errorf("titles.database_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
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
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDiagnostics() {
	if _, ok := os.LookupEnv(debugEnvironmentKey); ok {
		c.Diagnostics.Debug = true
	}
}
