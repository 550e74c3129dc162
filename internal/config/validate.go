package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRoots(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRoots() error {
	for i, root := range c.Roots {
		if strings.TrimSpace(root.Path) == "" {
			return fmt.Errorf("%w: roots[%d].path must be set", ErrInvalid, i)
		}
		if root.Store == "" {
			return fmt.Errorf("%w: roots[%d].store must be set", ErrInvalid, i)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("%w: logging.level %q is not one of trace, debug, info, warn, error", ErrInvalid, c.Logging.Level)
	}
}
