package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Scan.Window < 0 {
		return fmt.Errorf("scan.window must not be negative (got %d)", c.Scan.Window)
	}
	if c.Scan.Threshold < 0 {
		return fmt.Errorf("scan.threshold must not be negative (got %g)", c.Scan.Threshold)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	if c.Corpus.StuckGlob == "" || c.Corpus.UnstuckGlob == "" {
		return errors.New("corpus globs must not be empty")
	}
	return nil
}
