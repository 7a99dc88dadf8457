package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"stuckscan/internal/config"
	"stuckscan/internal/corpus"
	"stuckscan/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared stderr logger from configuration.
// Command output goes to stdout; diagnostics stay on stderr.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			c.loggerErr = fmt.Errorf("setup logging: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) newScanner() (*corpus.Scanner, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return corpus.NewScanner(logger), nil
}

// scanFlags holds the options shared by every corpus-scanning command.
type scanFlags struct {
	window      int
	stuckGlob   string
	unstuckGlob string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.window, "window", "w", 0, "Number of consecutive steps per window")
	cmd.Flags().StringVar(&f.stuckGlob, "stuck-glob", "", "Glob pattern for stuck episodes (default from config)")
	cmd.Flags().StringVar(&f.unstuckGlob, "unstuck-glob", "", "Glob pattern for unstuck episodes (default from config)")
}

// resolve merges flags with configuration defaults and rejects a
// non-positive window before any scanning happens. The config fallback
// only applies when --window was not given, so an explicit zero still
// fails.
func (f *scanFlags) resolve(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("window") {
		f.window = cfg.Scan.Window
	}
	if f.window <= 0 {
		return fmt.Errorf("window length must be a positive integer (got %d)", f.window)
	}
	if strings.TrimSpace(f.stuckGlob) == "" {
		f.stuckGlob = cfg.Corpus.StuckGlob
	}
	if strings.TrimSpace(f.unstuckGlob) == "" {
		f.unstuckGlob = cfg.Corpus.UnstuckGlob
	}
	return nil
}

// resolveThreshold merges the --threshold flag with the configured
// default. The flag sentinel is negative because every metric is >= 0.
func resolveThreshold(flagValue float64, cfg *config.Config) (float64, error) {
	if flagValue >= 0 {
		return flagValue, nil
	}
	if cfg.Scan.Threshold > 0 {
		return cfg.Scan.Threshold, nil
	}
	return 0, fmt.Errorf("--threshold is required (no scan.threshold configured)")
}
