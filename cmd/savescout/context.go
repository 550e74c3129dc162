package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"savescout/internal/config"
	"savescout/internal/logging"
	"savescout/internal/titles"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	json      bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configFile bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	runID      string
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configFile = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the invocation logger, tagged with a fresh run ID.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.runID = uuid.NewString()
		logger, err := logging.NewFromConfig(cfg, c.runID)
		if err != nil {
			c.loggerErr = fmt.Errorf("setup logging: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withTitles opens the title database for the duration of fn.
func (c *commandContext) withTitles(fn func(*config.Config, *slog.Logger, *titles.Database) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	db, err := titles.Open(cfg.Titles.DatabasePath, logger)
	if err != nil {
		logging.ErrorWithContext(logger, "title database unavailable", "title_db_open_failed",
			logging.String(logging.FieldPath, cfg.Titles.DatabasePath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check titles.database_path or delete the file and re-import"))
		return fmt.Errorf("open title database: %w", err)
	}
	defer db.Close()
	return fn(cfg, logger, db)
}

func (c *commandContext) jsonOutput() bool {
	return c.flags != nil && c.flags.json
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// emit writes v as JSON when --json is set and calls text otherwise.
func (c *commandContext) emit(cmd *cobra.Command, v any, text func(out io.Writer) error) error {
	if c.jsonOutput() {
		return writeJSON(cmd, v)
	}
	return text(cmd.OutOrStdout())
}
