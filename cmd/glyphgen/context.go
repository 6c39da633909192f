package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"glyphgen/internal/config"
	"glyphgen/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
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
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the run logger. Output goes to stderr and, when the log
// directory is writable, to <log_dir>/glyphgen.log as well. The returned
// closer flushes and closes the file half.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	writer := io.Writer(os.Stderr)
	closer := func() {}

	logPath := filepath.Join(cfg.Paths.LogDir, "glyphgen.log")
	if err := logging.EnsureLogDir(cfg.Paths.LogDir); err == nil {
		file, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr == nil {
			writer = io.MultiWriter(os.Stderr, file)
			closer = func() { _ = file.Close() }
		} else {
			fmt.Fprintf(os.Stderr, "log file unavailable, logging to stderr only: %v\n", openErr)
		}
	} else {
		fmt.Fprintf(os.Stderr, "log directory unavailable, logging to stderr only: %v\n", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: writer,
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
