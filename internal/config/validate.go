package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if strings.TrimSpace(c.Tools.Magick) == "" {
		return errors.New("tools.magick must be set")
	}
	if strings.TrimSpace(c.Tools.Xelatex) == "" {
		return errors.New("tools.xelatex must be set")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.PangoDensity <= 0 {
		return errors.New("render.pango_density must be positive")
	}
	if c.Render.XelatexDensity <= 0 {
		return errors.New("render.xelatex_density must be positive")
	}
	resize := strings.TrimSpace(c.Render.PangoResize)
	if resize == "" {
		return errors.New("render.pango_resize must be set")
	}
	if !strings.HasSuffix(resize, "%") {
		return fmt.Errorf("render.pango_resize must be a percentage, got %q", resize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
