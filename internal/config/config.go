package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/vimotion/internal/input"
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/input/vim"
	"github.com/dshills/vimotion/internal/logging"
)

// Config holds all vimotion settings.
type Config struct {
	Engine   EngineConfig   `toml:"engine" yaml:"engine"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
}

// EngineConfig configures the motion engine.
type EngineConfig struct {
	// InitialMode is "normal" or "insert".
	InitialMode string `toml:"initial_mode" yaml:"initial_mode"`
	// MaxCount caps typed counts.
	MaxCount int `toml:"max_count" yaml:"max_count"`
	// ShowPending shows the pending count and keys in the status line.
	ShowPending bool `toml:"show_pending" yaml:"show_pending"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty logs to stderr.
	File string `toml:"file" yaml:"file"`
}

// TerminalConfig configures the terminal host.
type TerminalConfig struct {
	// TabWidth is the display width of a tab stop.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// Watch reloads the open file when it changes on disk.
	Watch bool `toml:"watch" yaml:"watch"`
}

// Limits for numeric settings.
const (
	MaxTabWidth = 16
	MaxMaxCount = 1_000_000_000
)

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			InitialMode: mode.NameNormal,
			MaxCount:    vim.DefaultMaxCount,
			ShowPending: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			TabWidth: 4,
			Watch:    true,
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	m, err := mode.Parse(c.Engine.InitialMode)
	if err != nil || m == mode.Command {
		return &ValidationError{
			Field:   "engine.initial_mode",
			Message: "must be normal or insert",
			Value:   c.Engine.InitialMode,
			Err:     err,
		}
	}
	if c.Engine.MaxCount < 1 || c.Engine.MaxCount > MaxMaxCount {
		return &ValidationError{
			Field:   "engine.max_count",
			Message: fmt.Sprintf("must be between 1 and %d", MaxMaxCount),
			Value:   c.Engine.MaxCount,
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn or error",
			Value:   c.Logging.Level,
			Err:     err,
		}
	}
	if c.Terminal.TabWidth < 1 || c.Terminal.TabWidth > MaxTabWidth {
		return &ValidationError{
			Field:   "terminal.tab_width",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabWidth),
			Value:   c.Terminal.TabWidth,
		}
	}
	return nil
}

// InputConfig maps the engine settings onto a Machine configuration.
// Call Validate first; an unparseable mode falls back to Normal.
func (c *Config) InputConfig() input.Config {
	cfg := input.DefaultConfig()
	if m, err := mode.Parse(c.Engine.InitialMode); err == nil {
		cfg.InitialMode = m
	}
	cfg.MaxCount = c.Engine.MaxCount
	cfg.ShowPending = c.Engine.ShowPending
	return cfg
}

// OpenLogger creates the logger described by the logging settings. The
// returned close function releases the log file, if one was opened.
func (c *Config) OpenLogger() (*logging.Logger, func() error, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closer := func() error { return nil }
	if c.Logging.File != "" {
		f, err := os.OpenFile(c.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Output = out
	return logging.New(cfg), closer, nil
}

// Load reads defaults, the file at path (if any), and the environment, then
// validates the result. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the settings in the file at path onto c. A missing file
// leaves c unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec, err := decoderFor(path)
	if err != nil {
		return err
	}
	return dec.decode(path, data, c)
}
