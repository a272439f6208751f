package input

import (
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/input/vim"
	"github.com/dshills/vimotion/internal/logging"
)

// Config configures a Machine.
type Config struct {
	// InitialMode is the mode a new Machine starts in (default: Normal).
	InitialMode mode.Mode

	// MaxCount caps typed counts (default: 99999).
	MaxCount int

	// ShowPending includes the pending count and keys in Status.
	ShowPending bool

	// Commands receives Ex commands other than line jumps. May be nil.
	Commands CommandRunner

	// Logger receives debug traces and warnings. Nil disables logging.
	Logger *logging.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialMode: mode.Normal,
		MaxCount:    vim.DefaultMaxCount,
		ShowPending: true,
	}
}
