package mode

import (
	"fmt"
	"strings"
)

// Mode is an editing mode.
type Mode uint8

const (
	// Normal is the navigation mode.
	Normal Mode = iota

	// Insert passes keys through to the host as text.
	Insert

	// Command edits the ":" command line.
	Command
)

// Standard mode names.
const (
	NameNormal  = "normal"
	NameInsert  = "insert"
	NameCommand = "command"
)

// String returns the lower-case mode name used in configuration and logs.
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	case Command:
		return NameCommand
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// DisplayName returns the name shown in the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	default:
		return strings.ToUpper(m.String())
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	default:
		return CursorBlock
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= Command
}

// Parse returns the mode with the given name (case-insensitive).
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNormal:
		return Normal, nil
	case NameInsert:
		return Insert, nil
	case NameCommand:
		return Command, nil
	}
	return Normal, fmt.Errorf("unknown mode: %q", name)
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
