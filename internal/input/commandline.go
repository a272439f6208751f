package input

import (
	"strconv"
	"strings"
)

// ExName identifies an Ex command.
type ExName string

// Ex command names.
const (
	ExNone      ExName = ""
	ExWrite     ExName = "write"
	ExQuit      ExName = "quit"
	ExWriteQuit ExName = "write-quit"
	ExEdit      ExName = "edit"
	ExNew       ExName = "new"
	ExGoto      ExName = "goto"
	ExCopyPos   ExName = "copy-position"
	ExUnknown   ExName = "unknown"
)

// ExCommand is a parsed ":" command line.
type ExCommand struct {
	// Name is the command.
	Name ExName

	// Force is set when the command ends in "!".
	Force bool

	// Arg is the rest of the line after the command word.
	Arg string

	// Line is the 1-based target for ExGoto.
	Line int

	// Raw is the trimmed command line.
	Raw string
}

// CommandRunner executes Ex commands on behalf of a Machine. Line jumps are
// handled by the Machine itself and never reach the runner.
type CommandRunner interface {
	RunCommand(cmd ExCommand) error
}

// CommandRunnerFunc adapts a function to CommandRunner.
type CommandRunnerFunc func(cmd ExCommand) error

// RunCommand calls f(cmd).
func (f CommandRunnerFunc) RunCommand(cmd ExCommand) error {
	return f(cmd)
}

var exNames = map[string]ExName{
	"w":       ExWrite,
	"write":   ExWrite,
	"q":       ExQuit,
	"quit":    ExQuit,
	"wq":      ExWriteQuit,
	"x":       ExWriteQuit,
	"xit":     ExWriteQuit,
	"e":       ExEdit,
	"edit":    ExEdit,
	"new":     ExNew,
	"copypos": ExCopyPos,
	"cp":      ExCopyPos,
}

// ParseExCommand parses a command line without its leading ":".
func ParseExCommand(line string) ExCommand {
	raw := strings.TrimSpace(line)
	cmd := ExCommand{Raw: raw}
	if raw == "" {
		return cmd
	}

	if n, err := strconv.Atoi(raw); err == nil {
		cmd.Name = ExGoto
		cmd.Line = max(n, 1)
		return cmd
	}

	word, arg, _ := strings.Cut(raw, " ")
	cmd.Arg = strings.TrimSpace(arg)
	if strings.HasSuffix(word, "!") {
		cmd.Force = true
		word = strings.TrimSuffix(word, "!")
	}

	if name, ok := exNames[word]; ok {
		cmd.Name = name
	} else {
		cmd.Name = ExUnknown
	}
	return cmd
}

// commandLine is the text typed after ":".
type commandLine struct {
	runes []rune
}

func (c *commandLine) reset() {
	c.runes = c.runes[:0]
}

func (c *commandLine) insert(r rune) {
	c.runes = append(c.runes, r)
}

// backspace removes the last rune. It returns false when the line was
// already empty.
func (c *commandLine) backspace() bool {
	if len(c.runes) == 0 {
		return false
	}
	c.runes = c.runes[:len(c.runes)-1]
	return true
}

func (c *commandLine) String() string {
	return string(c.runes)
}
