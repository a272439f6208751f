package input

import (
	"github.com/google/uuid"

	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/engine/motion"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/input/vim"
	"github.com/dshills/vimotion/internal/logging"
)

// Outcome reports what happened to a single key event.
type Outcome uint8

const (
	// Consumed means the Machine handled the key.
	Consumed Outcome = iota

	// Passthrough means the Machine did not use the key. In Insert mode
	// the host should apply it as an edit.
	Passthrough
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == Passthrough {
		return "passthrough"
	}
	return "consumed"
}

// Stats counts what a Machine has processed.
type Stats struct {
	Keys           int
	Motions        int
	FailedSearches int
	Invalid        int
	ModeChanges    int
}

// Machine is the modal state machine for one document.
type Machine struct {
	id      uuid.UUID
	config  Config
	log     *logging.Logger
	modes   *mode.Manager
	parser  *vim.Parser
	search  vim.SearchMemory
	cmdline commandLine
	scroll  vim.Scroll
	stats   Stats
}

// New creates a Machine.
func New(cfg Config) *Machine {
	if !cfg.InitialMode.Valid() {
		cfg.InitialMode = mode.Normal
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = vim.DefaultMaxCount
	}

	id := uuid.New()
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	log = log.WithComponent("input").WithField("doc", id.String())

	m := &Machine{
		id:     id,
		config: cfg,
		log:    log,
		modes:  mode.NewManager(cfg.InitialMode),
		parser: vim.NewParser(cfg.MaxCount),
	}
	m.modes.OnChange(func(from, to mode.Mode) {
		m.stats.ModeChanges++
		m.log.Debug("mode %s -> %s", from, to)
	})
	return m
}

// ID returns the document id used to correlate log lines.
func (m *Machine) ID() string {
	return m.id.String()
}

// Mode returns the active mode.
func (m *Machine) Mode() mode.Mode {
	return m.modes.Current()
}

// PendingCount returns the typed count, or 0 when none is pending.
func (m *Machine) PendingCount() int {
	return m.parser.Count()
}

// PendingKeys returns the pending count and keys, e.g. "3g".
func (m *Machine) PendingKeys() string {
	return m.parser.PendingKeys()
}

// LastSearch returns the remembered character search.
func (m *Machine) LastSearch() (motion.CharSearch, bool) {
	return m.search.Last()
}

// CommandLine returns the text typed after ":" in Command mode.
func (m *Machine) CommandLine() string {
	return m.cmdline.String()
}

// ScrollHint returns the viewport request made by the last completed
// Normal-mode command, or ScrollNone.
func (m *Machine) ScrollHint() vim.Scroll {
	return m.scroll
}

// Stats returns the processing counters.
func (m *Machine) Stats() Stats {
	return m.stats
}

// OnModeChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Machine) OnModeChange(fn func(from, to mode.Mode)) func() {
	return m.modes.OnChange(fn)
}

// Status returns the status line text: the mode name, followed by pending
// keys in Normal mode, or the command line in Command mode.
func (m *Machine) Status() string {
	switch m.modes.Current() {
	case mode.Command:
		return ":" + m.cmdline.String()
	case mode.Normal:
		name := mode.Normal.DisplayName()
		if pending := m.parser.PendingKeys(); m.config.ShowPending && pending != "" {
			return name + " - " + pending
		}
		return name
	default:
		return m.modes.Current().DisplayName()
	}
}

// HandleTick processes a batch of key events in order. The cursor is
// clamped into the text before use.
func (m *Machine) HandleTick(events []key.Event, text string, cursor *int) {
	if cursor == nil {
		return
	}
	snap := buffer.NewSnapshot(text)
	for _, ev := range events {
		m.handle(ev, snap, cursor)
	}
}

// HandleEvent processes one key event. Use it when the host edits the
// text between keys.
func (m *Machine) HandleEvent(ev key.Event, text string, cursor *int) Outcome {
	if cursor == nil {
		var scratch int
		cursor = &scratch
	}
	return m.handle(ev, buffer.NewSnapshot(text), cursor)
}

func (m *Machine) handle(ev key.Event, snap *buffer.Snapshot, cursor *int) Outcome {
	m.stats.Keys++
	*cursor = snap.Clamp(*cursor)

	switch m.modes.Current() {
	case mode.Insert:
		return m.handleInsert(ev, snap, cursor)
	case mode.Command:
		return m.handleCommand(ev, snap, cursor)
	default:
		return m.handleNormal(ev, snap, cursor)
	}
}

func (m *Machine) handleInsert(ev key.Event, snap *buffer.Snapshot, cursor *int) Outcome {
	if !ev.IsEscape() {
		return Passthrough
	}
	*cursor = max(*cursor-1, 0)
	m.modes.Switch(mode.Normal)
	return Consumed
}

func (m *Machine) handleNormal(ev key.Event, snap *buffer.Snapshot, cursor *int) Outcome {
	result := m.parser.Parse(ev)
	switch result.Status {
	case vim.StatusPending:
		return Consumed
	case vim.StatusInvalid:
		m.stats.Invalid++
		m.log.Debug("discarded key sequence ending in %s", ev)
		return Consumed
	case vim.StatusPassthrough:
		return Passthrough
	}

	m.scroll = vim.ScrollNone
	m.execute(result.Command, snap, cursor)
	return Consumed
}

// execute runs a complete Normal-mode command.
func (m *Machine) execute(cmd *vim.Command, snap *buffer.Snapshot, cursor *int) {
	switch cmd.Action {
	case vim.ActionMotion:
		m.stats.Motions++
		*cursor, _ = motion.Apply(snap, *cursor, cmd.Request())

	case vim.ActionFind:
		m.stats.Motions++
		off, ok := motion.Apply(snap, *cursor, cmd.Request())
		if !ok {
			m.stats.FailedSearches++
			m.log.Debug("search %s found no match", cmd.Keys)
			return
		}
		*cursor = off
		m.search.Remember(cmd.Search)

	case vim.ActionRepeatFind:
		last, ok := m.search.Last()
		if !ok {
			return
		}
		if cmd.Reverse {
			last = last.Reversed()
		}
		m.stats.Motions++
		off, ok := motion.Find(snap, *cursor, cmd.GetCount(), last)
		if !ok {
			m.stats.FailedSearches++
			m.log.Debug("repeated search %s found no match", last)
			return
		}
		*cursor = off

	case vim.ActionInsert:
		*cursor = insertPosition(snap, *cursor, cmd.Insert)
		m.modes.Switch(mode.Insert)

	case vim.ActionCommandLine:
		m.cmdline.reset()
		m.modes.Switch(mode.Command)

	case vim.ActionScroll:
		m.scroll = cmd.Scroll
	}
}

// insertPosition returns where Insert mode starts for pos.
func insertPosition(snap *buffer.Snapshot, offset int, pos vim.InsertPosition) int {
	switch pos {
	case vim.InsertAfter:
		if offset < snap.LineEnd(snap.LineOf(offset)) {
			return offset + 1
		}
		return offset
	case vim.InsertLineEnd:
		return motion.LineEndSlot(snap, offset)
	case vim.InsertFirstNonBlank:
		return motion.FirstNonBlank(snap, offset)
	default:
		return offset
	}
}

func (m *Machine) handleCommand(ev key.Event, snap *buffer.Snapshot, cursor *int) Outcome {
	switch {
	case ev.IsEscape():
		m.cmdline.reset()
		m.modes.Switch(mode.Normal)

	case ev.Key == key.KeyEnter:
		cmd := ParseExCommand(m.cmdline.String())
		m.cmdline.reset()
		m.modes.Switch(mode.Normal)
		m.runEx(cmd, snap, cursor)

	case ev.Key == key.KeyBackspace:
		if !m.cmdline.backspace() {
			m.modes.Switch(mode.Normal)
		}

	case ev.IsPlainRune():
		m.cmdline.insert(ev.Rune)
	}
	return Consumed
}

// runEx executes a parsed command line.
func (m *Machine) runEx(cmd ExCommand, snap *buffer.Snapshot, cursor *int) {
	switch cmd.Name {
	case ExNone:
		return
	case ExGoto:
		m.stats.Motions++
		*cursor, _ = motion.Apply(snap, *cursor, motion.Request{Kind: motion.KindGotoLine, Line: cmd.Line})
		return
	case ExUnknown:
		m.log.Warn("unknown command %q", cmd.Raw)
		return
	}

	if m.config.Commands == nil {
		m.log.Debug("no command runner for %q", cmd.Raw)
		return
	}
	if err := m.config.Commands.RunCommand(cmd); err != nil {
		m.log.Error("command %q: %v", cmd.Raw, err)
	}
}
