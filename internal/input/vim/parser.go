package vim

import (
	"github.com/dshills/vimotion/internal/engine/motion"
	"github.com/dshills/vimotion/internal/input/key"
)

// ParseStatus indicates the result of parsing a key event.
type ParseStatus uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates a pending sequence was rejected. The parser
	// has been reset, including the count.
	StatusInvalid

	// StatusPassthrough indicates the key is not a Normal-mode command.
	// The parser state, including the count, is unchanged.
	StatusPassthrough
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	case StatusPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateIdle is waiting for a count or a command key.
	StateIdle ParseState = iota

	// StateCharTarget has received f/F/t/T, waiting for the target rune.
	StateCharTarget

	// StateLeader has received 'g' or 'z', waiting for the second key.
	StateLeader
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCharTarget:
		return "charTarget"
	case StateLeader:
		return "leader"
	default:
		return "unknown"
	}
}

// Action is what a complete command asks the machine to do.
type Action uint8

const (
	// ActionNone does nothing.
	ActionNone Action = iota

	// ActionMotion runs Command.Motion.
	ActionMotion

	// ActionFind runs the character search in Command.Search.
	ActionFind

	// ActionRepeatFind replays the remembered search (";" and ",").
	ActionRepeatFind

	// ActionInsert enters Insert mode at Command.Insert.
	ActionInsert

	// ActionCommandLine opens the ":" command line.
	ActionCommandLine

	// ActionScroll reports Command.Scroll to the host.
	ActionScroll

	// ActionCancel aborts whatever was pending (Escape).
	ActionCancel
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionMotion:      "motion",
	ActionFind:        "find",
	ActionRepeatFind:  "repeatFind",
	ActionInsert:      "insert",
	ActionCommandLine: "commandLine",
	ActionScroll:      "scroll",
	ActionCancel:      "cancel",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// InsertPosition selects where Insert mode starts.
type InsertPosition uint8

const (
	// InsertBefore inserts at the cursor (i).
	InsertBefore InsertPosition = iota

	// InsertAfter inserts after the cursor (a).
	InsertAfter

	// InsertLineEnd inserts at the end of the line (A).
	InsertLineEnd

	// InsertFirstNonBlank inserts before the first non-blank (I).
	InsertFirstNonBlank
)

// Scroll is a request to reposition the viewport around the cursor.
type Scroll uint8

const (
	// ScrollNone requests nothing.
	ScrollNone Scroll = iota

	// ScrollCenter puts the cursor line in the middle (zz).
	ScrollCenter

	// ScrollTop puts the cursor line at the top (zt).
	ScrollTop

	// ScrollBottom puts the cursor line at the bottom (zb).
	ScrollBottom
)

// String returns the scroll hint name.
func (s Scroll) String() string {
	switch s {
	case ScrollCenter:
		return "center"
	case ScrollTop:
		return "top"
	case ScrollBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Command represents a parsed Normal-mode command.
type Command struct {
	// Action is what to do.
	Action Action

	// Count is the typed count (0 means none was typed).
	Count int

	// Motion is the motion for ActionMotion.
	Motion *Motion

	// Line is the 1-based target line for line jumps; 0 means the last line.
	Line int

	// Search is the character search for ActionFind.
	Search motion.CharSearch

	// Reverse flips the remembered search direction for ActionRepeatFind.
	Reverse bool

	// Insert is the insert position for ActionInsert.
	Insert InsertPosition

	// Scroll is the hint for ActionScroll.
	Scroll Scroll

	// Keys are the keys that formed the command, count included.
	Keys string
}

// GetCount returns the effective count (1 if none specified).
func (c *Command) GetCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// Request builds the motion request for ActionMotion and ActionFind.
func (c *Command) Request() motion.Request {
	req := motion.Request{Count: c.GetCount()}
	switch c.Action {
	case ActionFind:
		req.Kind = motion.KindFindChar
		req.Search = c.Search
	case ActionMotion:
		req.Kind = c.Motion.Kind
		req.Line = c.Line
		if !c.Motion.Countable {
			req.Count = 1
		}
	}
	return req
}

// ParseResult contains the result of parsing a key event.
type ParseResult struct {
	// Status indicates the parse result.
	Status ParseStatus

	// Command is the parsed command (if Status == StatusComplete).
	Command *Command

	// PendingDisplay is a string showing pending keys (for status line).
	PendingDisplay string
}

// Parser parses Normal-mode key sequences into commands.
//
// Multi-key commands are tracked with an explicit state: after f/F/t/T the
// parser waits for a target rune; after g or z it waits for the suffix.
// Anything else is a single-key command.
type Parser struct {
	state ParseState
	count CountState

	// leader is the pending f/F/t/T, g or z key.
	leader rune
}

// NewParser creates a parser whose counts are capped at maxCount.
// A maxCount of 0 selects DefaultMaxCount.
func NewParser(maxCount int) *Parser {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &Parser{count: CountState{Max: maxCount}}
}

// Reset clears all parser state.
func (p *Parser) Reset() {
	p.state = StateIdle
	p.count.Reset()
	p.leader = 0
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// Count returns the typed count, or 0 when none is pending.
func (p *Parser) Count() int {
	return p.count.Explicit()
}

// PendingKeys returns the pending key display string, e.g. "12" or "3g".
func (p *Parser) PendingKeys() string {
	s := p.count.String()
	if p.leader != 0 {
		s += string(p.leader)
	}
	return s
}

// Parse processes a key event and returns the result.
func (p *Parser) Parse(event key.Event) ParseResult {
	if event.IsEscape() {
		keys := p.PendingKeys()
		p.Reset()
		return ParseResult{
			Status:  StatusComplete,
			Command: &Command{Action: ActionCancel, Keys: keys + event.String()},
		}
	}

	switch p.state {
	case StateCharTarget:
		return p.parseCharTarget(event)
	case StateLeader:
		return p.parseLeader(event)
	default:
		return p.parseIdle(event)
	}
}

// parseIdle handles input when nothing but a count is pending.
func (p *Parser) parseIdle(event key.Event) ParseResult {
	if !event.IsRune() {
		if m := GetSpecialMotion(event.Key); m != nil && !event.IsModified() {
			return p.completeMotion(m, event.String())
		}
		return ParseResult{Status: StatusPassthrough, PendingDisplay: p.PendingKeys()}
	}
	if !event.IsPlainRune() {
		return ParseResult{Status: StatusPassthrough, PendingDisplay: p.PendingKeys()}
	}

	r := event.Rune

	if IsCountStart(r) || (r == '0' && p.count.Active) {
		p.count.AccumulateDigit(r)
		return p.pending()
	}

	if IsCharSearchKey(r) || r == 'g' || r == 'z' {
		p.leader = r
		if r == 'g' || r == 'z' {
			p.state = StateLeader
		} else {
			p.state = StateCharTarget
		}
		return p.pending()
	}

	if m := GetMotion(r); m != nil {
		return p.completeMotion(m, string(r))
	}

	switch r {
	case ';', ',':
		return p.complete(&Command{Action: ActionRepeatFind, Reverse: r == ','}, string(r))
	case 'i':
		return p.complete(&Command{Action: ActionInsert, Insert: InsertBefore}, string(r))
	case 'a':
		return p.complete(&Command{Action: ActionInsert, Insert: InsertAfter}, string(r))
	case 'A':
		return p.complete(&Command{Action: ActionInsert, Insert: InsertLineEnd}, string(r))
	case 'I':
		return p.complete(&Command{Action: ActionInsert, Insert: InsertFirstNonBlank}, string(r))
	case ':':
		return p.complete(&Command{Action: ActionCommandLine}, string(r))
	}

	return ParseResult{Status: StatusPassthrough, PendingDisplay: p.PendingKeys()}
}

// parseCharTarget handles the target rune after f/F/t/T.
func (p *Parser) parseCharTarget(event key.Event) ParseResult {
	if !event.IsPlainRune() {
		return p.invalid()
	}
	search, ok := motion.NewCharSearch(p.leader, event.Rune)
	if !ok {
		return p.invalid()
	}
	return p.complete(&Command{Action: ActionFind, Search: search}, string(event.Rune))
}

// parseLeader handles the key after g or z.
func (p *Parser) parseLeader(event key.Event) ParseResult {
	if !event.IsPlainRune() {
		return p.invalid()
	}
	r := event.Rune

	if p.leader == 'z' {
		var hint Scroll
		switch r {
		case 'z', '.':
			hint = ScrollCenter
		case 't':
			hint = ScrollTop
		case 'b', '-':
			hint = ScrollBottom
		default:
			return p.invalid()
		}
		return p.complete(&Command{Action: ActionScroll, Scroll: hint}, string(r))
	}

	m := GetGMotion(r)
	if m == nil {
		return p.invalid()
	}
	return p.completeMotion(m, string(r))
}

func (p *Parser) pending() ParseResult {
	return ParseResult{Status: StatusPending, PendingDisplay: p.PendingKeys()}
}

func (p *Parser) invalid() ParseResult {
	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// completeMotion builds a complete motion command.
func (p *Parser) completeMotion(m *Motion, last string) ParseResult {
	cmd := &Command{Action: ActionMotion, Motion: m}
	if m.Kind == motion.KindGotoLine {
		// G without a count jumps to the last line, gg to the first.
		cmd.Line = p.count.Explicit()
		if cmd.Line == 0 && m == MotionFirstLine {
			cmd.Line = 1
		}
	}
	return p.complete(cmd, last)
}

// complete stamps the count and keys on cmd and resets the parser.
func (p *Parser) complete(cmd *Command, last string) ParseResult {
	cmd.Count = p.count.Explicit()
	cmd.Keys = p.PendingKeys() + last
	p.Reset()
	return ParseResult{Status: StatusComplete, Command: cmd}
}
