package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "$"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+R", "Alt+x"
//   - Vim-style: "<C-r>", "<CR>", "<Esc>", "<lt>", "<Space>"
func Parse(spec string) (Event, error) {
	if spec == " " {
		return NewRuneEvent(' ', ModNone), nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.HasPrefix(spec, "<") {
		return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// ParseKeys splits a key string into events. Bare characters map to rune
// events; "<...>" groups are parsed with the Vim-style notation. A "<" that
// is never closed is taken literally, so "a<b" is three rune events.
func ParseKeys(s string) ([]Event, error) {
	var events []Event
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			events = append(events, NewRuneEvent(r, ModNone))
			continue
		}
		end := indexRune(runes[i+1:], '>')
		if end < 0 {
			events = append(events, NewRuneEvent('<', ModNone))
			continue
		}
		inner := string(runes[i+1 : i+1+end])
		if inner == "" {
			return nil, fmt.Errorf("%w: empty <> at %d", ErrInvalidSpec, i)
		}
		ev, err := parseVimStyle(inner)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		events = append(events, ev)
		i += end + 1
	}
	return events, nil
}

// MustParseKeys is like ParseKeys but panics on error.
// Use only for known-valid key strings in tests and initialization code.
func MustParseKeys(s string) []Event {
	events, err := ParseKeys(s)
	if err != nil {
		panic("invalid key string " + s + ": " + err.Error())
	}
	return events
}

// MustParse parses a key specification and panics on error.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// Format renders events in the notation accepted by ParseKeys.
func Format(events []Event) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.IsPlainRune() && isPrintable(ev.Rune) && ev.Rune != ' ' {
			b.WriteRune(ev.Rune)
			continue
		}
		b.WriteString(ev.String())
	}
	return b.String()
}

func indexRune(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}

// parseVimStyle parses the inside of "<...>", e.g. "C-r", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "<->" style keys: a trailing "-" is the key itself.
	parts := strings.Split(inner, "-")
	if strings.HasSuffix(inner, "-") && len(parts) > 1 {
		parts = append(parts[:len(parts)-2], "-")
	}

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], ModNone), nil
	}
	return parseKeyWithModifiers(spec, ModNone)
}

// parseKeyWithModifiers parses a key name or character with known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
