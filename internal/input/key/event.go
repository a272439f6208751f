package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Runes creates one unmodified rune event per character of s.
func Runes(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, NewRuneEvent(r, ModNone))
	}
	return events
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is held. Shift alone does
// not count for rune events since it is already part of the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.Has(ModCtrl | ModAlt | ModMeta)
	}
	return e.Modifiers != ModNone
}

// IsPlainRune returns true for an unmodified character key.
func (e Event) IsPlainRune() bool {
	return e.IsRune() && !e.IsModified()
}

// IsEscape returns true if this is the Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String returns the event in Vim notation, e.g. "a", "<Esc>", "<C-r>".
func (e Event) String() string {
	if e.IsPlainRune() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Modifiers.Has(ModMeta) {
		parts = append(parts, "D")
	}
	if e.Modifiers.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = strings.ToLower(string(e.Rune))
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)
	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}

// isPrintable reports whether r can appear unbracketed in key notation.
func isPrintable(r rune) bool {
	return unicode.IsPrint(r) && r != '<'
}
