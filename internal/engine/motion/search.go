package motion

import (
	"fmt"

	"github.com/dshills/vimotion/internal/engine/buffer"
)

// Direction is the travel direction of a character search.
type Direction uint8

const (
	// Forward searches toward the end of the text (f, t).
	Forward Direction = iota

	// Backward searches toward the start of the text (F, T).
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// SearchKind selects where a character search lands relative to the match.
type SearchKind uint8

const (
	// SearchTo lands on the match (f, F).
	SearchTo SearchKind = iota

	// SearchBefore lands one rune short of the match in the direction of
	// travel (t, T).
	SearchBefore
)

// String returns the search kind name.
func (k SearchKind) String() string {
	if k == SearchBefore {
		return "before"
	}
	return "to"
}

// CharSearch describes a single-character search.
type CharSearch struct {
	Target    rune
	Direction Direction
	Kind      SearchKind
}

// NewCharSearch builds the search triggered by one of the keys f, F, t, T.
// The second result is false for any other key.
func NewCharSearch(key, target rune) (CharSearch, bool) {
	switch key {
	case 'f':
		return CharSearch{Target: target, Direction: Forward, Kind: SearchTo}, true
	case 'F':
		return CharSearch{Target: target, Direction: Backward, Kind: SearchTo}, true
	case 't':
		return CharSearch{Target: target, Direction: Forward, Kind: SearchBefore}, true
	case 'T':
		return CharSearch{Target: target, Direction: Backward, Kind: SearchBefore}, true
	}
	return CharSearch{}, false
}

// Key returns the key that triggers this search.
func (c CharSearch) Key() rune {
	switch {
	case c.Direction == Forward && c.Kind == SearchTo:
		return 'f'
	case c.Direction == Backward && c.Kind == SearchTo:
		return 'F'
	case c.Direction == Forward:
		return 't'
	default:
		return 'T'
	}
}

// Reversed returns the same search travelling the other way.
func (c CharSearch) Reversed() CharSearch {
	c.Direction = c.Direction.Reverse()
	return c
}

// String returns the search in key notation, e.g. "fx".
func (c CharSearch) String() string {
	return fmt.Sprintf("%c%c", c.Key(), c.Target)
}

// Find scans from the rune next to offset for the count-th occurrence of
// the search target. It returns the landing offset and true, or offset and
// false when fewer than count matches exist.
func Find(s *buffer.Snapshot, offset, count int, search CharSearch) (int, bool) {
	offset = s.Clamp(offset)
	if count < 1 {
		count = 1
	}

	found := 0
	if search.Direction == Forward {
		for i := offset + 1; i < s.Len(); i++ {
			if r, _ := s.RuneAt(i); r != search.Target {
				continue
			}
			if found++; found == count {
				if search.Kind == SearchBefore {
					return i - 1, true
				}
				return i, true
			}
		}
		return offset, false
	}

	for i := offset - 1; i >= 0; i-- {
		if r, _ := s.RuneAt(i); r != search.Target {
			continue
		}
		if found++; found == count {
			if search.Kind == SearchBefore {
				return i + 1, true
			}
			return i, true
		}
	}
	return offset, false
}
