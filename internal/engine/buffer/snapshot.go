package buffer

import (
	"sort"
	"unicode"
)

// Snapshot is an immutable view of a text, addressed in runes.
type Snapshot struct {
	runes      []rune
	lineStarts []int
}

// NewSnapshot decodes text and indexes its lines.
func NewSnapshot(text string) *Snapshot {
	runes := []rune(text)
	starts := make([]int, 1, 16)
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{runes: runes, lineStarts: starts}
}

// Text returns the snapshot content as a string.
func (s *Snapshot) Text() string {
	return string(s.runes)
}

// Len returns the number of runes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.runes)
}

// IsEmpty returns true if the snapshot holds no text.
func (s *Snapshot) IsEmpty() bool {
	return len(s.runes) == 0
}

// RuneAt returns the rune at offset.
// The second result is false when offset is outside [0, Len()).
func (s *Snapshot) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(s.runes) {
		return 0, false
	}
	return s.runes[offset], true
}

// Clamp limits offset to the valid cursor range [0, Len()].
func (s *Snapshot) Clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(s.runes) {
		return len(s.runes)
	}
	return offset
}

// LineCount returns the number of lines. It is always at least 1.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LastLine returns the index of the last line.
func (s *Snapshot) LastLine() int {
	return len(s.lineStarts) - 1
}

// ClampLine limits line to [0, LastLine()].
func (s *Snapshot) ClampLine(line int) int {
	if line < 0 {
		return 0
	}
	if last := s.LastLine(); line > last {
		return last
	}
	return line
}

// LineStart returns the offset of the first rune of line.
// Lines past the end return Len().
func (s *Snapshot) LineStart(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(s.lineStarts) {
		return len(s.runes)
	}
	return s.lineStarts[line]
}

// LineLen returns the number of runes in line, excluding the newline.
func (s *Snapshot) LineLen(line int) int {
	if line < 0 || line >= len(s.lineStarts) {
		return 0
	}
	return s.LineEnd(line) - s.lineStarts[line]
}

// LineEnd returns the offset of the end-of-line slot of line: the offset of
// its terminating newline, or Len() for the last line.
func (s *Snapshot) LineEnd(line int) int {
	if line < 0 {
		line = 0
	}
	if line+1 < len(s.lineStarts) {
		return s.lineStarts[line+1] - 1
	}
	return len(s.runes)
}

// LineRunes returns the runes of line without the newline.
// The returned slice aliases the snapshot and must not be modified.
func (s *Snapshot) LineRunes(line int) []rune {
	if line < 0 || line >= len(s.lineStarts) {
		return nil
	}
	return s.runes[s.lineStarts[line]:s.LineEnd(line)]
}

// LineText returns the text of line without the newline.
func (s *Snapshot) LineText(line int) string {
	return string(s.LineRunes(line))
}

// IsBlankLine returns true if line is empty or holds only whitespace.
func (s *Snapshot) IsBlankLine(line int) bool {
	for _, r := range s.LineRunes(line) {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// LineOf returns the line containing offset. Offsets past the text end
// map to the last line.
func (s *Snapshot) LineOf(offset int) int {
	if offset <= 0 {
		return 0
	}
	// First line whose start is beyond offset, minus one.
	return sort.SearchInts(s.lineStarts, offset+1) - 1
}

// OffsetToPoint converts a rune offset to a line and column.
// An offset past Len() yields the last line with column 0.
func (s *Snapshot) OffsetToPoint(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.runes) {
		return Point{Line: s.LastLine()}
	}
	line := s.LineOf(offset)
	return Point{Line: line, Column: offset - s.lineStarts[line]}
}

// PointToOffset converts a line and column to a rune offset.
// The column is clamped to the line length; a line past the last line
// yields Len().
func (s *Snapshot) PointToOffset(line, col int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(s.lineStarts) {
		return len(s.runes)
	}
	if col < 0 {
		col = 0
	}
	if n := s.LineLen(line); col > n {
		col = n
	}
	return s.lineStarts[line] + col
}
