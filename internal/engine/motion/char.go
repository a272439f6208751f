package motion

import (
	"unicode"

	"github.com/dshills/vimotion/internal/engine/buffer"
)

// Left moves count runes toward the start of the text.
func Left(s *buffer.Snapshot, offset, count int) int {
	offset = s.Clamp(offset)
	return s.Clamp(offset - normCount(count, offset))
}

// Right moves count runes toward the end of the text. It may land on
// Len(), the slot after the last rune.
func Right(s *buffer.Snapshot, offset, count int) int {
	offset = s.Clamp(offset)
	return s.Clamp(offset + normCount(count, s.Len()-offset))
}

// LineStart returns the offset of column 0 of the current line.
func LineStart(s *buffer.Snapshot, offset int) int {
	return s.LineStart(s.LineOf(s.Clamp(offset)))
}

// LineEnd returns the offset of the last rune of the current line.
// An empty line yields its column 0.
func LineEnd(s *buffer.Snapshot, offset int) int {
	line := s.LineOf(s.Clamp(offset))
	n := s.LineLen(line)
	if n == 0 {
		return s.LineStart(line)
	}
	return s.LineStart(line) + n - 1
}

// LineEndSlot returns the end-of-line slot of the current line, the position
// where appended text goes.
func LineEndSlot(s *buffer.Snapshot, offset int) int {
	return s.LineEnd(s.LineOf(s.Clamp(offset)))
}

// FirstNonBlank returns the first non-whitespace rune of the current line,
// or column 0 when the line is blank.
func FirstNonBlank(s *buffer.Snapshot, offset int) int {
	line := s.LineOf(s.Clamp(offset))
	start := s.LineStart(line)
	for i, r := range s.LineRunes(line) {
		if !unicode.IsSpace(r) {
			return start + i
		}
	}
	return start
}

// LastNonBlank returns the last non-whitespace rune of the current line,
// or column 0 when the line is blank.
func LastNonBlank(s *buffer.Snapshot, offset int) int {
	line := s.LineOf(s.Clamp(offset))
	start := s.LineStart(line)
	runes := s.LineRunes(line)
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsSpace(runes[i]) {
			return start + i
		}
	}
	return start
}

// normCount returns count limited to [1, limit]; a limit below 1 yields 0.
func normCount(count, limit int) int {
	if limit < 1 {
		return 0
	}
	if count < 1 {
		return 1
	}
	if count > limit {
		return limit
	}
	return count
}
