package motion

import "github.com/dshills/vimotion/internal/engine/buffer"

// ParagraphForward moves count paragraphs forward. Each step skips blank
// lines, then the following non-blank run, and lands on column 0 of the
// blank line after that run, or on Len() when the text ends first.
func ParagraphForward(s *buffer.Snapshot, offset, count int) int {
	return repeat(s, offset, count, nextParagraph)
}

// ParagraphBackward moves count paragraphs backward. Each step starts on the
// line above the cursor, skips blank lines, then the non-blank run above
// them, and lands on column 0 of the first line of that run, or on 0.
func ParagraphBackward(s *buffer.Snapshot, offset, count int) int {
	return repeat(s, offset, count, prevParagraph)
}

func nextParagraph(s *buffer.Snapshot, pos int) int {
	lines := s.LineCount()
	line := s.LineOf(pos)

	for line < lines && s.IsBlankLine(line) {
		line++
	}
	for line < lines && !s.IsBlankLine(line) {
		line++
	}
	if line >= lines {
		return s.Len()
	}
	return s.LineStart(line)
}

func prevParagraph(s *buffer.Snapshot, pos int) int {
	line := s.LineOf(pos) - 1

	for line >= 0 && s.IsBlankLine(line) {
		line--
	}
	for line >= 0 && !s.IsBlankLine(line) {
		line--
	}
	if line < 0 {
		return 0
	}
	return s.LineStart(line + 1)
}
