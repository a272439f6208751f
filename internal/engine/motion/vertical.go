package motion

import "github.com/dshills/vimotion/internal/engine/buffer"

// Up moves count lines up, keeping the source column clamped to the target
// line length.
func Up(s *buffer.Snapshot, offset, count int) int {
	p := s.OffsetToPoint(s.Clamp(offset))
	target := p.Line - normCount(count, p.Line)
	return s.PointToOffset(target, p.Column)
}

// Down moves count lines down, keeping the source column clamped to the
// target line length.
func Down(s *buffer.Snapshot, offset, count int) int {
	p := s.OffsetToPoint(s.Clamp(offset))
	target := p.Line + normCount(count, s.LastLine()-p.Line)
	return s.PointToOffset(target, p.Column)
}

// GotoLine moves to column 0 of the 1-based line n, clamped to the last
// line. n <= 0 selects the last line.
func GotoLine(s *buffer.Snapshot, n int) int {
	line := s.LastLine()
	if n > 0 && n-1 < line {
		line = n - 1
	}
	return s.LineStart(line)
}
