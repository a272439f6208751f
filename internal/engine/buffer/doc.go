// Package buffer provides read-only text snapshots with line/column address
// translation for the motion engine.
//
// A Snapshot is built from the host's text once per input tick. It decodes the
// text into Unicode scalar values and records the start offset of every line,
// so conversions between a linear offset and a Point are cheap.
//
// Position Types:
//
//   - Offset: index of a rune counted from the start of the text. Valid
//     cursor offsets lie in [0, Len()]; Len() is the slot after the last rune.
//   - Point: zero-based line and column, with the column measured in runes.
//
// Lines are separated by '\n'. A text of n newlines has n+1 lines, so the
// empty text has one empty line and a trailing newline opens an empty last
// line. The offset of a '\n' belongs to the line it terminates.
//
// Basic usage:
//
//	snap := buffer.NewSnapshot("hello\nworld")
//	p := snap.OffsetToPoint(7)          // (1:1)
//	off := snap.PointToOffset(p.Line, 99) // 11, column clamped to the line
package buffer
