package motion

import "github.com/dshills/vimotion/internal/engine/buffer"

// Request is a motion together with its arguments.
type Request struct {
	// Kind is the motion to run.
	Kind Kind

	// Count is the repeat count (values below 1 mean 1).
	Count int

	// Line is the 1-based target line for KindGotoLine; 0 selects the last
	// line.
	Line int

	// Search is the character search for KindFindChar.
	Search CharSearch
}

// Apply runs the requested motion from offset and returns the new offset.
// The second result is false only when a character search finds fewer than
// Count matches; the offset is then returned unchanged (but clamped).
func Apply(s *buffer.Snapshot, offset int, req Request) (int, bool) {
	offset = s.Clamp(offset)
	count := req.Count

	switch req.Kind {
	case KindLeft:
		return Left(s, offset, count), true
	case KindRight:
		return Right(s, offset, count), true
	case KindUp:
		return Up(s, offset, count), true
	case KindDown:
		return Down(s, offset, count), true
	case KindLineStart:
		return LineStart(s, offset), true
	case KindLineEnd:
		return LineEnd(s, offset), true
	case KindLineEndSlot:
		return LineEndSlot(s, offset), true
	case KindFirstNonBlank:
		return FirstNonBlank(s, offset), true
	case KindLastNonBlank:
		return LastNonBlank(s, offset), true
	case KindGotoLine:
		return GotoLine(s, req.Line), true
	case KindWordForward:
		return WordForward(s, offset, count, false), true
	case KindWordEnd:
		return WordEnd(s, offset, count, false), true
	case KindWordBackward:
		return WordBackward(s, offset, count, false), true
	case KindWordEndBackward:
		return WordEndBackward(s, offset, count, false), true
	case KindBigWordForward:
		return WordForward(s, offset, count, true), true
	case KindBigWordEnd:
		return WordEnd(s, offset, count, true), true
	case KindBigWordBackward:
		return WordBackward(s, offset, count, true), true
	case KindBigWordEndBackward:
		return WordEndBackward(s, offset, count, true), true
	case KindParagraphForward:
		return ParagraphForward(s, offset, count), true
	case KindParagraphBackward:
		return ParagraphBackward(s, offset, count), true
	case KindFindChar:
		return Find(s, offset, count, req.Search)
	}
	return offset, true
}
