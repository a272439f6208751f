package motion

import "github.com/dshills/vimotion/internal/engine/buffer"

// WordForward moves to the start of the next word count times.
// With bigWord set it moves by WORDs.
func WordForward(s *buffer.Snapshot, offset, count int, bigWord bool) int {
	return repeat(s, offset, count, func(s *buffer.Snapshot, pos int) int {
		return nextWordStart(s, pos, bigWord)
	})
}

// WordEnd moves to the end of the next word count times.
func WordEnd(s *buffer.Snapshot, offset, count int, bigWord bool) int {
	return repeat(s, offset, count, func(s *buffer.Snapshot, pos int) int {
		return nextWordEnd(s, pos, bigWord)
	})
}

// WordBackward moves to the start of the previous word count times.
func WordBackward(s *buffer.Snapshot, offset, count int, bigWord bool) int {
	return repeat(s, offset, count, func(s *buffer.Snapshot, pos int) int {
		return prevWordStart(s, pos, bigWord)
	})
}

// WordEndBackward moves to the end of the previous word count times.
func WordEndBackward(s *buffer.Snapshot, offset, count int, bigWord bool) int {
	return repeat(s, offset, count, func(s *buffer.Snapshot, pos int) int {
		return prevWordEnd(s, pos, bigWord)
	})
}

// repeat applies step up to count times, stopping once it stalls.
func repeat(s *buffer.Snapshot, offset, count int, step func(*buffer.Snapshot, int) int) int {
	pos := s.Clamp(offset)
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		next := s.Clamp(step(s, pos))
		if next == pos {
			break
		}
		pos = next
	}
	return pos
}

// classAt returns the class of the rune at pos, or RunSpace outside the text.
func classAt(s *buffer.Snapshot, pos int, bigWord bool) RunKind {
	r, ok := s.RuneAt(pos)
	if !ok {
		return RunSpace
	}
	return Class(r, bigWord)
}

// nextWordStart skips the rest of the run under pos, then any whitespace.
func nextWordStart(s *buffer.Snapshot, pos int, bigWord bool) int {
	n := s.Len()
	if pos >= n {
		return n
	}

	if kind := classAt(s, pos, bigWord); kind != RunSpace {
		for pos < n && classAt(s, pos, bigWord) == kind {
			pos++
		}
	}
	for pos < n && classAt(s, pos, bigWord) == RunSpace {
		pos++
	}
	return pos
}

// nextWordEnd advances at least one rune, skips whitespace, then stops on
// the last rune of the run it reached.
func nextWordEnd(s *buffer.Snapshot, pos int, bigWord bool) int {
	n := s.Len()
	if pos >= n {
		return pos
	}
	if pos < n-1 {
		pos++
	}

	for pos < n && classAt(s, pos, bigWord) == RunSpace {
		pos++
	}
	if pos >= n {
		return n - 1
	}

	kind := classAt(s, pos, bigWord)
	for pos < n-1 && classAt(s, pos+1, bigWord) == kind {
		pos++
	}
	return pos
}

// prevWordStart retreats at least one rune, skips whitespace backwards, then
// stops on the first rune of the run it reached.
func prevWordStart(s *buffer.Snapshot, pos int, bigWord bool) int {
	if pos <= 0 {
		return 0
	}
	pos--

	for pos > 0 && classAt(s, pos, bigWord) == RunSpace {
		pos--
	}
	if pos == 0 {
		return 0
	}

	kind := classAt(s, pos, bigWord)
	for pos > 0 && classAt(s, pos-1, bigWord) == kind {
		pos--
	}
	return pos
}

// prevWordEnd leaves the run under pos backwards, skips whitespace, and stops
// on the last rune of the previous run.
func prevWordEnd(s *buffer.Snapshot, pos int, bigWord bool) int {
	if pos <= 0 {
		return 0
	}

	if kind := classAt(s, pos, bigWord); kind != RunSpace {
		for pos > 0 && classAt(s, pos-1, bigWord) == kind {
			pos--
		}
	}
	if pos == 0 {
		return 0
	}
	pos--

	for pos > 0 && classAt(s, pos, bigWord) == RunSpace {
		pos--
	}
	return pos
}
