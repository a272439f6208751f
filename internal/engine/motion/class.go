package motion

import "unicode"

// RunKind is the class of a rune for word motions.
type RunKind uint8

const (
	// RunSpace is whitespace, including newlines.
	RunSpace RunKind = iota

	// RunWord is a letter, digit or underscore.
	RunWord

	// RunPunct is any other non-whitespace rune.
	RunPunct
)

// String returns the name of the run kind.
func (k RunKind) String() string {
	switch k {
	case RunSpace:
		return "space"
	case RunWord:
		return "word"
	case RunPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Class returns the run kind of r.
// With bigWord set, punctuation is reported as RunWord.
func Class(r rune, bigWord bool) RunKind {
	if unicode.IsSpace(r) {
		return RunSpace
	}
	if bigWord || isWordChar(r) {
		return RunWord
	}
	return RunPunct
}

// isWordChar returns true if r belongs to a small word.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
