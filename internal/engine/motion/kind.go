package motion

// Kind identifies a motion.
type Kind uint8

const (
	// KindNone is the zero value; applying it leaves the cursor unchanged.
	KindNone Kind = iota

	// Character motions
	KindLeft
	KindRight

	// Line motions
	KindUp
	KindDown
	KindLineStart
	KindLineEnd
	KindLineEndSlot
	KindFirstNonBlank
	KindLastNonBlank
	KindGotoLine

	// Word motions
	KindWordForward
	KindWordEnd
	KindWordBackward
	KindWordEndBackward
	KindBigWordForward
	KindBigWordEnd
	KindBigWordBackward
	KindBigWordEndBackward

	// Paragraph motions
	KindParagraphForward
	KindParagraphBackward

	// KindFindChar is the f/F/t/T family; the Request carries the search.
	KindFindChar
)

var kindNames = [...]string{
	KindNone:               "none",
	KindLeft:               "left",
	KindRight:              "right",
	KindUp:                 "up",
	KindDown:               "down",
	KindLineStart:          "lineStart",
	KindLineEnd:            "lineEnd",
	KindLineEndSlot:        "lineEndSlot",
	KindFirstNonBlank:      "firstNonBlank",
	KindLastNonBlank:       "lastNonBlank",
	KindGotoLine:           "gotoLine",
	KindWordForward:        "wordForward",
	KindWordEnd:            "wordEnd",
	KindWordBackward:       "wordBackward",
	KindWordEndBackward:    "wordEndBackward",
	KindBigWordForward:     "bigWordForward",
	KindBigWordEnd:         "bigWordEnd",
	KindBigWordBackward:    "bigWordBackward",
	KindBigWordEndBackward: "bigWordEndBackward",
	KindParagraphForward:   "paragraphForward",
	KindParagraphBackward:  "paragraphBackward",
	KindFindChar:           "findChar",
}

// String returns the motion name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsVertical returns true for motions that keep the source column.
func (k Kind) IsVertical() bool {
	return k == KindUp || k == KindDown
}

// Kinds returns every motion kind except KindNone.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindLeft; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
