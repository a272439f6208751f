package vim

import (
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/engine/motion"
)

// Motion binds a key sequence to a motion kind.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward").
	Name string

	// Keys is the key sequence that triggers this motion.
	Keys string

	// Kind is the motion the engine runs.
	Kind motion.Kind

	// Countable indicates the count changes the result. Counts typed before
	// a motion that is not countable are accepted and ignored.
	Countable bool
}

func bind(keys string, kind motion.Kind, countable bool) *Motion {
	return &Motion{Name: kind.String(), Keys: keys, Kind: kind, Countable: countable}
}

// Standard motions.
var (
	MotionLeft              = bind("h", motion.KindLeft, true)
	MotionRight             = bind("l", motion.KindRight, true)
	MotionUp                = bind("k", motion.KindUp, true)
	MotionDown              = bind("j", motion.KindDown, true)
	MotionWordForward       = bind("w", motion.KindWordForward, true)
	MotionWordEnd           = bind("e", motion.KindWordEnd, true)
	MotionWordBackward      = bind("b", motion.KindWordBackward, true)
	MotionBigWordForward    = bind("W", motion.KindBigWordForward, true)
	MotionBigWordEnd        = bind("E", motion.KindBigWordEnd, true)
	MotionBigWordBackward   = bind("B", motion.KindBigWordBackward, true)
	MotionLineStart         = bind("0", motion.KindLineStart, false)
	MotionLineEnd           = bind("$", motion.KindLineEnd, false)
	MotionFirstNonBlank     = bind("^", motion.KindFirstNonBlank, false)
	MotionGotoLine          = bind("G", motion.KindGotoLine, true)
	MotionParagraphForward  = bind("}", motion.KindParagraphForward, true)
	MotionParagraphBackward = bind("{", motion.KindParagraphBackward, true)

	// g-prefixed motions
	MotionFirstLine          = bind("gg", motion.KindGotoLine, true)
	MotionWordEndBackward    = bind("ge", motion.KindWordEndBackward, true)
	MotionBigWordEndBackward = bind("gE", motion.KindBigWordEndBackward, true)
	MotionLastNonBlank       = bind("g_", motion.KindLastNonBlank, false)
	MotionDisplayDown        = bind("gj", motion.KindDown, true)
	MotionDisplayUp          = bind("gk", motion.KindUp, true)
)

// motions maps single-key motion keys to their definitions.
var motions = map[rune]*Motion{
	'h': MotionLeft,
	'l': MotionRight,
	'k': MotionUp,
	'j': MotionDown,
	'w': MotionWordForward,
	'e': MotionWordEnd,
	'b': MotionWordBackward,
	'W': MotionBigWordForward,
	'E': MotionBigWordEnd,
	'B': MotionBigWordBackward,
	'0': MotionLineStart,
	'$': MotionLineEnd,
	'^': MotionFirstNonBlank,
	'G': MotionGotoLine,
	'}': MotionParagraphForward,
	'{': MotionParagraphBackward,
}

// gMotions maps g-prefixed motion keys to their definitions.
var gMotions = map[rune]*Motion{
	'g': MotionFirstLine,
	'e': MotionWordEndBackward,
	'E': MotionBigWordEndBackward,
	'_': MotionLastNonBlank,
	'j': MotionDisplayDown,
	'k': MotionDisplayUp,
}

// specialMotions maps non-character keys to motions.
var specialMotions = map[key.Key]*Motion{
	key.KeyLeft:  MotionLeft,
	key.KeyRight: MotionRight,
	key.KeyUp:    MotionUp,
	key.KeyDown:  MotionDown,
	key.KeyHome:  MotionLineStart,
	key.KeyEnd:   MotionLineEnd,
}

// GetMotion returns the motion for a single key, or nil.
func GetMotion(r rune) *Motion {
	return motions[r]
}

// GetGMotion returns the motion for the key following 'g', or nil.
func GetGMotion(r rune) *Motion {
	return gMotions[r]
}

// GetSpecialMotion returns the motion bound to a special key, or nil.
func GetSpecialMotion(k key.Key) *Motion {
	return specialMotions[k]
}

// IsCharSearchKey returns true for f, F, t and T.
func IsCharSearchKey(r rune) bool {
	return r == 'f' || r == 'F' || r == 't' || r == 'T'
}
