// Package input is the modal cursor-motion engine.
//
// A Machine owns the editing mode, the pending count and multi-key state,
// the character-search memory and the ":" command line for one document.
// Each tick the host hands it the key events received since the last tick,
// the current buffer text and a pointer to the cursor offset:
//
//	m := input.New(input.DefaultConfig())
//	m.HandleTick(events, text, &cursor)
//
// The cursor is a rune index into text. Motions never move it outside
// [0, len(text)] and never edit text. In Insert mode every key other than
// Escape is reported as Passthrough so the host can apply it as an edit;
// hosts that edit between keys use HandleEvent instead of HandleTick.
//
// A Machine is not safe for concurrent use.
package input
