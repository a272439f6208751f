// Package key provides the key event type consumed by the motion engine.
//
// An Event is a single key press: either a rune (letters, digits,
// punctuation, space) or a special key such as Escape, Enter or an arrow
// key, together with the active modifiers.
//
// # Key Notation
//
// Parse accepts one key in either of two forms:
//
//   - Simple keys: "a", "A", "$", "Enter", "Escape"
//   - Vim-style: "<Esc>", "<CR>", "<BS>", "<Space>", "<lt>", "<C-r>", "<Up>"
//
// ParseKeys splits a whole key string such as "3dw", "f<Space>" or
// "ihello<Esc>" into events, which is how tests, configuration and the
// replay CLI describe input. Format turns events back into that notation.
package key
