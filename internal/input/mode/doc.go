// Package mode defines the editing modes of the motion engine and the
// Manager that tracks the active one.
//
// Exactly one mode is active at a time:
//   - Normal: keys are motions and commands
//   - Insert: keys are text for the host to insert
//   - Command: keys edit the ":" command line
//
// # Mode Changes
//
//	┌────────┐  i a A I   ┌────────┐
//	│ Normal │ ─────────▶ │ Insert │
//	│        │ ◀───────── │        │
//	└────────┘    Esc     └────────┘
//	  │    ▲
//	: │    │ Esc, Enter, BS on empty line
//	  ▼    │
//	┌─────────┐
//	│ Command │
//	└─────────┘
//
// Callbacks registered with Manager.OnChange run after every switch that
// actually changes the mode.
package mode
