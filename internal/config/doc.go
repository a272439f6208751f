// Package config loads vimotion settings.
//
// Settings are resolved in layers, each overriding the one below:
//
//	┌──────────────────────────────┐
//	│  3. Environment (VIMOTION_*) │  ← Highest priority
//	├──────────────────────────────┤
//	│  2. Config file (TOML/YAML)  │
//	├──────────────────────────────┤
//	│  1. Built-in defaults        │  ← Lowest priority
//	└──────────────────────────────┘
//
// The file format is chosen by extension: ".toml" or ".yaml"/".yml".
// A missing file is not an error. Unknown keys are.
//
// Example TOML:
//
//	[engine]
//	initial_mode = "normal"
//	max_count = 9999
//
//	[logging]
//	level = "debug"
//	file = "/tmp/vimotion.log"
//
//	[terminal]
//	tab_width = 8
//	watch = true
package config
