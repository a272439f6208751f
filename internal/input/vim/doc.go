// Package vim provides Vim-style parsing of Normal-mode key sequences.
//
// The grammar understood by the Parser is:
//
//	[count] motion           "w", "3j", "}", "0", "$"
//	[count] f|F|t|T char     "fx", "2t,"
//	[count] ; | ,            repeat the last character search
//	[count] g suffix         "gg", "5gg", "ge", "g_"
//	z suffix                 "zz", "zt", "zb"
//	i | a | A | I | :        mode changes
//
// A leading "0" is the line-start motion, never part of a count; once a
// count has started "0" is a digit, so "10j" moves ten lines.
//
// # Parser States
//
//  1. Idle: waiting for a count digit or a command key
//  2. CharTarget: after f/F/t/T, waiting for the character to find
//  3. Leader: after g or z, waiting for the suffix key
//
// A key the Parser does not know in the Idle state is reported as
// StatusPassthrough and leaves the count alone. An unknown suffix in the
// CharTarget or Leader state is StatusInvalid and clears the count.
//
// # Usage
//
//	parser := vim.NewParser(vim.DefaultMaxCount)
//	result := parser.Parse(keyEvent)
//	switch result.Status {
//	case vim.StatusComplete:
//	    // Run result.Command
//	case vim.StatusPending:
//	    // Wait for more input; show result.PendingDisplay
//	case vim.StatusInvalid:
//	    // Sequence discarded
//	}
package vim
