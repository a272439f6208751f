// Package terminal is a small full-screen editor that drives an
// input.Machine from a tcell screen.
//
// The Editor owns the document text and the cursor. Every key is offered to
// the Machine first; keys the Machine passes through in Insert mode are
// applied as edits. Ex commands other than line jumps are executed by the
// Editor through the input.CommandRunner interface:
//
//	:w [file]   write the document
//	:q[!]       quit, refusing when there are unsaved changes unless forced
//	:wq :x      write and quit
//	:e[!] [file] reload the document or open another file
//	:new[!]     replace the document with an empty scratch buffer
//	:cp         copy "file:line:col" of the cursor to the system clipboard
//
// When watching is enabled the open file is monitored with the watch
// package. Changes are delivered to the event loop as tcell events, and an
// unmodified document is reloaded in place.
package terminal
