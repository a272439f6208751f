package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/host/watch"
	"github.com/dshills/vimotion/internal/input"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/logging"
)

// Options configures an Editor.
type Options struct {
	// Config supplies engine and terminal settings. Nil uses defaults.
	Config *config.Config

	// Logger receives editor and engine logs. Nil disables logging.
	Logger *logging.Logger

	// Clipboard writes text to the system clipboard.
	// Nil uses github.com/atotto/clipboard.
	Clipboard func(text string) error
}

// fileChangedEvent carries a watcher notification into the event loop.
type fileChangedEvent struct {
	tcell.EventTime
	change watch.Event
}

// Editor is a single-document terminal editor.
type Editor struct {
	screen    tcell.Screen
	cfg       *config.Config
	log       *logging.Logger
	clipboard func(string) error

	doc     *Document
	machine *input.Machine
	cursor  int

	// top is the first visible line; left is the first visible column.
	top  int
	left int

	watcher *watch.Watcher
	message string
	quit    bool
}

// New creates an Editor for doc on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, doc *Document, opts Options) *Editor {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	if doc == nil {
		doc = NewScratch()
	}

	e := &Editor{
		screen:    screen,
		cfg:       cfg,
		log:       log.WithComponent("terminal"),
		clipboard: clip,
	}
	e.setDocument(doc)
	return e
}

// Document returns the open document.
func (e *Editor) Document() *Document {
	return e.doc
}

// Machine returns the input state machine for the open document.
func (e *Editor) Machine() *input.Machine {
	return e.machine
}

// Cursor returns the cursor offset in runes.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Position returns the cursor line and column, both 0-based.
func (e *Editor) Position() buffer.Point {
	return buffer.NewSnapshot(e.doc.Text()).OffsetToPoint(e.cursor)
}

// Message returns the text shown after the status, if any.
func (e *Editor) Message() string {
	return e.message
}

// Quitting returns true once a quit command has succeeded.
func (e *Editor) Quitting() bool {
	return e.quit
}

// setDocument makes doc the open document with a fresh Machine.
func (e *Editor) setDocument(doc *Document) {
	cfg := e.cfg.InputConfig()
	cfg.Commands = e
	cfg.Logger = e.log

	if e.doc != nil && e.doc.Path != doc.Path {
		e.unwatch(e.doc.Path)
	}

	e.doc = doc
	e.machine = input.New(cfg)
	e.cursor = 0
	e.top, e.left = 0, 0
	e.log.Debug("editing %s (doc %s)", doc.Name, e.machine.ID())

	if e.watcher != nil {
		e.watchDocument()
	}
}

// HandleKey runs one key through the Machine and applies Insert-mode edits.
func (e *Editor) HandleKey(ev key.Event) {
	e.message = ""
	machine := e.machine
	out := machine.HandleEvent(ev, e.doc.Text(), &e.cursor)
	if out == input.Passthrough && machine == e.machine && machine.Mode() == mode.Insert {
		e.edit(ev)
	}
}

// edit applies a key the Machine passed through in Insert mode.
func (e *Editor) edit(ev key.Event) {
	switch {
	case ev.Key == key.KeyEnter:
		e.cursor = e.doc.Insert(e.cursor, "\n")
	case ev.Key == key.KeyTab:
		e.cursor = e.doc.Insert(e.cursor, "\t")
	case ev.Key == key.KeyBackspace:
		if e.cursor > 0 {
			e.doc.Delete(e.cursor-1, e.cursor)
			e.cursor--
		}
	case ev.Key == key.KeyDelete:
		e.doc.Delete(e.cursor, e.cursor+1)
	case ev.Key == key.KeyLeft:
		e.cursor = max(e.cursor-1, 0)
	case ev.Key == key.KeyRight:
		e.cursor = min(e.cursor+1, e.doc.Len())
	case ev.IsRune() && !ev.IsModified():
		e.cursor = e.doc.Insert(e.cursor, string(ev.Rune))
	}
}

// RunCommand executes an Ex command for the Machine.
func (e *Editor) RunCommand(cmd input.ExCommand) error {
	err := e.runCommand(cmd)
	if err != nil {
		e.message = err.Error()
	}
	return err
}

func (e *Editor) runCommand(cmd input.ExCommand) error {
	switch cmd.Name {
	case input.ExWrite:
		return e.write(cmd.Arg)

	case input.ExQuit:
		if e.doc.IsModified() && !cmd.Force {
			return ErrUnsavedChanges
		}
		e.quit = true
		return nil

	case input.ExWriteQuit:
		if err := e.write(cmd.Arg); err != nil {
			return err
		}
		e.quit = true
		return nil

	case input.ExEdit:
		return e.editFile(cmd.Arg, cmd.Force)

	case input.ExNew:
		if e.doc.IsModified() && !cmd.Force {
			return ErrUnsavedChanges
		}
		e.setDocument(NewScratch())
		return nil

	case input.ExCopyPos:
		return e.copyPosition()
	}
	return fmt.Errorf("unsupported command %q", cmd.Raw)
}

// write saves the document, to path when one is given.
func (e *Editor) write(path string) error {
	var err error
	if path != "" {
		oldPath := e.doc.Path
		err = e.doc.SaveAs(path)
		if err == nil && oldPath != e.doc.Path {
			e.unwatch(oldPath)
			e.watchDocument()
		}
	} else {
		err = e.doc.Save()
	}
	if err != nil {
		return err
	}

	e.message = fmt.Sprintf("%q %dL written", e.doc.Name, e.doc.LineCount())
	e.log.Info("wrote %s", e.doc.Path)
	return nil
}

// editFile reloads the document, or opens path when one is given.
func (e *Editor) editFile(path string, force bool) error {
	if e.doc.IsModified() && !force {
		return ErrUnsavedChanges
	}

	if path == "" {
		if e.doc.IsScratch() {
			return ErrNoFileName
		}
		if !e.doc.Exists() {
			return nil
		}
		if err := e.doc.Reload(); err != nil {
			return err
		}
		e.cursor = min(e.cursor, e.doc.Len())
		e.message = fmt.Sprintf("%q reloaded", e.doc.Name)
		return nil
	}

	doc, err := OpenDocument(path)
	if err != nil {
		return err
	}
	e.setDocument(doc)
	return nil
}

// copyPosition copies "file:line:col" for the cursor to the clipboard.
func (e *Editor) copyPosition() error {
	name := e.doc.Path
	if name == "" {
		name = e.doc.Name
	}
	pt := e.Position()
	text := fmt.Sprintf("%s:%d:%d", name, pt.Line+1, pt.Column+1)
	if err := e.clipboard(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	e.message = "copied " + text
	return nil
}

// StartWatching begins watching the document's file for outside changes.
func (e *Editor) StartWatching() error {
	if e.watcher != nil {
		return nil
	}
	w, err := watch.New(func(ev watch.Event) {
		fe := &fileChangedEvent{change: ev}
		fe.SetEventNow()
		if err := e.screen.PostEvent(fe); err != nil {
			e.log.Warn("dropped file event for %s: %v", ev.Path, err)
		}
	}, watch.WithErrorHandler(func(err error) {
		e.log.Warn("file watcher: %v", err)
	}))
	if err != nil {
		return err
	}
	e.watcher = w
	e.watchDocument()
	return nil
}

func (e *Editor) watchDocument() {
	if e.watcher == nil || e.doc.IsScratch() {
		return
	}
	err := e.watcher.Watch(e.doc.Path)
	switch {
	case err == nil, errors.Is(err, watch.ErrAlreadyWatching):
	case errors.Is(err, watch.ErrPathNotExist):
		e.log.Debug("not watching %s: file does not exist yet", e.doc.Path)
	default:
		e.log.Warn("watching %s: %v", e.doc.Path, err)
	}
}

func (e *Editor) unwatch(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	if err := e.watcher.Unwatch(path); err != nil && !errors.Is(err, watch.ErrNotWatching) {
		e.log.Warn("unwatching %s: %v", path, err)
	}
}

// handleFileChanged reacts to a change of the open file on disk.
func (e *Editor) handleFileChanged(ev watch.Event) {
	if ev.Path != e.doc.Path {
		return
	}
	if ev.Op.Has(watch.OpRemove) || ev.Op.Has(watch.OpRename) {
		if _, err := os.Stat(ev.Path); err != nil {
			e.message = fmt.Sprintf("%q was removed on disk", e.doc.Name)
			return
		}
	}

	data, err := os.ReadFile(ev.Path)
	if err != nil {
		e.log.Warn("reading changed file %s: %v", ev.Path, err)
		return
	}
	if e.doc.SameAsDisk(data) {
		return
	}
	if e.doc.IsModified() {
		e.message = fmt.Sprintf("%q changed on disk; :e! reloads it", e.doc.Name)
		return
	}
	if err := e.doc.Reload(); err != nil {
		e.log.Warn("%v", err)
		return
	}
	e.cursor = min(e.cursor, e.doc.Len())
	e.message = fmt.Sprintf("%q reloaded", e.doc.Name)
	e.log.Info("reloaded %s after %s", ev.Path, ev.Op)
}

// Run processes screen events until a quit command succeeds or ctx is
// done. The watcher, if started, is closed on return.
func (e *Editor) Run(ctx context.Context) error {
	defer e.closeWatcher()

	stop := context.AfterFunc(ctx, func() {
		_ = e.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	e.Draw()
	for !e.quit {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if k, ok := convertKey(ev); ok {
				e.HandleKey(k)
			}
		case *tcell.EventResize:
			e.screen.Sync()
		case *fileChangedEvent:
			e.handleFileChanged(ev.change)
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		e.Draw()
	}
	return nil
}

func (e *Editor) closeWatcher() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		e.log.Warn("closing file watcher: %v", err)
	}
	e.watcher = nil
}
