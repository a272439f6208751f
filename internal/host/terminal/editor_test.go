package terminal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/host/watch"
	"github.com/dshills/vimotion/internal/input"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func newTestEditor(t *testing.T, doc *Document) (*Editor, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, 40, 6)
	return New(screen, doc, Options{}), screen
}

func typeKeys(e *Editor, keys string) {
	for _, ev := range key.MustParseKeys(keys) {
		e.HandleKey(ev)
	}
}

func rowText(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<BS>"},
		{"arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "<Down>"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), "<C-r>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("convertKey returned false")
			}
			if got.String() != tt.want {
				t.Errorf("convertKey = %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("F5 has no key.Event equivalent")
	}
}

func TestCursorStyle(t *testing.T) {
	if cursorStyle(mode.Insert.CursorStyle()) != tcell.CursorStyleSteadyBar {
		t.Error("insert mode should use a bar cursor")
	}
	if cursorStyle(mode.Normal.CursorStyle()) != tcell.CursorStyleSteadyBlock {
		t.Error("normal mode should use a block cursor")
	}
}

func TestEditorInsertMode(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		keys   string
		want   string
		cursor int
	}{
		{"type", "", "ihello<Esc>", "hello", 4},
		{"enter", "", "ia<CR>b<Esc>", "a\nb", 2},
		{"backspace", "", "iabc<BS><Esc>", "ab", 1},
		{"delete", "xyz", "i<Del><Esc>", "yz", 0},
		{"tab", "x", "I<Tab><Esc>", "\tx", 0},
		{"append line end", "ab\ncd", "Ax<Esc>", "abx\ncd", 2},
		{"motion then insert", "one two", "wi-<Esc>", "one -two", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor(t, NewDocument("", tt.text))
			typeKeys(e, tt.keys)
			if got := e.Document().Text(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if e.Cursor() != tt.cursor {
				t.Errorf("cursor = %d, want %d", e.Cursor(), tt.cursor)
			}
			if e.Machine().Mode() != mode.Normal {
				t.Errorf("mode = %s, want normal", e.Machine().Mode())
			}
		})
	}
}

func TestEditorNormalKeysDoNotEdit(t *testing.T) {
	e, _ := newTestEditor(t, NewDocument("", "alpha beta"))
	typeKeys(e, "xyz")
	if e.Document().IsModified() {
		t.Error("unbound Normal-mode keys must not edit the document")
	}
}

func TestEditorWriteQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	doc, err := OpenDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEditor(t, doc)

	typeKeys(e, "ihi<Esc>:wq<CR>")
	if !e.Quitting() {
		t.Error(":wq should quit")
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hi" {
		t.Errorf("file = %q, %v; want %q", data, err, "hi")
	}
}

func TestEditorQuitRefusesUnsavedChanges(t *testing.T) {
	e, _ := newTestEditor(t, NewDocument("", ""))
	typeKeys(e, "ix<Esc>:q<CR>")
	if e.Quitting() {
		t.Fatal(":q should refuse with unsaved changes")
	}
	if !strings.Contains(e.Message(), "unsaved changes") {
		t.Errorf("message = %q, want unsaved changes", e.Message())
	}

	typeKeys(e, ":q!<CR>")
	if !e.Quitting() {
		t.Error(":q! should quit")
	}
}

func TestEditorWriteScratchNeedsName(t *testing.T) {
	e, _ := newTestEditor(t, NewScratch())
	if err := e.RunCommand(input.ParseExCommand("w")); !errors.Is(err, ErrNoFileName) {
		t.Errorf("write error = %v, want ErrNoFileName", err)
	}

	path := filepath.Join(t.TempDir(), "named.txt")
	typeKeys(e, "iabc<Esc>:w "+path+"<CR>")
	if e.Document().Path != path || e.Document().IsModified() {
		t.Errorf("document should be saved as %s", path)
	}
	if !strings.Contains(e.Message(), "written") {
		t.Errorf("message = %q, want written", e.Message())
	}
}

func TestEditorEditReloadsAndOpens(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeFile(t, first, "one")
	writeFile(t, second, "two")

	doc, err := OpenDocument(first)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEditor(t, doc)
	id := e.Machine().ID()

	writeFile(t, first, "uno")
	typeKeys(e, ":e<CR>")
	if got := e.Document().Text(); got != "uno" {
		t.Errorf("after :e text = %q, want uno", got)
	}

	typeKeys(e, ":e "+second+"<CR>")
	if e.Document().Path != second || e.Document().Text() != "two" {
		t.Errorf("after :e file, document = %q %q", e.Document().Path, e.Document().Text())
	}
	if e.Machine().ID() == id {
		t.Error("opening a new document should create a new machine")
	}

	typeKeys(e, "ix<Esc>:e "+first+"<CR>")
	if e.Document().Path != second {
		t.Error(":e must refuse to drop unsaved changes")
	}
	typeKeys(e, ":e! "+first+"<CR>")
	if e.Document().Path != first {
		t.Error(":e! should open the file")
	}
}

func TestEditorNewScratch(t *testing.T) {
	e, _ := newTestEditor(t, NewDocument("", "text"))
	typeKeys(e, "$:new<CR>")
	if !e.Document().IsScratch() || e.Document().Len() != 0 || e.Cursor() != 0 {
		t.Error(":new should open an empty scratch document")
	}
}

func TestEditorCopyPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "ab\ncd")
	doc, err := OpenDocument(path)
	if err != nil {
		t.Fatal(err)
	}

	var copied string
	e := New(newTestScreen(t, 40, 6), doc, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})
	typeKeys(e, "jl:cp<CR>")
	if want := path + ":2:2"; copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}

	failing := New(newTestScreen(t, 40, 6), NewScratch(), Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}})
	typeKeys(failing, ":cp<CR>")
	if !strings.Contains(failing.Message(), "no clipboard") {
		t.Errorf("message = %q, want clipboard error", failing.Message())
	}
}

func TestEditorFileChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "before")
	doc, err := OpenDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEditor(t, doc)
	typeKeys(e, "$")

	writeFile(t, path, "af")
	e.handleFileChanged(watch.Event{Path: path, Op: watch.OpWrite})
	if e.Document().Text() != "af" {
		t.Errorf("unmodified document should reload, got %q", e.Document().Text())
	}
	if e.Cursor() > e.Document().Len() {
		t.Errorf("cursor %d past end after reload", e.Cursor())
	}

	typeKeys(e, "ix<Esc>")
	writeFile(t, path, "after")
	e.handleFileChanged(watch.Event{Path: path, Op: watch.OpWrite})
	if e.Document().Text() == "after" {
		t.Error("modified document must not be reloaded")
	}
	if !strings.Contains(e.Message(), "changed on disk") {
		t.Errorf("message = %q, want changed on disk", e.Message())
	}

	e.handleFileChanged(watch.Event{Path: path + ".other", Op: watch.OpWrite})
	if strings.Contains(e.Document().Text(), "after") {
		t.Error("events for other files are ignored")
	}
}

func TestEditorDraw(t *testing.T) {
	screen := newTestScreen(t, 30, 5)
	e := New(screen, NewDocument("", "hello\n\tx"), Options{})
	e.Draw()

	if got := rowText(screen, 0); got != "hello" {
		t.Errorf("row 0 = %q, want hello", got)
	}
	if got := rowText(screen, 1); got != "    x" {
		t.Errorf("row 1 = %q, want tab expanded", got)
	}
	if got := rowText(screen, 2); got != "~" {
		t.Errorf("row 2 = %q, want filler", got)
	}
	status := rowText(screen, 4)
	if !strings.HasPrefix(status, "NORMAL") || !strings.HasSuffix(status, "1:1") {
		t.Errorf("status = %q", status)
	}

	typeKeys(e, "j$")
	e.Draw()
	if x, y, visible := screen.GetCursor(); x != 4 || y != 1 || !visible {
		t.Errorf("cursor at (%d,%d) visible=%v, want (4,1)", x, y, visible)
	}

	typeKeys(e, "3")
	e.Draw()
	if status := rowText(screen, 4); !strings.HasPrefix(status, "NORMAL - 3") {
		t.Errorf("status = %q, want pending count", status)
	}

	typeKeys(e, "<Esc>:w")
	e.Draw()
	if status := rowText(screen, 4); !strings.HasPrefix(status, ":w") {
		t.Errorf("status = %q, want command line", status)
	}
	if x, y, _ := screen.GetCursor(); x != 2 || y != 4 {
		t.Errorf("command cursor at (%d,%d), want (2,4)", x, y)
	}
}

func TestEditorScrollHints(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "l"+string(rune('a'+i)))
	}
	screen := newTestScreen(t, 20, 5)
	e := New(screen, NewDocument("", strings.Join(lines, "\n")), Options{})

	tests := []struct {
		keys string
		top  int
	}{
		{"10Gzt", 9},
		{"zb", 6},
		{"zz", 7},
		{"gg", 0},
		{"G", 16},
	}
	for _, tt := range tests {
		typeKeys(e, tt.keys)
		e.Draw()
		if e.top != tt.top {
			t.Errorf("after %q top = %d, want %d", tt.keys, e.top, tt.top)
		}
		if got := rowText(screen, 0); got != lines[tt.top] {
			t.Errorf("after %q row 0 = %q, want %q", tt.keys, got, lines[tt.top])
		}
	}
}

func TestEditorRunQuits(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	e := New(screen, NewScratch(), Options{})

	screen.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ':', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after :q")
	}
}

func TestEditorRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	e := New(screen, NewScratch(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
