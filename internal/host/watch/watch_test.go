package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{0, "none"},
		{OpWrite, "write"},
		{OpCreate | OpWrite, "create|write"},
		{OpRemove | OpRename, "remove|rename"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConvertOp(t *testing.T) {
	if got := convertOp(fsnotify.Write | fsnotify.Chmod); got != OpWrite {
		t.Errorf("convertOp = %v, want write", got)
	}
	if got := convertOp(fsnotify.Chmod); got != 0 {
		t.Errorf("chmod should be ignored, got %v", got)
	}
}

func TestWatchUnwatch(t *testing.T) {
	w, err := New(nil)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if !w.IsWatching(path) {
		t.Error("should be watching the file")
	}
	if err := w.Watch(path); err != ErrAlreadyWatching {
		t.Errorf("Watch again error = %v, want ErrAlreadyWatching", err)
	}
	if err := w.Unwatch(path); err != nil {
		t.Fatalf("Unwatch error = %v", err)
	}
	if err := w.Unwatch(path); err != ErrNotWatching {
		t.Errorf("Unwatch again error = %v, want ErrNotWatching", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "missing")); err != ErrPathNotExist {
		t.Errorf("Watch missing error = %v, want ErrPathNotExist", err)
	}
}

func TestWatchDeliversCoalescedEvent(t *testing.T) {
	events := make(chan Event, 10)
	w, err := New(func(ev Event) { events <- ev }, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	other := filepath.Join(dir, "other.txt")
	for _, p := range []string{path, other} {
		if err := os.WriteFile(p, []byte("a"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		abs, _ := filepath.Abs(path)
		if ev.Path != abs {
			t.Errorf("event path = %q, want %q", ev.Path, abs)
		}
		if !ev.Op.Has(OpWrite) {
			t.Errorf("event op = %v, want write", ev.Op)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected second event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
	if err := w.Watch(os.TempDir()); err != ErrWatcherClosed {
		t.Errorf("Watch after Close = %v, want ErrWatcherClosed", err)
	}
}
