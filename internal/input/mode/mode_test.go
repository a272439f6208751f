package mode

import "testing"

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		cursor  CursorStyle
	}{
		{Normal, "normal", "NORMAL", CursorBlock},
		{Insert, "insert", "INSERT", CursorBar},
		{Command, "command", "COMMAND", CursorBar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.DisplayName(); got != tt.display {
				t.Errorf("DisplayName() = %q, want %q", got, tt.display)
			}
			if got := tt.mode.CursorStyle(); got != tt.cursor {
				t.Errorf("CursorStyle() = %v, want %v", got, tt.cursor)
			}
			parsed, err := Parse(tt.name)
			if err != nil || parsed != tt.mode {
				t.Errorf("Parse(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("visual"); err == nil {
		t.Error("expected error for unsupported mode")
	}
	if m, err := Parse(" INSERT "); err != nil || m != Insert {
		t.Errorf("Parse is not case-insensitive: %v, %v", m, err)
	}
	if Mode(9).Valid() {
		t.Error("Mode(9) should be invalid")
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewManager(Normal)
	if !m.Is(Normal) {
		t.Fatalf("initial mode = %v, want normal", m.Current())
	}

	var changes [][2]Mode
	m.OnChange(func(from, to Mode) {
		changes = append(changes, [2]Mode{from, to})
	})

	if !m.Switch(Insert) {
		t.Error("Switch(Insert) should report a change")
	}
	if m.Switch(Insert) {
		t.Error("Switch to the active mode should be a no-op")
	}
	m.Switch(Normal)

	if m.Previous() != Insert {
		t.Errorf("Previous() = %v, want insert", m.Previous())
	}
	want := [][2]Mode{{Normal, Insert}, {Insert, Normal}}
	if len(changes) != len(want) {
		t.Fatalf("got %d callbacks, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}
}

func TestManagerUnregister(t *testing.T) {
	m := NewManager(Normal)
	calls := 0
	unregister := m.OnChange(func(from, to Mode) { calls++ })
	other := 0
	m.OnChange(func(from, to Mode) { other++ })

	m.Switch(Command)
	unregister()
	m.Switch(Normal)

	if calls != 1 {
		t.Errorf("unregistered callback ran %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("remaining callback ran %d times, want 2", other)
	}
}
