package vim

import (
	"testing"

	"github.com/dshills/vimotion/internal/engine/motion"
)

func TestSearchMemory(t *testing.T) {
	var m SearchMemory
	if _, ok := m.Last(); ok {
		t.Fatal("new memory should be empty")
	}

	want := motion.CharSearch{Target: 'x', Direction: motion.Backward, Kind: motion.SearchBefore}
	m.Remember(want)
	got, ok := m.Last()
	if !ok || got != want {
		t.Errorf("Last() = %v, %v; want %v, true", got, ok, want)
	}

	m.Clear()
	if _, ok := m.Last(); ok {
		t.Error("Clear() should forget the search")
	}
}
