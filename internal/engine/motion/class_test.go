package motion

import "testing"

func TestClass(t *testing.T) {
	tests := []struct {
		r       rune
		bigWord bool
		want    RunKind
	}{
		{'a', false, RunWord},
		{'Z', false, RunWord},
		{'7', false, RunWord},
		{'_', false, RunWord},
		{'é', false, RunWord},
		{'.', false, RunPunct},
		{'(', false, RunPunct},
		{'.', true, RunWord},
		{' ', false, RunSpace},
		{'\t', true, RunSpace},
		{'\n', false, RunSpace},
	}

	for _, tt := range tests {
		if got := Class(tt.r, tt.bigWord); got != tt.want {
			t.Errorf("Class(%q, %v) = %v, want %v", tt.r, tt.bigWord, got, tt.want)
		}
	}
}

func TestRunKindString(t *testing.T) {
	if RunPunct.String() != "punct" {
		t.Errorf("expected punct, got %q", RunPunct.String())
	}
	if RunKind(9).String() != "unknown" {
		t.Errorf("expected unknown, got %q", RunKind(9).String())
	}
}
