package input

import "testing"

func TestParseExCommand(t *testing.T) {
	tests := []struct {
		line  string
		name  ExName
		arg   string
		force bool
		goTo  int
	}{
		{"", ExNone, "", false, 0},
		{"   ", ExNone, "", false, 0},
		{"w", ExWrite, "", false, 0},
		{"write", ExWrite, "", false, 0},
		{"w out.txt", ExWrite, "out.txt", false, 0},
		{"q", ExQuit, "", false, 0},
		{"q!", ExQuit, "", true, 0},
		{"wq", ExWriteQuit, "", false, 0},
		{"x", ExWriteQuit, "", false, 0},
		{"e notes.md", ExEdit, "notes.md", false, 0},
		{"e!", ExEdit, "", true, 0},
		{"new", ExNew, "", false, 0},
		{"cp", ExCopyPos, "", false, 0},
		{"42", ExGoto, "", false, 42},
		{" 7 ", ExGoto, "", false, 7},
		{"0", ExGoto, "", false, 1},
		{"frobnicate", ExUnknown, "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := ParseExCommand(tt.line)
			if cmd.Name != tt.name {
				t.Errorf("Name = %q, want %q", cmd.Name, tt.name)
			}
			if cmd.Arg != tt.arg {
				t.Errorf("Arg = %q, want %q", cmd.Arg, tt.arg)
			}
			if cmd.Force != tt.force {
				t.Errorf("Force = %v, want %v", cmd.Force, tt.force)
			}
			if cmd.Line != tt.goTo {
				t.Errorf("Line = %d, want %d", cmd.Line, tt.goTo)
			}
		})
	}
}

func TestCommandRunnerFunc(t *testing.T) {
	var got ExCommand
	var r CommandRunner = CommandRunnerFunc(func(cmd ExCommand) error {
		got = cmd
		return nil
	})
	if err := r.RunCommand(ParseExCommand("wq")); err != nil {
		t.Fatal(err)
	}
	if got.Name != ExWriteQuit {
		t.Errorf("runner got %+v", got)
	}
}
