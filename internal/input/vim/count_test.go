package vim

import "testing"

func TestCountAccumulate(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		max    int
		want   int
		active bool
	}{
		{"none", "", 0, 1, false},
		{"single", "5", 0, 5, true},
		{"ten", "10", 0, 10, true},
		{"leading zero rejected", "0", 0, 1, false},
		{"multi", "123", 0, 123, true},
		{"capped", "123456", 99999, 99999, true},
		{"cap reached mid way", "99999", 500, 500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountState(tt.max)
			for _, r := range tt.digits {
				c.AccumulateDigit(r)
			}
			if got := c.Get(); got != tt.want {
				t.Errorf("Get() = %d, want %d", got, tt.want)
			}
			if c.Active != tt.active {
				t.Errorf("Active = %v, want %v", c.Active, tt.active)
			}
		})
	}
}

func TestCountRejectsNonDigits(t *testing.T) {
	c := NewCountState(0)
	if c.AccumulateDigit('x') {
		t.Error("accepted a letter")
	}
	if c.AccumulateDigit('٣') {
		t.Error("accepted a non-ASCII digit")
	}
}

func TestCountOverflowGuard(t *testing.T) {
	c := NewCountState(0)
	for i := 0; i < 40; i++ {
		c.AccumulateDigit('9')
	}
	if c.Value <= 0 {
		t.Fatalf("count overflowed to %d", c.Value)
	}
}

func TestCountStringAndReset(t *testing.T) {
	c := NewCountState(0)
	if c.String() != "" || c.Explicit() != 0 {
		t.Error("empty count should display nothing")
	}
	c.AccumulateDigit('4')
	c.AccumulateDigit('2')
	if c.String() != "42" || c.Explicit() != 42 {
		t.Errorf("String() = %q, Explicit() = %d", c.String(), c.Explicit())
	}
	c.Reset()
	if c.Active || c.Value != 0 || c.Max != 0 {
		t.Errorf("Reset left %+v", *c)
	}
}
