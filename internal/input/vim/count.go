package vim

import (
	"math"
	"strconv"
)

// DefaultMaxCount caps a typed count when no other limit is configured.
const DefaultMaxCount = 99999

// CountState tracks count prefix accumulation during parsing.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool

	// Max caps Value. Zero or negative means math.MaxInt / 10.
	Max int
}

// NewCountState creates a count state capped at max.
func NewCountState(max int) *CountState {
	return &CountState{Max: max}
}

// Reset clears the count state. The cap is kept.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
// Only accepts ASCII digits 0-9.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')

	// '0' at the start is not a count, it's a motion
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	limit := c.limit()
	if c.Value > (limit-digit)/10 {
		c.Value = limit
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Explicit returns the typed count, or 0 when none was typed.
func (c *CountState) Explicit() int {
	if !c.Active {
		return 0
	}
	return c.Value
}

// String returns the typed count for display, or "" when none.
func (c *CountState) String() string {
	if !c.Active {
		return ""
	}
	return strconv.Itoa(c.Value)
}

func (c *CountState) limit() int {
	if c.Max > 0 {
		return c.Max
	}
	return math.MaxInt / 10
}

// IsCountStart returns true if the character could start a count.
// '0' cannot start a count (it's a motion to line start).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit returns true if the character is a digit valid in a count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
