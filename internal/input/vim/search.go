package vim

import "github.com/dshills/vimotion/internal/engine/motion"

// SearchMemory holds the last successful character search, replayed by
// ";" and ",".
type SearchMemory struct {
	last motion.CharSearch
	set  bool
}

// Remember records a successful search.
func (m *SearchMemory) Remember(search motion.CharSearch) {
	m.last = search
	m.set = true
}

// Last returns the remembered search and whether one exists.
func (m *SearchMemory) Last() (motion.CharSearch, bool) {
	return m.last, m.set
}

// Clear forgets the remembered search.
func (m *SearchMemory) Clear() {
	m.last = motion.CharSearch{}
	m.set = false
}
