package mode

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the active mode and notifies listeners of changes.
// It is not safe for concurrent use; it belongs to a single Machine.
type Manager struct {
	current  Mode
	previous Mode

	// callbacks are notified on mode changes. Unregistered slots are nil.
	callbacks []ChangeCallback
}

// NewManager creates a manager starting in the given mode.
func NewManager(initial Mode) *Manager {
	return &Manager{current: initial, previous: initial}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode that was active before the last switch.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is returns true if the active mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.current == mode
}

// Switch activates mode to. It returns false, without notifying
// callbacks, when to is already active.
func (m *Manager) Switch(to Mode) bool {
	if to == m.current {
		return false
	}
	from := m.current
	m.previous = from
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return true
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Set to nil rather than remove so other indices stay valid.
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
