package state

import "sync"

// Manager holds the current session state with thread-safe access.
type Manager struct {
	mu    sync.RWMutex
	state State
}

// NewManager creates a new state manager.
func NewManager(initial State) *Manager {
	return &Manager{
		state: initial,
	}
}

// Get returns the current state.
func (m *Manager) Get() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Set replaces the current state.
func (m *Manager) Set(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// Update applies fn to the current state and stores the result.
// Returns the previous and the new state.
func (m *Manager) Update(fn func(State) State) (State, State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.state
	m.state = fn(prev)
	return prev, m.state
}

// GetView returns the current view.
func (m *Manager) GetView() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.View
}
