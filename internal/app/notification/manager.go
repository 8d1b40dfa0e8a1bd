// Package notification provides the manager that broadcasts session transitions.
package notification

import (
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/session/state"
)

// Transition describes one applied change of session state.
type Transition struct {
	SequenceNo uint64
	// Cause names the command or platform event that produced the change.
	Cause     string
	From      state.View
	To        state.View
	Hash      string
	ModalOpen bool
}

// Listener receives transitions.
type Listener interface {
	OnTransition(Transition) error
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Transition) error

// OnTransition calls f.
func (f ListenerFunc) OnTransition(t Transition) error {
	return f(t)
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id       string
	listener Listener
}

// Manager manages transition subscriptions and broadcasting.
// Delivery is synchronous and in subscription order.
type Manager struct {
	mu            sync.RWMutex
	subscriptions []*subscription
	sequenceNo    uint64
	sequenceNoMu  sync.Mutex
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make([]*subscription, 0),
	}
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(listener Listener) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions = append(m.subscriptions, &subscription{
		id:       id,
		listener: listener,
	})
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, sub := range m.subscriptions {
		if sub.id == subscriptionID {
			m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
			return
		}
	}
}

// Broadcast stamps the transition with the next sequence number and delivers
// it to every subscriber. Listener errors are logged and do not stop delivery.
func (m *Manager) Broadcast(t Transition) Transition {
	m.sequenceNoMu.Lock()
	m.sequenceNo++
	t.SequenceNo = m.sequenceNo
	m.sequenceNoMu.Unlock()

	m.mu.RLock()
	// Copy subscriptions to avoid holding lock during delivery
	subs := make([]*subscription, len(m.subscriptions))
	copy(subs, m.subscriptions)
	m.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.listener.OnTransition(t); err != nil {
			zlog.Warn().Err(err).Msgf("transition listener %s failed", sub.id)
		}
	}
	return t
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Close removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make([]*subscription, 0)
}
