package tui

import (
	"sync"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/notification"
)

// transitionLog records session transitions for the model to apply on its
// next update. It runs under the session lock, so it only records.
type transitionLog struct {
	mu      sync.Mutex
	pending []notification.Transition
}

// OnTransition implements notification.Listener.
func (l *transitionLog) OnTransition(t notification.Transition) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, t)
	return nil
}

func (l *transitionLog) take() []notification.Transition {
	l.mu.Lock()
	defer l.mu.Unlock()
	pending := l.pending
	l.pending = nil
	return pending
}

// listChanged reports whether a transition replaces the listed rows.
func listChanged(t notification.Transition) bool {
	if t.From != t.To {
		return true
	}
	switch t.Cause {
	case "hashchange", "initial", "artist_page", "search_page", "filters", "home":
		return true
	}
	return false
}

// applyTransitions moves the cursor to the top when the list changed.
func (m *Model) applyTransitions() {
	for _, t := range m.transitions.take() {
		zlog.Debug().Msgf("tui: transition #%d %s %s -> %s (%s)", t.SequenceNo, t.Cause, t.From, t.To, t.Hash)
		if listChanged(t) {
			m.cursor = 0
		}
	}
}
