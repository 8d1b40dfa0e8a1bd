// Package history provides an in-memory browser-style history with a
// location hash and queued navigation events.
package history

import (
	"strings"
	"sync"

	zlog "github.com/rs/zerolog/log"
)

// EventType represents the kind of navigation event.
type EventType int

const (
	EventHashChange EventType = iota // The location hash changed
	EventPopState                    // The current entry changed through back/forward
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventHashChange:
		return "hashchange"
	case EventPopState:
		return "popstate"
	default:
		return "unknown"
	}
}

// Event is a queued navigation event.
type Event struct {
	Type EventType
	Hash string
}

// Entry is one history entry.
type Entry struct {
	Hash   string
	Marker string
}

// Stack is a linear history with a current index.
// Events are queued, never dispatched inline; callers Drain them.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	queue   []Event
}

// New creates a history holding one entry at hash. No event is queued.
func New(hash string) *Stack {
	return &Stack{
		entries: []Entry{{Hash: normalize(hash)}},
	}
}

// normalize ensures a non-empty hash starts with '#'.
func normalize(hash string) string {
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return ""
	}
	return "#" + hash
}

// SetHash navigates to hash: forward entries are dropped, a new entry is
// pushed and a hashchange is queued. Setting the current hash does nothing.
func (s *Stack) SetHash(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash = normalize(hash)
	if s.entries[s.index].Hash == hash {
		return false
	}
	s.push(Entry{Hash: hash})
	s.queue = append(s.queue, Event{Type: EventHashChange, Hash: hash})
	zlog.Debug().Msgf("history: set hash %q (%d entries)", hash, len(s.entries))
	return true
}

// PushMarker pushes an entry with the current hash and a marker.
// No event is queued.
func (s *Stack) PushMarker(marker string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.push(Entry{Hash: s.entries[s.index].Hash, Marker: marker})
	zlog.Debug().Msgf("history: pushed marker %s", marker)
}

func (s *Stack) push(e Entry) {
	s.entries = append(s.entries[:s.index+1], e)
	s.index = len(s.entries) - 1
}

// Back moves one entry back and queues a popstate, followed by a hashchange
// when the hash differs. Returns false at the first entry.
func (s *Stack) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(-1)
}

// Forward moves one entry forward. Returns false at the last entry.
func (s *Stack) Forward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(1)
}

func (s *Stack) move(delta int) bool {
	next := s.index + delta
	if next < 0 || next >= len(s.entries) {
		return false
	}
	prev := s.entries[s.index]
	s.index = next
	cur := s.entries[s.index]

	s.queue = append(s.queue, Event{Type: EventPopState, Hash: cur.Hash})
	if cur.Hash != prev.Hash {
		s.queue = append(s.queue, Event{Type: EventHashChange, Hash: cur.Hash})
	}
	return true
}

// Hash returns the hash of the current entry.
func (s *Stack) Hash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.index].Hash
}

// Marker returns the marker of the current entry.
func (s *Stack) Marker() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.index].Marker
}

// CanGoBack reports whether a previous entry exists.
func (s *Stack) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index > 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Drain returns the queued events in order and clears the queue.
func (s *Stack) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.queue
	s.queue = nil
	return events
}
