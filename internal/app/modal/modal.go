// Package modal provides the track detail overlay and its history entry.
//
// Opening the overlay pushes one synthetic history entry carrying a marker.
// A platform "back" then pops that entry and closes the overlay instead of
// leaving the current route. Closing the overlay from a control pops the
// entry again so the history stays balanced.
package modal

import (
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

// MarkerPrefix prefixes the marker of every synthetic overlay entry.
const MarkerPrefix = "track:"

// Status represents the overlay status.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusClosed:
		return "closed"
	case StatusOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Reason represents why the overlay is being closed.
type Reason int

const (
	ReasonUserAction      Reason = iota // Close control
	ReasonPlatformBack                  // The platform already popped the entry
	ReasonRouteTransition               // A route change is in progress
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonUserAction:
		return "user_action"
	case ReasonPlatformBack:
		return "platform_back"
	case ReasonRouteTransition:
		return "route_transition"
	default:
		return "unknown"
	}
}

// History is the platform history the bridge drives.
type History interface {
	// PushMarker pushes an entry with the current hash and the given marker.
	PushMarker(marker string)
	// Back moves one entry back. Returns false if there is nothing to go back to.
	Back() bool
	// Marker returns the marker of the current entry, or "".
	Marker() string
}

// Snapshot is a read-only view of the overlay.
type Snapshot struct {
	Status  Status
	Content catalog.Detail
	Pending bool
}

// Bridge keeps the overlay and the platform history in step.
type Bridge struct {
	history History
	status  Status
	content catalog.Detail
	pending bool
	marker  string
}

// NewBridge creates a new bridge over a platform history.
func NewBridge(h History) *Bridge {
	return &Bridge{history: h}
}

// Open shows the overlay with content. One marker entry is pushed unless one
// is already pending.
func (b *Bridge) Open(content catalog.Detail) {
	b.content = content
	b.status = StatusOpen

	if b.pending {
		return
	}
	b.marker = MarkerPrefix + uuid.New().String()
	b.history.PushMarker(b.marker)
	b.pending = true
	zlog.Debug().Msgf("modal opened: %s / %s (marker %s)", content.Artist, content.Title, b.marker)
}

// Close hides the overlay. Only a user action pops the marker entry, and only
// while the platform is still on it.
func (b *Bridge) Close(reason Reason) {
	if b.status == StatusClosed {
		b.pending = false
		return
	}
	b.status = StatusClosed

	if reason == ReasonUserAction && b.pending && b.history.Marker() == b.marker {
		// clear first: the pop comes back as a popstate
		b.pending = false
		b.history.Back()
	}

	b.pending = false
	b.marker = ""
	zlog.Debug().Msgf("modal closed (%s)", reason)
}

// HandlePopState reacts to a platform popstate. An open overlay closes without
// touching history; a closed one only forgets its marker.
func (b *Bridge) HandlePopState() {
	if b.status == StatusOpen {
		b.Close(ReasonPlatformBack)
		return
	}
	b.pending = false
}

// IsOpen reports whether the overlay is open.
func (b *Bridge) IsOpen() bool {
	return b.status == StatusOpen
}

// Pending reports whether a marker entry is pushed and not yet popped.
func (b *Bridge) Pending() bool {
	return b.pending
}

// Content returns the overlay content while open.
func (b *Bridge) Content() (catalog.Detail, bool) {
	if b.status != StatusOpen {
		return catalog.Detail{}, false
	}
	return b.content, true
}

// Snapshot returns the overlay status, content and pending flag.
func (b *Bridge) Snapshot() Snapshot {
	content, _ := b.Content()
	return Snapshot{Status: b.status, Content: content, Pending: b.pending}
}
