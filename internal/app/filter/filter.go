// Package filter provides the field filters used by search.
package filter

import (
	"sort"
	"strings"
)

// Kind represents the kind of entity a search subject is.
type Kind int

const (
	// KindArtist is an artist.
	KindArtist Kind = iota
	// KindAlbum is an album.
	KindAlbum
	// KindSong is a track.
	KindSong
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindArtist:
		return "Artist"
	case KindAlbum:
		return "Album"
	case KindSong:
		return "Song"
	default:
		return "Unknown"
	}
}

// Filter names, in the order search composes them.
const (
	NameArtist = "artist"
	NameAlbum  = "album"
	NameGenre  = "genre"
	NameTag    = "tag"
	NameSong   = "song"
)

// Subject is an entity being matched. Fields that do not exist for a kind
// (e.g. Album for an artist) are empty.
type Subject struct {
	Kind   Kind
	Artist string
	Album  string
	Title  string
	Genre  string
	Tags   []string
}

// Query is a normalized search query.
type Query struct {
	// Text is the trimmed, lowercased query.
	Text string
	// Tag is Text with one leading '#' removed.
	Tag string
}

// NewQuery normalizes raw user input.
func NewQuery(raw string) Query {
	text := strings.ToLower(strings.TrimSpace(raw))
	return Query{
		Text: text,
		Tag:  strings.TrimPrefix(text, "#"),
	}
}

// IsEmpty reports whether the query has no text.
func (q Query) IsEmpty() bool {
	return q.Text == ""
}

// Filter is the interface for search field filters.
type Filter interface {
	// Name returns the filter name (used in config and on the command line).
	Name() string
	// Description returns a human-readable description.
	Description() string
	// AppliesTo returns true if this filter should be applied to the given kind.
	AppliesTo(kind Kind) bool
	// Match reports whether the subject matches the query on this filter's field.
	Match(q Query, s Subject) bool
}

// registry holds registered filter factories.
var registry = make(map[string]func() Filter)

// Register registers a filter factory.
func Register(name string, factory func() Filter) {
	registry[name] = factory
}

// GetRegistered returns all registered filter factories.
func GetRegistered() map[string]func() Filter {
	return registry
}

// Names returns the registered filter names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(field string, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
