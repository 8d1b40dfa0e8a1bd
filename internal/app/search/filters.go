package search

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/osa030/vinylshelf/internal/app/filter"
)

// ErrUnknownFilter is returned when a filter name is not recognized.
var ErrUnknownFilter = errors.New("unknown search filter")

// Filters holds the search filter toggles.
type Filters struct {
	Artist bool
	Album  bool
	Genre  bool
	Tag    bool
	Song   bool
}

// AllOn returns filters with every toggle enabled.
func AllOn() Filters {
	return Filters{Artist: true, Album: true, Genre: true, Tag: true, Song: true}
}

// None reports whether every toggle is off.
func (f Filters) None() bool {
	return !f.Artist && !f.Album && !f.Genre && !f.Tag && !f.Song
}

// Resolve returns the effective filters: all off means all on.
func (f Filters) Resolve() Filters {
	if f.None() {
		return AllOn()
	}
	return f
}

// Enabled reports whether the named filter is on.
func (f Filters) Enabled(name string) bool {
	switch name {
	case filter.NameArtist:
		return f.Artist
	case filter.NameAlbum:
		return f.Album
	case filter.NameGenre:
		return f.Genre
	case filter.NameTag:
		return f.Tag
	case filter.NameSong:
		return f.Song
	default:
		return false
	}
}

// With returns a copy with the named filter set to on.
func (f Filters) With(name string, on bool) (Filters, error) {
	switch name {
	case filter.NameArtist:
		f.Artist = on
	case filter.NameAlbum:
		f.Album = on
	case filter.NameGenre:
		f.Genre = on
	case filter.NameTag:
		f.Tag = on
	case filter.NameSong:
		f.Song = on
	default:
		return f, errors.Wrapf(ErrUnknownFilter, "%q", name)
	}
	return f, nil
}

// Toggle returns a copy with the named filter flipped.
func (f Filters) Toggle(name string) (Filters, error) {
	return f.With(name, !f.Enabled(name))
}

// Names returns the enabled filter names in composition order.
func (f Filters) Names() []string {
	names := make([]string, 0, len(order))
	for _, name := range order {
		if f.Enabled(name) {
			names = append(names, name)
		}
	}
	return names
}

// String returns the enabled filter names joined by commas.
func (f Filters) String() string {
	if f.None() {
		return "none"
	}
	return strings.Join(f.Names(), ",")
}

// ParseFilters builds toggles from filter names. An empty list gives all off,
// which resolves to all on.
func ParseFilters(names []string) (Filters, error) {
	var f Filters
	for _, name := range names {
		var err error
		f, err = f.With(strings.ToLower(strings.TrimSpace(name)), true)
		if err != nil {
			return Filters{}, err
		}
	}
	return f, nil
}

// Order returns the filter names in composition order.
func Order() []string {
	return append([]string(nil), order...)
}

var order = []string{
	filter.NameArtist,
	filter.NameAlbum,
	filter.NameGenre,
	filter.NameTag,
	filter.NameSong,
}
