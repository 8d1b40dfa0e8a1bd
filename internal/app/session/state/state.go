package state

import (
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
)

// State is the browsing session state. It is a plain value: transition
// functions take a State and return the next one.
type State struct {
	View View

	// Browse
	Initial        initial.Key
	SelectedArtist string
	SelectedAlbum  *catalog.AlbumKey
	ArtistPage     int

	// Search
	SearchQuery string
	SearchPage  int
	Search      search.Outcome
	Filters     search.Filters
}

// New returns the state of a fresh session.
func New(filters search.Filters) State {
	return State{
		View:       ViewArtists,
		Initial:    initial.None,
		ArtistPage: 1,
		SearchPage: 1,
		Search:     search.Outcome{Status: search.StatusNoQuery, Results: []search.Result{}},
		Filters:    filters,
	}
}

// Album returns the selected album key.
func (s State) Album() (catalog.AlbumKey, bool) {
	if s.SelectedAlbum == nil {
		return catalog.AlbumKey{}, false
	}
	return *s.SelectedAlbum, true
}

// WithAlbum returns a copy with the album selection set to key.
func (s State) WithAlbum(key catalog.AlbumKey) State {
	s.SelectedAlbum = &key
	return s
}

// ClearSelection returns a copy with no artist or album selected.
func (s State) ClearSelection() State {
	s.SelectedArtist = ""
	s.SelectedAlbum = nil
	return s
}

// ClearSearch returns a copy with the search query and results reset.
func (s State) ClearSearch() State {
	s.SearchQuery = ""
	s.SearchPage = 1
	s.Search = search.Outcome{Status: search.StatusNoQuery, Results: []search.Result{}}
	return s
}
