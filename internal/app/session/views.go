package session

import (
	"github.com/osa030/vinylshelf/internal/app/browse"
	"github.com/osa030/vinylshelf/internal/app/modal"
	"github.com/osa030/vinylshelf/internal/app/pager"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
	"github.com/osa030/vinylshelf/internal/infra/config"
)

// Snapshot is a read-only copy of the session.
type Snapshot struct {
	State state.State
	Hash  string
	Modal modal.Snapshot
}

// Snapshot returns the current session state, location and overlay.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State: m.stateMgr.Get(),
		Hash:  m.platform.Hash(),
		Modal: m.modal.Snapshot(),
	}
}

// ArtistsView is the artist list screen.
type ArtistsView struct {
	Initial initial.Key
	Page    pager.Page[browse.ArtistEntry]
	Info    string
}

// Artists returns the current artist page. An out-of-range stored page is
// corrected in place.
func (m *Manager) Artists() ArtistsView {
	m.mu.Lock()
	defer m.mu.Unlock()

	var page pager.Page[browse.ArtistEntry]
	_, s := m.stateMgr.Update(func(s state.State) state.State {
		var corrected state.State
		page, corrected = m.browser.Artists(s)
		return corrected
	})

	v := ArtistsView{Initial: s.Initial, Page: page}
	if len(page.Items) == 0 && s.Initial != initial.None {
		v.Info = m.config.GetMessage(config.MsgNoInitialMatches)
	}
	return v
}

// AlbumsView is the album list of the selected artist.
type AlbumsView struct {
	Artist string
	Albums []catalog.Album
	Info   string
}

// Albums returns the albums of the selected artist.
func (m *Manager) Albums() AlbumsView {
	s := m.stateMgr.Get()
	v := AlbumsView{Artist: s.SelectedArtist, Albums: m.browser.AlbumsForSelectedArtist(s)}
	switch {
	case s.SelectedArtist == "":
		v.Info = m.config.GetMessage(config.MsgSelectArtist)
	case len(v.Albums) == 0:
		v.Info = m.config.GetMessage(config.MsgNoAlbums)
	}
	return v
}

// TracksView is the track list of the selected album.
type TracksView struct {
	Album    catalog.AlbumKey
	Selected bool
	Tracks   []catalog.Track
	Info     string
}

// Tracks returns the tracks of the selected album.
func (m *Manager) Tracks() TracksView {
	s := m.stateMgr.Get()
	key, ok := s.Album()
	v := TracksView{Album: key, Selected: ok, Tracks: m.browser.TracksForSelectedAlbum(s)}
	switch {
	case !ok:
		v.Info = m.config.GetMessage(config.MsgSelectAlbum)
	case len(v.Tracks) == 0:
		v.Info = m.config.GetMessage(config.MsgNoTracks)
	}
	return v
}

// SearchView is the search results screen.
type SearchView struct {
	Query   string
	Status  search.Status
	Filters search.Filters
	Total   int
	Page    pager.Page[search.Result]
	Info    string
}

// SearchResults returns the current page of search results.
func (m *Manager) SearchResults() SearchView {
	s := m.stateMgr.Get()
	return SearchView{
		Query:   s.SearchQuery,
		Status:  s.Search.Status,
		Filters: s.Filters,
		Total:   len(s.Search.Results),
		Page:    m.engine.Page(s.Search, s.SearchPage),
		Info:    m.searchInfo(s.Search),
	}
}

// SearchInfo returns the informational line of the last search.
func (m *Manager) SearchInfo() string {
	return m.searchInfo(m.stateMgr.Get().Search)
}

func (m *Manager) searchInfo(o search.Outcome) string {
	switch o.Status {
	case search.StatusNoResults:
		return m.config.FormatMessage(config.MsgNoResults, o.Query, 0)
	case search.StatusFound:
		return m.config.FormatMessage(config.MsgResultCount, o.Query, len(o.Results))
	default:
		return m.config.GetMessage(config.MsgEnterQuery)
	}
}

// Modal returns the overlay content while it is open.
func (m *Manager) Modal() (catalog.Detail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modal.Content()
}
