// Package session provides the session manager.
package session

import (
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/browse"
	"github.com/osa030/vinylshelf/internal/app/modal"
	"github.com/osa030/vinylshelf/internal/app/notification"
	"github.com/osa030/vinylshelf/internal/app/pager"
	"github.com/osa030/vinylshelf/internal/app/router"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
	"github.com/osa030/vinylshelf/internal/infra/config"
	"github.com/osa030/vinylshelf/internal/infra/history"
)

var (
	ErrCatalogMissing  = errors.New("catalog is missing")
	ErrPlatformMissing = errors.New("platform history is missing")
	ErrTrackNotFound   = errors.New("track not found")
)

// Platform is the history and location the session drives.
type Platform interface {
	modal.History
	// Hash returns the current location hash.
	Hash() string
	// SetHash navigates to hash. Returns false when hash is already current.
	SetHash(hash string) bool
	// Drain returns the queued navigation events.
	Drain() []history.Event
}

// Manager owns the browsing session. Every user gesture is a named command;
// hash changes and popstates arrive through HashChanged and PopState.
type Manager struct {
	mu sync.Mutex

	// Configuration
	config *config.Config

	// Components
	catalog      *catalog.Catalog
	browser      *browse.Browser
	engine       *search.Engine
	router       *router.Router
	modal        *modal.Bridge
	stateMgr     *state.Manager
	notification *notification.Manager
	platform     Platform
}

// NewManager creates a new session manager over a catalog.
func NewManager(cfg *config.Config, c *catalog.Catalog, cmp browse.Comparer, p Platform) (*Manager, error) {
	if c == nil {
		return nil, ErrCatalogMissing
	}
	if p == nil {
		return nil, ErrPlatformMissing
	}

	filters, err := search.ParseFilters(cfg.Search.DefaultFilters)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default search filters")
	}

	engine := search.NewEngine(c, search.Config{
		PageSize:        cfg.Search.PageSize,
		MaxVisiblePages: cfg.Browse.MaxVisiblePages,
		ArtistHint:      cfg.GetMessage(config.MsgArtistHint),
	})

	m := &Manager{
		config:  cfg,
		catalog: c,
		browser: browse.New(c, cmp, browse.Config{
			ArtistPageSize:  cfg.Browse.ArtistPageSize,
			MaxVisiblePages: cfg.Browse.MaxVisiblePages,
		}),
		engine:       engine,
		router:       router.New(engine),
		modal:        modal.NewBridge(p),
		stateMgr:     state.NewManager(state.New(filters.Resolve())),
		notification: notification.NewManager(),
		platform:     p,
	}

	artists, albums, tracks := c.Stats()
	zlog.Info().Msgf("session ready: %d artists, %d albums, %d tracks", artists, albums, tracks)
	return m, nil
}

// Start applies the current location, or navigates to the artist list when
// there is none.
func (m *Manager) Start() {
	hash := m.platform.Hash()
	if hash == "" {
		m.platform.SetHash(router.ArtistsHash())
		return
	}
	m.HashChanged(hash)
}

// Subscribe registers a transition listener and returns its ID.
func (m *Manager) Subscribe(l notification.Listener) string {
	return m.notification.Subscribe(l)
}

// Unsubscribe removes a transition listener.
func (m *Manager) Unsubscribe(id string) {
	m.notification.Unsubscribe(id)
}

// Catalog returns the catalog the session browses.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Config returns the session configuration.
func (m *Manager) Config() *config.Config {
	return m.config
}

// update applies fn to the state and broadcasts the transition.
func (m *Manager) update(cause string, fn func(state.State) state.State) {
	prev, next := m.stateMgr.Update(fn)
	m.notification.Broadcast(notification.Transition{
		Cause:     cause,
		From:      prev.View,
		To:        next.View,
		Hash:      m.platform.Hash(),
		ModalOpen: m.modal.IsOpen(),
	})
}

// --- Navigation: these only set the hash. The state follows on HashChanged.

// NavigateToArtists navigates to the artist list.
func (m *Manager) NavigateToArtists() {
	m.platform.SetHash(router.ArtistsHash())
}

// NavigateToAlbums navigates to an artist's albums.
func (m *Manager) NavigateToAlbums(artist string) {
	m.platform.SetHash(router.AlbumsHash(artist))
}

// NavigateToTracks navigates to an album's tracks.
func (m *Manager) NavigateToTracks(artist, album string) {
	m.platform.SetHash(router.TracksHash(artist, album))
}

// NavigateToSearch navigates to a search. An empty query navigates to the
// artist list.
func (m *Manager) NavigateToSearch(query string) {
	m.platform.SetHash(router.SearchHash(query))
}

// --- Platform events

// HashChanged applies a new location hash. An open overlay is closed without
// touching history. An unknown route schedules a redirect.
func (m *Manager) HashChanged(hash string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.modal.IsOpen() {
		m.modal.Close(modal.ReasonRouteTransition)
	}

	var redirect string
	m.update("hashchange", func(s state.State) state.State {
		var next state.State
		next, redirect = m.router.Apply(s, hash)
		return next
	})

	if redirect != "" {
		m.platform.SetHash(redirect)
	}
}

// PopState reacts to the platform moving through history.
func (m *Manager) PopState() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasOpen := m.modal.IsOpen()
	m.modal.HandlePopState()
	if wasOpen {
		m.update("popstate", func(s state.State) state.State { return s })
	}
}

// Pump drains and handles queued platform events until none are left.
// Returns the number of events handled.
func (m *Manager) Pump() int {
	handled := 0
	for {
		events := m.platform.Drain()
		if len(events) == 0 {
			return handled
		}
		for _, ev := range events {
			m.Dispatch(ev)
			handled++
		}
	}
}

// Dispatch handles one platform event.
func (m *Manager) Dispatch(ev history.Event) {
	switch ev.Type {
	case history.EventHashChange:
		m.HashChanged(ev.Hash)
	case history.EventPopState:
		m.PopState()
	}
}

// --- Browse commands

// SetInitialFilter toggles the initial filter.
func (m *Manager) SetInitialFilter(key initial.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("initial", func(s state.State) state.State {
		return m.browser.SetInitialFilter(s, key)
	})
}

// SetArtistPage moves to an artist page (clamped).
func (m *Manager) SetArtistPage(page int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("artist_page", func(s state.State) state.State {
		return m.browser.SetArtistPage(s, page)
	})
}

// NextArtistPage moves one artist page forward.
func (m *Manager) NextArtistPage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("artist_page", m.browser.NextArtistPage)
}

// PrevArtistPage moves one artist page back.
func (m *Manager) PrevArtistPage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("artist_page", m.browser.PrevArtistPage)
}

// --- Search commands

// SetSearchPage moves to a search results page (clamped).
func (m *Manager) SetSearchPage(page int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("search_page", func(s state.State) state.State {
		return m.withSearchPage(s, page)
	})
}

// NextSearchPage moves one results page forward.
func (m *Manager) NextSearchPage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("search_page", func(s state.State) state.State {
		return m.withSearchPage(s, s.SearchPage+1)
	})
}

// PrevSearchPage moves one results page back.
func (m *Manager) PrevSearchPage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("search_page", func(s state.State) state.State {
		return m.withSearchPage(s, s.SearchPage-1)
	})
}

func (m *Manager) withSearchPage(s state.State, page int) state.State {
	total := pager.TotalPages(len(s.Search.Results), m.engine.PageSize())
	s.SearchPage = pager.Clamp(page, total)
	return s
}

// SetFilters replaces the filter toggles. All-off toggles are stored as all
// on. The search reruns when the search view has a query.
func (m *Manager) SetFilters(f search.Filters) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("filters", func(s state.State) state.State {
		return m.withFilters(s, f)
	})
}

// ToggleFilter flips one filter toggle.
func (m *Manager) ToggleFilter(name string) error {
	if _, err := (search.Filters{}).Toggle(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.update("filters", func(s state.State) state.State {
		f, _ := s.Filters.Toggle(name)
		return m.withFilters(s, f)
	})
	return nil
}

// withFilters stores resolved toggles and reruns an active search.
func (m *Manager) withFilters(s state.State, f search.Filters) state.State {
	s.Filters = f.Resolve()
	if s.View == state.ViewSearch && s.SearchQuery != "" {
		s.Search = m.engine.Search(s.SearchQuery, s.Filters)
		s.SearchPage = 1
	}
	return s
}

// ClearSearchInput handles the search input becoming empty.
func (m *Manager) ClearSearchInput() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stateMgr.GetView() == state.ViewSearch {
		m.platform.SetHash(router.ArtistsHash())
	}
}

// SelectResult acts on a search result: artists and albums navigate, songs
// open the detail overlay.
func (m *Manager) SelectResult(r search.Result) error {
	switch r.Type {
	case search.ResultArtist:
		m.NavigateToAlbums(r.Artist)
	case search.ResultAlbum:
		m.NavigateToTracks(r.Artist, r.Album)
	case search.ResultSong:
		t, ok := m.catalog.FindTrack(r.Artist, r.Album, r.Title)
		if !ok {
			return errors.Wrapf(ErrTrackNotFound, "%s / %s / %s", r.Artist, r.Album, r.Title)
		}
		m.OpenTrack(t)
	}
	return nil
}

// --- Overlay commands

// OpenModal shows the detail overlay.
func (m *Manager) OpenModal(d catalog.Detail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modal.Open(d)
	m.update("modal_open", func(s state.State) state.State { return s })
}

// OpenTrack shows the detail overlay for a track.
func (m *Manager) OpenTrack(t catalog.Track) {
	m.OpenModal(m.catalog.Detail(t))
}

// CloseModal closes the detail overlay.
func (m *Manager) CloseModal(reason modal.Reason) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeModal(reason)
}

func (m *Manager) closeModal(reason modal.Reason) {
	wasOpen := m.modal.IsOpen()
	m.modal.Close(reason)
	if wasOpen {
		m.update("modal_close", func(s state.State) state.State { return s })
	}
}

// --- Gestures

// Home resets the session and navigates to the artist list.
func (m *Manager) Home() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeModal(modal.ReasonUserAction)
	m.update("home", func(s state.State) state.State {
		s = s.ClearSearch().ClearSelection()
		s.Filters = search.AllOn()
		s.Initial = initial.None
		s.ArtistPage = 1
		return s
	})
	m.platform.SetHash(router.ArtistsHash())
}

// SwipeBack closes the overlay if open, otherwise goes back unless already
// at the artist list.
func (m *Manager) SwipeBack() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.modal.IsOpen() {
		m.closeModal(modal.ReasonUserAction)
		return
	}
	hash := m.platform.Hash()
	if hash != "" && hash != router.ArtistsHash() {
		m.platform.Back()
	}
}
