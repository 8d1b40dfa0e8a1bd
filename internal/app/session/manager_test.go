package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/vinylshelf/internal/app/filter"
	"github.com/osa030/vinylshelf/internal/app/modal"
	"github.com/osa030/vinylshelf/internal/app/notification"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
	"github.com/osa030/vinylshelf/internal/domain/record"
	"github.com/osa030/vinylshelf/internal/infra/collation"
	"github.com/osa030/vinylshelf/internal/infra/config"
	"github.com/osa030/vinylshelf/internal/infra/history"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Sources: []config.SourceConfig{{Type: "json", Name: "test"}}},
	}
	require.NoError(t, defaults.Set(cfg))
	return cfg
}

func testRows() []record.Raw {
	return []record.Raw{
		{Artist: "Björk", Album: "Vespertine", Year: "2001", Genre: "Electronic", Location: "A-1", TrackNo: "1", TrackTitle: "Hidden Place", MoodTags: "#calm"},
		{Artist: "Björk", Album: "Vespertine", Location: "Z-9", TrackNo: "2", TrackTitle: "Cocoon"},
		{Artist: "Unknown Band", Album: "Plain", Genre: "Rock", TrackTitle: "Love Song"},
		{Artist: "김광석", Album: "다시 부르기", TrackTitle: "이등병의 편지"},
	}
}

func newTestManager(t *testing.T) (*Manager, *history.Stack) {
	t.Helper()
	coll, err := collation.New("ko")
	require.NoError(t, err)

	h := history.New("")
	m, err := NewManager(testConfig(t), catalog.Normalize(testRows()), coll, h)
	require.NoError(t, err)
	m.Start()
	m.Pump()
	return m, h
}

func TestNewManager_Preconditions(t *testing.T) {
	coll, err := collation.New("ko")
	require.NoError(t, err)

	_, err = NewManager(testConfig(t), nil, coll, history.New(""))
	assert.ErrorIs(t, err, ErrCatalogMissing)

	_, err = NewManager(testConfig(t), catalog.Normalize(nil), coll, nil)
	assert.ErrorIs(t, err, ErrPlatformMissing)

	cfg := testConfig(t)
	cfg.Search.DefaultFilters = []string{"year"}
	_, err = NewManager(cfg, catalog.Normalize(nil), coll, history.New(""))
	assert.ErrorIs(t, err, search.ErrUnknownFilter)
}

func TestManager_Start(t *testing.T) {
	m, h := newTestManager(t)

	assert.Equal(t, "#artists", h.Hash())
	snap := m.Snapshot()
	assert.Equal(t, state.ViewArtists, snap.State.View)
	assert.Equal(t, search.AllOn(), snap.State.Filters)
}

func TestManager_Start_ExistingHash(t *testing.T) {
	coll, err := collation.New("ko")
	require.NoError(t, err)

	h := history.New("#albums/Bj%C3%B6rk")
	m, err := NewManager(testConfig(t), catalog.Normalize(testRows()), coll, h)
	require.NoError(t, err)
	m.Start()

	assert.Equal(t, state.ViewAlbums, m.Snapshot().State.View)
	assert.Equal(t, "Björk", m.Albums().Artist)
}

func TestManager_NavigateToTracks(t *testing.T) {
	m, h := newTestManager(t)

	m.NavigateToTracks("Björk", "Vespertine")
	assert.Equal(t, 1, m.Pump())

	assert.Equal(t, "#tracks/Bj%C3%B6rk/Vespertine", h.Hash())
	s := m.Snapshot().State
	assert.Equal(t, state.ViewTracks, s.View)
	assert.Equal(t, "Björk", s.SelectedArtist)
	key, ok := s.Album()
	require.True(t, ok)
	assert.Equal(t, "Björk__Vespertine", key.String())

	v := m.Tracks()
	assert.Len(t, v.Tracks, 2)
	assert.Empty(t, v.Info)
}

func TestManager_UnknownRouteRedirects(t *testing.T) {
	m, h := newTestManager(t)
	m.NavigateToAlbums("Björk")
	m.Pump()

	h.SetHash("#settings/x")
	handled := m.Pump()

	assert.Equal(t, 2, handled, "the redirect arrives as a second event")
	assert.Equal(t, "#artists", h.Hash())
	assert.Equal(t, state.ViewArtists, m.Snapshot().State.View)
	assert.Empty(t, m.Snapshot().State.SelectedArtist)
}

func TestManager_ModalBackSequence(t *testing.T) {
	m, h := newTestManager(t)
	m.NavigateToTracks("Björk", "Vespertine")
	m.Pump()
	entries := h.Len()

	tracks := m.Tracks().Tracks
	require.Len(t, tracks, 2)

	// open, then the platform goes back
	m.OpenTrack(tracks[1])
	assert.Equal(t, entries+1, h.Len(), "one marker entry pushed")
	d, ok := m.Modal()
	require.True(t, ok)
	assert.Equal(t, "A-1", d.Location, "album location wins")

	require.True(t, h.Back())
	m.Pump()
	_, ok = m.Modal()
	assert.False(t, ok)
	assert.Equal(t, "#tracks/Bj%C3%B6rk/Vespertine", h.Hash(), "route is unchanged")
	assert.False(t, m.Snapshot().Modal.Pending)

	// open again, close from the control
	m.OpenTrack(tracks[0])
	assert.True(t, m.Snapshot().Modal.Pending)
	m.CloseModal(modal.ReasonUserAction)
	assert.Empty(t, h.Marker(), "exactly one back to the route entry")
	assert.Equal(t, "#tracks/Bj%C3%B6rk/Vespertine", h.Hash())

	events := h.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, history.EventPopState, events[0].Type)
	m.Dispatch(events[0])
	assert.Equal(t, state.ViewTracks, m.Snapshot().State.View)
}

func TestManager_RouteChangeClosesModal(t *testing.T) {
	m, h := newTestManager(t)
	m.NavigateToTracks("Björk", "Vespertine")
	m.Pump()

	m.OpenTrack(m.Tracks().Tracks[0])
	m.NavigateToArtists()
	m.Pump()

	_, ok := m.Modal()
	assert.False(t, ok)
	assert.Equal(t, "#artists", h.Hash())
	assert.False(t, m.Snapshot().Modal.Pending)
}

func TestManager_Search(t *testing.T) {
	m, h := newTestManager(t)

	m.NavigateToSearch("  love ")
	m.Pump()
	assert.Equal(t, "#search/love", h.Hash())

	v := m.SearchResults()
	assert.Equal(t, search.StatusFound, v.Status)
	assert.Equal(t, 1, v.Total)
	assert.Equal(t, `1 results for "love".`, v.Info)
	require.Len(t, v.Page.Items, 1)
	assert.Equal(t, search.ResultSong, v.Page.Items[0].Type)

	m.SetFilters(search.Filters{Artist: true})
	v = m.SearchResults()
	assert.Equal(t, search.StatusNoResults, v.Status)
	assert.Equal(t, `No results for "love".`, v.Info)

	m.SetFilters(search.Filters{})
	assert.Equal(t, search.AllOn(), m.Snapshot().State.Filters, "all off is written back as all on")
	assert.Equal(t, search.StatusFound, m.SearchResults().Status)

	require.NoError(t, m.ToggleFilter("song"))
	assert.False(t, m.Snapshot().State.Filters.Song)
	assert.Error(t, m.ToggleFilter("year"))

	m.NavigateToSearch("")
	m.Pump()
	assert.Equal(t, state.ViewArtists, m.Snapshot().State.View)
	assert.Equal(t, "Enter a search term or adjust the filters.", m.SearchInfo())
}

func TestManager_SearchPage(t *testing.T) {
	m, _ := newTestManager(t)
	m.NavigateToSearch("b")
	m.Pump()

	m.SetSearchPage(7)
	assert.Equal(t, 1, m.Snapshot().State.SearchPage, "clamped to the only page")
	m.NextSearchPage()
	m.PrevSearchPage()
	assert.Equal(t, 1, m.Snapshot().State.SearchPage)
}

func TestManager_SelectResult(t *testing.T) {
	m, h := newTestManager(t)
	m.NavigateToSearch("björk")
	m.Pump()

	results := m.SearchResults().Page.Items
	require.NotEmpty(t, results)

	byType := make(map[filter.Kind][]search.Result)
	for _, r := range results {
		byType[r.Type] = append(byType[r.Type], r)
	}

	require.NoError(t, m.SelectResult(byType[search.ResultSong][1]))
	d, ok := m.Modal()
	require.True(t, ok)
	assert.Equal(t, "Cocoon", d.Title)
	assert.Equal(t, "A-1", d.Location)
	m.CloseModal(modal.ReasonUserAction)
	m.Pump()

	require.NoError(t, m.SelectResult(byType[search.ResultAlbum][0]))
	m.Pump()
	assert.Equal(t, "#tracks/Bj%C3%B6rk/Vespertine", h.Hash())

	require.NoError(t, m.SelectResult(byType[search.ResultArtist][0]))
	m.Pump()
	assert.Equal(t, "#albums/Bj%C3%B6rk", h.Hash())

	err := m.SelectResult(search.Result{Type: search.ResultSong, Artist: "x", Album: "y", Title: "z"})
	assert.ErrorIs(t, err, ErrTrackNotFound)
}

func TestManager_Home(t *testing.T) {
	m, h := newTestManager(t)
	m.SetInitialFilter("B")
	m.NavigateToSearch("love")
	m.Pump()
	m.SetFilters(search.Filters{Song: true})
	require.NoError(t, m.SelectResult(m.SearchResults().Page.Items[0]))

	m.Home()
	m.Pump()

	s := m.Snapshot()
	assert.Equal(t, "#artists", h.Hash())
	assert.Equal(t, state.ViewArtists, s.State.View)
	assert.Equal(t, initial.None, s.State.Initial)
	assert.Equal(t, search.AllOn(), s.State.Filters)
	assert.Empty(t, s.State.SearchQuery)
	assert.Equal(t, 1, s.State.ArtistPage)
	assert.Equal(t, modal.StatusClosed, s.Modal.Status)
	assert.False(t, s.Modal.Pending)
}

func TestManager_SwipeBack(t *testing.T) {
	m, h := newTestManager(t)

	m.SwipeBack()
	assert.Empty(t, h.Drain(), "no back at the artist list")

	m.NavigateToAlbums("Björk")
	m.Pump()
	m.SwipeBack()
	m.Pump()
	assert.Equal(t, "#artists", h.Hash())
	assert.Equal(t, state.ViewArtists, m.Snapshot().State.View)

	m.NavigateToTracks("Björk", "Vespertine")
	m.Pump()
	m.OpenTrack(m.Tracks().Tracks[0])
	m.SwipeBack()
	m.Pump()
	_, ok := m.Modal()
	assert.False(t, ok, "swipe closes the overlay first")
	assert.Equal(t, "#tracks/Bj%C3%B6rk/Vespertine", h.Hash())
}

func TestManager_ClearSearchInput(t *testing.T) {
	m, h := newTestManager(t)

	m.ClearSearchInput()
	assert.Empty(t, h.Drain(), "nothing to do outside search")

	m.NavigateToSearch("love")
	m.Pump()
	m.ClearSearchInput()
	m.Pump()
	assert.Equal(t, state.ViewArtists, m.Snapshot().State.View)
}

func TestManager_ArtistsView(t *testing.T) {
	m, _ := newTestManager(t)

	v := m.Artists()
	require.Len(t, v.Page.Items, 3)
	assert.Equal(t, "Björk", v.Page.Items[0].Name, "latin names first")
	assert.Equal(t, 1, v.Page.Items[0].AlbumCount)
	assert.Empty(t, v.Info)

	m.SetInitialFilter("가")
	v = m.Artists()
	require.Len(t, v.Page.Items, 1)
	assert.Equal(t, "김광석", v.Page.Items[0].Name)

	m.SetInitialFilter("Q")
	v = m.Artists()
	assert.Empty(t, v.Page.Items)
	assert.Equal(t, "No artists for this initial.", v.Info)

	m.SetArtistPage(5)
	m.NextArtistPage()
	m.PrevArtistPage()
	assert.Equal(t, 1, m.Snapshot().State.ArtistPage)
}

func TestManager_AlbumsAndTracksInfo(t *testing.T) {
	m, _ := newTestManager(t)

	assert.Equal(t, "Select an artist first.", m.Albums().Info)
	assert.Equal(t, "Select an album first.", m.Tracks().Info)

	m.NavigateToAlbums("Nobody")
	m.Pump()
	assert.Equal(t, "No albums registered.", m.Albums().Info)

	m.NavigateToTracks("Nobody", "Nothing")
	m.Pump()
	assert.Equal(t, "No tracks registered.", m.Tracks().Info)
}

func TestManager_Subscribe(t *testing.T) {
	m, _ := newTestManager(t)

	var got []notification.Transition
	id := m.Subscribe(notification.ListenerFunc(func(tr notification.Transition) error {
		got = append(got, tr)
		return nil
	}))

	m.NavigateToAlbums("Björk")
	m.Pump()
	require.Len(t, got, 1)
	assert.Equal(t, "hashchange", got[0].Cause)
	assert.Equal(t, state.ViewArtists, got[0].From)
	assert.Equal(t, state.ViewAlbums, got[0].To)

	m.Unsubscribe(id)
	m.NavigateToArtists()
	m.Pump()
	assert.Len(t, got, 1)
}

func TestManager_ConcurrentCommands(t *testing.T) {
	m, _ := newTestManager(t)
	m.NavigateToSearch("love")
	m.Pump()

	var transitions atomic.Int64
	m.Subscribe(notification.ListenerFunc(func(notification.Transition) error {
		transitions.Add(1)
		return nil
	}))

	const toggles = 50
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.ToggleFilter("song"))
			m.NextSearchPage()
			m.PrevSearchPage()
		}()
	}
	wg.Wait()

	s := m.Snapshot().State
	assert.True(t, s.Filters.Song, "an even number of toggles leaves the filter on")
	assert.Equal(t, 1, s.SearchPage)
	assert.Equal(t, search.StatusFound, s.Search.Status)
	assert.Equal(t, int64(toggles*3), transitions.Load())
}
