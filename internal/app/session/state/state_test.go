package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

func TestNew(t *testing.T) {
	s := New(search.AllOn())

	assert.Equal(t, ViewArtists, s.View)
	assert.Equal(t, 1, s.ArtistPage)
	assert.Equal(t, 1, s.SearchPage)
	assert.Equal(t, search.StatusNoQuery, s.Search.Status)
	_, ok := s.Album()
	assert.False(t, ok)
}

func TestState_Selection(t *testing.T) {
	s := New(search.AllOn())
	s.SelectedArtist = "Björk"
	s = s.WithAlbum(catalog.AlbumKey{Artist: "Björk", Title: "Vespertine"})

	key, ok := s.Album()
	assert.True(t, ok)
	assert.Equal(t, "Björk__Vespertine", key.String())

	cleared := s.ClearSelection()
	assert.Empty(t, cleared.SelectedArtist)
	assert.Nil(t, cleared.SelectedAlbum)
	assert.Equal(t, "Björk", s.SelectedArtist, "original value is untouched")
}

func TestManager_Update(t *testing.T) {
	m := NewManager(New(search.AllOn()))

	prev, next := m.Update(func(s State) State {
		s.View = ViewSearch
		s.SearchQuery = "love"
		return s
	})

	assert.Equal(t, ViewArtists, prev.View)
	assert.Equal(t, ViewSearch, next.View)
	assert.Equal(t, ViewSearch, m.GetView())
	assert.Equal(t, "love", m.Get().SearchQuery)
}

func TestView_String(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{ViewArtists, "artists"},
		{ViewAlbums, "albums"},
		{ViewTracks, "tracks"},
		{ViewSearch, "search"},
		{View(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}
