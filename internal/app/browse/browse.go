// Package browse provides the artist → album → track browsing transitions.
package browse

import (
	"sort"

	"github.com/osa030/vinylshelf/internal/app/pager"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
)

// Comparer orders two names. Implementations return a negative number, zero
// or a positive number.
type Comparer interface {
	Compare(a, b string) int
}

// Config represents the browser configuration.
type Config struct {
	ArtistPageSize  int
	MaxVisiblePages int
}

// ArtistEntry is one row of the artist listing.
type ArtistEntry struct {
	Name       string
	Initial    initial.Key
	AlbumCount int
}

// Browser computes browse listings and state transitions over a catalog.
// All methods are pure with respect to the state passed in.
type Browser struct {
	catalog *catalog.Catalog
	config  Config
	sorted  []catalog.Artist
}

// New creates a new browser. Artists are sorted once: Latin-initial names
// first, then by cmp within each group, then by byte order.
func New(c *catalog.Catalog, cmp Comparer, cfg Config) *Browser {
	if cfg.ArtistPageSize < 1 {
		cfg.ArtistPageSize = 15
	}
	if cfg.MaxVisiblePages < 1 {
		cfg.MaxVisiblePages = 5
	}

	sorted := c.Artists()
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(cmp, sorted[i].Name, sorted[j].Name)
	})

	return &Browser{
		catalog: c,
		config:  cfg,
		sorted:  sorted,
	}
}

func less(cmp Comparer, a, b string) bool {
	la, lb := initial.IsLatin(a), initial.IsLatin(b)
	if la != lb {
		return la
	}
	if c := cmp.Compare(a, b); c != 0 {
		return c < 0
	}
	return a < b
}

// Catalog returns the underlying catalog.
func (b *Browser) Catalog() *catalog.Catalog {
	return b.catalog
}

// FilteredSortedArtists returns the artists in the bucket, in display order.
// initial.None returns all artists.
func (b *Browser) FilteredSortedArtists(key initial.Key) []catalog.Artist {
	result := make([]catalog.Artist, 0, len(b.sorted))
	for _, a := range b.sorted {
		if key.Matches(a.Name) {
			result = append(result, a)
		}
	}
	return result
}

// SetInitialFilter toggles the initial filter. Selecting the active key clears
// it. The artist page returns to 1.
func (b *Browser) SetInitialFilter(s state.State, key initial.Key) state.State {
	if s.Initial == key {
		s.Initial = initial.None
	} else {
		s.Initial = key
	}
	s.ArtistPage = 1
	return s
}

// SelectArtist selects an artist and clears the album selection.
func (b *Browser) SelectArtist(s state.State, name string) state.State {
	s.SelectedArtist = name
	s.SelectedAlbum = nil
	return s
}

// SelectAlbum selects an album and its artist.
func (b *Browser) SelectAlbum(s state.State, artist, album string) state.State {
	s.SelectedArtist = artist
	return s.WithAlbum(catalog.AlbumKey{Artist: artist, Title: album})
}

// SetArtistPage moves to an artist page, clamped to the pages that exist
// under the active initial filter.
func (b *Browser) SetArtistPage(s state.State, page int) state.State {
	total := pager.TotalPages(len(b.FilteredSortedArtists(s.Initial)), b.config.ArtistPageSize)
	s.ArtistPage = pager.Clamp(page, total)
	return s
}

// NextArtistPage moves one artist page forward, staying on the last page.
func (b *Browser) NextArtistPage(s state.State) state.State {
	return b.SetArtistPage(s, s.ArtistPage+1)
}

// PrevArtistPage moves one artist page back, staying on the first page.
func (b *Browser) PrevArtistPage(s state.State) state.State {
	return b.SetArtistPage(s, s.ArtistPage-1)
}

// Artists returns the current artist page with album counts. The returned
// state carries the corrected page number when the stored one was out of range.
func (b *Browser) Artists(s state.State) (pager.Page[ArtistEntry], state.State) {
	artists := b.FilteredSortedArtists(s.Initial)
	entries := make([]ArtistEntry, 0, len(artists))
	for _, a := range artists {
		entries = append(entries, ArtistEntry{
			Name:       a.Name,
			Initial:    initial.Classify(a.Name),
			AlbumCount: b.catalog.AlbumCount(a.Name),
		})
	}

	page := pager.Paginate(entries, s.ArtistPage, b.config.ArtistPageSize, b.config.MaxVisiblePages)
	s.ArtistPage = page.Number
	return page, s
}

// AlbumsForSelectedArtist returns the albums of the selected artist.
// Returns an empty list when no artist is selected.
func (b *Browser) AlbumsForSelectedArtist(s state.State) []catalog.Album {
	if s.SelectedArtist == "" {
		return []catalog.Album{}
	}
	return b.catalog.AlbumsByArtist(s.SelectedArtist)
}

// TracksForSelectedAlbum returns the tracks of the selected album.
// Returns an empty list when no album is selected.
func (b *Browser) TracksForSelectedAlbum(s state.State) []catalog.Track {
	key, ok := s.Album()
	if !ok {
		return []catalog.Track{}
	}
	return b.catalog.TracksOf(key)
}
