// Package catalog provides the normalized artist/album/track collections.
package catalog

import (
	"slices"

	"github.com/osa030/vinylshelf/internal/domain/record"
)

// Artist represents a distinct artist name found in the collection.
type Artist struct {
	Name string
}

// Album represents an album. The first row seen for an (artist, title) pair
// supplies every album-level field.
type Album struct {
	Artist   string
	Title    string
	Year     string
	Country  string
	Genre    string
	Tags     []string
	Location string
	Ordinal  string // Album_No of the first row
}

// Key returns the album key.
func (a Album) Key() AlbumKey {
	return AlbumKey{Artist: a.Artist, Title: a.Title}
}

func (a Album) clone() Album {
	a.Tags = slices.Clone(a.Tags)
	return a
}

// Track represents one track row. Tracks are not deduplicated.
type Track struct {
	Artist   string
	Album    string
	Title    string
	Genre    string
	Tags     []string
	TrackNo  string
	Note     string // always empty; reserved for user annotation
	Location string
}

// AlbumKey returns the key of the album this track belongs to.
func (t Track) AlbumKey() AlbumKey {
	return AlbumKey{Artist: t.Artist, Title: t.Album}
}

func (t Track) clone() Track {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// Detail is the content of the track detail overlay.
type Detail struct {
	Artist   string
	Album    string
	Title    string
	Genre    string
	Location string
	TrackNo  string
	Note     string
	Tags     []string
}

// Catalog holds the derived collections. It is immutable after Normalize.
type Catalog struct {
	artists     []Artist
	albums      []Album
	tracks      []Track
	albumIndex  map[AlbumKey]int
	albumCounts map[string]int
}

// Normalize derives the artist, album and track collections from raw rows in a
// single pass.
//
// Artists keep first-seen order, albums keep first-seen order and tracks keep
// input order. An album needs a non-empty artist and title; a track needs a
// non-empty artist, album and title.
func Normalize(rows []record.Raw) *Catalog {
	c := &Catalog{
		artists:     make([]Artist, 0),
		albums:      make([]Album, 0),
		tracks:      make([]Track, 0, len(rows)),
		albumIndex:  make(map[AlbumKey]int),
		albumCounts: make(map[string]int),
	}
	seen := make(map[string]bool)

	for _, raw := range rows {
		r := raw.Trimmed()
		tags := r.Tags()

		if r.Artist != "" && !seen[r.Artist] {
			seen[r.Artist] = true
			c.artists = append(c.artists, Artist{Name: r.Artist})
		}

		if r.Artist != "" && r.Album != "" {
			key := AlbumKey{Artist: r.Artist, Title: r.Album}
			if _, ok := c.albumIndex[key]; !ok {
				c.albumIndex[key] = len(c.albums)
				c.albumCounts[r.Artist]++
				c.albums = append(c.albums, Album{
					Artist:   r.Artist,
					Title:    r.Album,
					Year:     r.Year,
					Country:  r.Country,
					Genre:    r.Genre,
					Tags:     slices.Clone(tags),
					Location: r.Location,
					Ordinal:  r.AlbumNo,
				})
			}
		}

		if r.Artist != "" && r.Album != "" && r.TrackTitle != "" {
			c.tracks = append(c.tracks, Track{
				Artist:   r.Artist,
				Album:    r.Album,
				Title:    r.TrackTitle,
				Genre:    r.Genre,
				Tags:     slices.Clone(tags),
				TrackNo:  r.TrackNo,
				Location: r.Location,
			})
		}
	}

	return c
}

// Artists returns all artists in first-seen order.
func (c *Catalog) Artists() []Artist {
	return append([]Artist(nil), c.artists...)
}

// Albums returns all albums in first-seen order.
func (c *Catalog) Albums() []Album {
	result := make([]Album, len(c.albums))
	for i, a := range c.albums {
		result[i] = a.clone()
	}
	return result
}

// Tracks returns all tracks in input order.
func (c *Catalog) Tracks() []Track {
	result := make([]Track, len(c.tracks))
	for i, t := range c.tracks {
		result[i] = t.clone()
	}
	return result
}

// Album looks up an album by key.
func (c *Catalog) Album(key AlbumKey) (Album, bool) {
	i, ok := c.albumIndex[key]
	if !ok {
		return Album{}, false
	}
	return c.albums[i].clone(), true
}

// AlbumsByArtist returns the albums of an artist in first-seen order.
func (c *Catalog) AlbumsByArtist(artist string) []Album {
	result := make([]Album, 0, c.albumCounts[artist])
	for _, a := range c.albums {
		if a.Artist == artist {
			result = append(result, a.clone())
		}
	}
	return result
}

// TracksOf returns the tracks of an album in input order.
func (c *Catalog) TracksOf(key AlbumKey) []Track {
	result := make([]Track, 0)
	for _, t := range c.tracks {
		if t.Artist == key.Artist && t.Album == key.Title {
			result = append(result, t.clone())
		}
	}
	return result
}

// AlbumCount returns the number of albums of an artist.
func (c *Catalog) AlbumCount(artist string) int {
	return c.albumCounts[artist]
}

// FindTrack returns the first track matching artist, album and title.
func (c *Catalog) FindTrack(artist, album, title string) (Track, bool) {
	for _, t := range c.tracks {
		if t.Artist == artist && t.Album == album && t.Title == title {
			return t.clone(), true
		}
	}
	return Track{}, false
}

// Detail builds the detail overlay content for a track.
// The album location wins over the track row location when the album exists.
func (c *Catalog) Detail(t Track) Detail {
	location := t.Location
	if a, ok := c.Album(t.AlbumKey()); ok {
		location = a.Location
	}
	return Detail{
		Artist:   t.Artist,
		Album:    t.Album,
		Title:    t.Title,
		Genre:    t.Genre,
		Location: location,
		TrackNo:  t.TrackNo,
		Note:     t.Note,
		Tags:     slices.Clone(t.Tags),
	}
}

// Stats returns the collection sizes.
func (c *Catalog) Stats() (artists, albums, tracks int) {
	return len(c.artists), len(c.albums), len(c.tracks)
}
