// Package router maps location hashes to browsing state.
package router

import (
	"strings"
)

const (
	segArtists = "artists"
	segAlbums  = "albums"
	segTracks  = "tracks"
	segSearch  = "search"
)

// Kind represents the kind of route.
type Kind int

const (
	KindArtists Kind = iota
	KindAlbums
	KindTracks
	KindSearch
	KindUnknown
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindArtists:
		return segArtists
	case KindAlbums:
		return segAlbums
	case KindTracks:
		return segTracks
	case KindSearch:
		return segSearch
	default:
		return "unknown"
	}
}

// Route is a parsed hash.
type Route struct {
	Kind   Kind
	Artist string
	Album  string
	Query  string
}

// Parse parses a hash, with or without the leading '#'.
// Each field is decoded independently; a search query is rejoined with '/'
// and decoded once.
func Parse(hash string) Route {
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return Route{Kind: KindArtists}
	}

	parts := strings.Split(hash, "/")
	field := func(i int) string {
		if i < len(parts) {
			return DecodeComponent(parts[i])
		}
		return ""
	}

	switch parts[0] {
	case segArtists:
		return Route{Kind: KindArtists}
	case segAlbums:
		return Route{Kind: KindAlbums, Artist: field(1)}
	case segTracks:
		return Route{Kind: KindTracks, Artist: field(1), Album: field(2)}
	case segSearch:
		return Route{Kind: KindSearch, Query: DecodeComponent(strings.Join(parts[1:], "/"))}
	default:
		return Route{Kind: KindUnknown}
	}
}

// Hash returns the canonical hash of the route.
func (r Route) Hash() string {
	switch r.Kind {
	case KindAlbums:
		return AlbumsHash(r.Artist)
	case KindTracks:
		return TracksHash(r.Artist, r.Album)
	case KindSearch:
		return SearchHash(r.Query)
	default:
		return ArtistsHash()
	}
}
