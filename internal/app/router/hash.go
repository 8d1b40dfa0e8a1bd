package router

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a single URI
// component: every byte except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is escaped.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// DecodeComponent reverses EncodeComponent. A malformed escape leaves the
// field as it was.
func DecodeComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// ArtistsHash returns the hash of the artist list.
func ArtistsHash() string {
	return "#" + segArtists
}

// AlbumsHash returns the hash of an artist's albums.
func AlbumsHash(artist string) string {
	return "#" + segAlbums + "/" + EncodeComponent(artist)
}

// TracksHash returns the hash of an album's tracks.
func TracksHash(artist, album string) string {
	return "#" + segTracks + "/" + EncodeComponent(artist) + "/" + EncodeComponent(album)
}

// SearchHash returns the hash of a search. An empty query returns the
// artist list hash.
func SearchHash(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return ArtistsHash()
	}
	return "#" + segSearch + "/" + EncodeComponent(q)
}
