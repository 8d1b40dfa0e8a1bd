// Package state provides the browsing session state.
package state

// View represents the screen the session is showing.
type View int

const (
	ViewArtists View = iota // Artist list
	ViewAlbums              // Albums of the selected artist
	ViewTracks              // Tracks of the selected album
	ViewSearch              // Search results
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewArtists:
		return "artists"
	case ViewAlbums:
		return "albums"
	case ViewTracks:
		return "tracks"
	case ViewSearch:
		return "search"
	default:
		return "unknown"
	}
}
