package browse

import (
	"fmt"

	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

// AlbumLine returns the secondary line of an album row: artist · year · genre.
func AlbumLine(a catalog.Album) string {
	return fmt.Sprintf("%s · %s · %s", a.Artist, a.Year, a.Genre)
}

// TrackLine returns the secondary line of a track row: artist – album · genre.
func TrackLine(t catalog.Track) string {
	return fmt.Sprintf("%s – %s · %s", t.Artist, t.Album, t.Genre)
}
