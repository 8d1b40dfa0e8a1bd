package catalog

// keySeparator joins artist and title in the display form of an AlbumKey.
const keySeparator = "__"

// AlbumKey identifies an album by artist and title.
// The composite form keeps keys collision-free for any artist or title text.
type AlbumKey struct {
	Artist string
	Title  string
}

// String returns the "artist__title" display form.
func (k AlbumKey) String() string {
	return k.Artist + keySeparator + k.Title
}

// IsZero reports whether the key is empty.
func (k AlbumKey) IsZero() bool {
	return k.Artist == "" && k.Title == ""
}
