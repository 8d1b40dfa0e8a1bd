package filter

// AlbumFilter matches on the album title.
type AlbumFilter struct{}

// NewAlbumFilter creates a new album filter.
func NewAlbumFilter() *AlbumFilter {
	return &AlbumFilter{}
}

func (f *AlbumFilter) Name() string {
	return NameAlbum
}

func (f *AlbumFilter) Description() string {
	return "Matches album titles"
}

func (f *AlbumFilter) AppliesTo(kind Kind) bool {
	return kind == KindAlbum || kind == KindSong
}

func (f *AlbumFilter) Match(q Query, s Subject) bool {
	return contains(s.Album, q.Text)
}

func init() {
	Register(NameAlbum, func() Filter {
		return &AlbumFilter{}
	})
}
