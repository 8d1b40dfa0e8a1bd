package filter

// GenreFilter matches on the genre.
type GenreFilter struct{}

// NewGenreFilter creates a new genre filter.
func NewGenreFilter() *GenreFilter {
	return &GenreFilter{}
}

func (f *GenreFilter) Name() string {
	return NameGenre
}

func (f *GenreFilter) Description() string {
	return "Matches album and track genres"
}

func (f *GenreFilter) AppliesTo(kind Kind) bool {
	return kind == KindAlbum || kind == KindSong
}

func (f *GenreFilter) Match(q Query, s Subject) bool {
	return contains(s.Genre, q.Text)
}

func init() {
	Register(NameGenre, func() Filter {
		return &GenreFilter{}
	})
}
