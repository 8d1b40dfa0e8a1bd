package filter

// SongFilter matches on the track title.
type SongFilter struct{}

// NewSongFilter creates a new song filter.
func NewSongFilter() *SongFilter {
	return &SongFilter{}
}

func (f *SongFilter) Name() string {
	return NameSong
}

func (f *SongFilter) Description() string {
	return "Matches track titles"
}

func (f *SongFilter) AppliesTo(kind Kind) bool {
	// Track titles only exist on songs
	return kind == KindSong
}

func (f *SongFilter) Match(q Query, s Subject) bool {
	return contains(s.Title, q.Text)
}

func init() {
	Register(NameSong, func() Filter {
		return &SongFilter{}
	})
}
