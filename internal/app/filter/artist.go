package filter

// ArtistFilter matches on the artist name.
type ArtistFilter struct{}

// NewArtistFilter creates a new artist filter.
func NewArtistFilter() *ArtistFilter {
	return &ArtistFilter{}
}

func (f *ArtistFilter) Name() string {
	return NameArtist
}

func (f *ArtistFilter) Description() string {
	return "Matches artist names"
}

func (f *ArtistFilter) AppliesTo(kind Kind) bool {
	// Artist results are only produced by this filter
	return true
}

func (f *ArtistFilter) Match(q Query, s Subject) bool {
	return contains(s.Artist, q.Text)
}

func init() {
	Register(NameArtist, func() Filter {
		return &ArtistFilter{}
	})
}
