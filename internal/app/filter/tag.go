package filter

// TagFilter matches on mood tags. A leading '#' in the query is ignored.
type TagFilter struct{}

// NewTagFilter creates a new tag filter.
func NewTagFilter() *TagFilter {
	return &TagFilter{}
}

func (f *TagFilter) Name() string {
	return NameTag
}

func (f *TagFilter) Description() string {
	return "Matches mood tags (#calm and calm are equivalent)"
}

func (f *TagFilter) AppliesTo(kind Kind) bool {
	return kind == KindAlbum || kind == KindSong
}

func (f *TagFilter) Match(q Query, s Subject) bool {
	for _, t := range s.Tags {
		if contains(t, q.Tag) {
			return true
		}
	}
	return false
}

func init() {
	Register(NameTag, func() Filter {
		return &TagFilter{}
	})
}
