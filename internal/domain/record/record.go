// Package record provides the raw collection row as supplied by catalog sources.
package record

import "strings"

// Raw represents one flattened collection row: a single track within an album.
// Every field is optional. Field names follow the spreadsheet export the
// collection is kept in.
type Raw struct {
	Artist     string `mapstructure:"Artist" yaml:"Artist" json:"Artist"`
	Album      string `mapstructure:"Album" yaml:"Album" json:"Album"`
	Year       string `mapstructure:"Year" yaml:"Year" json:"Year"`
	Country    string `mapstructure:"Country" yaml:"Country" json:"Country"`
	Genre      string `mapstructure:"Genre" yaml:"Genre" json:"Genre"`
	Location   string `mapstructure:"Location" yaml:"Location" json:"Location"`
	TrackNo    string `mapstructure:"Track_no" yaml:"Track_no" json:"Track_no"`
	TrackTitle string `mapstructure:"Track_title" yaml:"Track_title" json:"Track_title"`
	AlbumNo    string `mapstructure:"Album_No" yaml:"Album_No" json:"Album_No"`
	MoodTags   string `mapstructure:"Mood_tags" yaml:"Mood_tags" json:"Mood_tags"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r Raw) Trimmed() Raw {
	return Raw{
		Artist:     strings.TrimSpace(r.Artist),
		Album:      strings.TrimSpace(r.Album),
		Year:       strings.TrimSpace(r.Year),
		Country:    strings.TrimSpace(r.Country),
		Genre:      strings.TrimSpace(r.Genre),
		Location:   strings.TrimSpace(r.Location),
		TrackNo:    strings.TrimSpace(r.TrackNo),
		TrackTitle: strings.TrimSpace(r.TrackTitle),
		AlbumNo:    strings.TrimSpace(r.AlbumNo),
		MoodTags:   strings.TrimSpace(r.MoodTags),
	}
}

// Tags returns the mood tags of the row.
func (r Raw) Tags() []string {
	return ParseTags(r.MoodTags)
}

// ParseTags splits a space-delimited tag string into tags.
// One leading '#' is stripped from each token and empty tokens are dropped.
//
//	ParseTags("#calm  #night jazz") // []string{"calm", "night", "jazz"}
func ParseTags(s string) []string {
	fields := strings.Fields(s)
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimSpace(strings.TrimPrefix(f, "#"))
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
