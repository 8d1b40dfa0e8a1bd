package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/domain/record"
	"github.com/osa030/vinylshelf/internal/infra/config"
)

// TagsSourceConfig holds the settings of the tags source.
type TagsSourceConfig struct {
	Root       string   `yaml:"root" mapstructure:"root" validate:"required"`
	Extensions []string `yaml:"extensions" mapstructure:"extensions" default:"[\".mp3\",\".flac\",\".m4a\",\".ogg\"]"`
}

// TagsSource walks a directory of audio files and builds one row per file
// from its embedded tags. The album directory relative to the root is the
// row location; #words in the comment are the mood tags.
type TagsSource struct {
	name   string
	config TagsSourceConfig
}

// NewTagsSource creates a tags source.
func NewTagsSource(name string, settings map[string]any) (*TagsSource, error) {
	var cfg TagsSourceConfig
	if err := decodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &TagsSource{name: name, config: cfg}, nil
}

func (s *TagsSource) Name() string { return s.name }
func (s *TagsSource) Type() string { return config.SourceTags }

// Load walks the root in lexical order. Unreadable files are skipped.
func (s *TagsSource) Load(ctx context.Context) ([]record.Raw, error) {
	rows := make([]record.Raw, 0)
	err := filepath.WalkDir(s.config.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !s.isAudio(path) {
			return nil
		}

		row, err := s.readFile(path)
		if err != nil {
			zlog.Warn().Err(err).Msgf("skipping %s", path)
			return nil
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", s.config.Root)
	}
	return rows, nil
}

func (s *TagsSource) isAudio(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.config.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func (s *TagsSource) readFile(path string) (record.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return record.Raw{}, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return record.Raw{}, errors.Wrap(err, "failed to read tags")
	}

	row := record.Raw{
		Artist:     m.AlbumArtist(),
		Album:      m.Album(),
		Genre:      m.Genre(),
		TrackTitle: m.Title(),
		MoodTags:   hashtags(m.Comment()),
	}
	if row.Artist == "" {
		row.Artist = m.Artist()
	}
	if row.TrackTitle == "" {
		base := filepath.Base(path)
		row.TrackTitle = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if y := m.Year(); y > 0 {
		row.Year = strconv.Itoa(y)
	}
	if n, _ := m.Track(); n > 0 {
		row.TrackNo = strconv.Itoa(n)
	}
	if rel, err := filepath.Rel(s.config.Root, filepath.Dir(path)); err == nil && rel != "." {
		row.Location = filepath.ToSlash(rel)
	}
	return row, nil
}

// hashtags returns the #words of a comment, space separated.
func hashtags(comment string) string {
	var tags []string
	for _, word := range strings.Fields(comment) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, word)
		}
	}
	return strings.Join(tags, " ")
}
