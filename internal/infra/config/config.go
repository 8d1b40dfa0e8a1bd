// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VINYLSHELF"

// Source types.
const (
	SourceJSON   = "json"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
	SourceTags   = "tags"
)

// Config represents the application configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Browse   BrowseConfig   `yaml:"browse"`
	Search   SearchConfig   `yaml:"search"`
	Messages MessagesConfig `yaml:"messages"`
	Log      LogConfig      `yaml:"log"`
}

// CatalogConfig represents where collection rows come from.
type CatalogConfig struct {
	Sources []SourceConfig `yaml:"sources" validate:"required,min=1,dive"`
}

// SourceConfig represents a single catalog source configuration.
type SourceConfig struct {
	Type     string         `yaml:"type" validate:"required,oneof=json yaml sqlite tags"`
	Name     string         `yaml:"name" validate:"required"`
	Settings map[string]any `yaml:"settings"`
}

// BrowseConfig represents artist browsing configuration.
type BrowseConfig struct {
	ArtistPageSize  int    `yaml:"artist_page_size" default:"15" validate:"gte=1,lte=500"`
	MaxVisiblePages int    `yaml:"max_visible_pages" default:"5" validate:"gte=1,lte=20"`
	Collation       string `yaml:"collation" default:"ko" validate:"required"`
}

// SearchConfig represents search configuration.
type SearchConfig struct {
	PageSize int `yaml:"page_size" default:"30" validate:"gte=1,lte=500"`
	// DefaultFilters lists the filters enabled at startup. Empty means all.
	DefaultFilters []string `yaml:"default_filters" validate:"dive,oneof=artist album genre tag song"`
}

// MessagesConfig represents user-facing informational messages.
// {query} and {count} are replaced when a message is formatted.
type MessagesConfig struct {
	NoInitialMatches string `yaml:"no_initial_matches" default:"No artists for this initial."`
	SelectArtist     string `yaml:"select_artist" default:"Select an artist first."`
	NoAlbums         string `yaml:"no_albums" default:"No albums registered."`
	SelectAlbum      string `yaml:"select_album" default:"Select an album first."`
	NoTracks         string `yaml:"no_tracks" default:"No tracks registered."`
	EnterQuery       string `yaml:"enter_query" default:"Enter a search term or adjust the filters."`
	NoResults        string `yaml:"no_results" default:"No results for \"{query}\"."`
	ResultCount      string `yaml:"result_count" default:"{count} results for \"{query}\"."`
	ArtistHint       string `yaml:"artist_hint" default:"Browse this artist's albums and tracks."`
	DefaultError     string `yaml:"default_error" default:"Something went wrong."`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Output string `yaml:"output" default:"stderr"`
}

// Env represents the environment overrides.
type Env struct {
	Data     string `envconfig:"DATA"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return finish(&cfg)
}

// ForDataFile builds a configuration with a single source for path.
// The source type follows the file extension; a directory is read as tags.
func ForDataFile(path string) (*Config, error) {
	src, err := SourceForPath(path)
	if err != nil {
		return nil, err
	}
	cfg := Config{Catalog: CatalogConfig{Sources: []SourceConfig{src}}}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	// Override with environment variables
	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}

	// Set defaults using creasty/defaults
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Wrap(err, "failed to read environment")
	}

	if env.Data != "" {
		src, err := SourceForPath(env.Data)
		if err != nil {
			return errors.Wrapf(err, "%s_DATA", EnvPrefix)
		}
		c.Catalog.Sources = []SourceConfig{src}
	}
	if env.LogLevel != "" {
		c.Log.Level = strings.ToLower(env.LogLevel)
	}
	if env.LogFile != "" {
		c.Log.Output = env.LogFile
	}
	return nil
}

// SourceForPath returns a source configuration that reads path.
func SourceForPath(path string) (SourceConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SourceConfig{}, errors.Wrapf(err, "data path %s", path)
	}

	name := filepath.Base(path)
	if info.IsDir() {
		return SourceConfig{Type: SourceTags, Name: name, Settings: map[string]any{"root": path}}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".js":
		return SourceConfig{Type: SourceJSON, Name: name, Settings: map[string]any{"path": path}}, nil
	case ".yaml", ".yml":
		return SourceConfig{Type: SourceYAML, Name: name, Settings: map[string]any{"path": path}}, nil
	case ".db", ".sqlite", ".sqlite3":
		return SourceConfig{Type: SourceSQLite, Name: name, Settings: map[string]any{"path": path}}, nil
	default:
		return SourceConfig{}, errors.Newf("unsupported data file type: %s", path)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	names := make(map[string]bool, len(c.Catalog.Sources))
	for _, s := range c.Catalog.Sources {
		if names[s.Name] {
			return errors.Newf("duplicate source name: %s", s.Name)
		}
		names[s.Name] = true
	}
	return nil
}

// Message codes.
const (
	MsgNoInitialMatches = "no_initial_matches"
	MsgSelectArtist     = "select_artist"
	MsgNoAlbums         = "no_albums"
	MsgSelectAlbum      = "select_album"
	MsgNoTracks         = "no_tracks"
	MsgEnterQuery       = "enter_query"
	MsgNoResults        = "no_results"
	MsgResultCount      = "result_count"
	MsgArtistHint       = "artist_hint"
)

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case MsgNoInitialMatches:
		return c.Messages.NoInitialMatches
	case MsgSelectArtist:
		return c.Messages.SelectArtist
	case MsgNoAlbums:
		return c.Messages.NoAlbums
	case MsgSelectAlbum:
		return c.Messages.SelectAlbum
	case MsgNoTracks:
		return c.Messages.NoTracks
	case MsgEnterQuery:
		return c.Messages.EnterQuery
	case MsgNoResults:
		return c.Messages.NoResults
	case MsgResultCount:
		return c.Messages.ResultCount
	case MsgArtistHint:
		return c.Messages.ArtistHint
	default:
		return c.Messages.DefaultError
	}
}

// FormatMessage returns the message for code with {query} and {count} filled in.
func (c *Config) FormatMessage(code, query string, count int) string {
	r := strings.NewReplacer("{query}", query, "{count}", strconv.Itoa(count))
	return r.Replace(c.GetMessage(code))
}
