package source

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/glebarez/sqlite"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/osa030/vinylshelf/internal/domain/record"
	"github.com/osa030/vinylshelf/internal/infra/config"
)

// SQLiteSourceConfig holds the settings of the sqlite source.
type SQLiteSourceConfig struct {
	Path    string `yaml:"path" mapstructure:"path" validate:"required"`
	Table   string `yaml:"table" mapstructure:"table" default:"vinyl_rows" validate:"required"`
	OrderBy string `yaml:"order_by" mapstructure:"order_by" default:"id" validate:"required"`
}

// SQLiteSource reads rows from a table whose columns are named like the row
// fields (Artist, Album, Track_title, ...).
type SQLiteSource struct {
	name   string
	config SQLiteSourceConfig
}

// NewSQLiteSource creates a SQLite source.
func NewSQLiteSource(name string, settings map[string]any) (*SQLiteSource, error) {
	var cfg SQLiteSourceConfig
	if err := decodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &SQLiteSource{name: name, config: cfg}, nil
}

func (s *SQLiteSource) Name() string { return s.name }
func (s *SQLiteSource) Type() string { return config.SourceSQLite }

// Load queries the table ordered by the configured column.
func (s *SQLiteSource) Load(ctx context.Context) ([]record.Raw, error) {
	db, err := gorm.Open(sqlite.Open(s.config.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	var items []map[string]any
	result := db.WithContext(ctx).Table(s.config.Table).Order(s.config.OrderBy).Find(&items)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to query table %s", s.config.Table)
	}
	zlog.Debug().Msgf("sqlite source %s: %d rows from %s", s.name, len(items), s.config.Table)
	return decodeRows(items)
}
