// Package source loads raw collection rows from the configured catalog sources.
package source

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/osa030/vinylshelf/internal/domain/record"
	"github.com/osa030/vinylshelf/internal/infra/config"
)

// Source is a named provider of raw rows.
type Source interface {
	// Name returns the source name from configuration.
	Name() string
	// Type returns the source type (json, yaml, sqlite, tags).
	Type() string
	// Load reads every row of the source in order.
	Load(ctx context.Context) ([]record.Raw, error)
}

// New creates a source from its configuration.
func New(cfg config.SourceConfig) (Source, error) {
	zlog.Debug().Msgf("creating catalog source: name=%s type=%s settings=%+v", cfg.Name, cfg.Type, cfg.Settings)

	var (
		src Source
		err error
	)
	switch cfg.Type {
	case config.SourceJSON:
		src, err = NewJSONSource(cfg.Name, cfg.Settings)
	case config.SourceYAML:
		src, err = NewYAMLSource(cfg.Name, cfg.Settings)
	case config.SourceSQLite:
		src, err = NewSQLiteSource(cfg.Name, cfg.Settings)
	case config.SourceTags:
		src, err = NewTagsSource(cfg.Name, cfg.Settings)
	default:
		return nil, errors.Newf("unsupported source type: %s (source %s)", cfg.Type, cfg.Name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create source (name %s, type %s)", cfg.Name, cfg.Type)
	}
	return src, nil
}

// NewFromConfig creates every configured source, in configured order.
func NewFromConfig(cfg *config.Config) ([]Source, error) {
	if len(cfg.Catalog.Sources) == 0 {
		return nil, errors.New("no catalog sources configured")
	}

	sources := make([]Source, 0, len(cfg.Catalog.Sources))
	for i, scfg := range cfg.Catalog.Sources {
		src, err := New(scfg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
		zlog.Info().Msgf("registered catalog source: index=%d type=%s name=%s", i+1, scfg.Type, scfg.Name)
	}
	return sources, nil
}

// LoadAll loads the sources concurrently and concatenates their rows in
// source order. The first failure cancels the rest.
func LoadAll(ctx context.Context, sources []Source) ([]record.Raw, error) {
	results := make([][]record.Raw, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			rows, err := src.Load(ctx)
			if err != nil {
				return errors.Wrapf(err, "failed to load source %s", src.Name())
			}
			zlog.Debug().Msgf("loaded %d rows from source %s", len(rows), src.Name())
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, rows := range results {
		total += len(rows)
	}
	all := make([]record.Raw, 0, total)
	for _, rows := range results {
		all = append(all, rows...)
	}
	return all, nil
}

// decodeSettings decodes per-source settings, applies defaults and validates.
func decodeSettings(settings map[string]any, out any) error {
	if err := mapstructure.Decode(settings, out); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}

// decodeRows converts loosely typed row maps into raw records. Numbers and
// booleans become strings; unknown keys are ignored.
func decodeRows(items []map[string]any) ([]record.Raw, error) {
	rows := make([]record.Raw, 0, len(items))
	for i, item := range items {
		var r record.Raw
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &r,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create row decoder")
		}
		if err := decoder.Decode(item); err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rows = append(rows, r)
	}
	return rows, nil
}
