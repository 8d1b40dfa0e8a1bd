package source

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/osa030/vinylshelf/internal/domain/record"
	"github.com/osa030/vinylshelf/internal/infra/config"
)

// FileSourceConfig holds the settings of the json and yaml sources.
type FileSourceConfig struct {
	Path string `yaml:"path" mapstructure:"path" validate:"required"`
}

// JSONSource reads an array of row objects. The array may be wrapped in a
// script such as `window.VINYL_ROWS = [...];`.
type JSONSource struct {
	name   string
	config FileSourceConfig
}

// NewJSONSource creates a JSON source.
func NewJSONSource(name string, settings map[string]any) (*JSONSource, error) {
	var cfg FileSourceConfig
	if err := decodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &JSONSource{name: name, config: cfg}, nil
}

func (s *JSONSource) Name() string { return s.name }
func (s *JSONSource) Type() string { return config.SourceJSON }

// Load reads and decodes the file.
func (s *JSONSource) Load(ctx context.Context) ([]record.Raw, error) {
	data, err := os.ReadFile(s.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows file")
	}
	return ParseJSONRows(data)
}

// ParseJSONRows decodes the outermost JSON array found in data.
func ParseJSONRows(data []byte) ([]record.Raw, error) {
	start := bytes.IndexByte(data, '[')
	end := bytes.LastIndexByte(data, ']')
	if start < 0 || end < start {
		return nil, errors.New("no row array found")
	}

	var items []map[string]any
	if err := json.Unmarshal(data[start:end+1], &items); err != nil {
		return nil, errors.Wrap(err, "failed to parse rows")
	}
	return decodeRows(items)
}

// YAMLSource reads a YAML list of rows.
type YAMLSource struct {
	name   string
	config FileSourceConfig
}

// NewYAMLSource creates a YAML source.
func NewYAMLSource(name string, settings map[string]any) (*YAMLSource, error) {
	var cfg FileSourceConfig
	if err := decodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &YAMLSource{name: name, config: cfg}, nil
}

func (s *YAMLSource) Name() string { return s.name }
func (s *YAMLSource) Type() string { return config.SourceYAML }

// Load reads and decodes the file.
func (s *YAMLSource) Load(ctx context.Context) ([]record.Raw, error) {
	data, err := os.ReadFile(s.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows file")
	}

	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "failed to parse rows")
	}
	return decodeRows(items)
}
