package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("VINYLSHELF_DATA", "")
	t.Setenv("VINYLSHELF_LOG_LEVEL", "")
	t.Setenv("VINYLSHELF_LOG_FILE", "")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "vinylshelf.yaml", `
catalog:
  sources:
    - type: json
      name: shelf
      settings:
        path: data.json
browse:
  artist_page_size: 20
search:
  default_filters: [song, tag]
messages:
  no_results: "nothing for {query}"
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Catalog.Sources, 1)
	assert.Equal(t, "json", cfg.Catalog.Sources[0].Type)
	assert.Equal(t, "data.json", cfg.Catalog.Sources[0].Settings["path"])
	assert.Equal(t, 20, cfg.Browse.ArtistPageSize)
	assert.Equal(t, 5, cfg.Browse.MaxVisiblePages, "default")
	assert.Equal(t, "ko", cfg.Browse.Collation, "default")
	assert.Equal(t, 30, cfg.Search.PageSize, "default")
	assert.Equal(t, []string{"song", "tag"}, cfg.Search.DefaultFilters)
	assert.Equal(t, "nothing for {query}", cfg.Messages.NoResults)
	assert.Equal(t, "Select an artist first.", cfg.Messages.SelectArtist, "default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "catalog: [unclosed"},
		{name: "no sources", content: "browse:\n  artist_page_size: 10\n"},
		{name: "unknown source type", content: "catalog:\n  sources:\n    - type: csv\n      name: x\n"},
		{name: "missing source name", content: "catalog:\n  sources:\n    - type: json\n"},
		{name: "duplicate source names", content: "catalog:\n  sources:\n    - {type: json, name: a}\n    - {type: yaml, name: a}\n"},
		{name: "unknown default filter", content: "catalog:\n  sources:\n    - {type: json, name: a}\nsearch:\n  default_filters: [year]\n"},
		{name: "bad log level", content: "catalog:\n  sources:\n    - {type: json, name: a}\nlog:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "c.yaml", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "rows.yml", "[]")
	path := writeFile(t, dir, "c.yaml", "catalog:\n  sources:\n    - {type: json, name: a}\n")

	t.Setenv("VINYLSHELF_DATA", data)
	t.Setenv("VINYLSHELF_LOG_LEVEL", "WARN")
	t.Setenv("VINYLSHELF_LOG_FILE", filepath.Join(dir, "app.log"))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Catalog.Sources, 1)
	assert.Equal(t, SourceYAML, cfg.Catalog.Sources[0].Type)
	assert.Equal(t, "rows.yml", cfg.Catalog.Sources[0].Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "app.log"), cfg.Log.Output)
}

func TestSourceForPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantType string
		wantErr  bool
	}{
		{name: "json", path: writeFile(t, dir, "rows.json", "[]"), wantType: SourceJSON},
		{name: "script", path: writeFile(t, dir, "data.js", "window.VINYL_ROWS = [];"), wantType: SourceJSON},
		{name: "yaml", path: writeFile(t, dir, "rows.yaml", "[]"), wantType: SourceYAML},
		{name: "sqlite", path: writeFile(t, dir, "shelf.db", ""), wantType: SourceSQLite},
		{name: "directory", path: dir, wantType: SourceTags},
		{name: "unsupported", path: writeFile(t, dir, "rows.csv", ""), wantErr: true},
		{name: "missing", path: filepath.Join(dir, "nope.json"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := SourceForPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, src.Type)
			assert.NotEmpty(t, src.Name)
		})
	}
}

func TestForDataFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "rows.json", "[]")

	cfg, err := ForDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, cfg.Catalog.Sources[0].Type)
	assert.Equal(t, 15, cfg.Browse.ArtistPageSize)
}

func TestConfig_FormatMessage(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "rows.json", "[]")
	cfg, err := ForDataFile(path)
	require.NoError(t, err)

	tests := []struct {
		name  string
		code  string
		query string
		count int
		want  string
	}{
		{name: "result count", code: MsgResultCount, query: "love", count: 6, want: `6 results for "love".`},
		{name: "no results", code: MsgNoResults, query: "zzz", want: `No results for "zzz".`},
		{name: "plain", code: MsgSelectAlbum, want: "Select an album first."},
		{name: "unknown code", code: "nope", want: "Something went wrong."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.FormatMessage(tt.code, tt.query, tt.count))
		})
	}
}
