// Package search provides the multi-field catalog search.
package search

import (
	"fmt"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/filter"
	"github.com/osa030/vinylshelf/internal/app/pager"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

// Status represents the outcome class of a search.
type Status int

const (
	// StatusNoQuery means the query was empty.
	StatusNoQuery Status = iota
	// StatusNoResults means nothing matched.
	StatusNoResults
	// StatusFound means at least one result matched.
	StatusFound
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNoQuery:
		return "NO_QUERY"
	case StatusNoResults:
		return "NO_RESULTS"
	case StatusFound:
		return "FOUND"
	default:
		return "UNKNOWN"
	}
}

// Result types.
const (
	ResultArtist = filter.KindArtist
	ResultAlbum  = filter.KindAlbum
	ResultSong   = filter.KindSong
)

// Result is one search hit.
type Result struct {
	Type      filter.Kind
	Primary   string
	Secondary string
	Tags      []string
	// Back-references used to navigate from the result.
	Artist string
	Album  string
	Title  string
}

// Outcome is the full result of a search.
type Outcome struct {
	// Query is the trimmed query as the user typed it.
	Query   string
	Status  Status
	Results []Result
}

// Config represents the search engine configuration.
type Config struct {
	PageSize        int
	MaxVisiblePages int
	// ArtistHint is the secondary line shown for artist results.
	ArtistHint string
}

// Engine searches a catalog.
type Engine struct {
	catalog *catalog.Catalog
	config  Config
}

// NewEngine creates a new search engine.
func NewEngine(c *catalog.Catalog, cfg Config) *Engine {
	if cfg.PageSize < 1 {
		cfg.PageSize = 30
	}
	if cfg.MaxVisiblePages < 1 {
		cfg.MaxVisiblePages = 5
	}
	return &Engine{catalog: c, config: cfg}
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int {
	return e.config.PageSize
}

// Search runs a query against the catalog with the given toggles.
// Toggles that are all off behave as all on. The caller owns any write-back
// of the resolved toggles.
func (e *Engine) Search(query string, toggles Filters) Outcome {
	q := filter.NewQuery(query)
	display := strings.TrimSpace(query)
	if q.IsEmpty() {
		return Outcome{Query: display, Status: StatusNoQuery, Results: []Result{}}
	}

	chain := buildChain(toggles.Resolve())
	results := make([]Result, 0)

	if chain.Applies(filter.KindArtist) {
		for _, a := range e.catalog.Artists() {
			if chain.Match(q, filter.Subject{Kind: filter.KindArtist, Artist: a.Name}) {
				results = append(results, Result{
					Type:      filter.KindArtist,
					Primary:   a.Name,
					Secondary: e.config.ArtistHint,
					Tags:      []string{},
					Artist:    a.Name,
				})
			}
		}
	}

	if chain.Applies(filter.KindAlbum) {
		for _, al := range e.catalog.Albums() {
			s := filter.Subject{Kind: filter.KindAlbum, Artist: al.Artist, Album: al.Title, Genre: al.Genre, Tags: al.Tags}
			if chain.Match(q, s) {
				results = append(results, Result{
					Type:      filter.KindAlbum,
					Primary:   fmt.Sprintf("%s – %s", al.Artist, al.Title),
					Secondary: fmt.Sprintf("%s · %s · %s", al.Year, al.Genre, al.Country),
					Tags:      al.Tags,
					Artist:    al.Artist,
					Album:     al.Title,
				})
			}
		}
	}

	if chain.Applies(filter.KindSong) {
		for _, t := range e.catalog.Tracks() {
			s := filter.Subject{Kind: filter.KindSong, Artist: t.Artist, Album: t.Album, Title: t.Title, Genre: t.Genre, Tags: t.Tags}
			if chain.Match(q, s) {
				results = append(results, Result{
					Type:      filter.KindSong,
					Primary:   t.Title,
					Secondary: fmt.Sprintf("%s – %s · %s", t.Artist, t.Album, t.Genre),
					Tags:      t.Tags,
					Artist:    t.Artist,
					Album:     t.Album,
					Title:     t.Title,
				})
			}
		}
	}

	zlog.Debug().Msgf("search %q with filters [%s]: %d results", q.Text, toggles.Resolve(), len(results))

	if len(results) == 0 {
		return Outcome{Query: display, Status: StatusNoResults, Results: results}
	}
	return Outcome{Query: display, Status: StatusFound, Results: results}
}

// Page returns one page of an outcome's results.
func (e *Engine) Page(o Outcome, page int) pager.Page[Result] {
	return pager.Paginate(o.Results, page, e.config.PageSize, e.config.MaxVisiblePages)
}

// buildChain composes the enabled filters in a fixed order.
func buildChain(toggles Filters) *filter.Chain {
	registered := filter.GetRegistered()
	chain := filter.NewChain()
	for _, name := range order {
		if !toggles.Enabled(name) {
			continue
		}
		factory, ok := registered[name]
		if !ok {
			zlog.Warn().Msgf("search filter %s is not registered", name)
			continue
		}
		chain.Add(factory())
	}
	return chain
}
