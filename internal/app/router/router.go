package router

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

// Router applies hashes to session state.
type Router struct {
	engine   *search.Engine
	lastHash string
}

// New creates a new router.
func New(engine *search.Engine) *Router {
	return &Router{engine: engine}
}

// LastHash returns the last applied hash.
func (r *Router) LastHash() string {
	return r.lastHash
}

// Apply derives the next state from a hash. For an unknown route the state
// is returned unchanged together with the hash to redirect to; the caller
// schedules the redirect instead of applying it inline.
func (r *Router) Apply(s state.State, hash string) (state.State, string) {
	route := Parse(hash)
	r.lastHash = hash

	switch route.Kind {
	case KindArtists:
		s.View = state.ViewArtists
		s = s.ClearSelection().ClearSearch()

	case KindAlbums:
		s.View = state.ViewAlbums
		s.SelectedArtist = route.Artist
		s.SelectedAlbum = nil

	case KindTracks:
		s.View = state.ViewTracks
		s.SelectedArtist = route.Artist
		s.SelectedAlbum = nil
		if route.Artist != "" && route.Album != "" {
			s = s.WithAlbum(catalog.AlbumKey{Artist: route.Artist, Title: route.Album})
		}

	case KindSearch:
		s.View = state.ViewSearch
		s.Filters = s.Filters.Resolve()
		s.SearchQuery = route.Query
		s.SearchPage = 1
		s.Search = r.engine.Search(route.Query, s.Filters)

	default:
		zlog.Debug().Msgf("unknown route %q, redirecting", hash)
		return s, ArtistsHash()
	}

	zlog.Debug().Msgf("applied route %s (%q)", route.Kind, hash)
	return s, ""
}
