// Package main provides the vinylshelf entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/api/tui"
	"github.com/osa030/vinylshelf/internal/app/filter"
	"github.com/osa030/vinylshelf/internal/app/notification"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
	"github.com/osa030/vinylshelf/internal/domain/initial"
	"github.com/osa030/vinylshelf/internal/infra/collation"
	"github.com/osa030/vinylshelf/internal/infra/config"
	"github.com/osa030/vinylshelf/internal/infra/history"
	"github.com/osa030/vinylshelf/internal/infra/logger"
	"github.com/osa030/vinylshelf/internal/infra/source"
)

var (
	app        = kingpin.New("vinylshelf", "Browse a vinyl collection by artist, album and track")
	configPath = app.Flag("config", "Path to config file").Default("config/vinylshelf.yaml").String()
	dataPath   = app.Flag("data", "Path to a data file or music directory (overrides the configured sources)").Envar("VINYLSHELF_DATA").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file").String()

	// browse command (default)
	browseCmd = app.Command("browse", "Browse interactively (default)").Default()

	// artists command
	artistsCmd     = app.Command("artists", "Print a page of the artist list")
	artistsInitial = artistsCmd.Flag("initial", "Initial filter (A-Z, 가-하, #)").String()
	artistsPage    = artistsCmd.Flag("page", "Page number").Default("1").Int()

	// search command
	searchCmd     = app.Command("search", "Print a page of search results")
	searchQuery   = searchCmd.Arg("query", "Search query").Required().String()
	searchFilters = searchCmd.Flag("filter", "Enable a filter (repeatable: artist, album, genre, tag, song)").Strings()
	searchPage    = searchCmd.Flag("page", "Page number").Default("1").Int()

	// route command
	routeCmd  = app.Command("route", "Apply a location hash and print the resulting view")
	routeHash = routeCmd.Arg("hash", "Location hash, e.g. #albums/Bj%C3%B6rk").Required().String()

	// list commands
	listFiltersCmd = app.Command("list-filters", "List available search filters and exit")
	listSourcesCmd = app.Command("list-sources", "List configured catalog sources and exit")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listFiltersCmd.FullCommand() {
		printFilters()
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg, command == browseCmd.FullCommand()); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, command); err != nil {
		zlog.Error().Msgf("vinylshelf: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if *dataPath != "" {
		return config.ForDataFile(*dataPath)
	}
	return config.Load(*configPath)
}

// initLogger applies the flags over the configured log settings. The
// interactive browser never logs to the terminal it draws on.
func initLogger(cfg *config.Config, interactive bool) error {
	loggerConfig := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	if interactive && (loggerConfig.Output == logger.OutputStdout || loggerConfig.Output == logger.OutputStderr) {
		loggerConfig.Output = logger.OutputDiscard
	}
	return logger.Init(loggerConfig)
}

func run(ctx context.Context, cfg *config.Config, command string) error {
	sources, err := source.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	if command == listSourcesCmd.FullCommand() {
		return printSources(ctx, sources)
	}

	rows, err := source.LoadAll(ctx, sources)
	if err != nil {
		return err
	}
	c := catalog.Normalize(rows)

	coll, err := collation.New(cfg.Browse.Collation)
	if err != nil {
		return err
	}

	platform := history.New("")
	sessionMgr, err := session.NewManager(cfg, c, coll, platform)
	if err != nil {
		return errors.Wrap(err, "failed to create session manager")
	}

	if command == browseCmd.FullCommand() {
		sessionMgr.Start()
		return tui.Run(sessionMgr, platform)
	}

	sessionMgr.Subscribe(notification.ListenerFunc(logTransition))
	sessionMgr.Start()

	switch command {
	case artistsCmd.FullCommand():
		sessionMgr.Pump()
		if *artistsInitial != "" {
			k, ok := initial.ParseKey(*artistsInitial)
			if !ok {
				return errors.Newf("unknown initial: %s", *artistsInitial)
			}
			sessionMgr.SetInitialFilter(k)
		}
		sessionMgr.SetArtistPage(*artistsPage)
		printArtists(sessionMgr.Artists())

	case searchCmd.FullCommand():
		sessionMgr.Pump()
		if len(*searchFilters) > 0 {
			f, err := search.ParseFilters(*searchFilters)
			if err != nil {
				return err
			}
			sessionMgr.SetFilters(f)
		}
		sessionMgr.NavigateToSearch(*searchQuery)
		sessionMgr.Pump()
		if sessionMgr.Snapshot().State.View != state.ViewSearch {
			fmt.Println(sessionMgr.SearchInfo())
			return nil
		}
		sessionMgr.SetSearchPage(*searchPage)
		printSearch(sessionMgr.SearchResults())

	case routeCmd.FullCommand():
		sessionMgr.Pump()
		platform.SetHash(*routeHash)
		sessionMgr.Pump()
		printRoute(sessionMgr)
	}
	return nil
}

func logTransition(t notification.Transition) error {
	zlog.Debug().Msgf("transition #%d %s: %s -> %s (%s)", t.SequenceNo, t.Cause, t.From, t.To, t.Hash)
	return nil
}

func printFilters() {
	registry := filter.GetRegistered()
	fmt.Println("Available search filters (composition order):")
	for i, name := range search.Order() {
		f := registry[name]()
		fmt.Printf("  %d. %-7s %s\n", i+1, name, f.Description())
	}
}

func printSources(ctx context.Context, sources []source.Source) error {
	fmt.Println("Configured catalog sources:")
	for i, src := range sources {
		rows, err := src.Load(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to load source %s", src.Name())
		}
		fmt.Printf("  %d. %-20s %-7s %d rows\n", i+1, src.Name(), src.Type(), len(rows))
	}
	return nil
}

func printArtists(v session.ArtistsView) {
	fmt.Printf("Artists (initial: %s, page %d/%d)\n", v.Initial, v.Page.Number, v.Page.TotalPages)
	if v.Info != "" {
		fmt.Println(v.Info)
		return
	}
	for _, a := range v.Page.Items {
		fmt.Printf("  [%s] %s (%d albums)\n", a.Initial, a.Name, a.AlbumCount)
	}
}

func printSearch(v session.SearchView) {
	fmt.Printf("Search %q (filters: %s, page %d/%d)\n", v.Query, v.Filters, v.Page.Number, v.Page.TotalPages)
	fmt.Println(v.Info)
	for _, r := range v.Page.Items {
		line := fmt.Sprintf("  %-6s %s", r.Type, r.Primary)
		if r.Secondary != "" {
			line += " - " + r.Secondary
		}
		if len(r.Tags) > 0 {
			line += " #" + strings.Join(r.Tags, " #")
		}
		fmt.Println(line)
	}
}

func printRoute(s *session.Manager) {
	snap := s.Snapshot()
	fmt.Printf("%s -> %s\n", snap.Hash, snap.State.View)

	switch snap.State.View {
	case state.ViewArtists:
		printArtists(s.Artists())
	case state.ViewAlbums:
		v := s.Albums()
		if v.Info != "" {
			fmt.Println(v.Info)
		}
		for _, a := range v.Albums {
			fmt.Printf("  %s (%s)\n", a.Title, strings.Join(nonEmpty(a.Year, a.Genre), ", "))
		}
	case state.ViewTracks:
		v := s.Tracks()
		if v.Info != "" {
			fmt.Println(v.Info)
		}
		for _, t := range v.Tracks {
			fmt.Printf("  %3s %s\n", t.TrackNo, t.Title)
		}
	case state.ViewSearch:
		printSearch(s.SearchResults())
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
