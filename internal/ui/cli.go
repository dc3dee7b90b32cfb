package ui

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Dorantes98/movie-info-search/internal/config"
	"github.com/Dorantes98/movie-info-search/internal/httpcache"
	"github.com/Dorantes98/movie-info-search/internal/movie"
	"github.com/Dorantes98/movie-info-search/internal/omdb"
	"github.com/Dorantes98/movie-info-search/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	root       *cobra.Command
	configPath string
	debug      bool // Enable debug logging
	noColor    bool
}

// NewApp creates a new CLI application.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "movie-info-search",
		Short: "Search movies from the terminal",
		Long: `Movie Info Search looks up movies through the OMDb service.

Run without arguments for the interactive interface: search by title,
browse result cards, and open full details for any movie. The search,
show, and config subcommands cover one-shot scripted use.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			a.config = cfg
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the config file")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to movie-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.searchCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("movie-info-search %s (commit: %s)\n", Version, Commit)
		},
	}
}

// newSource builds the movie source for one-shot commands: the OMDb
// client over an HTTP client with the configured timeout and, when
// enabled, the in-memory response cache.
func (a *App) newSource() (movie.Source, error) {
	if !a.config.HasAPIKey() {
		return nil, fmt.Errorf("no API key configured: set OMDB_API_KEY, or run %q and add one to %s",
			"movie-info-search config init", config.DefaultConfigPath())
	}

	httpClient := &http.Client{Timeout: a.config.Timeout()}
	if a.config.API.CacheEntries > 0 {
		transport, err := httpcache.New(nil, a.config.API.CacheEntries)
		if err != nil {
			return nil, fmt.Errorf("initializing response cache: %w", err)
		}
		httpClient.Transport = transport
	}

	return omdb.New(omdb.Config{
		APIKey:     a.config.API.Key,
		BaseURL:    a.config.API.BaseURL,
		HTTPClient: httpClient,
	}), nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
