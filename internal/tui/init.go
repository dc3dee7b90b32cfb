// Package tui provides the terminal user interface for movie-info-search.
package tui

import (
	"fmt"
	"net/http"

	"github.com/Dorantes98/movie-info-search/internal/config"
	"github.com/Dorantes98/movie-info-search/internal/httpcache"
	"github.com/Dorantes98/movie-info-search/internal/movie"
	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

// KeySignupURL is where OMDb issues free API keys.
const KeySignupURL = "https://www.omdbapi.com/apikey.aspx"

// SetupState tracks whether first-run setup is required.
type SetupState struct {
	NeedsKey   bool
	ConfigPath string
}

// DetectSetupState checks for a missing API key.
func DetectSetupState(cfg *config.Config) SetupState {
	return SetupState{
		NeedsKey:   !cfg.HasAPIKey(),
		ConfigPath: config.DefaultConfigPath(),
	}
}

// openSource builds the movie source from the configuration: an OMDb
// client over an HTTP client with the configured timeout and, when
// enabled, the in-memory response cache.
func openSource(cfg *config.Config) (movie.Source, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout()}

	if cfg.API.CacheEntries > 0 {
		transport, err := httpcache.New(nil, cfg.API.CacheEntries)
		if err != nil {
			return nil, fmt.Errorf("initializing response cache: %w", err)
		}
		transport.OnLookup = LogCacheLookup
		httpClient.Transport = transport
	}

	return omdb.New(omdb.Config{
		APIKey:     cfg.API.Key,
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: httpClient,
	}), nil
}

// saveAPIKey persists the key entered in the setup modal and swaps in
// a live source.
func (m Model) saveAPIKey(key string) (Model, error) {
	m.config.API.Key = key
	if err := m.config.SaveTo(m.setupState.ConfigPath); err != nil {
		return m, fmt.Errorf("saving config: %w", err)
	}

	source, err := openSource(m.config)
	if err != nil {
		return m, err
	}
	m.source = source
	return m, nil
}
