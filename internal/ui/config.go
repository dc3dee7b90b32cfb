package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dorantes98/movie-info-search/internal/config"
	"github.com/Dorantes98/movie-info-search/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging defaults, the config file,
and environment overrides (OMDB_API_KEY, MOVIESEARCH_*).

Example:
  movie-info-search config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			fmt.Printf("Config file: %s\n\n", path)
			printConfig(a.config)
			return nil
		},
	}

	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Create the config file with default values if it does not exist.

Add your OMDb API key under [api] afterwards, or export OMDB_API_KEY.
Free keys are issued at https://www.omdbapi.com/apikey.aspx`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Config file already exists: %s\n", path)
				return nil
			}

			if err := a.config.SaveTo(path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Printf("Created %s\n", path)
			if !a.config.HasAPIKey() {
				fmt.Println(formatMuted("Add your OMDb API key under [api], or export OMDB_API_KEY."))
			}
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[api]")
	fmt.Printf("  key             = %s\n", maskKey(cfg.API.Key))
	fmt.Printf("  base_url        = %s\n", cfg.API.BaseURL)
	fmt.Printf("  timeout_seconds = %d\n", cfg.API.TimeoutSeconds)
	fmt.Printf("  cache_entries   = %d\n", cfg.API.CacheEntries)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme           = %s (available: %s)\n", cfg.UI.Theme, strings.Join(theme.Available(), ", "))
}

// maskKey keeps the API key out of terminal scrollback.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
