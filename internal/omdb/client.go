// Package omdb implements movie lookup against the OMDb HTTP API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dorantes98/movie-info-search/internal/movie"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Fallback messages for failure responses that carry no message of
// their own.
const (
	searchFailedFallback = "Search failed for an unknown reason"
	detailFailedFallback = "Could not load movie details"
)

// The service reports missing fields with this sentinel instead of
// omitting them.
const notAvailable = "N/A"

const responseFalse = "False"

// Config holds the settings for a Client.
type Config struct {
	APIKey  string
	BaseURL string // defaults to DefaultBaseURL
	// HTTPClient overrides the default 30s-timeout client. Used to
	// install the caching transport.
	HTTPClient *http.Client
}

// Client implements movie.Source against the OMDb HTTP API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a Client from cfg, filling in defaults for the base URL
// and HTTP client.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    httpClient,
	}
}

type searchEnvelope struct {
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
	TotalResults string         `json:"totalResults"`
	Search       []searchRecord `json:"Search"`
}

type searchRecord struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type detailRecord struct {
	Response string      `json:"Response"`
	Error    string      `json:"Error"`
	Title    string      `json:"Title"`
	Year     string      `json:"Year"`
	Rated    string      `json:"Rated"`
	Runtime  string      `json:"Runtime"`
	Genre    string      `json:"Genre"`
	Director string      `json:"Director"`
	Plot     string      `json:"Plot"`
	Poster   string      `json:"Poster"`
	Ratings  []rawRating `json:"Ratings"`
	ImdbID   string      `json:"imdbID"`
}

type rawRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Search returns the results matching a title query, in service order.
// A failure flag in the body yields an *APIError; an empty match list
// with a success flag yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]movie.SearchResult, error) {
	params := url.Values{}
	params.Set("s", query)

	var env searchEnvelope
	if err := c.fetch(ctx, params, &env); err != nil {
		return nil, err
	}
	if env.Response == responseFalse {
		return nil, &APIError{Message: fallback(env.Error, searchFailedFallback)}
	}

	results := make([]movie.SearchResult, 0, len(env.Search))
	for _, rec := range env.Search {
		results = append(results, movie.SearchResult{
			ID:        rec.ImdbID,
			Title:     rec.Title,
			Year:      rec.Year,
			PosterURL: normalizePoster(rec.Poster),
		})
	}
	return results, nil
}

// Get retrieves the full record for a movie, asking the service for the
// unabridged plot.
func (c *Client) Get(ctx context.Context, id string) (*movie.Detail, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var rec detailRecord
	if err := c.fetch(ctx, params, &rec); err != nil {
		return nil, err
	}
	if rec.Response == responseFalse {
		return nil, &APIError{Message: fallback(rec.Error, detailFailedFallback)}
	}

	detail := &movie.Detail{
		ID:        rec.ImdbID,
		Title:     rec.Title,
		Year:      rec.Year,
		Rated:     rec.Rated,
		Runtime:   rec.Runtime,
		Genre:     rec.Genre,
		Plot:      rec.Plot,
		Directors: splitNames(rec.Director),
		PosterURL: normalizePoster(rec.Poster),
	}
	for _, r := range rec.Ratings {
		detail.Ratings = append(detail.Ratings, movie.Rating{Source: r.Source, Value: r.Value})
	}
	return detail, nil
}

// fetch issues a GET with the given query parameters plus the API key
// and decodes the JSON body into into.
func (c *Client) fetch(ctx context.Context, params url.Values, into any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parsing base URL: %w", err)
	}
	params.Set("apikey", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{URL: redactedURL(u), StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// redactedURL keeps the API key out of error text and logs.
func redactedURL(u *url.URL) string {
	q := u.Query()
	if q.Has("apikey") {
		q.Set("apikey", "redacted")
		clone := *u
		clone.RawQuery = q.Encode()
		return clone.String()
	}
	return u.String()
}

func fallback(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}

// normalizePoster maps the "N/A" sentinel and empty values to an
// absent poster.
func normalizePoster(raw string) string {
	if raw == "" || raw == notAvailable {
		return ""
	}
	return raw
}

// splitNames turns the service's comma-separated name list into a
// slice, dropping the sentinel.
func splitNames(raw string) []string {
	if raw == "" || raw == notAvailable {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
