package omdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dorantes98/movie-info-search/internal/movie"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSearch(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "batman", r.URL.Query().Get("s"))
		err := json.NewEncoder(w).Encode(map[string]any{
			"Response":     "True",
			"totalResults": "2",
			"Search": []map[string]string{
				{"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie", "Poster": "https://posters.example/begins.jpg"},
				{"Title": "Batman Returns", "Year": "1992", "imdbID": "tt0103776", "Type": "movie", "Poster": "N/A"},
			},
		})
		require.NoError(t, err)
	})

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	results, err := c.Search(context.Background(), "batman")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, movie.SearchResult{
		ID:        "tt0372784",
		Title:     "Batman Begins",
		Year:      "2005",
		PosterURL: "https://posters.example/begins.jpg",
	}, results[0])
	assert.Equal(t, movie.SearchResult{
		ID:    "tt0103776",
		Title: "Batman Returns",
		Year:  "1992",
	}, results[1], "N/A poster should normalize to absent")
}

func TestClientSearchNoMatches(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{"Response":"True","totalResults":"0"}`))
		require.NoError(t, err)
	})

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	results, err := c.Search(context.Background(), "zzzzzz")
	require.NoError(t, err, "no matches is not an error")
	assert.Empty(t, results)
}

func TestClientSearchAPIError(t *testing.T) {
	t.Run("service message", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			require.NoError(t, err)
		})

		c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		results, err := c.Search(context.Background(), "batman")
		assert.Nil(t, results)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Movie not found!", apiErr.Message)
	})

	t.Run("fallback message", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"Response":"False"}`))
			require.NoError(t, err)
		})

		c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		_, err := c.Search(context.Background(), "batman")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, searchFailedFallback, apiErr.Message)
	})
}

func TestClientSearchStatusError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := New(Config{APIKey: "secret-key", BaseURL: srv.URL})
	_, err := c.Search(context.Background(), "batman")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.NotContains(t, statusErr.URL, "secret-key", "key must not leak into errors")
	assert.Contains(t, statusErr.URL, "apikey=redacted")
}

func TestClientGet(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "tt0372784", r.URL.Query().Get("i"))
		assert.Equal(t, "full", r.URL.Query().Get("plot"))
		err := json.NewEncoder(w).Encode(map[string]any{
			"Response": "True",
			"Title":    "Batman Begins",
			"Year":     "2005",
			"Rated":    "PG-13",
			"Runtime":  "140 min",
			"Genre":    "Action, Crime, Drama",
			"Director": "Christopher Nolan",
			"Plot":     "After witnessing his parents' death, Bruce learns the art of fighting.",
			"Poster":   "https://posters.example/begins.jpg",
			"Ratings": []map[string]string{
				{"Source": "Internet Movie Database", "Value": "8.2/10"},
				{"Source": "Rotten Tomatoes", "Value": "85%"},
				{"Source": "Metacritic", "Value": "70/100"},
			},
			"imdbID": "tt0372784",
		})
		require.NoError(t, err)
	})

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	detail, err := c.Get(context.Background(), "tt0372784")
	require.NoError(t, err)

	assert.Equal(t, "tt0372784", detail.ID)
	assert.Equal(t, "Batman Begins", detail.Title)
	assert.Equal(t, "2005", detail.Year)
	assert.Equal(t, "PG-13", detail.Rated)
	assert.Equal(t, "140 min", detail.Runtime)
	assert.Equal(t, "Action, Crime, Drama", detail.Genre)
	assert.Equal(t, []string{"Christopher Nolan"}, detail.Directors)
	assert.Equal(t, "https://posters.example/begins.jpg", detail.PosterURL)
	require.Len(t, detail.Ratings, 3)
	assert.Equal(t, movie.Rating{Source: "Internet Movie Database", Value: "8.2/10"}, detail.Ratings[0])
	assert.Equal(t, movie.Rating{Source: "Rotten Tomatoes", Value: "85%"}, detail.Ratings[1])
	assert.Equal(t, movie.Rating{Source: "Metacritic", Value: "70/100"}, detail.Ratings[2])
}

func TestClientGetNormalization(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{
			"Response": "True",
			"Title":    "Obscure Movie",
			"Year":     "1971",
			"Director": "Lana Wachowski, Lilly Wachowski",
			"Poster":   "N/A",
			"imdbID":   "tt0000001"
		}`))
		require.NoError(t, err)
	})

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	detail, err := c.Get(context.Background(), "tt0000001")
	require.NoError(t, err)

	assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, detail.Directors)
	assert.Empty(t, detail.PosterURL, "N/A poster should normalize to absent")
	assert.False(t, detail.HasPoster())
}

func TestClientGetAPIError(t *testing.T) {
	t.Run("service message", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
			require.NoError(t, err)
		})

		c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		_, err := c.Get(context.Background(), "nonsense")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Incorrect IMDb ID.", apiErr.Message)
	})

	t.Run("fallback message", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"Response":"False"}`))
			require.NoError(t, err)
		})

		c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		_, err := c.Get(context.Background(), "tt0372784")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, detailFailedFallback, apiErr.Message)
	})
}

func TestNormalizePoster(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "sentinel", raw: "N/A", want: ""},
		{name: "url", raw: "https://posters.example/a.jpg", want: "https://posters.example/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePoster(tt.raw))
		})
	}
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "sentinel", raw: "N/A", want: nil},
		{name: "single", raw: "Christopher Nolan", want: []string{"Christopher Nolan"}},
		{name: "pair", raw: "Lana Wachowski, Lilly Wachowski", want: []string{"Lana Wachowski", "Lilly Wachowski"}},
		{name: "trailing comma", raw: "Christopher Nolan,", want: []string{"Christopher Nolan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitNames(tt.raw))
		})
	}
}
