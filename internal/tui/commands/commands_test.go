package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/Dorantes98/movie-info-search/internal/movie"
)

type fakeSource struct {
	search func(query string) ([]movie.SearchResult, error)
	get    func(id string) (*movie.Detail, error)
}

func (f fakeSource) Search(ctx context.Context, query string) ([]movie.SearchResult, error) {
	if f.search == nil {
		return nil, errors.New("not implemented")
	}
	return f.search(query)
}

func (f fakeSource) Get(ctx context.Context, id string) (*movie.Detail, error) {
	if f.get == nil {
		return nil, errors.New("not implemented")
	}
	return f.get(id)
}

func TestSearchReturnsSearchResultsMsg(t *testing.T) {
	source := fakeSource{
		search: func(query string) ([]movie.SearchResult, error) {
			if query != "batman" {
				t.Fatalf("query = %q, want %q", query, "batman")
			}
			return []movie.SearchResult{
				{ID: "tt0372784", Title: "Batman Begins", Year: "2005"},
			}, nil
		},
	}

	cmd := Search(source, 3, "batman")
	msg := cmd()

	results, ok := msg.(SearchResultsMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SearchResultsMsg", msg)
	}
	if results.Seq != 3 {
		t.Fatalf("seq = %d, want 3", results.Seq)
	}
	if results.Query != "batman" {
		t.Fatalf("query = %q, want %q", results.Query, "batman")
	}
	if len(results.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(results.Results))
	}
	if results.Results[0].Title != "Batman Begins" {
		t.Fatalf("title = %q, want %q", results.Results[0].Title, "Batman Begins")
	}
}

func TestSearchReturnsSearchFailedMsg(t *testing.T) {
	wantErr := errors.New("connection refused")
	source := fakeSource{
		search: func(query string) ([]movie.SearchResult, error) {
			return nil, wantErr
		},
	}

	cmd := Search(source, 7, "batman")
	msg := cmd()

	failed, ok := msg.(SearchFailedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SearchFailedMsg", msg)
	}
	if failed.Seq != 7 {
		t.Fatalf("seq = %d, want 7", failed.Seq)
	}
	if !errors.Is(failed.Err, wantErr) {
		t.Fatalf("err = %v, want %v", failed.Err, wantErr)
	}
}

func TestLoadDetailReturnsDetailLoadedMsg(t *testing.T) {
	source := fakeSource{
		get: func(id string) (*movie.Detail, error) {
			if id != "tt0372784" {
				t.Fatalf("id = %q, want %q", id, "tt0372784")
			}
			return &movie.Detail{ID: id, Title: "Batman Begins"}, nil
		},
	}

	cmd := LoadDetail(source, 2, "tt0372784")
	msg := cmd()

	loaded, ok := msg.(DetailLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want DetailLoadedMsg", msg)
	}
	if loaded.Seq != 2 {
		t.Fatalf("seq = %d, want 2", loaded.Seq)
	}
	if loaded.Detail == nil {
		t.Fatal("DetailLoadedMsg.Detail is nil")
	}
	if loaded.Detail.Title != "Batman Begins" {
		t.Fatalf("title = %q, want %q", loaded.Detail.Title, "Batman Begins")
	}
}

func TestLoadDetailReturnsDetailFailedMsg(t *testing.T) {
	source := fakeSource{
		get: func(id string) (*movie.Detail, error) {
			return nil, errors.New("Error getting data.")
		},
	}

	cmd := LoadDetail(source, 5, "tt9999999")
	msg := cmd()

	failed, ok := msg.(DetailFailedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want DetailFailedMsg", msg)
	}
	if failed.ID != "tt9999999" {
		t.Fatalf("id = %q, want %q", failed.ID, "tt9999999")
	}
}
