// Package httpcache provides an in-memory caching RoundTripper so
// repeated lookups within a session are served without a second
// round trip. Nothing is written to disk.
package httpcache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries bounds the cache when no size is configured.
const DefaultMaxEntries = 128

// Transport is an http.RoundTripper that memoizes GET responses by
// method + URL. Hits are served from memory; misses are forwarded to
// Base and cached on 2xx. Entries are evicted LRU once the configured
// size is reached, and early when the response carried a max-age
// directive. Responses marked no-store or no-cache are never kept.
type Transport struct {
	Base http.RoundTripper

	// OnLookup, if set, is called for every round trip with the cache
	// key and whether it was served from memory.
	OnLookup func(key string, hit bool)

	cache *lru.Cache[string, *entry]
}

type entry struct {
	status  int
	header  http.Header
	body    []byte
	expires time.Time // zero = no expiry beyond LRU eviction
}

// New creates a Transport over base keeping at most maxEntries
// responses. maxEntries <= 0 selects DefaultMaxEntries.
func New(base http.RoundTripper, maxEntries int) (*Transport, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	cache, err := lru.New[string, *entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}
	return &Transport{Base: base, cache: cache}, nil
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + req.URL.String()

	if req.Method == http.MethodGet {
		if e, ok := t.cache.Get(key); ok {
			if e.expires.IsZero() || time.Now().Before(e.expires) {
				t.lookup(key, true)
				return e.response(req), nil
			}
			t.cache.Remove(key)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	t.lookup(key, false)

	if req.Method != http.MethodGet || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	noStore, maxAge := cacheControl(resp.Header)
	if noStore {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	t.cache.Add(key, &entry{
		status:  resp.StatusCode,
		header:  resp.Header.Clone(),
		body:    body,
		expires: expiry(maxAge),
	})
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

func (t *Transport) lookup(key string, hit bool) {
	if t.OnLookup != nil {
		t.OnLookup(key, hit)
	}
}

func (e *entry) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        http.StatusText(e.status),
		StatusCode:    e.status,
		Header:        e.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(e.body)),
		ContentLength: int64(len(e.body)),
		Request:       req,
	}
}

// cacheControl parses the response directives this private cache
// honors: no-store/no-cache forbid keeping the entry, max-age bounds
// its lifetime. Multiple Cache-Control headers are each scanned.
func cacheControl(header http.Header) (noStore bool, maxAge int) {
	for _, cc := range header["Cache-Control"] {
		for part := range strings.SplitSeq(cc, ",") {
			part = strings.TrimSpace(strings.ToLower(part))
			if part == "no-store" || part == "no-cache" {
				noStore = true
			}
			if after, ok := strings.CutPrefix(part, "max-age="); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(after)); err == nil && n > 0 {
					maxAge = n
				}
			}
		}
	}
	return noStore, maxAge
}

func expiry(maxAgeSeconds int) time.Time {
	if maxAgeSeconds <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(maxAgeSeconds) * time.Second)
}
