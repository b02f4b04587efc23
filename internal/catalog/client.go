// Package catalog provides a client for the music catalog API
// (search, lyrics, stream resolution).
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the catalog has no lyrics for a track.
var ErrNotFound = errors.New("lyrics not found")

// ErrUnavailable is returned when the catalog cannot be reached. It is
// distinct from an empty result: a search with no matches succeeds.
var ErrUnavailable = errors.New("catalog unavailable")

const (
	// MaxSearchResults caps the number of results per search request.
	MaxSearchResults = 30

	userAgent = "harmonix/1.0 (https://github.com/Bimbok/Harmonix)"
)

// Track is a catalog search result.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// Client is a music catalog API client.
type Client struct {
	baseURL    string
	streamBase string
	httpClient *http.Client
}

// Options configures a catalog client.
type Options struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// StreamBase is the playback URL prefix a track id is appended to.
	StreamBase string
}

// New creates a new catalog client.
func New(opts Options) *Client {
	return &Client{
		baseURL:    opts.BaseURL,
		streamBase: opts.StreamBase,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type searchResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration string `json:"duration"`
}

type lyricsResult struct {
	Lyrics string `json:"lyrics"`
}

// Search returns tracks matching the query, most relevant first.
// The limit is capped at MaxSearchResults; fewer results than asked for
// is not an error. Transport and server failures surface as
// ErrUnavailable, never as an empty list.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Track, error) {
	if limit <= 0 || limit > MaxSearchResults {
		limit = MaxSearchResults
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if len(results) > limit {
		results = results[:limit]
	}

	tracks := make([]Track, 0, len(results))
	for _, r := range results {
		tracks = append(tracks, Track{
			ID:       r.ID,
			Title:    r.Title,
			Artist:   r.Artist,
			Album:    r.Album,
			Duration: parseDuration(r.Duration),
		})
	}
	return tracks, nil
}

// Lyrics fetches the lyrics text for a track id. ErrNotFound means the
// catalog has no lyrics for this track; ErrUnavailable means the lookup
// itself failed and may succeed later.
func (c *Client) Lyrics(ctx context.Context, trackID string) (string, error) {
	params := url.Values{}
	params.Set("id", trackID)

	reqURL := fmt.Sprintf("%s/lyrics?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var result lyricsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if result.Lyrics == "" {
		return "", ErrNotFound
	}
	return result.Lyrics, nil
}

// StreamURL resolves a track id to the URI handed to the playback
// backend. It never touches the network.
func (c *Client) StreamURL(trackID string) string {
	return c.streamBase + url.QueryEscape(trackID)
}

// parseDuration parses the API's "m:ss" (or "h:mm:ss") duration string.
// Unknown or malformed durations come back as 0.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}

	var parts []int
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ':' {
			n, err := strconv.Atoi(s[start:i])
			if err != nil || n < 0 {
				return 0
			}
			parts = append(parts, n)
			start = i + 1
		}
	}

	switch len(parts) {
	case 2:
		return time.Duration(parts[0])*time.Minute + time.Duration(parts[1])*time.Second
	case 3:
		return time.Duration(parts[0])*time.Hour +
			time.Duration(parts[1])*time.Minute +
			time.Duration(parts[2])*time.Second
	default:
		return 0
	}
}
