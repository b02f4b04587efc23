package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(Options{BaseURL: srv.URL, StreamBase: "https://play.example/watch?v="})
	return c, srv
}

func TestClient_Search(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "daft punk" {
			t.Errorf("q = %q, want %q", got, "daft punk")
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"v1","title":"One More Time","artist":"Daft Punk","album":"Discovery","duration":"5:20"},
			{"id":"v2","title":"Aerodynamic","artist":"Daft Punk","album":"Discovery","duration":"3:27"}
		]`))
	}))
	defer srv.Close()

	tracks, err := c.Search(context.Background(), "daft punk", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	want := Track{ID: "v1", Title: "One More Time", Artist: "Daft Punk", Album: "Discovery", Duration: 5*time.Minute + 20*time.Second}
	if tracks[0] != want {
		t.Errorf("tracks[0] = %+v, want %+v", tracks[0], want)
	}
}

func TestClient_Search_CapsLimit(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "30" {
			t.Errorf("limit = %q, want 30 (capped)", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tracks, err := c.Search(context.Background(), "q", 500)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("got %d tracks, want 0", len(tracks))
	}
}

func TestClient_Search_EmptyResultIsNotAnError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tracks, err := c.Search(context.Background(), "no such band", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("got %d tracks, want 0", len(tracks))
	}
}

func TestClient_Search_ServerErrorIsUnavailable(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := c.Search(context.Background(), "q", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Search() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Search_TransportErrorIsUnavailable(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := c.Search(context.Background(), "q", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Search() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Lyrics(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lyrics" {
			t.Errorf("path = %q, want /lyrics", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "v1" {
			t.Errorf("id = %q, want v1", got)
		}
		_, _ = w.Write([]byte(`{"lyrics":"One more time\nWe're gonna celebrate"}`))
	}))
	defer srv.Close()

	text, err := c.Lyrics(context.Background(), "v1")
	if err != nil {
		t.Fatalf("Lyrics() error = %v", err)
	}
	if text != "One more time\nWe're gonna celebrate" {
		t.Errorf("Lyrics() = %q", text)
	}
}

func TestClient_Lyrics_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "404 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
		},
		{
			name: "empty lyrics body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"lyrics":""}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(tt.handler)
			defer srv.Close()

			_, err := c.Lyrics(context.Background(), "v1")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Lyrics() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestClient_Lyrics_ServerErrorIsUnavailable(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := c.Lyrics(context.Background(), "v1")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Lyrics() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_StreamURL(t *testing.T) {
	c := New(Options{StreamBase: "https://play.example/watch?v="})

	if got := c.StreamURL("abc123"); got != "https://play.example/watch?v=abc123" {
		t.Errorf("StreamURL() = %q", got)
	}
	// Ids are query-escaped, not pasted raw.
	if got := c.StreamURL("a&b"); got != "https://play.example/watch?v=a%26b" {
		t.Errorf("StreamURL() = %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "3:27", want: 3*time.Minute + 27*time.Second},
		{in: "0:59", want: 59 * time.Second},
		{in: "1:02:03", want: time.Hour + 2*time.Minute + 3*time.Second},
		{in: "", want: 0},
		{in: "N/A", want: 0},
		{in: "3:2x", want: 0},
		{in: "207", want: 0},
	}

	for _, tt := range tests {
		if got := parseDuration(tt.in); got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
