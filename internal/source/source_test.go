package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/storage"
)

const sampleTodos = `[
  {"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false},
  {"userId": 1, "id": 2, "title": "quis ut nam facilis et officia qui", "completed": true}
]`

func TestHTTPSourceFetch(t *testing.T) {
	var gotAccept, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users/1/todos" {
			http.NotFound(w, r)
			return
		}
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleTodos))
	}))
	defer srv.Close()

	src := &HTTPSource{Endpoint: srv.URL + "/users/1/todos", UserAgent: "todo/test", Client: srv.Client()}
	tasks, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].ID != 2 || !tasks[1].Completed || tasks[1].UserID != 1 {
		t.Fatalf("unexpected decoded task: %+v", tasks[1])
	}
	if gotAccept != "application/json" || gotAgent != "todo/test" {
		t.Fatalf("unexpected request headers: accept=%q agent=%q", gotAccept, gotAgent)
	}
}

func TestHTTPSourceStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := (&HTTPSource{Endpoint: srv.URL, Client: srv.Client()}).Fetch(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected StatusError 503, got %v", err)
	}
}

func TestHTTPSourceDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	if _, err := (&HTTPSource{Endpoint: srv.URL, Client: srv.Client()}).Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHTTPSourceTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := (&HTTPSource{Endpoint: endpoint}).Fetch(ctx); err == nil {
		t.Fatal("expected transport error against closed server")
	}
}

func TestNewPicksSourceByScheme(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	src, err := New(cfg)
	if err != nil {
		t.Fatalf("new http source: %v", err)
	}
	httpSrc, ok := src.(*HTTPSource)
	if !ok {
		t.Fatalf("expected *HTTPSource, got %T", src)
	}
	if httpSrc.Client.Timeout != cfg.Timeout || src.Name() != config.DefaultEndpoint {
		t.Fatalf("unexpected http source: %+v", httpSrc)
	}

	cfg.Endpoint = "sqlite://testdata/seed.db"
	src, err = New(cfg)
	if err != nil {
		t.Fatalf("new sqlite source: %v", err)
	}
	if sq, ok := src.(storage.SQLiteSource); !ok || sq.Path != "testdata/seed.db" {
		t.Fatalf("expected sqlite source for testdata/seed.db, got %#v", src)
	}

	cfg.Endpoint = "sqlite:///var/lib/todo/seed.db?user=3"
	src, err = New(cfg)
	if err != nil {
		t.Fatalf("new scoped sqlite source: %v", err)
	}
	if sq, ok := src.(storage.SQLiteSource); !ok || sq.Path != "/var/lib/todo/seed.db" || sq.UserID != 3 {
		t.Fatalf("expected user-scoped sqlite source, got %#v", src)
	}

	for _, bad := range []string{"sqlite://seed.db?user=abc", "sqlite://seed.db?user=-1", "sqlite://"} {
		cfg.Endpoint = bad
		if _, err := New(cfg); !errors.Is(err, ErrUnsupportedEndpoint) {
			t.Fatalf("expected ErrUnsupportedEndpoint for %q, got %v", bad, err)
		}
	}

	cfg.Endpoint = "ftp://example.com"
	if _, err := New(cfg); !errors.Is(err, ErrUnsupportedEndpoint) {
		t.Fatalf("expected ErrUnsupportedEndpoint, got %v", err)
	}
}
