// Package source loads the initial task list. A source is read exactly once
// per session; nothing is ever written back to it.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
)

var ErrUnsupportedEndpoint = errors.New("source: unsupported endpoint")

type Source interface {
	Fetch(ctx context.Context) ([]model.Task, error)
	Name() string
}

const sqliteScheme = "sqlite://"

// New picks the source for cfg.Endpoint: http(s) URLs are fetched over the
// network, sqlite://path reads a local seed database.
func New(cfg config.RuntimeConfig) (Source, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		return &HTTPSource{
			Endpoint:  endpoint,
			UserAgent: cfg.UserAgent,
			Client:    &http.Client{Timeout: cfg.Timeout},
		}, nil
	case strings.HasPrefix(endpoint, sqliteScheme):
		return newSQLiteSource(endpoint)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEndpoint, endpoint)
	}
}

// newSQLiteSource reads sqlite://path[?user=N]. The optional user narrows
// the seed to one owner, like the users/N segment of the HTTP default.
func newSQLiteSource(endpoint string) (Source, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEndpoint, err)
	}
	path := u.Host + u.Path
	if path == "" {
		return nil, fmt.Errorf("%w: %q has no database path", ErrUnsupportedEndpoint, endpoint)
	}
	src := storage.SQLiteSource{Path: path}
	if raw := u.Query().Get("user"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: invalid user %q in %q", ErrUnsupportedEndpoint, raw, endpoint)
		}
		src.UserID = id
	}
	return src, nil
}
