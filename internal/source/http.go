package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandeepkv93/todo/internal/model"
)

// maxBodyBytes caps the seed response; the placeholder collection is a few
// kilobytes.
const maxBodyBytes = 4 << 20

type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("source: GET %s: unexpected status %d %s", e.Endpoint, e.Code, http.StatusText(e.Code))
}

// HTTPSource reads a JSON array of todo records with a single GET.
type HTTPSource struct {
	Endpoint  string
	UserAgent string
	Client    *http.Client
}

type remoteTask struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (s *HTTPSource) Name() string {
	return s.Endpoint
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
		return nil, &StatusError{Endpoint: s.Endpoint, Code: resp.StatusCode}
	}

	var payload []remoteTask
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Endpoint, err)
	}
	out := make([]model.Task, 0, len(payload))
	for _, rt := range payload {
		out = append(out, model.Task{
			ID:        rt.ID,
			UserID:    rt.UserID,
			Title:     rt.Title,
			Completed: rt.Completed,
		})
	}
	return out, nil
}
