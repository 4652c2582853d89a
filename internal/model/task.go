package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidID     = errors.New("model: invalid task id")
	ErrEmptyTitle    = errors.New("model: task title is required")
	ErrInvalidFilter = errors.New("model: invalid filter mode")
)

// FilterMode selects which subset of the task list is shown. It is a view
// concern only and never changes the underlying tasks.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterCompleted FilterMode = "completed"
)

func (f FilterMode) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted:
		return true
	default:
		return false
	}
}

// Next flips between the two filter modes.
func (f FilterMode) Next() FilterMode {
	if f == FilterCompleted {
		return FilterAll
	}
	return FilterCompleted
}

// Matches reports whether a task belongs to the subset selected by f.
func (f FilterMode) Matches(t Task) bool {
	if f == FilterCompleted {
		return t.Completed
	}
	return true
}

func ParseFilterMode(raw string) (FilterMode, error) {
	mode := FilterMode(strings.ToLower(strings.TrimSpace(raw)))
	if mode == "" {
		return FilterAll, nil
	}
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return mode, nil
}

type Task struct {
	ID        int
	UserID    int
	Title     string
	Completed bool
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
