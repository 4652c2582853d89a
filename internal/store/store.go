// Package store holds the ordered, in-memory task list and the list-level
// operations that mutate it.
//
// A Store is owned by a single goroutine (the bubbletea update loop) and is
// not safe for concurrent use.
package store

import (
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

type Store struct {
	tasks  []model.Task
	nextID int
}

func New() *Store {
	return &Store{nextID: 1}
}

// Replace swaps the whole contents for tasks, in order. Records that fail
// validation or repeat an earlier id are dropped. It returns how many
// records were kept.
func (s *Store) Replace(tasks []model.Task) int {
	out := make([]model.Task, 0, len(tasks))
	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if t.Validate() != nil || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.tasks = out
	return len(out)
}

// Add appends a new open task. Blank titles are ignored.
//
// Ids come from a counter that only moves forward, so an id is never handed
// out twice in a session even after deletes.
func (s *Store) Add(title string) (model.Task, bool) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return model.Task{}, false
	}
	if s.nextID < 1 {
		s.nextID = 1
	}
	t := model.Task{ID: s.nextID, Title: trimmed}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, true
}

func (s *Store) Remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true
}

// Update replaces the title of task id, keeping its completion flag and
// position. Unknown ids and blank titles are ignored.
func (s *Store) Update(id int, title string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Title = trimmed
	return true
}

func (s *Store) ToggleCompleted(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// Filtered returns a fresh slice with the tasks selected by mode, in store
// order. Unknown modes behave like FilterAll.
func (s *Store) Filtered(mode model.FilterMode) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if mode.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) All() []model.Task {
	return s.Filtered(model.FilterAll)
}

func (s *Store) Get(id int) (model.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
