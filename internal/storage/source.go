package storage

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/todo/internal/model"
)

// SQLiteSource seeds the task list from a local SQLite file instead of the
// HTTP endpoint. It only ever reads.
type SQLiteSource struct {
	Path string
	// UserID narrows the seed to one owner; zero reads every row.
	UserID int
}

func (s SQLiteSource) Name() string {
	return "sqlite:" + s.Path
}

func (s SQLiteSource) Fetch(ctx context.Context) ([]model.Task, error) {
	repo, err := OpenSQLiteReadOnly(s.Path)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	tasks, err := repo.ListTasks(ctx, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("list seed tasks: %w", err)
	}
	return tasks, nil
}

// WriteSeed snapshots tasks into the seed file at path, replacing whatever
// rows it held.
func WriteSeed(ctx context.Context, path string, tasks []model.Task) error {
	repo, err := CreateSQLite(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.ReplaceTasks(ctx, tasks)
}
