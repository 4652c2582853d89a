package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func writeSeed(t *testing.T, tasks ...model.Task) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.db")
	if err := WriteSeed(context.Background(), path, tasks); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestSQLiteSourceFetch(t *testing.T) {
	path := writeSeed(t,
		model.Task{ID: 21, UserID: 2, Title: "suscipit repellat"},
		model.Task{ID: 2, UserID: 1, Title: "quis ut nam", Completed: true},
		model.Task{ID: 1, UserID: 1, Title: "delectus aut autem"},
	)

	src := SQLiteSource{Path: path, UserID: 1}
	tasks, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != 1 {
		t.Fatalf("expected id-ordered tasks for user 1, got %#v", tasks)
	}
	if tasks[1].ID != 2 || !tasks[1].Completed || tasks[1].Title != "quis ut nam" || tasks[1].UserID != 1 {
		t.Fatalf("unexpected mapped task: %#v", tasks[1])
	}
	if src.Name() != "sqlite:"+path {
		t.Fatalf("unexpected source name: %q", src.Name())
	}

	all, err := SQLiteSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(all) != 3 || all[2].ID != 21 {
		t.Fatalf("expected every owner without a user, got %#v", all)
	}
}

func TestSQLiteSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.db")
	tasks, err := SQLiteSource{Path: path}.Fetch(context.Background())
	if !errors.Is(err, ErrSeedNotFound) {
		t.Fatalf("expected ErrSeedNotFound, got tasks=%v err=%v", tasks, err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected fetch not to create %s, stat err=%v", path, statErr)
	}
}

func TestSQLiteSourceWithoutSchemaFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("create empty file: %v", err)
	}
	if _, err := (SQLiteSource{Path: path}).Fetch(context.Background()); err == nil {
		t.Fatal("expected error reading a file with no tasks table")
	}
}

func TestReadOnlyRepositoryRejectsWrites(t *testing.T) {
	path := writeSeed(t, model.Task{ID: 1, UserID: 1, Title: "keep me"})
	repo, err := OpenSQLiteReadOnly(path)
	if err != nil {
		t.Fatalf("open read-only: %v", err)
	}
	defer repo.Close()

	if err := repo.ReplaceTasks(context.Background(), nil); err == nil {
		t.Fatal("expected write through a read-only handle to fail")
	}
	tasks, err := repo.ListTasks(context.Background(), 0)
	if err != nil || len(tasks) != 1 {
		t.Fatalf("expected seed untouched, got tasks=%v err=%v", tasks, err)
	}
}

func TestWriteSeedReplacesRows(t *testing.T) {
	path := writeSeed(t,
		model.Task{ID: 1, UserID: 1, Title: "old one"},
		model.Task{ID: 2, UserID: 1, Title: "old two"},
	)
	if err := WriteSeed(context.Background(), path, []model.Task{{ID: 5, UserID: 1, Title: "fresh"}}); err != nil {
		t.Fatalf("rewrite seed: %v", err)
	}
	tasks, err := SQLiteSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 5 {
		t.Fatalf("expected only the new snapshot, got %#v", tasks)
	}
}

func TestWriteSeedRejectsBlankTitle(t *testing.T) {
	path := writeSeed(t, model.Task{ID: 1, UserID: 1, Title: "survivor"})
	err := WriteSeed(context.Background(), path, []model.Task{{ID: 2, Title: "  "}})
	if err == nil {
		t.Fatal("expected check constraint failure for blank title")
	}
	tasks, fetchErr := SQLiteSource{Path: path}.Fetch(context.Background())
	if fetchErr != nil || len(tasks) != 1 || tasks[0].Title != "survivor" {
		t.Fatalf("expected failed write rolled back, got tasks=%v err=%v", tasks, fetchErr)
	}
}
