package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrSeedNotFound = errors.New("storage: seed database not found")

type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLiteReadOnly opens an existing seed file in read-only mode. The
// schema is left as found; a missing file is ErrSeedNotFound.
func OpenSQLiteReadOnly(path string) (*SQLiteRepository, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, path)
		}
		return nil, fmt.Errorf("stat seed %s: %w", path, err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// CreateSQLite opens (creating if needed) a seed file for writing and brings
// its schema up to date.
func CreateSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// ListTasks returns the seed rows ordered by id. A zero userID lists every
// owner.
func (r *SQLiteRepository) ListTasks(ctx context.Context, userID int) ([]model.Task, error) {
	query := `SELECT id, user_id, title, completed FROM tasks`
	args := make([]any, 0, 1)
	if userID > 0 {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		var task model.Task
		var completed int
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &completed); err != nil {
			return nil, err
		}
		task.Completed = completed == 1
		out = append(out, task)
	}
	return out, rows.Err()
}

// ReplaceTasks swaps every row for tasks in one transaction.
func (r *SQLiteRepository) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, user_id, title, completed)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, t := range tasks {
		if _, err := stmt.ExecContext(ctx, t.ID, t.UserID, t.Title, boolInt(t.Completed)); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
