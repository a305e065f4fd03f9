// Package sqlite stores the client session state in a local SQLite file,
// the on-disk counterpart of browser-scoped key/value storage.
package sqlite

import (
	"alcyxob/workout-planner/internal/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS session_state (
	scope      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (scope, key)
);`

// stateRepository implements repository.StateStore on a SQLite database.
type stateRepository struct {
	db    *sql.DB
	scope string
}

// Open opens (creating if needed) the database at path.
func Open(path, scope string) (repository.StateStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &stateRepository{db: db, scope: scope}, nil
}

func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE scope = ? AND key = ?`, r.scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *stateRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_state (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.scope, key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.Join(repository.ErrUpdateFailed, err)
	}
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE scope = ? AND key = ?`, r.scope, key)
	return err
}

func (r *stateRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE scope = ?`, r.scope)
	if err != nil {
		return errors.Join(repository.ErrDeleteFailed, err)
	}
	return nil
}

func (r *stateRepository) Close() error {
	return r.db.Close()
}
