package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteRepo persists the lists in a local SQLite file, the single-user
// storage option for running without Postgres.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (or creates) the database file and ensures the schema.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS preference_lists (
        name TEXT PRIMARY KEY,
        items TEXT NOT NULL,
        updated_at DATETIME NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) Get(ctx context.Context, name string) ([]string, error) {
	if !ValidName(name) {
		return nil, ErrUnknownList
	}

	var itemsJSON string
	err := r.db.QueryRowContext(ctx,
		`SELECT items FROM preference_lists WHERE name = ?`, name).Scan(&itemsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, fmt.Errorf("decode stored list %q: %w", name, err)
	}
	return items, nil
}

func (r *SQLiteRepo) Put(ctx context.Context, name string, items []string) error {
	if !ValidName(name) {
		return ErrUnknownList
	}
	if items == nil {
		items = []string{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO preference_lists (name, items, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET items = excluded.items, updated_at = excluded.updated_at`,
		name, string(itemsJSON), time.Now().UTC(),
	)
	return err
}

var _ Repo = (*SQLiteRepo)(nil)
