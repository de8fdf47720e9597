package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo persists the lists in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context, name string) ([]string, error) {
	if !ValidName(name) {
		return nil, ErrUnknownList
	}

	var itemsJSON []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT items FROM preference_lists WHERE name = $1`, name).Scan(&itemsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("decode stored list %q: %w", name, err)
	}
	return items, nil
}

func (r *PGRepo) Put(ctx context.Context, name string, items []string) error {
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

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO preference_lists (name, items, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		name, itemsJSON, time.Now().UTC(),
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
