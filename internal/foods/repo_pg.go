package foods

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo reads the food reference table seeded by migrations.
type PGRepo struct {
	DB *sql.DB
}

const foodColumns = `id, name, category, protein, carbs, fat, cals_per_serving, serving, tags, data_source, verification_level, last_verified, confidence_score`

func (r *PGRepo) List(ctx context.Context) ([]Food, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+foodColumns+` FROM foods ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *PGRepo) ListByCategory(ctx context.Context, category string) ([]Food, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE category = $1 ORDER BY name`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Food, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = $1`, id)
	f, err := scanFood(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Food{}, ErrNotFound
	}
	return f, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFood(row rowScanner) (Food, error) {
	var f Food
	var tagsJSON []byte
	err := row.Scan(&f.ID, &f.Name, &f.Category, &f.Protein, &f.Carbs, &f.Fat,
		&f.CalsPerServing, &f.Serving, &tagsJSON, &f.DataSource,
		&f.VerificationLevel, &f.LastVerified, &f.ConfidenceScore)
	if err != nil {
		return Food{}, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &f.Tags); err != nil {
			return Food{}, err
		}
	}
	return f, nil
}

func scanFoods(rows *sql.Rows) ([]Food, error) {
	var out []Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
