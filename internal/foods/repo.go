package foods

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("food not found")

// Repo reads the static food reference collection, queryable by id and
// category. There are no writes; the collection is reference data.
type Repo interface {
	List(ctx context.Context) ([]Food, error)
	ListByCategory(ctx context.Context, category string) ([]Food, error)
	GetByID(ctx context.Context, id string) (Food, error)
}
