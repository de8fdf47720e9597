package foods

import "context"

// MemoryRepo serves the built-in reference collection.
type MemoryRepo struct {
	byID  map[string]Food
	order []Food
}

func NewMemoryRepo() *MemoryRepo {
	r := &MemoryRepo{byID: make(map[string]Food, len(defaultFoods))}
	for _, f := range defaultFoods {
		r.byID[f.ID] = f
		r.order = append(r.order, f)
	}
	return r
}

func (r *MemoryRepo) List(ctx context.Context) ([]Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Food(nil), r.order...), nil
}

func (r *MemoryRepo) ListByCategory(ctx context.Context, category string) ([]Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Food
	for _, f := range r.order {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Food, error) {
	if err := ctx.Err(); err != nil {
		return Food{}, err
	}
	f, ok := r.byID[id]
	if !ok {
		return Food{}, ErrNotFound
	}
	return f, nil
}

var _ Repo = (*MemoryRepo)(nil)
