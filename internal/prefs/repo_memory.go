package prefs

import (
	"context"
	"sync"
)

// MemoryRepo keeps the lists in memory for a single session.
type MemoryRepo struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{lists: make(map[string][]string)}
}

func (r *MemoryRepo) Get(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ValidName(name) {
		return nil, ErrUnknownList
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.lists[name]...), nil
}

func (r *MemoryRepo) Put(ctx context.Context, name string, items []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidName(name) {
		return ErrUnknownList
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[name] = append([]string(nil), items...)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
