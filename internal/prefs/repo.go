package prefs

import (
	"context"
	"errors"
	"strings"
)

// The two independent string-list slots the session keeps. Each is loaded
// once at session start and saved wholesale on every change; the lists are
// opaque to everything below the prompt builder.
const (
	ListPreferences = "preferences"
	ListExclusions  = "exclusions"
)

var ErrUnknownList = errors.New("unknown preference list")

// Repo persists the named string lists.
type Repo interface {
	Get(ctx context.Context, name string) ([]string, error)
	Put(ctx context.Context, name string, items []string) error
}

// ValidName reports whether name is one of the known list slots.
func ValidName(name string) bool {
	return name == ListPreferences || name == ListExclusions
}

// Normalize trims, drops empties, and dedupes case-insensitively while
// preserving first-seen order and casing.
func Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
