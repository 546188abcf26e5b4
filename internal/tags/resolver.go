// Package tags resolves free-text tag names to tag records, creating
// records lazily for names not seen before.
package tags

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kutbudev/agri-api/pkg/models"
)

// Lookup is the storage surface the resolver needs. When resolution runs
// inside a transaction the Lookup must be bound to that transaction so
// newly created tags only become durable with the caller's save.
type Lookup interface {
	// ByNameFold finds a tag whose name matches case-insensitively.
	// Returns models.ErrNotFound when no such tag exists.
	ByNameFold(ctx context.Context, name string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
}

// Normalize trims the candidate names, drops blank entries, and removes
// duplicates under case-insensitive comparison, keeping first-occurrence
// order and the casing of the first occurrence.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

// Resolve maps each distinct candidate name to an existing or newly created
// tag. An empty input yields an empty result.
func Resolve(ctx context.Context, lk Lookup, names []string) ([]models.Tag, error) {
	resolved := make([]models.Tag, 0, len(names))
	for _, name := range Normalize(names) {
		existing, err := lk.ByNameFold(ctx, name)
		if err == nil {
			resolved = append(resolved, *existing)
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}

		tag := models.Tag{ID: uuid.New(), Name: name}
		if err := lk.Create(ctx, &tag); err != nil {
			return nil, err
		}
		resolved = append(resolved, tag)
	}
	return resolved, nil
}
