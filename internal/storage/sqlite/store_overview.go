package sqlite

import (
	"context"
	"fmt"

	"github.com/feywood/tomekeeper/internal/platform/storage/sqlbuild"
	"github.com/feywood/tomekeeper/internal/storage"
)

// GetOverview returns row counts for every entity table.
func (s *Store) GetOverview(ctx context.Context) (storage.Overview, error) {
	if err := ctx.Err(); err != nil {
		return storage.Overview{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Overview{}, fmt.Errorf("storage is not configured")
	}

	var overview storage.Overview
	counts := []struct {
		table  string
		target *int64
	}{
		{"attribute_names", &overview.AttributeNameCount},
		{"species", &overview.SpeciesCount},
		{"classes", &overview.ClassCount},
		{"skills", &overview.SkillCount},
		{"items", &overview.ItemCount},
		{"characters", &overview.CharacterCount},
	}
	for _, c := range counts {
		count, err := sqlbuild.Count(ctx, s.sqlDB, c.table, nil)
		if err != nil {
			return storage.Overview{}, fmt.Errorf("overview: %w", err)
		}
		*c.target = count
	}
	return overview, nil
}

// RecentCharacters returns the most recently updated characters as
// column-keyed maps.
func (s *Store) RecentCharacters(ctx context.Context, limit int) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := sqlbuild.Maps(ctx, s.sqlDB, sqlbuild.Select{
		Table:   "characters",
		Columns: []string{"id", "name", "species", "class", "level", "updated_at"},
		OrderBy: []string{"updated_at DESC", "id DESC"},
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("recent characters: %w", err)
	}
	for _, row := range rows {
		if millis, ok := row["updated_at"].(int64); ok {
			row["updated_at"] = fromMillis(millis)
		}
	}
	return rows, nil
}
