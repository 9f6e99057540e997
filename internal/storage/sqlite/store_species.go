package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/feywood/tomekeeper/internal/platform/storage/sqlbuild"
	"github.com/feywood/tomekeeper/internal/storage"
)

var speciesUpdatable = []string{"description", "updated_at"}

// CreateSpecies inserts one species record.
func (s *Store) CreateSpecies(ctx context.Context, record storage.Species) (storage.Species, error) {
	if err := ctx.Err(); err != nil {
		return storage.Species{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Species{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.Species{}, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO species (name, description, created_at, updated_at)
VALUES (?, ?, ?, ?)`,
		name,
		strings.TrimSpace(record.Description),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.Species{}, writeError("create species", err)
	}

	record.Name = name
	record.Description = strings.TrimSpace(record.Description)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetSpecies retrieves one species by name.
func (s *Store) GetSpecies(ctx context.Context, name string) (storage.Species, error) {
	if err := ctx.Err(); err != nil {
		return storage.Species{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Species{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Species{}, fmt.Errorf("name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, description, created_at, updated_at
FROM species
WHERE name = ?`, name)
	return scanSpecies(row)
}

// ListSpecies returns all species ordered by name.
func (s *Store) ListSpecies(ctx context.Context) ([]storage.Species, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, description, created_at, updated_at
FROM species
ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()

	var result []storage.Species
	for rows.Next() {
		var record storage.Species
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.Name, &record.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate species: %w", err)
	}
	return result, nil
}

// UpdateSpecies applies the named fields and returns the updated record.
func (s *Store) UpdateSpecies(ctx context.Context, name string, fields map[string]any) (storage.Species, error) {
	if err := ctx.Err(); err != nil {
		return storage.Species{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Species{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Species{}, fmt.Errorf("name is required")
	}

	query, args, err := sqlbuild.Update{
		Table:   "species",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: speciesUpdatable,
		Where:   []sqlbuild.Cond{{Column: "name", Value: name}},
	}.SQL()
	if err != nil {
		return storage.Species{}, fmt.Errorf("update species: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Species{}, writeError("update species", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.Species{}, fmt.Errorf("update species: %w", err)
	}
	if affected == 0 {
		return storage.Species{}, storage.ErrNotFound
	}
	return s.GetSpecies(ctx, name)
}

// DeleteSpecies removes one species by name.
func (s *Store) DeleteSpecies(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM species WHERE name = ?`, name)
	if err != nil {
		return writeError("delete species", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete species: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSpecies(row *sql.Row) (storage.Species, error) {
	var record storage.Species
	var createdAt, updatedAt int64
	if err := row.Scan(&record.Name, &record.Description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Species{}, storage.ErrNotFound
		}
		return storage.Species{}, fmt.Errorf("scan species: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
