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

var classUpdatable = []string{"description", "updated_at"}

// CreateClass inserts one class record.
func (s *Store) CreateClass(ctx context.Context, record storage.Class) (storage.Class, error) {
	if err := ctx.Err(); err != nil {
		return storage.Class{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Class{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.Class{}, fmt.Errorf("name is required")
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
INSERT INTO classes (name, description, created_at, updated_at)
VALUES (?, ?, ?, ?)`,
		name,
		strings.TrimSpace(record.Description),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.Class{}, writeError("create class", err)
	}

	record.Name = name
	record.Description = strings.TrimSpace(record.Description)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetClass retrieves one class by name.
func (s *Store) GetClass(ctx context.Context, name string) (storage.Class, error) {
	if err := ctx.Err(); err != nil {
		return storage.Class{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Class{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Class{}, fmt.Errorf("name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, description, created_at, updated_at
FROM classes
WHERE name = ?`, name)
	return scanClass(row)
}

// ListClasses returns all classes ordered by name.
func (s *Store) ListClasses(ctx context.Context) ([]storage.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, description, created_at, updated_at
FROM classes
ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var result []storage.Class
	for rows.Next() {
		var record storage.Class
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.Name, &record.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}
	return result, nil
}

// UpdateClass applies the named fields and returns the updated record.
func (s *Store) UpdateClass(ctx context.Context, name string, fields map[string]any) (storage.Class, error) {
	if err := ctx.Err(); err != nil {
		return storage.Class{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Class{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Class{}, fmt.Errorf("name is required")
	}

	query, args, err := sqlbuild.Update{
		Table:   "classes",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: classUpdatable,
		Where:   []sqlbuild.Cond{{Column: "name", Value: name}},
	}.SQL()
	if err != nil {
		return storage.Class{}, fmt.Errorf("update class: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Class{}, writeError("update class", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.Class{}, fmt.Errorf("update class: %w", err)
	}
	if affected == 0 {
		return storage.Class{}, storage.ErrNotFound
	}
	return s.GetClass(ctx, name)
}

// DeleteClass removes one class by name. Classes still referenced by
// characters surface ErrReferenced.
func (s *Store) DeleteClass(ctx context.Context, name string) error {
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

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM classes WHERE name = ?`, name)
	if err != nil {
		return writeError("delete class", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanClass(row *sql.Row) (storage.Class, error) {
	var record storage.Class
	var createdAt, updatedAt int64
	if err := row.Scan(&record.Name, &record.Description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Class{}, storage.ErrNotFound
		}
		return storage.Class{}, fmt.Errorf("scan class: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
