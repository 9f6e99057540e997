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

var attributeNameUpdatable = []string{"abbreviation", "description", "updated_at"}

// CreateAttributeName inserts one attribute name record.
func (s *Store) CreateAttributeName(ctx context.Context, record storage.AttributeName) (storage.AttributeName, error) {
	if err := ctx.Err(); err != nil {
		return storage.AttributeName{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AttributeName{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.AttributeName{}, fmt.Errorf("name is required")
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
INSERT INTO attribute_names (name, abbreviation, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		name,
		strings.TrimSpace(record.Abbreviation),
		strings.TrimSpace(record.Description),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.AttributeName{}, writeError("create attribute name", err)
	}

	record.Name = name
	record.Abbreviation = strings.TrimSpace(record.Abbreviation)
	record.Description = strings.TrimSpace(record.Description)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetAttributeName retrieves one attribute name by name.
func (s *Store) GetAttributeName(ctx context.Context, name string) (storage.AttributeName, error) {
	if err := ctx.Err(); err != nil {
		return storage.AttributeName{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AttributeName{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.AttributeName{}, fmt.Errorf("name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, abbreviation, description, created_at, updated_at
FROM attribute_names
WHERE name = ?`, name)
	return scanAttributeName(row)
}

// ListAttributeNames returns all attribute names ordered by name.
func (s *Store) ListAttributeNames(ctx context.Context) ([]storage.AttributeName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, abbreviation, description, created_at, updated_at
FROM attribute_names
ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list attribute names: %w", err)
	}
	defer rows.Close()

	var result []storage.AttributeName
	for rows.Next() {
		var record storage.AttributeName
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.Name, &record.Abbreviation, &record.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan attribute name: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attribute names: %w", err)
	}
	return result, nil
}

// UpdateAttributeName applies the named fields and returns the updated record.
func (s *Store) UpdateAttributeName(ctx context.Context, name string, fields map[string]any) (storage.AttributeName, error) {
	if err := ctx.Err(); err != nil {
		return storage.AttributeName{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AttributeName{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.AttributeName{}, fmt.Errorf("name is required")
	}

	query, args, err := sqlbuild.Update{
		Table:   "attribute_names",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: attributeNameUpdatable,
		Where:   []sqlbuild.Cond{{Column: "name", Value: name}},
	}.SQL()
	if err != nil {
		return storage.AttributeName{}, fmt.Errorf("update attribute name: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.AttributeName{}, writeError("update attribute name", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.AttributeName{}, fmt.Errorf("update attribute name: %w", err)
	}
	if affected == 0 {
		return storage.AttributeName{}, storage.ErrNotFound
	}
	return s.GetAttributeName(ctx, name)
}

// DeleteAttributeName removes one attribute name by name. Attribute names
// still referenced by skills or character scores surface ErrReferenced.
func (s *Store) DeleteAttributeName(ctx context.Context, name string) error {
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

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM attribute_names WHERE name = ?`, name)
	if err != nil {
		return writeError("delete attribute name", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete attribute name: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanAttributeName(row *sql.Row) (storage.AttributeName, error) {
	var record storage.AttributeName
	var createdAt, updatedAt int64
	if err := row.Scan(&record.Name, &record.Abbreviation, &record.Description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.AttributeName{}, storage.ErrNotFound
		}
		return storage.AttributeName{}, fmt.Errorf("scan attribute name: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
