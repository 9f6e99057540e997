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

var itemUpdatable = []string{"name", "kind", "weight", "cost", "description", "updated_at"}

// CreateItem inserts one item record and returns it with the generated id.
func (s *Store) CreateItem(ctx context.Context, record storage.Item) (storage.Item, error) {
	if err := ctx.Err(); err != nil {
		return storage.Item{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Item{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.Item{}, fmt.Errorf("name is required")
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

	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO items (name, kind, weight, cost, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name,
		strings.TrimSpace(record.Kind),
		record.Weight,
		record.Cost,
		strings.TrimSpace(record.Description),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.Item{}, writeError("create item", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storage.Item{}, fmt.Errorf("create item: %w", err)
	}

	record.ID = id
	record.Name = name
	record.Kind = strings.TrimSpace(record.Kind)
	record.Description = strings.TrimSpace(record.Description)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetItem retrieves one item by id.
func (s *Store) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	if err := ctx.Err(); err != nil {
		return storage.Item{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Item{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Item{}, fmt.Errorf("id must be greater than zero")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, kind, weight, cost, description, created_at, updated_at
FROM items
WHERE id = ?`, id)
	return scanItem(row)
}

// ListItems returns all items ordered by name, then id.
func (s *Store) ListItems(ctx context.Context) ([]storage.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, kind, weight, cost, description, created_at, updated_at
FROM items
ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var result []storage.Item
	for rows.Next() {
		var record storage.Item
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Kind,
			&record.Weight,
			&record.Cost,
			&record.Description,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return result, nil
}

// UpdateItem applies the named fields and returns the updated record.
func (s *Store) UpdateItem(ctx context.Context, id int64, fields map[string]any) (storage.Item, error) {
	if err := ctx.Err(); err != nil {
		return storage.Item{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Item{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Item{}, fmt.Errorf("id must be greater than zero")
	}

	query, args, err := sqlbuild.Update{
		Table:   "items",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: itemUpdatable,
		Where:   []sqlbuild.Cond{{Column: "id", Value: id}},
	}.SQL()
	if err != nil {
		return storage.Item{}, fmt.Errorf("update item: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Item{}, writeError("update item", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.Item{}, fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return storage.Item{}, storage.ErrNotFound
	}
	return s.GetItem(ctx, id)
}

// DeleteItem removes one item by id.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("id must be greater than zero")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return writeError("delete item", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanItem(row *sql.Row) (storage.Item, error) {
	var record storage.Item
	var createdAt, updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Kind,
		&record.Weight,
		&record.Cost,
		&record.Description,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Item{}, storage.ErrNotFound
		}
		return storage.Item{}, fmt.Errorf("scan item: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
