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

var skillUpdatable = []string{"attribute", "description", "updated_at"}

// CreateSkill inserts one skill record. The governing attribute must
// already exist; a missing attribute surfaces ErrReferenced.
func (s *Store) CreateSkill(ctx context.Context, record storage.Skill) (storage.Skill, error) {
	if err := ctx.Err(); err != nil {
		return storage.Skill{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Skill{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.Skill{}, fmt.Errorf("name is required")
	}
	attribute := strings.TrimSpace(record.Attribute)
	if attribute == "" {
		return storage.Skill{}, fmt.Errorf("attribute is required")
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
INSERT INTO skills (name, attribute, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		name,
		attribute,
		strings.TrimSpace(record.Description),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.Skill{}, writeError("create skill", err)
	}

	record.Name = name
	record.Attribute = attribute
	record.Description = strings.TrimSpace(record.Description)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetSkill retrieves one skill by name.
func (s *Store) GetSkill(ctx context.Context, name string) (storage.Skill, error) {
	if err := ctx.Err(); err != nil {
		return storage.Skill{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Skill{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Skill{}, fmt.Errorf("name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, attribute, description, created_at, updated_at
FROM skills
WHERE name = ?`, name)
	return scanSkill(row)
}

// ListSkills returns all skills ordered by name.
func (s *Store) ListSkills(ctx context.Context) ([]storage.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, attribute, description, created_at, updated_at
FROM skills
ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var result []storage.Skill
	for rows.Next() {
		var record storage.Skill
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.Name, &record.Attribute, &record.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return result, nil
}

// UpdateSkill applies the named fields and returns the updated record.
// Repointing the skill at a missing attribute surfaces ErrReferenced.
func (s *Store) UpdateSkill(ctx context.Context, name string, fields map[string]any) (storage.Skill, error) {
	if err := ctx.Err(); err != nil {
		return storage.Skill{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Skill{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Skill{}, fmt.Errorf("name is required")
	}

	query, args, err := sqlbuild.Update{
		Table:   "skills",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: skillUpdatable,
		Where:   []sqlbuild.Cond{{Column: "name", Value: name}},
	}.SQL()
	if err != nil {
		return storage.Skill{}, fmt.Errorf("update skill: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Skill{}, writeError("update skill", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.Skill{}, fmt.Errorf("update skill: %w", err)
	}
	if affected == 0 {
		return storage.Skill{}, storage.ErrNotFound
	}
	return s.GetSkill(ctx, name)
}

// DeleteSkill removes one skill by name. Skills still rated on characters
// surface ErrReferenced.
func (s *Store) DeleteSkill(ctx context.Context, name string) error {
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

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM skills WHERE name = ?`, name)
	if err != nil {
		return writeError("delete skill", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSkill(row *sql.Row) (storage.Skill, error) {
	var record storage.Skill
	var createdAt, updatedAt int64
	if err := row.Scan(&record.Name, &record.Attribute, &record.Description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Skill{}, storage.ErrNotFound
		}
		return storage.Skill{}, fmt.Errorf("scan skill: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
