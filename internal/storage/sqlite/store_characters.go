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

var characterUpdatable = []string{"name", "player", "species", "class", "level", "experience", "notes", "updated_at"}

// CreateCharacter inserts one character record and returns it with the
// generated id. Species and class must already exist; missing references
// surface ErrReferenced.
func (s *Store) CreateCharacter(ctx context.Context, record storage.Character) (storage.Character, error) {
	if err := ctx.Err(); err != nil {
		return storage.Character{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Character{}, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return storage.Character{}, fmt.Errorf("name is required")
	}
	species := strings.TrimSpace(record.Species)
	if species == "" {
		return storage.Character{}, fmt.Errorf("species is required")
	}
	class := strings.TrimSpace(record.Class)
	if class == "" {
		return storage.Character{}, fmt.Errorf("class is required")
	}
	level := record.Level
	if level == 0 {
		level = 1
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
INSERT INTO characters (name, player, species, class, level, experience, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		strings.TrimSpace(record.Player),
		species,
		class,
		level,
		record.Experience,
		strings.TrimSpace(record.Notes),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return storage.Character{}, writeError("create character", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storage.Character{}, fmt.Errorf("create character: %w", err)
	}

	record.ID = id
	record.Name = name
	record.Player = strings.TrimSpace(record.Player)
	record.Species = species
	record.Class = class
	record.Level = level
	record.Notes = strings.TrimSpace(record.Notes)
	record.CreatedAt = createdAt.UTC()
	record.UpdatedAt = updatedAt.UTC()
	return record, nil
}

// GetCharacter retrieves one character by id.
func (s *Store) GetCharacter(ctx context.Context, id int64) (storage.Character, error) {
	if err := ctx.Err(); err != nil {
		return storage.Character{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Character{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Character{}, fmt.Errorf("id must be greater than zero")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, player, species, class, level, experience, notes, created_at, updated_at
FROM characters
WHERE id = ?`, id)
	return scanCharacter(row)
}

// ListCharacters returns all characters ordered by name, then id.
func (s *Store) ListCharacters(ctx context.Context) ([]storage.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, player, species, class, level, experience, notes, created_at, updated_at
FROM characters
ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var result []storage.Character
	for rows.Next() {
		var record storage.Character
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Player,
			&record.Species,
			&record.Class,
			&record.Level,
			&record.Experience,
			&record.Notes,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return result, nil
}

// UpdateCharacter applies the named fields and returns the updated record.
// Level and experience writes outside their CHECK ranges surface
// ErrValueRange; repointing species or class at a missing record surfaces
// ErrReferenced.
func (s *Store) UpdateCharacter(ctx context.Context, id int64, fields map[string]any) (storage.Character, error) {
	if err := ctx.Err(); err != nil {
		return storage.Character{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Character{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Character{}, fmt.Errorf("id must be greater than zero")
	}

	query, args, err := sqlbuild.Update{
		Table:   "characters",
		Set:     withUpdatedAt(fields, time.Now().UTC()),
		Allowed: characterUpdatable,
		Where:   []sqlbuild.Cond{{Column: "id", Value: id}},
	}.SQL()
	if err != nil {
		return storage.Character{}, fmt.Errorf("update character: %w", err)
	}

	res, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Character{}, writeError("update character", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storage.Character{}, fmt.Errorf("update character: %w", err)
	}
	if affected == 0 {
		return storage.Character{}, storage.ErrNotFound
	}
	return s.GetCharacter(ctx, id)
}

// DeleteCharacter removes one character by id. Attribute and skill rows
// for the character are removed by the schema's ON DELETE CASCADE.
func (s *Store) DeleteCharacter(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("id must be greater than zero")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return writeError("delete character", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanCharacter(row *sql.Row) (storage.Character, error) {
	var record storage.Character
	var createdAt, updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Player,
		&record.Species,
		&record.Class,
		&record.Level,
		&record.Experience,
		&record.Notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Character{}, storage.ErrNotFound
		}
		return storage.Character{}, fmt.Errorf("scan character: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
