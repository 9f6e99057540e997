package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/feywood/tomekeeper/internal/storage"
)

// SetCharacterAttribute inserts or updates the score for the
// (character, attribute) pair and returns the stored row. The row's
// created_at is preserved across upserts. Scores outside the CHECK range
// surface ErrValueRange; a missing character or attribute surfaces
// ErrReferenced.
func (s *Store) SetCharacterAttribute(ctx context.Context, characterID int64, attribute string, value int64) (storage.CharacterAttribute, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterAttribute{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterAttribute{}, fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return storage.CharacterAttribute{}, fmt.Errorf("character id must be greater than zero")
	}
	attribute = strings.TrimSpace(attribute)
	if attribute == "" {
		return storage.CharacterAttribute{}, fmt.Errorf("attribute is required")
	}

	now := toMillis(time.Now().UTC())
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO character_attributes (character_id, attribute, value, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(character_id, attribute) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at`,
		characterID,
		attribute,
		value,
		now,
		now,
	)
	if err != nil {
		return storage.CharacterAttribute{}, writeError("set character attribute", err)
	}
	return s.GetCharacterAttribute(ctx, characterID, attribute)
}

// GetCharacterAttribute retrieves one attribute score by its composite key.
func (s *Store) GetCharacterAttribute(ctx context.Context, characterID int64, attribute string) (storage.CharacterAttribute, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterAttribute{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterAttribute{}, fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return storage.CharacterAttribute{}, fmt.Errorf("character id must be greater than zero")
	}
	attribute = strings.TrimSpace(attribute)
	if attribute == "" {
		return storage.CharacterAttribute{}, fmt.Errorf("attribute is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT character_id, attribute, value, created_at, updated_at
FROM character_attributes
WHERE character_id = ? AND attribute = ?`, characterID, attribute)

	var record storage.CharacterAttribute
	var createdAt, updatedAt int64
	if err := row.Scan(&record.CharacterID, &record.Attribute, &record.Value, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CharacterAttribute{}, storage.ErrNotFound
		}
		return storage.CharacterAttribute{}, fmt.Errorf("scan character attribute: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// ListCharacterAttributes returns the character's scores ordered by attribute.
func (s *Store) ListCharacterAttributes(ctx context.Context, characterID int64) ([]storage.CharacterAttribute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return nil, fmt.Errorf("character id must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT character_id, attribute, value, created_at, updated_at
FROM character_attributes
WHERE character_id = ?
ORDER BY attribute`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list character attributes: %w", err)
	}
	defer rows.Close()

	var result []storage.CharacterAttribute
	for rows.Next() {
		var record storage.CharacterAttribute
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.CharacterID, &record.Attribute, &record.Value, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan character attribute: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate character attributes: %w", err)
	}
	return result, nil
}

// DeleteCharacterAttribute removes one attribute score by its composite key.
func (s *Store) DeleteCharacterAttribute(ctx context.Context, characterID int64, attribute string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return fmt.Errorf("character id must be greater than zero")
	}
	attribute = strings.TrimSpace(attribute)
	if attribute == "" {
		return fmt.Errorf("attribute is required")
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM character_attributes WHERE character_id = ? AND attribute = ?`,
		characterID, attribute,
	)
	if err != nil {
		return writeError("delete character attribute", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete character attribute: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
