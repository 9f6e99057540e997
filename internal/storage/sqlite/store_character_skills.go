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

// SetCharacterSkill inserts or updates the rating for the (character,
// skill) pair and returns the stored row. The row's created_at is
// preserved across upserts. Negative levels surface ErrValueRange; a
// missing character or skill surfaces ErrReferenced.
func (s *Store) SetCharacterSkill(ctx context.Context, characterID int64, skill string, level int64) (storage.CharacterSkill, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterSkill{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterSkill{}, fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return storage.CharacterSkill{}, fmt.Errorf("character id must be greater than zero")
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return storage.CharacterSkill{}, fmt.Errorf("skill is required")
	}

	now := toMillis(time.Now().UTC())
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO character_skills (character_id, skill, level, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(character_id, skill) DO UPDATE SET
    level = excluded.level,
    updated_at = excluded.updated_at`,
		characterID,
		skill,
		level,
		now,
		now,
	)
	if err != nil {
		return storage.CharacterSkill{}, writeError("set character skill", err)
	}
	return s.GetCharacterSkill(ctx, characterID, skill)
}

// GetCharacterSkill retrieves one skill rating by its composite key.
func (s *Store) GetCharacterSkill(ctx context.Context, characterID int64, skill string) (storage.CharacterSkill, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterSkill{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterSkill{}, fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return storage.CharacterSkill{}, fmt.Errorf("character id must be greater than zero")
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return storage.CharacterSkill{}, fmt.Errorf("skill is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT character_id, skill, level, created_at, updated_at
FROM character_skills
WHERE character_id = ? AND skill = ?`, characterID, skill)

	var record storage.CharacterSkill
	var createdAt, updatedAt int64
	if err := row.Scan(&record.CharacterID, &record.Skill, &record.Level, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CharacterSkill{}, storage.ErrNotFound
		}
		return storage.CharacterSkill{}, fmt.Errorf("scan character skill: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// ListCharacterSkills returns the character's ratings ordered by skill.
func (s *Store) ListCharacterSkills(ctx context.Context, characterID int64) ([]storage.CharacterSkill, error) {
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
SELECT character_id, skill, level, created_at, updated_at
FROM character_skills
WHERE character_id = ?
ORDER BY skill`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list character skills: %w", err)
	}
	defer rows.Close()

	var result []storage.CharacterSkill
	for rows.Next() {
		var record storage.CharacterSkill
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.CharacterID, &record.Skill, &record.Level, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan character skill: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate character skills: %w", err)
	}
	return result, nil
}

// DeleteCharacterSkill removes one skill rating by its composite key.
func (s *Store) DeleteCharacterSkill(ctx context.Context, characterID int64, skill string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if characterID <= 0 {
		return fmt.Errorf("character id must be greater than zero")
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return fmt.Errorf("skill is required")
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM character_skills WHERE character_id = ? AND skill = ?`,
		characterID, skill,
	)
	if err != nil {
		return writeError("delete character skill", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete character skill: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
