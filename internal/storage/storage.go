// Package storage defines the persistence contracts for Tomekeeper records.
package storage

import (
	"context"
	"time"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such entity"
// states and storage failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrAlreadyExists indicates an insert collided with an existing key.
var ErrAlreadyExists = apperrors.New(apperrors.CodeAlreadyExists, "record already exists")

// ErrReferenced indicates an operation violated a reference between tables:
// deleting a record other rows still point at, or writing a row that points
// at a record that does not exist.
var ErrReferenced = apperrors.New(apperrors.CodeReferenced, "operation violates a reference constraint")

// ErrValueRange indicates a write violated a CHECK constraint on a column.
var ErrValueRange = apperrors.New(apperrors.CodeValueRange, "value outside the allowed range")

// AttributeName is a named character attribute such as Strength or Wits.
type AttributeName struct {
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Species is a playable species entry.
type Species struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Class is a playable class entry.
type Class struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Skill is a learnable skill tied to one attribute.
type Skill struct {
	Name        string    `json:"name"`
	Attribute   string    `json:"attribute"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Item is a catalog entry for equipment and loot. Items carry a surrogate
// id because names may repeat.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Weight      float64   `json:"weight"`
	Cost        int64     `json:"cost"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Character is a player or non-player character sheet header.
type Character struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Player     string    `json:"player"`
	Species    string    `json:"species"`
	Class      string    `json:"class"`
	Level      int64     `json:"level"`
	Experience int64     `json:"experience"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CharacterAttribute is one attribute score on a character.
type CharacterAttribute struct {
	CharacterID int64     `json:"character_id"`
	Attribute   string    `json:"attribute"`
	Value       int64     `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CharacterSkill is one skill rating on a character.
type CharacterSkill struct {
	CharacterID int64     `json:"character_id"`
	Skill       string    `json:"skill"`
	Level       int64     `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overview contains aggregate counters used by the index page and API.
type Overview struct {
	AttributeNameCount int64 `json:"attribute_name_count"`
	SpeciesCount       int64 `json:"species_count"`
	ClassCount         int64 `json:"class_count"`
	SkillCount         int64 `json:"skill_count"`
	ItemCount          int64 `json:"item_count"`
	CharacterCount     int64 `json:"character_count"`
}

// AttributeNameStore owns the attribute_names table.
type AttributeNameStore interface {
	CreateAttributeName(ctx context.Context, record AttributeName) (AttributeName, error)
	GetAttributeName(ctx context.Context, name string) (AttributeName, error)
	// ListAttributeNames returns all attribute names ordered by name.
	ListAttributeNames(ctx context.Context) ([]AttributeName, error)
	// UpdateAttributeName applies the named fields and returns the updated record.
	UpdateAttributeName(ctx context.Context, name string, fields map[string]any) (AttributeName, error)
	DeleteAttributeName(ctx context.Context, name string) error
}

// SpeciesStore owns the species table.
type SpeciesStore interface {
	CreateSpecies(ctx context.Context, record Species) (Species, error)
	GetSpecies(ctx context.Context, name string) (Species, error)
	ListSpecies(ctx context.Context) ([]Species, error)
	UpdateSpecies(ctx context.Context, name string, fields map[string]any) (Species, error)
	DeleteSpecies(ctx context.Context, name string) error
}

// ClassStore owns the classes table.
type ClassStore interface {
	CreateClass(ctx context.Context, record Class) (Class, error)
	GetClass(ctx context.Context, name string) (Class, error)
	ListClasses(ctx context.Context) ([]Class, error)
	UpdateClass(ctx context.Context, name string, fields map[string]any) (Class, error)
	DeleteClass(ctx context.Context, name string) error
}

// SkillStore owns the skills table.
type SkillStore interface {
	CreateSkill(ctx context.Context, record Skill) (Skill, error)
	GetSkill(ctx context.Context, name string) (Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	UpdateSkill(ctx context.Context, name string, fields map[string]any) (Skill, error)
	DeleteSkill(ctx context.Context, name string) error
}

// ItemStore owns the items table.
type ItemStore interface {
	// CreateItem inserts the record and returns it with the generated id.
	CreateItem(ctx context.Context, record Item) (Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	// ListItems returns all items ordered by name, then id.
	ListItems(ctx context.Context) ([]Item, error)
	UpdateItem(ctx context.Context, id int64, fields map[string]any) (Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// CharacterStore owns the characters table.
type CharacterStore interface {
	// CreateCharacter inserts the record and returns it with the generated id.
	CreateCharacter(ctx context.Context, record Character) (Character, error)
	GetCharacter(ctx context.Context, id int64) (Character, error)
	// ListCharacters returns all characters ordered by name, then id.
	ListCharacters(ctx context.Context) ([]Character, error)
	UpdateCharacter(ctx context.Context, id int64, fields map[string]any) (Character, error)
	// DeleteCharacter removes the character and cascades to its attribute
	// and skill rows.
	DeleteCharacter(ctx context.Context, id int64) error
}

// CharacterAttributeStore owns the character_attributes join table.
type CharacterAttributeStore interface {
	// SetCharacterAttribute inserts or updates the score for the
	// (character, attribute) pair and returns the stored row.
	SetCharacterAttribute(ctx context.Context, characterID int64, attribute string, value int64) (CharacterAttribute, error)
	GetCharacterAttribute(ctx context.Context, characterID int64, attribute string) (CharacterAttribute, error)
	// ListCharacterAttributes returns the character's scores ordered by attribute.
	ListCharacterAttributes(ctx context.Context, characterID int64) ([]CharacterAttribute, error)
	DeleteCharacterAttribute(ctx context.Context, characterID int64, attribute string) error
}

// CharacterSkillStore owns the character_skills join table.
type CharacterSkillStore interface {
	// SetCharacterSkill inserts or updates the rating for the
	// (character, skill) pair and returns the stored row.
	SetCharacterSkill(ctx context.Context, characterID int64, skill string, level int64) (CharacterSkill, error)
	GetCharacterSkill(ctx context.Context, characterID int64, skill string) (CharacterSkill, error)
	// ListCharacterSkills returns the character's ratings ordered by skill.
	ListCharacterSkills(ctx context.Context, characterID int64) ([]CharacterSkill, error)
	DeleteCharacterSkill(ctx context.Context, characterID int64, skill string) error
}

// OverviewStore exposes aggregate reads for the index page and API.
type OverviewStore interface {
	GetOverview(ctx context.Context) (Overview, error)
	// RecentCharacters returns the most recently updated characters as
	// column-keyed maps (id, name, species, class, level, updated_at).
	RecentCharacters(ctx context.Context, limit int) ([]map[string]any, error)
}

// Store aggregates every Tomekeeper persistence contract.
type Store interface {
	AttributeNameStore
	SpeciesStore
	ClassStore
	SkillStore
	ItemStore
	CharacterStore
	CharacterAttributeStore
	CharacterSkillStore
	OverviewStore

	// Ping verifies the underlying database handle is reachable.
	Ping(ctx context.Context) error
	Close() error
}
