package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/feywood/tomekeeper/internal/storage"
)

func TestSetCharacterAttributeInsertsThenUpdates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	first, err := store.SetCharacterAttribute(context.Background(), character.ID, "Agility", 12)
	if err != nil {
		t.Fatalf("set attribute: %v", err)
	}
	if first.Value != 12 {
		t.Fatalf("value = %d, want 12", first.Value)
	}

	second, err := store.SetCharacterAttribute(context.Background(), character.ID, "Agility", 15)
	if err != nil {
		t.Fatalf("set attribute again: %v", err)
	}
	if second.Value != 15 {
		t.Fatalf("value = %d, want 15", second.Value)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on upsert: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v -> %v", first.UpdatedAt, second.UpdatedAt)
	}

	records, err := store.ListCharacterAttributes(context.Background(), character.ID)
	if err != nil {
		t.Fatalf("list attributes: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1 row after upsert", len(records))
	}
}

func TestSetCharacterAttributeValueRange(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	for _, value := range []int64{0, 31} {
		_, err := store.SetCharacterAttribute(context.Background(), character.ID, "Agility", value)
		if !errors.Is(err, storage.ErrValueRange) {
			t.Fatalf("value %d error = %v, want %v", value, err, storage.ErrValueRange)
		}
	}
}

func TestSetCharacterAttributeRequiresKnownAttribute(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	_, err := store.SetCharacterAttribute(context.Background(), character.ID, "Luck", 10)
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("unknown attribute error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestSetCharacterAttributeRequiresCharacter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")

	_, err := store.SetCharacterAttribute(context.Background(), 99, "Agility", 10)
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("unknown character error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestListCharacterAttributesOrdersByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")
	for _, name := range []string{"Might", "Agility", "Wits"} {
		seedAttributeName(t, store, name)
		if _, err := store.SetCharacterAttribute(context.Background(), character.ID, name, 10); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	records, err := store.ListCharacterAttributes(context.Background(), character.ID)
	if err != nil {
		t.Fatalf("list attributes: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i, want := range []string{"Agility", "Might", "Wits"} {
		if records[i].Attribute != want {
			t.Fatalf("records[%d].Attribute = %q, want %q", i, records[i].Attribute, want)
		}
	}
}

func TestGetCharacterAttributeMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	_, err := store.GetCharacterAttribute(context.Background(), character.ID, "Agility")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteCharacterAttribute(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")
	if _, err := store.SetCharacterAttribute(context.Background(), character.ID, "Agility", 12); err != nil {
		t.Fatalf("set attribute: %v", err)
	}

	if err := store.DeleteCharacterAttribute(context.Background(), character.ID, "Agility"); err != nil {
		t.Fatalf("delete attribute: %v", err)
	}
	if err := store.DeleteCharacterAttribute(context.Background(), character.ID, "Agility"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestSetCharacterSkillInsertsThenUpdates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	first, err := store.SetCharacterSkill(context.Background(), character.ID, "Stealth", 1)
	if err != nil {
		t.Fatalf("set skill: %v", err)
	}
	if first.Level != 1 {
		t.Fatalf("level = %d, want 1", first.Level)
	}

	second, err := store.SetCharacterSkill(context.Background(), character.ID, "Stealth", 3)
	if err != nil {
		t.Fatalf("set skill again: %v", err)
	}
	if second.Level != 3 {
		t.Fatalf("level = %d, want 3", second.Level)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on upsert: %v -> %v", first.CreatedAt, second.CreatedAt)
	}

	records, err := store.ListCharacterSkills(context.Background(), character.ID)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1 row after upsert", len(records))
	}
}

func TestSetCharacterSkillAllowsZeroLevel(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	record, err := store.SetCharacterSkill(context.Background(), character.ID, "Stealth", 0)
	if err != nil {
		t.Fatalf("set skill: %v", err)
	}
	if record.Level != 0 {
		t.Fatalf("level = %d, want 0", record.Level)
	}

	_, err = store.SetCharacterSkill(context.Background(), character.ID, "Stealth", -1)
	if !errors.Is(err, storage.ErrValueRange) {
		t.Fatalf("negative level error = %v, want %v", err, storage.ErrValueRange)
	}
}

func TestSetCharacterSkillRequiresKnownSkill(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")

	_, err := store.SetCharacterSkill(context.Background(), character.ID, "Juggling", 1)
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("unknown skill error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestListCharacterSkillsOrdersByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")
	for _, name := range []string{"Stealth", "Acrobatics", "Tracking"} {
		seedSkill(t, store, name, "Agility")
		if _, err := store.SetCharacterSkill(context.Background(), character.ID, name, 1); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	records, err := store.ListCharacterSkills(context.Background(), character.ID)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	for i, want := range []string{"Acrobatics", "Stealth", "Tracking"} {
		if records[i].Skill != want {
			t.Fatalf("records[%d].Skill = %q, want %q", i, records[i].Skill, want)
		}
	}
}

func TestDeleteCharacterSkill(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")
	if _, err := store.SetCharacterSkill(context.Background(), character.ID, "Stealth", 2); err != nil {
		t.Fatalf("set skill: %v", err)
	}

	if err := store.DeleteCharacterSkill(context.Background(), character.ID, "Stealth"); err != nil {
		t.Fatalf("delete skill: %v", err)
	}
	if _, err := store.GetCharacterSkill(context.Background(), character.ID, "Stealth"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get after delete error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteSkillInUseIsRejected(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Human")
	seedClass(t, store, "Ranger")
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")
	character := seedCharacter(t, store, "Mira", "Human", "Ranger")
	if _, err := store.SetCharacterSkill(context.Background(), character.ID, "Stealth", 2); err != nil {
		t.Fatalf("set skill: %v", err)
	}

	if err := store.DeleteSkill(context.Background(), "Stealth"); !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("delete in-use skill error = %v, want %v", err, storage.ErrReferenced)
	}

	if err := store.DeleteCharacterSkill(context.Background(), character.ID, "Stealth"); err != nil {
		t.Fatalf("delete character skill: %v", err)
	}
	if err := store.DeleteSkill(context.Background(), "Stealth"); err != nil {
		t.Fatalf("delete skill after unlinking: %v", err)
	}
}
