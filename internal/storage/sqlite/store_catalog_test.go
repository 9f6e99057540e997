package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/feywood/tomekeeper/internal/storage"
)

func TestAttributeNameRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.AttributeName{
		Name:         "Strength",
		Abbreviation: "STR",
		Description:  "Raw physical power",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
	created, err := store.CreateAttributeName(context.Background(), input)
	if err != nil {
		t.Fatalf("create attribute name: %v", err)
	}
	if created.Name != "Strength" {
		t.Fatalf("name = %q, want %q", created.Name, "Strength")
	}

	got, err := store.GetAttributeName(context.Background(), "Strength")
	if err != nil {
		t.Fatalf("get attribute name: %v", err)
	}
	if got.Abbreviation != "STR" {
		t.Fatalf("abbreviation = %q, want %q", got.Abbreviation, "STR")
	}
	if got.Description != input.Description {
		t.Fatalf("description = %q, want %q", got.Description, input.Description)
	}
	if !got.CreatedAt.Equal(fixedTime) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, fixedTime)
	}
}

func TestAttributeNameDuplicateReturnsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Wits")

	_, err := store.CreateAttributeName(context.Background(), storage.AttributeName{Name: "Wits"})
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestAttributeNameGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.GetAttributeName(context.Background(), "Luck")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListAttributeNamesOrdersByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, name := range []string{"Wits", "Agility", "Strength"} {
		seedAttributeName(t, store, name)
	}

	records, err := store.ListAttributeNames(context.Background())
	if err != nil {
		t.Fatalf("list attribute names: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	want := []string{"Agility", "Strength", "Wits"}
	for i, name := range want {
		if records[i].Name != name {
			t.Fatalf("records[%d].Name = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestUpdateAttributeNamePartial(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	created := seedAttributeName(t, store, "Agility")

	updated, err := store.UpdateAttributeName(context.Background(), "Agility", map[string]any{
		"description": "Speed and reflexes",
	})
	if err != nil {
		t.Fatalf("update attribute name: %v", err)
	}
	if updated.Description != "Speed and reflexes" {
		t.Fatalf("description = %q, want %q", updated.Description, "Speed and reflexes")
	}
	if updated.Abbreviation != created.Abbreviation {
		t.Fatalf("abbreviation changed: %q -> %q", created.Abbreviation, updated.Abbreviation)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at moved backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateAttributeNameRejectsUnknownField(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")

	if _, err := store.UpdateAttributeName(context.Background(), "Agility", map[string]any{
		"name": "Dexterity",
	}); err == nil {
		t.Fatal("expected error for key rename attempt")
	}
}

func TestUpdateAttributeNameMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.UpdateAttributeName(context.Background(), "Luck", map[string]any{
		"description": "never persisted",
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("update missing error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteAttributeName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Wits")

	if err := store.DeleteAttributeName(context.Background(), "Wits"); err != nil {
		t.Fatalf("delete attribute name: %v", err)
	}
	if err := store.DeleteAttributeName(context.Background(), "Wits"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteAttributeNameReferencedBySkill(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")

	err := store.DeleteAttributeName(context.Background(), "Agility")
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("delete referenced error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestSpeciesRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.Species{
		Name:        "Dwarf",
		Description: "Stout mountain folk",
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
	if _, err := store.CreateSpecies(context.Background(), input); err != nil {
		t.Fatalf("create species: %v", err)
	}

	got, err := store.GetSpecies(context.Background(), "Dwarf")
	if err != nil {
		t.Fatalf("get species: %v", err)
	}
	if got.Description != input.Description {
		t.Fatalf("description = %q, want %q", got.Description, input.Description)
	}
	if !got.UpdatedAt.Equal(fixedTime) {
		t.Fatalf("updated_at = %v, want %v", got.UpdatedAt, fixedTime)
	}
}

func TestSpeciesDuplicateReturnsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Elf")

	_, err := store.CreateSpecies(context.Background(), storage.Species{Name: "Elf"})
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestListSpeciesOrdersByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, name := range []string{"Human", "Dwarf", "Elf"} {
		seedSpecies(t, store, name)
	}

	records, err := store.ListSpecies(context.Background())
	if err != nil {
		t.Fatalf("list species: %v", err)
	}
	want := []string{"Dwarf", "Elf", "Human"}
	if len(records) != len(want) {
		t.Fatalf("len = %d, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Fatalf("records[%d].Name = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestUpdateSpeciesPartial(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	created := seedSpecies(t, store, "Elf")

	updated, err := store.UpdateSpecies(context.Background(), "Elf", map[string]any{
		"description": "Fey wanderers",
	})
	if err != nil {
		t.Fatalf("update species: %v", err)
	}
	if updated.Description != "Fey wanderers" {
		t.Fatalf("description = %q, want %q", updated.Description, "Fey wanderers")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestDeleteSpeciesReferencedByCharacter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedSpecies(t, store, "Dwarf")
	seedClass(t, store, "Fighter")
	seedCharacter(t, store, "Brunhilde", "Dwarf", "Fighter")

	err := store.DeleteSpecies(context.Background(), "Dwarf")
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("delete referenced error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestClassRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.CreateClass(context.Background(), storage.Class{
		Name:        "Ranger",
		Description: "Wilderness tracker",
	}); err != nil {
		t.Fatalf("create class: %v", err)
	}

	got, err := store.GetClass(context.Background(), "Ranger")
	if err != nil {
		t.Fatalf("get class: %v", err)
	}
	if got.Description != "Wilderness tracker" {
		t.Fatalf("description = %q, want %q", got.Description, "Wilderness tracker")
	}

	updated, err := store.UpdateClass(context.Background(), "Ranger", map[string]any{
		"description": "Hunter of the wilds",
	})
	if err != nil {
		t.Fatalf("update class: %v", err)
	}
	if updated.Description != "Hunter of the wilds" {
		t.Fatalf("description = %q, want %q", updated.Description, "Hunter of the wilds")
	}

	if err := store.DeleteClass(context.Background(), "Ranger"); err != nil {
		t.Fatalf("delete class: %v", err)
	}
	if _, err := store.GetClass(context.Background(), "Ranger"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestClassDuplicateReturnsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedClass(t, store, "Bard")

	_, err := store.CreateClass(context.Background(), storage.Class{Name: "Bard"})
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestSkillRequiresExistingAttribute(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.CreateSkill(context.Background(), storage.Skill{
		Name:      "Stealth",
		Attribute: "Agility",
	})
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("create with missing attribute error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestSkillRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")
	seedAttributeName(t, store, "Wits")

	created := seedSkill(t, store, "Stealth", "Agility")
	if created.Attribute != "Agility" {
		t.Fatalf("attribute = %q, want %q", created.Attribute, "Agility")
	}

	got, err := store.GetSkill(context.Background(), "Stealth")
	if err != nil {
		t.Fatalf("get skill: %v", err)
	}
	if got.Attribute != "Agility" {
		t.Fatalf("attribute = %q, want %q", got.Attribute, "Agility")
	}

	updated, err := store.UpdateSkill(context.Background(), "Stealth", map[string]any{
		"attribute": "Wits",
	})
	if err != nil {
		t.Fatalf("update skill: %v", err)
	}
	if updated.Attribute != "Wits" {
		t.Fatalf("attribute = %q, want %q", updated.Attribute, "Wits")
	}
}

func TestUpdateSkillRejectsMissingAttribute(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")
	seedSkill(t, store, "Stealth", "Agility")

	_, err := store.UpdateSkill(context.Background(), "Stealth", map[string]any{
		"attribute": "Luck",
	})
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("update with missing attribute error = %v, want %v", err, storage.ErrReferenced)
	}
}

func TestListSkillsOrdersByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedAttributeName(t, store, "Agility")
	for _, name := range []string{"Stealth", "Acrobatics", "Climb"} {
		seedSkill(t, store, name, "Agility")
	}

	records, err := store.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	want := []string{"Acrobatics", "Climb", "Stealth"}
	if len(records) != len(want) {
		t.Fatalf("len = %d, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Fatalf("records[%d].Name = %q, want %q", i, records[i].Name, name)
		}
	}
}
