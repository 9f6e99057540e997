package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/feywood/tomekeeper/internal/storage"
)

type applyCounts struct {
	inserted int
	skipped  int
}

// apply inserts the pack records, skipping ones already present so the
// seeder stays safe to rerun. Attributes land before skills so the skill
// attribute reference resolves.
func apply(ctx context.Context, store storage.Store, packs contentPacks) (applyCounts, error) {
	var counts applyCounts
	if store == nil {
		return counts, fmt.Errorf("store is required")
	}

	if packs.Attributes != nil {
		if err := seedAttributes(ctx, store, packs.Attributes.Attributes, &counts); err != nil {
			return counts, err
		}
	}
	if packs.Species != nil {
		if err := seedSpecies(ctx, store, packs.Species.Species, &counts); err != nil {
			return counts, err
		}
	}
	if packs.Classes != nil {
		if err := seedClasses(ctx, store, packs.Classes.Classes, &counts); err != nil {
			return counts, err
		}
	}
	if packs.Skills != nil {
		if err := seedSkills(ctx, store, packs.Skills.Skills, &counts); err != nil {
			return counts, err
		}
	}

	return counts, nil
}

func seedAttributes(ctx context.Context, store storage.Store, records []attributeRecord, counts *applyCounts) error {
	for _, record := range records {
		_, err := store.CreateAttributeName(ctx, storage.AttributeName{
			Name:         record.Name,
			Abbreviation: record.Abbreviation,
			Description:  record.Description,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			counts.skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed attribute %s: %w", record.Name, err)
		}
		counts.inserted++
	}
	return nil
}

func seedSpecies(ctx context.Context, store storage.Store, records []speciesRecord, counts *applyCounts) error {
	for _, record := range records {
		_, err := store.CreateSpecies(ctx, storage.Species{
			Name:        record.Name,
			Description: record.Description,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			counts.skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed species %s: %w", record.Name, err)
		}
		counts.inserted++
	}
	return nil
}

func seedClasses(ctx context.Context, store storage.Store, records []classRecord, counts *applyCounts) error {
	for _, record := range records {
		_, err := store.CreateClass(ctx, storage.Class{
			Name:        record.Name,
			Description: record.Description,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			counts.skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed class %s: %w", record.Name, err)
		}
		counts.inserted++
	}
	return nil
}

func seedSkills(ctx context.Context, store storage.Store, records []skillRecord, counts *applyCounts) error {
	for _, record := range records {
		_, err := store.CreateSkill(ctx, storage.Skill{
			Name:        record.Name,
			Attribute:   record.Attribute,
			Description: record.Description,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			counts.skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed skill %s: %w", record.Name, err)
		}
		counts.inserted++
	}
	return nil
}
