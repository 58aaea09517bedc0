package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpeciesStore implements galaxy.SpeciesStore using GORM.
type SpeciesStore struct {
	database.Repository[galaxy.Species, SpeciesModel]
}

// NewSpeciesStore creates a new SpeciesStore.
func NewSpeciesStore(db database.Database) SpeciesStore {
	return SpeciesStore{
		Repository: database.NewRepository[galaxy.Species, SpeciesModel](db, SpeciesMapper{}, "species"),
	}
}

// Graph loads a species with its members.
func (s SpeciesStore) Graph(ctx context.Context, id int64) (galaxy.Species, error) {
	var model SpeciesModel
	result := s.DB(ctx).Preload("Members").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return galaxy.Species{}, fmt.Errorf("%w: species %d", database.ErrNotFound, id)
		}
		return galaxy.Species{}, fmt.Errorf("load species graph: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Exists checks whether a species row with the given id is present.
func (s SpeciesStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repository.Exists(ctx, galaxy.WithID(id))
}

// Create inserts the species if no row with the same id exists, reporting
// whether the insert happened.
func (s SpeciesStore) Create(ctx context.Context, species galaxy.Species) (bool, error) {
	model := s.Mapper().ToModel(species)
	result := s.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create species: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddMember idempotently links a species to a character.
func (s SpeciesStore) AddMember(ctx context.Context, speciesID, characterID int64) error {
	link := CharacterSpeciesModel{CharacterID: characterID, SpeciesID: speciesID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate species %d with character %d: %w", speciesID, characterID, result.Error)
	}
	return nil
}
