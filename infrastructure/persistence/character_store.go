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

// CharacterStore implements galaxy.CharacterStore using GORM.
type CharacterStore struct {
	database.Repository[galaxy.Character, CharacterModel]
}

// NewCharacterStore creates a new CharacterStore.
func NewCharacterStore(db database.Database) CharacterStore {
	return CharacterStore{
		Repository: database.NewRepository[galaxy.Character, CharacterModel](db, CharacterMapper{}, "character"),
	}
}

// Graph loads a character with homeworld, films, vehicles, and species.
func (s CharacterStore) Graph(ctx context.Context, id int64) (galaxy.Character, error) {
	var model CharacterModel
	result := s.DB(ctx).
		Preload("Planet").
		Preload("Films").
		Preload("Vehicles").
		Preload("Species").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return galaxy.Character{}, fmt.Errorf("%w: character %d", database.ErrNotFound, id)
		}
		return galaxy.Character{}, fmt.Errorf("load character graph: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Exists checks whether a character row with the given id is present.
func (s CharacterStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repository.Exists(ctx, galaxy.WithID(id))
}

// Create inserts the character if no row with the same id exists, reporting
// whether the insert happened. Existing rows are never touched.
func (s CharacterStore) Create(ctx context.Context, character galaxy.Character) (bool, error) {
	model := s.Mapper().ToModel(character)
	result := s.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create character: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddFilm idempotently links a character to a film.
func (s CharacterStore) AddFilm(ctx context.Context, characterID, filmID int64) error {
	link := CharacterFilmModel{CharacterID: characterID, FilmID: filmID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate character %d with film %d: %w", characterID, filmID, result.Error)
	}
	return nil
}

// AddVehicle idempotently links a character to a vehicle.
func (s CharacterStore) AddVehicle(ctx context.Context, characterID, vehicleID int64) error {
	link := CharacterVehicleModel{CharacterID: characterID, VehicleID: vehicleID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate character %d with vehicle %d: %w", characterID, vehicleID, result.Error)
	}
	return nil
}

// AddSpecies idempotently links a character to a species.
func (s CharacterStore) AddSpecies(ctx context.Context, characterID, speciesID int64) error {
	link := CharacterSpeciesModel{CharacterID: characterID, SpeciesID: speciesID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate character %d with species %d: %w", characterID, speciesID, result.Error)
	}
	return nil
}
