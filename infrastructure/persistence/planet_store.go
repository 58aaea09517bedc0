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

// PlanetStore implements galaxy.PlanetStore using GORM.
type PlanetStore struct {
	database.Repository[galaxy.Planet, PlanetModel]
}

// NewPlanetStore creates a new PlanetStore.
func NewPlanetStore(db database.Database) PlanetStore {
	return PlanetStore{
		Repository: database.NewRepository[galaxy.Planet, PlanetModel](db, PlanetMapper{}, "planet"),
	}
}

// Graph loads a planet with its residents and films.
func (s PlanetStore) Graph(ctx context.Context, id int64) (galaxy.Planet, error) {
	var model PlanetModel
	result := s.DB(ctx).
		Preload("Residents").
		Preload("Films").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return galaxy.Planet{}, fmt.Errorf("%w: planet %d", database.ErrNotFound, id)
		}
		return galaxy.Planet{}, fmt.Errorf("load planet graph: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Get loads the bare planet row without relations.
func (s PlanetStore) Get(ctx context.Context, id int64) (galaxy.Planet, error) {
	return s.FindOne(ctx, galaxy.WithID(id))
}

// Exists checks whether a planet row with the given id is present.
func (s PlanetStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repository.Exists(ctx, galaxy.WithID(id))
}

// Create inserts the planet if no row with the same id exists, reporting
// whether the insert happened.
func (s PlanetStore) Create(ctx context.Context, planet galaxy.Planet) (bool, error) {
	model := s.Mapper().ToModel(planet)
	result := s.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create planet: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
