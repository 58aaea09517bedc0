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

// FilmStore implements galaxy.FilmStore using GORM.
type FilmStore struct {
	database.Repository[galaxy.Film, FilmModel]
}

// NewFilmStore creates a new FilmStore.
func NewFilmStore(db database.Database) FilmStore {
	return FilmStore{
		Repository: database.NewRepository[galaxy.Film, FilmModel](db, FilmMapper{}, "film"),
	}
}

// Graph loads a film with its characters and planets.
func (s FilmStore) Graph(ctx context.Context, id int64) (galaxy.Film, error) {
	var model FilmModel
	result := s.DB(ctx).
		Preload("Characters").
		Preload("Planets").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return galaxy.Film{}, fmt.Errorf("%w: film %d", database.ErrNotFound, id)
		}
		return galaxy.Film{}, fmt.Errorf("load film graph: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Exists checks whether a film row with the given id is present.
func (s FilmStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repository.Exists(ctx, galaxy.WithID(id))
}

// Create inserts the film if no row with the same id exists, reporting
// whether the insert happened.
func (s FilmStore) Create(ctx context.Context, film galaxy.Film) (bool, error) {
	model := s.Mapper().ToModel(film)
	result := s.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create film: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddCharacter idempotently links a film to a character.
func (s FilmStore) AddCharacter(ctx context.Context, filmID, characterID int64) error {
	link := CharacterFilmModel{CharacterID: characterID, FilmID: filmID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate film %d with character %d: %w", filmID, characterID, result.Error)
	}
	return nil
}

// AddPlanet idempotently links a film to a planet.
func (s FilmStore) AddPlanet(ctx context.Context, filmID, planetID int64) error {
	link := FilmPlanetModel{FilmID: filmID, PlanetID: planetID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate film %d with planet %d: %w", filmID, planetID, result.Error)
	}
	return nil
}
