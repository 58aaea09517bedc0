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

// VehicleStore implements galaxy.VehicleStore using GORM.
type VehicleStore struct {
	database.Repository[galaxy.Vehicle, VehicleModel]
}

// NewVehicleStore creates a new VehicleStore.
func NewVehicleStore(db database.Database) VehicleStore {
	return VehicleStore{
		Repository: database.NewRepository[galaxy.Vehicle, VehicleModel](db, VehicleMapper{}, "vehicle"),
	}
}

// Graph loads a vehicle with its pilots.
func (s VehicleStore) Graph(ctx context.Context, id int64) (galaxy.Vehicle, error) {
	var model VehicleModel
	result := s.DB(ctx).Preload("Pilots").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return galaxy.Vehicle{}, fmt.Errorf("%w: vehicle %d", database.ErrNotFound, id)
		}
		return galaxy.Vehicle{}, fmt.Errorf("load vehicle graph: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Exists checks whether a vehicle row with the given id is present.
func (s VehicleStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repository.Exists(ctx, galaxy.WithID(id))
}

// Create inserts the vehicle if no row with the same id exists, reporting
// whether the insert happened.
func (s VehicleStore) Create(ctx context.Context, vehicle galaxy.Vehicle) (bool, error) {
	model := s.Mapper().ToModel(vehicle)
	result := s.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create vehicle: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddPilot idempotently links a vehicle to a character.
func (s VehicleStore) AddPilot(ctx context.Context, vehicleID, characterID int64) error {
	link := CharacterVehicleModel{CharacterID: characterID, VehicleID: vehicleID}
	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("associate vehicle %d with character %d: %w", vehicleID, characterID, result.Error)
	}
	return nil
}
