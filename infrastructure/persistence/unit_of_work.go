package persistence

import (
	"context"

	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/internal/database"
	"gorm.io/gorm"
)

// NewStores builds a galaxy store bundle bound to the given database or
// transaction session.
func NewStores(db database.Database) galaxy.Stores {
	return galaxy.Stores{
		Characters: NewCharacterStore(db),
		Planets:    NewPlanetStore(db),
		Films:      NewFilmStore(db),
		Vehicles:   NewVehicleStore(db),
		Species:    NewSpeciesStore(db),
	}
}

// UnitOfWork implements galaxy.Transactor. Every store handed to fn shares
// one transaction, so a hydration request's multi-table writes commit or
// roll back as a single unit.
type UnitOfWork struct {
	db database.Database
}

// NewUnitOfWork creates a UnitOfWork over db.
func NewUnitOfWork(db database.Database) UnitOfWork {
	return UnitOfWork{db: db}
}

// InTransaction runs fn against transaction-bound stores.
func (u UnitOfWork) InTransaction(ctx context.Context, fn func(galaxy.Stores) error) error {
	return database.WithTransaction(ctx, u.db, func(tx *gorm.DB) error {
		return fn(NewStores(database.FromSession(tx)))
	})
}
