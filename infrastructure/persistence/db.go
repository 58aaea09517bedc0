package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/holocron-dev/holocron/internal/database"
	"gorm.io/gorm"
)

// AutoMigrate runs GORM auto migration for all models. Parents are migrated
// before join tables so foreign keys resolve.
func AutoMigrate(db database.Database) error {
	if err := db.Session(context.Background()).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// allModels returns every GORM model that AutoMigrate manages, in
// dependency order.
func allModels() []interface{} {
	return []interface{}{
		&PlanetModel{},
		&CharacterModel{},
		&FilmModel{},
		&VehicleModel{},
		&SpeciesModel{},
		&CharacterFilmModel{},
		&FilmPlanetModel{},
		&CharacterVehicleModel{},
		&CharacterSpeciesModel{},
		&SearchLogModel{},
	}
}

// ValidateSchema verifies every GORM model field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.Session(context.Background())
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed — missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
