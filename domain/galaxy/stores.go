package galaxy

import "context"

// CharacterStore persists characters and their associations.
//
// Graph loads the character with homeworld, films, vehicles, and species
// eagerly. Create inserts the row only if no row with that id exists yet and
// reports whether it was inserted; an existing row is never updated. The
// association methods are idempotent: re-adding an existing pair is a no-op.
type CharacterStore interface {
	Graph(ctx context.Context, id int64) (Character, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, character Character) (bool, error)
	AddFilm(ctx context.Context, characterID, filmID int64) error
	AddVehicle(ctx context.Context, characterID, vehicleID int64) error
	AddSpecies(ctx context.Context, characterID, speciesID int64) error
}

// PlanetStore persists planets. Graph loads residents and films eagerly;
// Get loads the bare row, which is all a homeworld column needs.
type PlanetStore interface {
	Graph(ctx context.Context, id int64) (Planet, error)
	Get(ctx context.Context, id int64) (Planet, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, planet Planet) (bool, error)
}

// FilmStore persists films and their associations. Graph loads characters
// and planets eagerly.
type FilmStore interface {
	Graph(ctx context.Context, id int64) (Film, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, film Film) (bool, error)
	AddCharacter(ctx context.Context, filmID, characterID int64) error
	AddPlanet(ctx context.Context, filmID, planetID int64) error
}

// VehicleStore persists vehicles. Graph loads pilots eagerly.
type VehicleStore interface {
	Graph(ctx context.Context, id int64) (Vehicle, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, vehicle Vehicle) (bool, error)
	AddPilot(ctx context.Context, vehicleID, characterID int64) error
}

// SpeciesStore persists species. Graph loads members eagerly.
type SpeciesStore interface {
	Graph(ctx context.Context, id int64) (Species, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, species Species) (bool, error)
	AddMember(ctx context.Context, speciesID, characterID int64) error
}

// Stores bundles the per-kind stores. Inside a transaction every store in
// the bundle is bound to the same session, so writes across kinds commit or
// roll back as one unit.
type Stores struct {
	Characters CharacterStore
	Planets    PlanetStore
	Films      FilmStore
	Vehicles   VehicleStore
	Species    SpeciesStore
}

// Transactor runs a function against a transaction-bound store bundle.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(Stores) error) error
}
