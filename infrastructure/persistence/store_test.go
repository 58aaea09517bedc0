package persistence_test

import (
	"context"
	"testing"

	"github.com/holocron-dev/holocron/domain/audit"
	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/infrastructure/persistence"
	"github.com/holocron-dev/holocron/internal/database"
	"github.com/holocron-dev/holocron/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterStore_CreateAndGraph(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	tatooine := galaxy.NewPlanet(1, "Tatooine", galaxy.PlanetAttributes{Climate: "arid"})
	created, err := stores.Planets.Create(ctx, tatooine)
	require.NoError(t, err)
	assert.True(t, created)

	luke := galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{
		Height: "172",
		Gender: "male",
	}).WithHomeworld(tatooine)
	created, err = stores.Characters.Create(ctx, luke)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := stores.Characters.Graph(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID())
	assert.Equal(t, "Luke Skywalker", got.Name())
	assert.Equal(t, "172", got.Attributes().Height)

	homeworld, ok := got.Homeworld()
	require.True(t, ok)
	assert.Equal(t, "Tatooine", homeworld.Name())
}

func TestCharacterStore_CreateIsInsertIfAbsent(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	created, err := stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{Height: "172"}))
	require.NoError(t, err)
	assert.True(t, created)

	// Second create with different data must not insert or update.
	created, err = stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Imposter", galaxy.CharacterAttributes{Height: "1"}))
	require.NoError(t, err)
	assert.False(t, created)

	got, err := stores.Characters.Graph(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Name(), "existing row must not be overwritten")
	assert.Equal(t, "172", got.Attributes().Height)
}

func TestCharacterStore_GraphNotFound(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)

	_, err := stores.Characters.Graph(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCharacterStore_AddFilmIdempotent(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	_, err := stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{}))
	require.NoError(t, err)
	_, err = stores.Films.Create(ctx, galaxy.NewFilm(1, "A New Hope", galaxy.FilmAttributes{}))
	require.NoError(t, err)

	require.NoError(t, stores.Characters.AddFilm(ctx, 1, 1))
	require.NoError(t, stores.Characters.AddFilm(ctx, 1, 1))

	got, err := stores.Characters.Graph(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Films(), 1, "duplicate association must not create a second link row")
	assert.Equal(t, "A New Hope", got.Films()[0].Title())

	// The link is visible from the film side too.
	film, err := stores.Films.Graph(ctx, 1)
	require.NoError(t, err)
	require.Len(t, film.Characters(), 1)
	assert.Equal(t, "Luke Skywalker", film.Characters()[0].Name())
}

func TestPlanetStore_GraphLoadsResidents(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	tatooine := galaxy.NewPlanet(1, "Tatooine", galaxy.PlanetAttributes{})
	_, err := stores.Planets.Create(ctx, tatooine)
	require.NoError(t, err)

	_, err = stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{}).WithHomeworld(tatooine))
	require.NoError(t, err)
	_, err = stores.Characters.Create(ctx, galaxy.NewCharacter(2, "C-3PO", galaxy.CharacterAttributes{}).WithHomeworld(tatooine))
	require.NoError(t, err)

	got, err := stores.Planets.Graph(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got.Residents(), 2)
}

func TestPlanetStore_Get(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	_, err := stores.Planets.Create(ctx, galaxy.NewPlanet(8, "Naboo", galaxy.PlanetAttributes{Climate: "temperate"}))
	require.NoError(t, err)

	got, err := stores.Planets.Get(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID())
	assert.Equal(t, "Naboo", got.Name())
	assert.Equal(t, "temperate", got.Attributes().Climate)

	_, err = stores.Planets.Get(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestFilmStore_Associations(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	_, err := stores.Films.Create(ctx, galaxy.NewFilm(1, "A New Hope", galaxy.FilmAttributes{Director: "George Lucas"}))
	require.NoError(t, err)
	_, err = stores.Planets.Create(ctx, galaxy.NewPlanet(1, "Tatooine", galaxy.PlanetAttributes{}))
	require.NoError(t, err)
	_, err = stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{}))
	require.NoError(t, err)

	require.NoError(t, stores.Films.AddCharacter(ctx, 1, 1))
	require.NoError(t, stores.Films.AddPlanet(ctx, 1, 1))
	require.NoError(t, stores.Films.AddPlanet(ctx, 1, 1))

	got, err := stores.Films.Graph(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "George Lucas", got.Attributes().Director)
	assert.Len(t, got.Characters(), 1)
	assert.Len(t, got.Planets(), 1)
}

func TestVehicleAndSpeciesStores(t *testing.T) {
	db := testdb.New(t)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	_, err := stores.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{}))
	require.NoError(t, err)

	_, err = stores.Vehicles.Create(ctx, galaxy.NewVehicle(14, "Snowspeeder", galaxy.VehicleAttributes{VehicleClass: "airspeeder"}))
	require.NoError(t, err)
	require.NoError(t, stores.Vehicles.AddPilot(ctx, 14, 1))

	_, err = stores.Species.Create(ctx, galaxy.NewSpecies(1, "Human", galaxy.SpeciesAttributes{Language: "Galactic Basic"}))
	require.NoError(t, err)
	require.NoError(t, stores.Species.AddMember(ctx, 1, 1))

	vehicle, err := stores.Vehicles.Graph(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, "airspeeder", vehicle.Attributes().VehicleClass)
	require.Len(t, vehicle.Pilots(), 1)
	assert.Equal(t, "Luke Skywalker", vehicle.Pilots()[0].Name())

	species, err := stores.Species.Graph(ctx, 1)
	require.NoError(t, err)
	require.Len(t, species.Members(), 1)

	// Character graph sees both associations.
	character, err := stores.Characters.Graph(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, character.Vehicles(), 1)
	assert.Len(t, character.Species(), 1)
}

func TestSearchLogStore_AppendAndCount(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewSearchLogStore(db)
	ctx := context.Background()

	saved, err := store.Append(ctx, audit.NewSearchLog("default", "character", 1))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID())
	assert.Equal(t, "default", saved.Requester())
	assert.Equal(t, "character", saved.SearchType())
	assert.Equal(t, int64(1), saved.SearchID())

	_, err = store.Append(ctx, audit.NewSearchLog("r2", "planet", 8))
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSearchLogStore_Recent(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewSearchLogStore(db)
	ctx := context.Background()

	for _, entry := range []audit.SearchLog{
		audit.NewSearchLog("default", "character", 1),
		audit.NewSearchLog("r2", "planet", 8),
		audit.NewSearchLog("default", "film", 1),
		audit.NewSearchLog("default", "character", 4),
	} {
		_, err := store.Append(ctx, entry)
		require.NoError(t, err)
	}

	// Newest first by default.
	entries, err := store.Recent(ctx, audit.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, int64(4), entries[0].SearchID())
	assert.Equal(t, "character", entries[0].SearchType())

	// Oldest-first flips the ordering.
	entries, err = store.Recent(ctx, audit.Filter{Oldest: true})
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, int64(1), entries[0].SearchID())
	assert.Equal(t, "character", entries[0].SearchType())

	// Requester filter.
	entries, err = store.Recent(ctx, audit.Filter{Requester: "r2"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "planet", entries[0].SearchType())

	// Kind filter accepts several kinds at once.
	entries, err = store.Recent(ctx, audit.Filter{Kinds: []string{"character", "film"}})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.NotEqual(t, "planet", entry.SearchType())
	}

	// Limit and offset page through the newest-first listing.
	entries, err = store.Recent(ctx, audit.Filter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "film", entries[0].SearchType())
	assert.Equal(t, "planet", entries[1].SearchType())
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := testdb.New(t)
	uow := persistence.NewUnitOfWork(db)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	err := uow.InTransaction(ctx, func(s galaxy.Stores) error {
		if _, err := s.Planets.Create(ctx, galaxy.NewPlanet(1, "Tatooine", galaxy.PlanetAttributes{})); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	exists, err := stores.Planets.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists, "rolled-back planet must not be visible")
}

func TestUnitOfWork_CommitsAtomically(t *testing.T) {
	db := testdb.New(t)
	uow := persistence.NewUnitOfWork(db)
	stores := persistence.NewStores(db)
	ctx := context.Background()

	err := uow.InTransaction(ctx, func(s galaxy.Stores) error {
		planet := galaxy.NewPlanet(1, "Tatooine", galaxy.PlanetAttributes{})
		if _, err := s.Planets.Create(ctx, planet); err != nil {
			return err
		}
		if _, err := s.Characters.Create(ctx, galaxy.NewCharacter(1, "Luke Skywalker", galaxy.CharacterAttributes{}).WithHomeworld(planet)); err != nil {
			return err
		}
		return nil
	})
	require.NoError(t, err)

	character, err := stores.Characters.Graph(ctx, 1)
	require.NoError(t, err)
	homeworld, ok := character.Homeworld()
	require.True(t, ok)
	assert.Equal(t, "Tatooine", homeworld.Name())
}
