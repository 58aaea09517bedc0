package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/infrastructure/swapi"
	"github.com/holocron-dev/holocron/internal/database"
	"github.com/puzpuzpuz/xsync/v3"
)

// refDepth bounds reference resolution. References on the requested entity
// are expanded; references found on a newly created related entity are not.
// A character's homeworld is not counted as an expansion — it is a column of
// the character row itself and is always resolved when the row is created.
const refDepth = 1

// Hydrator is the fetch-or-hydrate cache layer. Given an entity id it either
// returns the already-persisted graph, or pulls the entity and its direct
// references from the upstream catalog, persists everything in one
// transaction, and returns the freshly built graph.
//
// Concurrent misses for the same id are serialized by a per-id lock held
// across the remote fetch and the commit. The stores' insert-if-absent
// writes additionally absorb races with other processes sharing the
// database: a row that appears underneath us is reused, never duplicated
// and never updated.
type Hydrator struct {
	client *swapi.Client
	stores galaxy.Stores
	uow    galaxy.Transactor
	access *AccessLog
	locks  *xsync.MapOf[string, *sync.Mutex]
	logger *slog.Logger
}

// NewHydrator creates a new Hydrator.
func NewHydrator(client *swapi.Client, stores galaxy.Stores, uow galaxy.Transactor, access *AccessLog, logger *slog.Logger) *Hydrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{
		client: client,
		stores: stores,
		uow:    uow,
		access: access,
		locks:  xsync.NewMapOf[string, *sync.Mutex](),
		logger: logger,
	}
}

// lock acquires the per-entity lock and returns its release function.
// Lock entries are never removed; the key space is bounded by the size of
// the upstream catalog.
func (h *Hydrator) lock(kind galaxy.Kind, id int64) func() {
	key := fmt.Sprintf("%s/%d", kind, id)
	mu, _ := h.locks.LoadOrStore(key, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// Character returns the character graph for the given upstream id, hydrating
// it from the upstream catalog on a cache miss. The returned bool reports
// whether the entity was newly hydrated.
func (h *Hydrator) Character(ctx context.Context, requester string, id int64) (galaxy.Character, bool, error) {
	if c, err := h.stores.Characters.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindCharacter, id)
		return c, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Character{}, false, err
	}

	unlock := h.lock(galaxy.KindCharacter, id)
	defer unlock()

	// Re-check under the lock: a concurrent request may have hydrated it
	// while we waited.
	if c, err := h.stores.Characters.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindCharacter, id)
		return c, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Character{}, false, err
	}

	record, err := h.client.Person(ctx, id)
	if err != nil {
		return galaxy.Character{}, false, err
	}
	if !record.Has("name") {
		return galaxy.Character{}, false, fmt.Errorf("%w: person %d", swapi.ErrNotFound, id)
	}

	err = h.uow.InTransaction(ctx, func(s galaxy.Stores) error {
		return h.createCharacter(ctx, s, id, record, refDepth)
	})
	if err != nil {
		return galaxy.Character{}, false, err
	}

	graph, err := h.stores.Characters.Graph(ctx, id)
	if err != nil {
		return galaxy.Character{}, false, err
	}

	h.logger.Info("hydrated character",
		slog.Int64("id", id),
		slog.String("name", graph.Name()),
	)
	h.access.Record(ctx, requester, galaxy.KindCharacter, id)
	return graph, true, nil
}

// Planet returns the planet graph for the given upstream id, hydrating it on
// a cache miss. Residents absent from the local store are created flat with
// their homeworld set to this planet; their own references are not expanded.
func (h *Hydrator) Planet(ctx context.Context, requester string, id int64) (galaxy.Planet, bool, error) {
	if p, err := h.stores.Planets.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindPlanet, id)
		return p, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Planet{}, false, err
	}

	unlock := h.lock(galaxy.KindPlanet, id)
	defer unlock()

	if p, err := h.stores.Planets.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindPlanet, id)
		return p, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Planet{}, false, err
	}

	record, err := h.client.Planet(ctx, id)
	if err != nil {
		return galaxy.Planet{}, false, err
	}
	if !record.Has("name") {
		return galaxy.Planet{}, false, fmt.Errorf("%w: planet %d", swapi.ErrNotFound, id)
	}

	err = h.uow.InTransaction(ctx, func(s galaxy.Stores) error {
		planet := galaxy.NewPlanet(id, record.Str("name"), planetAttrs(record))
		if _, err := s.Planets.Create(ctx, planet); err != nil {
			return err
		}
		for _, url := range record.Refs("residents") {
			if _, _, err := h.resolveCharacterRef(ctx, s, url, &planet); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return galaxy.Planet{}, false, err
	}

	graph, err := h.stores.Planets.Graph(ctx, id)
	if err != nil {
		return galaxy.Planet{}, false, err
	}

	h.logger.Info("hydrated planet",
		slog.Int64("id", id),
		slog.String("name", graph.Name()),
	)
	h.access.Record(ctx, requester, galaxy.KindPlanet, id)
	return graph, true, nil
}

// Film returns the film graph for the given upstream id, hydrating it on a
// cache miss. Referenced characters are created with their homeworld
// resolved; referenced planets are created flat.
func (h *Hydrator) Film(ctx context.Context, requester string, id int64) (galaxy.Film, bool, error) {
	if f, err := h.stores.Films.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindFilm, id)
		return f, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Film{}, false, err
	}

	unlock := h.lock(galaxy.KindFilm, id)
	defer unlock()

	if f, err := h.stores.Films.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindFilm, id)
		return f, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Film{}, false, err
	}

	record, err := h.client.Film(ctx, id)
	if err != nil {
		return galaxy.Film{}, false, err
	}
	if !record.Has("title") {
		return galaxy.Film{}, false, fmt.Errorf("%w: film %d", swapi.ErrNotFound, id)
	}

	err = h.uow.InTransaction(ctx, func(s galaxy.Stores) error {
		film := galaxy.NewFilm(id, record.Str("title"), filmAttrs(record))
		if _, err := s.Films.Create(ctx, film); err != nil {
			return err
		}
		for _, url := range record.Refs("characters") {
			characterID, ok, err := h.resolveCharacterRef(ctx, s, url, nil)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := s.Films.AddCharacter(ctx, id, characterID); err != nil {
				return err
			}
		}
		for _, url := range record.Refs("planets") {
			planetID, ok, err := h.resolvePlanetRef(ctx, s, url)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := s.Films.AddPlanet(ctx, id, planetID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return galaxy.Film{}, false, err
	}

	graph, err := h.stores.Films.Graph(ctx, id)
	if err != nil {
		return galaxy.Film{}, false, err
	}

	h.logger.Info("hydrated film",
		slog.Int64("id", id),
		slog.String("title", graph.Title()),
	)
	h.access.Record(ctx, requester, galaxy.KindFilm, id)
	return graph, true, nil
}

// Vehicle returns the vehicle graph for the given upstream id, hydrating it
// on a cache miss. Referenced pilots are created with their homeworld
// resolved and associated.
func (h *Hydrator) Vehicle(ctx context.Context, requester string, id int64) (galaxy.Vehicle, bool, error) {
	if v, err := h.stores.Vehicles.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindVehicle, id)
		return v, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Vehicle{}, false, err
	}

	unlock := h.lock(galaxy.KindVehicle, id)
	defer unlock()

	if v, err := h.stores.Vehicles.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindVehicle, id)
		return v, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Vehicle{}, false, err
	}

	record, err := h.client.Vehicle(ctx, id)
	if err != nil {
		return galaxy.Vehicle{}, false, err
	}
	if !record.Has("name") {
		return galaxy.Vehicle{}, false, fmt.Errorf("%w: vehicle %d", swapi.ErrNotFound, id)
	}

	err = h.uow.InTransaction(ctx, func(s galaxy.Stores) error {
		vehicle := galaxy.NewVehicle(id, record.Str("name"), vehicleAttrs(record))
		if _, err := s.Vehicles.Create(ctx, vehicle); err != nil {
			return err
		}
		for _, url := range record.Refs("pilots") {
			characterID, ok, err := h.resolveCharacterRef(ctx, s, url, nil)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := s.Vehicles.AddPilot(ctx, id, characterID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return galaxy.Vehicle{}, false, err
	}

	graph, err := h.stores.Vehicles.Graph(ctx, id)
	if err != nil {
		return galaxy.Vehicle{}, false, err
	}

	h.logger.Info("hydrated vehicle",
		slog.Int64("id", id),
		slog.String("name", graph.Name()),
	)
	h.access.Record(ctx, requester, galaxy.KindVehicle, id)
	return graph, true, nil
}

// Species returns the species graph for the given upstream id, hydrating it
// on a cache miss. Referenced members are created with their homeworld
// resolved and associated.
func (h *Hydrator) Species(ctx context.Context, requester string, id int64) (galaxy.Species, bool, error) {
	if sp, err := h.stores.Species.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindSpecies, id)
		return sp, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Species{}, false, err
	}

	unlock := h.lock(galaxy.KindSpecies, id)
	defer unlock()

	if sp, err := h.stores.Species.Graph(ctx, id); err == nil {
		h.access.Record(ctx, requester, galaxy.KindSpecies, id)
		return sp, false, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Species{}, false, err
	}

	record, err := h.client.Species(ctx, id)
	if err != nil {
		return galaxy.Species{}, false, err
	}
	if !record.Has("name") {
		return galaxy.Species{}, false, fmt.Errorf("%w: species %d", swapi.ErrNotFound, id)
	}

	err = h.uow.InTransaction(ctx, func(s galaxy.Stores) error {
		species := galaxy.NewSpecies(id, record.Str("name"), speciesAttrs(record))
		if _, err := s.Species.Create(ctx, species); err != nil {
			return err
		}
		for _, url := range record.Refs("people") {
			characterID, ok, err := h.resolveCharacterRef(ctx, s, url, nil)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := s.Species.AddMember(ctx, id, characterID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return galaxy.Species{}, false, err
	}

	graph, err := h.stores.Species.Graph(ctx, id)
	if err != nil {
		return galaxy.Species{}, false, err
	}

	h.logger.Info("hydrated species",
		slog.Int64("id", id),
		slog.String("name", graph.Name()),
	)
	h.access.Record(ctx, requester, galaxy.KindSpecies, id)
	return graph, true, nil
}

// createCharacter writes the character row plus, at depth > 0, its film,
// vehicle, and species associations. The homeworld reference is resolved
// regardless of depth because it is a column of the row itself.
func (h *Hydrator) createCharacter(ctx context.Context, s galaxy.Stores, id int64, record swapi.Record, depth int) error {
	c := galaxy.NewCharacter(id, record.Str("name"), characterAttrs(record))

	if url, ok := record.Ref("homeworld"); ok {
		planet, ok, err := h.resolveHomeworld(ctx, s, url)
		if err != nil {
			return err
		}
		if ok {
			c = c.WithHomeworld(planet)
		}
	}

	if _, err := s.Characters.Create(ctx, c); err != nil {
		return err
	}

	if depth <= 0 {
		return nil
	}

	for _, url := range record.Refs("films") {
		filmID, ok, err := h.resolveFilmRef(ctx, s, url)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.Characters.AddFilm(ctx, id, filmID); err != nil {
			return err
		}
	}
	for _, url := range record.Refs("vehicles") {
		vehicleID, ok, err := h.resolveVehicleRef(ctx, s, url)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.Characters.AddVehicle(ctx, id, vehicleID); err != nil {
			return err
		}
	}
	for _, url := range record.Refs("species") {
		speciesID, ok, err := h.resolveSpeciesRef(ctx, s, url)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.Characters.AddSpecies(ctx, id, speciesID); err != nil {
			return err
		}
	}
	return nil
}

// resolveCharacterRef reuses the referenced character or creates it. When
// homeworld is non-nil (planet hydration) it overrides the record's own
// homeworld reference. ok=false skips the reference; a non-nil error is a
// persistence failure that aborts the transaction.
func (h *Hydrator) resolveCharacterRef(ctx context.Context, s galaxy.Stores, url string, homeworld *galaxy.Planet) (int64, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable character reference", slog.String("url", url), slog.String("error", err.Error()))
		return 0, false, nil
	}

	exists, err := s.Characters.Exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return id, true, nil
	}

	record, err := h.client.Person(ctx, id)
	if err != nil || !record.Has("name") {
		h.logger.Warn("skipping unusable character reference", slog.Int64("id", id))
		return 0, false, nil
	}

	c := galaxy.NewCharacter(id, record.Str("name"), characterAttrs(record))
	if homeworld != nil {
		c = c.WithHomeworld(*homeworld)
	} else if url, ok := record.Ref("homeworld"); ok {
		planet, ok, err := h.resolveHomeworld(ctx, s, url)
		if err != nil {
			return 0, false, err
		}
		if ok {
			c = c.WithHomeworld(planet)
		}
	}

	if _, err := s.Characters.Create(ctx, c); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// resolveHomeworld reuses the referenced planet or creates it flat, returning
// the planet for the character's homeworld column.
func (h *Hydrator) resolveHomeworld(ctx context.Context, s galaxy.Stores, url string) (galaxy.Planet, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable planet reference", slog.String("url", url), slog.String("error", err.Error()))
		return galaxy.Planet{}, false, nil
	}

	if planet, err := s.Planets.Get(ctx, id); err == nil {
		return planet, true, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return galaxy.Planet{}, false, err
	}

	record, err := h.client.Planet(ctx, id)
	if err != nil || !record.Has("name") {
		h.logger.Warn("skipping unusable planet reference", slog.Int64("id", id))
		return galaxy.Planet{}, false, nil
	}

	planet := galaxy.NewPlanet(id, record.Str("name"), planetAttrs(record))
	if _, err := s.Planets.Create(ctx, planet); err != nil {
		return galaxy.Planet{}, false, err
	}
	return planet, true, nil
}

// resolvePlanetRef reuses the referenced planet or creates it flat,
// returning its id for association.
func (h *Hydrator) resolvePlanetRef(ctx context.Context, s galaxy.Stores, url string) (int64, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable planet reference", slog.String("url", url), slog.String("error", err.Error()))
		return 0, false, nil
	}

	exists, err := s.Planets.Exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return id, true, nil
	}

	record, err := h.client.Planet(ctx, id)
	if err != nil || !record.Has("name") {
		h.logger.Warn("skipping unusable planet reference", slog.Int64("id", id))
		return 0, false, nil
	}

	planet := galaxy.NewPlanet(id, record.Str("name"), planetAttrs(record))
	if _, err := s.Planets.Create(ctx, planet); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// resolveFilmRef reuses the referenced film or creates it flat, returning
// its id for association.
func (h *Hydrator) resolveFilmRef(ctx context.Context, s galaxy.Stores, url string) (int64, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable film reference", slog.String("url", url), slog.String("error", err.Error()))
		return 0, false, nil
	}

	exists, err := s.Films.Exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return id, true, nil
	}

	record, err := h.client.Film(ctx, id)
	if err != nil || !record.Has("title") {
		h.logger.Warn("skipping unusable film reference", slog.Int64("id", id))
		return 0, false, nil
	}

	film := galaxy.NewFilm(id, record.Str("title"), filmAttrs(record))
	if _, err := s.Films.Create(ctx, film); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// resolveVehicleRef reuses the referenced vehicle or creates it flat,
// returning its id for association.
func (h *Hydrator) resolveVehicleRef(ctx context.Context, s galaxy.Stores, url string) (int64, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable vehicle reference", slog.String("url", url), slog.String("error", err.Error()))
		return 0, false, nil
	}

	exists, err := s.Vehicles.Exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return id, true, nil
	}

	record, err := h.client.Vehicle(ctx, id)
	if err != nil || !record.Has("name") {
		h.logger.Warn("skipping unusable vehicle reference", slog.Int64("id", id))
		return 0, false, nil
	}

	vehicle := galaxy.NewVehicle(id, record.Str("name"), vehicleAttrs(record))
	if _, err := s.Vehicles.Create(ctx, vehicle); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// resolveSpeciesRef reuses the referenced species or creates it flat,
// returning its id for association.
func (h *Hydrator) resolveSpeciesRef(ctx context.Context, s galaxy.Stores, url string) (int64, bool, error) {
	id, err := swapi.RefID(url)
	if err != nil {
		h.logger.Warn("skipping unparsable species reference", slog.String("url", url), slog.String("error", err.Error()))
		return 0, false, nil
	}

	exists, err := s.Species.Exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return id, true, nil
	}

	record, err := h.client.Species(ctx, id)
	if err != nil || !record.Has("name") {
		h.logger.Warn("skipping unusable species reference", slog.Int64("id", id))
		return 0, false, nil
	}

	species := galaxy.NewSpecies(id, record.Str("name"), speciesAttrs(record))
	if _, err := s.Species.Create(ctx, species); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func characterAttrs(r swapi.Record) galaxy.CharacterAttributes {
	return galaxy.CharacterAttributes{
		Height:    r.Str("height"),
		Mass:      r.Str("mass"),
		HairColor: r.Str("hair_color"),
		SkinColor: r.Str("skin_color"),
		EyeColor:  r.Str("eye_color"),
		BirthYear: r.Str("birth_year"),
		Gender:    r.Str("gender"),
	}
}

func planetAttrs(r swapi.Record) galaxy.PlanetAttributes {
	return galaxy.PlanetAttributes{
		RotationPeriod: r.Str("rotation_period"),
		OrbitalPeriod:  r.Str("orbital_period"),
		Diameter:       r.Str("diameter"),
		Climate:        r.Str("climate"),
		Gravity:        r.Str("gravity"),
		Terrain:        r.Str("terrain"),
		SurfaceWater:   r.Str("surface_water"),
		Population:     r.Str("population"),
	}
}

func filmAttrs(r swapi.Record) galaxy.FilmAttributes {
	return galaxy.FilmAttributes{
		OpeningCrawl: r.Str("opening_crawl"),
		Director:     r.Str("director"),
		Producer:     r.Str("producer"),
		ReleaseDate:  r.Str("release_date"),
	}
}

func vehicleAttrs(r swapi.Record) galaxy.VehicleAttributes {
	return galaxy.VehicleAttributes{
		Model:                r.Str("model"),
		Manufacturer:         r.Str("manufacturer"),
		CostInCredits:        r.Str("cost_in_credits"),
		Length:               r.Str("length"),
		MaxAtmospheringSpeed: r.Str("max_atmosphering_speed"),
		Crew:                 r.Str("crew"),
		Passengers:           r.Str("passengers"),
		CargoCapacity:        r.Str("cargo_capacity"),
		Consumables:          r.Str("consumables"),
		VehicleClass:         r.Str("vehicle_class"),
	}
}

func speciesAttrs(r swapi.Record) galaxy.SpeciesAttributes {
	return galaxy.SpeciesAttributes{
		Classification:  r.Str("classification"),
		Designation:     r.Str("designation"),
		AverageHeight:   r.Str("average_height"),
		SkinColors:      r.Str("skin_colors"),
		HairColors:      r.Str("hair_colors"),
		EyeColors:       r.Str("eye_colors"),
		AverageLifespan: r.Str("average_lifespan"),
		Language:        r.Str("language"),
	}
}
