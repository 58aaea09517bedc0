// Package v1 implements the v1 HTTP API.
package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/holocron-dev/holocron"
	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/infrastructure/api/middleware"
	"github.com/holocron-dev/holocron/infrastructure/api/v1/dto"
)

// GalaxyRouter handles entity lookup endpoints.
type GalaxyRouter struct {
	client *holocron.Client
	logger *slog.Logger
}

// NewGalaxyRouter creates a new GalaxyRouter.
func NewGalaxyRouter(client *holocron.Client) *GalaxyRouter {
	return &GalaxyRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for entity lookups. Non-numeric ids never
// match and fall through to chi's 404 handler.
func (r *GalaxyRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/character/{id:[0-9]+}", r.Character)
	router.Get("/planet/{id:[0-9]+}", r.Planet)
	router.Get("/film/{id:[0-9]+}", r.Film)
	router.Get("/vehicle/{id:[0-9]+}", r.Vehicle)
	router.Get("/species/{id:[0-9]+}", r.Species)

	return router
}

// Character handles GET /character/{id}. A cached graph returns 200; a
// graph hydrated from the upstream catalog on this request returns 201.
func (r *GalaxyRouter) Character(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	character, created, err := r.client.Galaxy.Character(ctx, middleware.Principal(ctx), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, hydrationStatus(created), buildCharacterResponse(character))
}

// Planet handles GET /planet/{id}.
func (r *GalaxyRouter) Planet(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	planet, created, err := r.client.Galaxy.Planet(ctx, middleware.Principal(ctx), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, hydrationStatus(created), buildPlanetResponse(planet))
}

// Film handles GET /film/{id}.
func (r *GalaxyRouter) Film(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	film, created, err := r.client.Galaxy.Film(ctx, middleware.Principal(ctx), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, hydrationStatus(created), buildFilmResponse(film))
}

// Vehicle handles GET /vehicle/{id}.
func (r *GalaxyRouter) Vehicle(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	vehicle, created, err := r.client.Galaxy.Vehicle(ctx, middleware.Principal(ctx), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, hydrationStatus(created), buildVehicleResponse(vehicle))
}

// Species handles GET /species/{id}.
func (r *GalaxyRouter) Species(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	species, created, err := r.client.Galaxy.Species(ctx, middleware.Principal(ctx), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, hydrationStatus(created), buildSpeciesResponse(species))
}

func hydrationStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func buildCharacterResponse(c galaxy.Character) dto.CharacterResponse {
	attrs := c.Attributes()

	resp := dto.CharacterResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Height:    attrs.Height,
		Mass:      attrs.Mass,
		HairColor: attrs.HairColor,
		SkinColor: attrs.SkinColor,
		EyeColor:  attrs.EyeColor,
		BirthYear: attrs.BirthYear,
		Gender:    attrs.Gender,
		Films:     filmSummaries(c.Films()),
		Vehicles:  vehicleSummaries(c.Vehicles()),
		Species:   speciesSummaries(c.Species()),
	}

	if homeworld, ok := c.Homeworld(); ok {
		resp.Homeworld = &dto.PlanetSummary{ID: homeworld.ID(), Name: homeworld.Name()}
	}

	return resp
}

func buildPlanetResponse(p galaxy.Planet) dto.PlanetResponse {
	attrs := p.Attributes()

	return dto.PlanetResponse{
		ID:             p.ID(),
		Name:           p.Name(),
		RotationPeriod: attrs.RotationPeriod,
		OrbitalPeriod:  attrs.OrbitalPeriod,
		Diameter:       attrs.Diameter,
		Climate:        attrs.Climate,
		Gravity:        attrs.Gravity,
		Terrain:        attrs.Terrain,
		SurfaceWater:   attrs.SurfaceWater,
		Population:     attrs.Population,
		Residents:      characterSummaries(p.Residents()),
		Films:          filmSummaries(p.Films()),
	}
}

func buildFilmResponse(f galaxy.Film) dto.FilmResponse {
	attrs := f.Attributes()

	return dto.FilmResponse{
		ID:           f.ID(),
		Title:        f.Title(),
		OpeningCrawl: attrs.OpeningCrawl,
		Director:     attrs.Director,
		Producer:     attrs.Producer,
		ReleaseDate:  attrs.ReleaseDate,
		Characters:   characterSummaries(f.Characters()),
		Planets:      planetSummaries(f.Planets()),
	}
}

func buildVehicleResponse(v galaxy.Vehicle) dto.VehicleResponse {
	attrs := v.Attributes()

	return dto.VehicleResponse{
		ID:                   v.ID(),
		Name:                 v.Name(),
		Model:                attrs.Model,
		Manufacturer:         attrs.Manufacturer,
		CostInCredits:        attrs.CostInCredits,
		Length:               attrs.Length,
		MaxAtmospheringSpeed: attrs.MaxAtmospheringSpeed,
		Crew:                 attrs.Crew,
		Passengers:           attrs.Passengers,
		CargoCapacity:        attrs.CargoCapacity,
		Consumables:          attrs.Consumables,
		VehicleClass:         attrs.VehicleClass,
		Pilots:               characterSummaries(v.Pilots()),
	}
}

func buildSpeciesResponse(s galaxy.Species) dto.SpeciesResponse {
	attrs := s.Attributes()

	return dto.SpeciesResponse{
		ID:              s.ID(),
		Name:            s.Name(),
		Classification:  attrs.Classification,
		Designation:     attrs.Designation,
		AverageHeight:   attrs.AverageHeight,
		SkinColors:      attrs.SkinColors,
		HairColors:      attrs.HairColors,
		EyeColors:       attrs.EyeColors,
		AverageLifespan: attrs.AverageLifespan,
		Language:        attrs.Language,
		People:          characterSummaries(s.Members()),
	}
}

func characterSummaries(characters []galaxy.Character) []dto.CharacterSummary {
	out := make([]dto.CharacterSummary, len(characters))
	for i, c := range characters {
		out[i] = dto.CharacterSummary{ID: c.ID(), Name: c.Name()}
	}
	return out
}

func planetSummaries(planets []galaxy.Planet) []dto.PlanetSummary {
	out := make([]dto.PlanetSummary, len(planets))
	for i, p := range planets {
		out[i] = dto.PlanetSummary{ID: p.ID(), Name: p.Name()}
	}
	return out
}

func filmSummaries(films []galaxy.Film) []dto.FilmSummary {
	out := make([]dto.FilmSummary, len(films))
	for i, f := range films {
		out[i] = dto.FilmSummary{ID: f.ID(), Title: f.Title()}
	}
	return out
}

func vehicleSummaries(vehicles []galaxy.Vehicle) []dto.VehicleSummary {
	out := make([]dto.VehicleSummary, len(vehicles))
	for i, v := range vehicles {
		out[i] = dto.VehicleSummary{ID: v.ID(), Name: v.Name()}
	}
	return out
}

func speciesSummaries(species []galaxy.Species) []dto.SpeciesSummary {
	out := make([]dto.SpeciesSummary, len(species))
	for i, s := range species {
		out[i] = dto.SpeciesSummary{ID: s.ID(), Name: s.Name()}
	}
	return out
}
