package persistence

import (
	"github.com/holocron-dev/holocron/domain/audit"
	"github.com/holocron-dev/holocron/domain/galaxy"
)

// CharacterMapper maps between domain Character and CharacterModel.
type CharacterMapper struct{}

// ToDomain converts a CharacterModel to a domain Character, carrying over
// whatever relations were preloaded on the model. Related entities are
// mapped flat: their own relations are not expanded.
func (m CharacterMapper) ToDomain(e CharacterModel) galaxy.Character {
	c := galaxy.NewCharacter(e.ID, e.Name, galaxy.CharacterAttributes{
		Height:    e.Height,
		Mass:      e.Mass,
		HairColor: e.HairColor,
		SkinColor: e.SkinColor,
		EyeColor:  e.EyeColor,
		BirthYear: e.BirthYear,
		Gender:    e.Gender,
	})

	if e.Planet != nil {
		c = c.WithHomeworld(PlanetMapper{}.ToDomain(*e.Planet))
	}
	if len(e.Films) > 0 {
		films := make([]galaxy.Film, len(e.Films))
		for i, f := range e.Films {
			films[i] = FilmMapper{}.ToDomain(f)
		}
		c = c.WithFilms(films)
	}
	if len(e.Vehicles) > 0 {
		vehicles := make([]galaxy.Vehicle, len(e.Vehicles))
		for i, v := range e.Vehicles {
			vehicles[i] = VehicleMapper{}.ToDomain(v)
		}
		c = c.WithVehicles(vehicles)
	}
	if len(e.Species) > 0 {
		species := make([]galaxy.Species, len(e.Species))
		for i, s := range e.Species {
			species[i] = SpeciesMapper{}.ToDomain(s)
		}
		c = c.WithSpecies(species)
	}
	return c
}

// ToModel converts a domain Character to a CharacterModel. Relation slices
// are left empty; associations are written explicitly by the stores.
func (m CharacterMapper) ToModel(c galaxy.Character) CharacterModel {
	attrs := c.Attributes()
	model := CharacterModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Height:    attrs.Height,
		Mass:      attrs.Mass,
		HairColor: attrs.HairColor,
		SkinColor: attrs.SkinColor,
		EyeColor:  attrs.EyeColor,
		BirthYear: attrs.BirthYear,
		Gender:    attrs.Gender,
	}
	if homeworld, ok := c.Homeworld(); ok {
		planetID := homeworld.ID()
		model.PlanetID = &planetID
	}
	return model
}

// PlanetMapper maps between domain Planet and PlanetModel.
type PlanetMapper struct{}

// ToDomain converts a PlanetModel to a domain Planet.
func (m PlanetMapper) ToDomain(e PlanetModel) galaxy.Planet {
	p := galaxy.NewPlanet(e.ID, e.Name, galaxy.PlanetAttributes{
		RotationPeriod: e.RotationPeriod,
		OrbitalPeriod:  e.OrbitalPeriod,
		Diameter:       e.Diameter,
		Climate:        e.Climate,
		Gravity:        e.Gravity,
		Terrain:        e.Terrain,
		SurfaceWater:   e.SurfaceWater,
		Population:     e.Population,
	})

	if len(e.Residents) > 0 {
		residents := make([]galaxy.Character, len(e.Residents))
		for i, r := range e.Residents {
			residents[i] = CharacterMapper{}.ToDomain(r)
		}
		p = p.WithResidents(residents)
	}
	if len(e.Films) > 0 {
		films := make([]galaxy.Film, len(e.Films))
		for i, f := range e.Films {
			films[i] = FilmMapper{}.ToDomain(f)
		}
		p = p.WithFilms(films)
	}
	return p
}

// ToModel converts a domain Planet to a PlanetModel.
func (m PlanetMapper) ToModel(p galaxy.Planet) PlanetModel {
	attrs := p.Attributes()
	return PlanetModel{
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
	}
}

// FilmMapper maps between domain Film and FilmModel.
type FilmMapper struct{}

// ToDomain converts a FilmModel to a domain Film.
func (m FilmMapper) ToDomain(e FilmModel) galaxy.Film {
	f := galaxy.NewFilm(e.ID, e.Title, galaxy.FilmAttributes{
		OpeningCrawl: e.OpeningCrawl,
		Director:     e.Director,
		Producer:     e.Producer,
		ReleaseDate:  e.ReleaseDate,
	})

	if len(e.Characters) > 0 {
		characters := make([]galaxy.Character, len(e.Characters))
		for i, c := range e.Characters {
			characters[i] = CharacterMapper{}.ToDomain(c)
		}
		f = f.WithCharacters(characters)
	}
	if len(e.Planets) > 0 {
		planets := make([]galaxy.Planet, len(e.Planets))
		for i, p := range e.Planets {
			planets[i] = PlanetMapper{}.ToDomain(p)
		}
		f = f.WithPlanets(planets)
	}
	return f
}

// ToModel converts a domain Film to a FilmModel.
func (m FilmMapper) ToModel(f galaxy.Film) FilmModel {
	attrs := f.Attributes()
	return FilmModel{
		ID:           f.ID(),
		Title:        f.Title(),
		OpeningCrawl: attrs.OpeningCrawl,
		Director:     attrs.Director,
		Producer:     attrs.Producer,
		ReleaseDate:  attrs.ReleaseDate,
	}
}

// VehicleMapper maps between domain Vehicle and VehicleModel.
type VehicleMapper struct{}

// ToDomain converts a VehicleModel to a domain Vehicle.
func (m VehicleMapper) ToDomain(e VehicleModel) galaxy.Vehicle {
	v := galaxy.NewVehicle(e.ID, e.Name, galaxy.VehicleAttributes{
		Model:                e.Model,
		Manufacturer:         e.Manufacturer,
		CostInCredits:        e.CostInCredits,
		Length:               e.Length,
		MaxAtmospheringSpeed: e.MaxAtmospheringSpeed,
		Crew:                 e.Crew,
		Passengers:           e.Passengers,
		CargoCapacity:        e.CargoCapacity,
		Consumables:          e.Consumables,
		VehicleClass:         e.VehicleClass,
	})

	if len(e.Pilots) > 0 {
		pilots := make([]galaxy.Character, len(e.Pilots))
		for i, p := range e.Pilots {
			pilots[i] = CharacterMapper{}.ToDomain(p)
		}
		v = v.WithPilots(pilots)
	}
	return v
}

// ToModel converts a domain Vehicle to a VehicleModel.
func (m VehicleMapper) ToModel(v galaxy.Vehicle) VehicleModel {
	attrs := v.Attributes()
	return VehicleModel{
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
	}
}

// SpeciesMapper maps between domain Species and SpeciesModel.
type SpeciesMapper struct{}

// ToDomain converts a SpeciesModel to a domain Species.
func (m SpeciesMapper) ToDomain(e SpeciesModel) galaxy.Species {
	s := galaxy.NewSpecies(e.ID, e.Name, galaxy.SpeciesAttributes{
		Classification:  e.Classification,
		Designation:     e.Designation,
		AverageHeight:   e.AverageHeight,
		SkinColors:      e.SkinColors,
		HairColors:      e.HairColors,
		EyeColors:       e.EyeColors,
		AverageLifespan: e.AverageLifespan,
		Language:        e.Language,
	})

	if len(e.Members) > 0 {
		members := make([]galaxy.Character, len(e.Members))
		for i, c := range e.Members {
			members[i] = CharacterMapper{}.ToDomain(c)
		}
		s = s.WithMembers(members)
	}
	return s
}

// ToModel converts a domain Species to a SpeciesModel.
func (m SpeciesMapper) ToModel(s galaxy.Species) SpeciesModel {
	attrs := s.Attributes()
	return SpeciesModel{
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
	}
}

// SearchLogMapper maps between domain SearchLog and SearchLogModel.
type SearchLogMapper struct{}

// ToDomain converts a SearchLogModel to a domain SearchLog.
func (m SearchLogMapper) ToDomain(e SearchLogModel) audit.SearchLog {
	return audit.ReconstructSearchLog(e.ID, e.Requester, e.SearchType, e.SearchID, e.CreatedAt)
}

// ToModel converts a domain SearchLog to a SearchLogModel.
func (m SearchLogMapper) ToModel(l audit.SearchLog) SearchLogModel {
	return SearchLogModel{
		ID:         l.ID(),
		Requester:  l.Requester(),
		SearchType: l.SearchType(),
		SearchID:   l.SearchID(),
		CreatedAt:  l.CreatedAt(),
	}
}
