package galaxy

// PlanetAttributes holds the descriptive fields of a planet.
type PlanetAttributes struct {
	RotationPeriod string
	OrbitalPeriod  string
	Diameter       string
	Climate        string
	Gravity        string
	Terrain        string
	SurfaceWater   string
	Population     string
}

// Planet is a planet from the catalog together with its eagerly loaded
// residents and films.
type Planet struct {
	id        int64
	name      string
	attrs     PlanetAttributes
	residents []Character
	films     []Film
}

// NewPlanet creates a Planet with the given upstream id, name, and attributes.
func NewPlanet(id int64, name string, attrs PlanetAttributes) Planet {
	return Planet{id: id, name: name, attrs: attrs}
}

// ID returns the upstream numeric id.
func (p Planet) ID() int64 { return p.id }

// Name returns the planet name.
func (p Planet) Name() string { return p.name }

// Attributes returns the descriptive fields.
func (p Planet) Attributes() PlanetAttributes { return p.attrs }

// Residents returns the characters whose homeworld is this planet.
func (p Planet) Residents() []Character {
	result := make([]Character, len(p.residents))
	copy(result, p.residents)
	return result
}

// Films returns the films the planet appears in.
func (p Planet) Films() []Film {
	result := make([]Film, len(p.films))
	copy(result, p.films)
	return result
}

// WithResidents returns a copy with the resident relations set.
func (p Planet) WithResidents(residents []Character) Planet {
	p.residents = residents
	return p
}

// WithFilms returns a copy with the film relations set.
func (p Planet) WithFilms(films []Film) Planet {
	p.films = films
	return p
}
