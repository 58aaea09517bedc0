package galaxy

// CharacterAttributes holds the descriptive fields of a character as reported
// by the upstream catalog. The upstream encodes unknown values as "unknown" or
// "n/a" rather than omitting them, so plain strings are sufficient.
type CharacterAttributes struct {
	Height    string
	Mass      string
	HairColor string
	SkinColor string
	EyeColor  string
	BirthYear string
	Gender    string
}

// Character is a person from the catalog together with its eagerly loaded
// relations. The id is the upstream numeric id, never locally generated.
type Character struct {
	id        int64
	name      string
	attrs     CharacterAttributes
	homeworld *Planet
	films     []Film
	vehicles  []Vehicle
	species   []Species
}

// NewCharacter creates a Character with the given upstream id, name, and
// descriptive attributes. Relations are attached with the With* methods.
func NewCharacter(id int64, name string, attrs CharacterAttributes) Character {
	return Character{id: id, name: name, attrs: attrs}
}

// ID returns the upstream numeric id.
func (c Character) ID() int64 { return c.id }

// Name returns the character name.
func (c Character) Name() string { return c.name }

// Attributes returns the descriptive fields.
func (c Character) Attributes() CharacterAttributes { return c.attrs }

// Homeworld returns the homeworld planet and whether one is set.
func (c Character) Homeworld() (Planet, bool) {
	if c.homeworld == nil {
		return Planet{}, false
	}
	return *c.homeworld, true
}

// Films returns the films the character appears in.
func (c Character) Films() []Film {
	result := make([]Film, len(c.films))
	copy(result, c.films)
	return result
}

// Vehicles returns the vehicles the character pilots.
func (c Character) Vehicles() []Vehicle {
	result := make([]Vehicle, len(c.vehicles))
	copy(result, c.vehicles)
	return result
}

// Species returns the species the character belongs to.
func (c Character) Species() []Species {
	result := make([]Species, len(c.species))
	copy(result, c.species)
	return result
}

// WithHomeworld returns a copy with the homeworld set.
func (c Character) WithHomeworld(p Planet) Character {
	c.homeworld = &p
	return c
}

// WithFilms returns a copy with the film relations set.
func (c Character) WithFilms(films []Film) Character {
	c.films = films
	return c
}

// WithVehicles returns a copy with the vehicle relations set.
func (c Character) WithVehicles(vehicles []Vehicle) Character {
	c.vehicles = vehicles
	return c
}

// WithSpecies returns a copy with the species relations set.
func (c Character) WithSpecies(species []Species) Character {
	c.species = species
	return c
}
