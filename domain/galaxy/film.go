package galaxy

// FilmAttributes holds the descriptive fields of a film.
type FilmAttributes struct {
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
}

// Film is a film from the catalog together with its eagerly loaded
// characters and planets.
type Film struct {
	id         int64
	title      string
	attrs      FilmAttributes
	characters []Character
	planets    []Planet
}

// NewFilm creates a Film with the given upstream id, title, and attributes.
func NewFilm(id int64, title string, attrs FilmAttributes) Film {
	return Film{id: id, title: title, attrs: attrs}
}

// ID returns the upstream numeric id.
func (f Film) ID() int64 { return f.id }

// Title returns the film title.
func (f Film) Title() string { return f.title }

// Attributes returns the descriptive fields.
func (f Film) Attributes() FilmAttributes { return f.attrs }

// Characters returns the characters appearing in the film.
func (f Film) Characters() []Character {
	result := make([]Character, len(f.characters))
	copy(result, f.characters)
	return result
}

// Planets returns the planets appearing in the film.
func (f Film) Planets() []Planet {
	result := make([]Planet, len(f.planets))
	copy(result, f.planets)
	return result
}

// WithCharacters returns a copy with the character relations set.
func (f Film) WithCharacters(characters []Character) Film {
	f.characters = characters
	return f
}

// WithPlanets returns a copy with the planet relations set.
func (f Film) WithPlanets(planets []Planet) Film {
	f.planets = planets
	return f
}
