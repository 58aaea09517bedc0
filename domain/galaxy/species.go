package galaxy

// SpeciesAttributes holds the descriptive fields of a species.
type SpeciesAttributes struct {
	Classification  string
	Designation     string
	AverageHeight   string
	SkinColors      string
	HairColors      string
	EyeColors       string
	AverageLifespan string
	Language        string
}

// Species is a species from the catalog together with its eagerly loaded
// members.
type Species struct {
	id      int64
	name    string
	attrs   SpeciesAttributes
	members []Character
}

// NewSpecies creates a Species with the given upstream id, name, and attributes.
func NewSpecies(id int64, name string, attrs SpeciesAttributes) Species {
	return Species{id: id, name: name, attrs: attrs}
}

// ID returns the upstream numeric id.
func (s Species) ID() int64 { return s.id }

// Name returns the species name.
func (s Species) Name() string { return s.name }

// Attributes returns the descriptive fields.
func (s Species) Attributes() SpeciesAttributes { return s.attrs }

// Members returns the characters belonging to the species.
func (s Species) Members() []Character {
	result := make([]Character, len(s.members))
	copy(result, s.members)
	return result
}

// WithMembers returns a copy with the member relations set.
func (s Species) WithMembers(members []Character) Species {
	s.members = members
	return s
}
