// Package galaxy defines the Star Wars entity model: characters, planets,
// films, vehicles, and species, together with their store contracts and the
// option-based query builder used by the persistence layer.
package galaxy

// Kind identifies an entity kind.
type Kind string

// Entity kinds.
const (
	KindCharacter Kind = "character"
	KindPlanet    Kind = "planet"
	KindFilm      Kind = "film"
	KindVehicle   Kind = "vehicle"
	KindSpecies   Kind = "species"
)

// String returns the kind tag as recorded in search logs.
func (k Kind) String() string {
	return string(k)
}
