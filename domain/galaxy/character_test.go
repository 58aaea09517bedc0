package galaxy

import "testing"

func TestCharacter_HomeworldUnset(t *testing.T) {
	c := NewCharacter(1, "Luke Skywalker", CharacterAttributes{})

	if _, ok := c.Homeworld(); ok {
		t.Error("Homeworld() should report unset for a new character")
	}
}

func TestCharacter_WithHomeworld(t *testing.T) {
	tatooine := NewPlanet(1, "Tatooine", PlanetAttributes{Climate: "arid"})
	c := NewCharacter(1, "Luke Skywalker", CharacterAttributes{BirthYear: "19BBY"}).
		WithHomeworld(tatooine)

	home, ok := c.Homeworld()
	if !ok {
		t.Fatal("Homeworld() should report set")
	}
	if home.Name() != "Tatooine" {
		t.Errorf("Homeworld().Name() = %q", home.Name())
	}
	if c.Attributes().BirthYear != "19BBY" {
		t.Errorf("Attributes().BirthYear = %q", c.Attributes().BirthYear)
	}
}

func TestCharacter_WithReturnsCopy(t *testing.T) {
	base := NewCharacter(1, "Luke Skywalker", CharacterAttributes{})
	withHome := base.WithHomeworld(NewPlanet(1, "Tatooine", PlanetAttributes{}))

	if _, ok := base.Homeworld(); ok {
		t.Error("WithHomeworld mutated the receiver")
	}
	if _, ok := withHome.Homeworld(); !ok {
		t.Error("WithHomeworld did not set the homeworld on the copy")
	}
}

func TestCharacter_RelationsReturnCopies(t *testing.T) {
	c := NewCharacter(1, "Luke Skywalker", CharacterAttributes{}).
		WithFilms([]Film{NewFilm(1, "A New Hope", FilmAttributes{})})

	films := c.Films()
	films[0] = NewFilm(2, "The Empire Strikes Back", FilmAttributes{})

	if c.Films()[0].Title() != "A New Hope" {
		t.Error("mutating the returned slice changed the character")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCharacter, "character"},
		{KindPlanet, "planet"},
		{KindFilm, "film"},
		{KindVehicle, "vehicle"},
		{KindSpecies, "species"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
