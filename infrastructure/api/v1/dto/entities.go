// Package dto defines the JSON response shapes of the v1 API.
package dto

// CharacterSummary is a shallow reference to a character.
type CharacterSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlanetSummary is a shallow reference to a planet.
type PlanetSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilmSummary is a shallow reference to a film.
type FilmSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// VehicleSummary is a shallow reference to a vehicle.
type VehicleSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SpeciesSummary is a shallow reference to a species.
type SpeciesSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CharacterResponse is a character with its eagerly loaded relations.
type CharacterResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`

	Homeworld *PlanetSummary   `json:"homeworld"`
	Films     []FilmSummary    `json:"films"`
	Vehicles  []VehicleSummary `json:"vehicles"`
	Species   []SpeciesSummary `json:"species"`
}

// PlanetResponse is a planet with its eagerly loaded relations.
type PlanetResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Diameter       string `json:"diameter"`
	Climate        string `json:"climate"`
	Gravity        string `json:"gravity"`
	Terrain        string `json:"terrain"`
	SurfaceWater   string `json:"surface_water"`
	Population     string `json:"population"`

	Residents []CharacterSummary `json:"residents"`
	Films     []FilmSummary      `json:"films"`
}

// FilmResponse is a film with its eagerly loaded relations.
type FilmResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`

	Characters []CharacterSummary `json:"characters"`
	Planets    []PlanetSummary    `json:"planets"`
}

// VehicleResponse is a vehicle with its eagerly loaded relations.
type VehicleResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Model                string `json:"model"`
	Manufacturer         string `json:"manufacturer"`
	CostInCredits        string `json:"cost_in_credits"`
	Length               string `json:"length"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed"`
	Crew                 string `json:"crew"`
	Passengers           string `json:"passengers"`
	CargoCapacity        string `json:"cargo_capacity"`
	Consumables          string `json:"consumables"`
	VehicleClass         string `json:"vehicle_class"`

	Pilots []CharacterSummary `json:"pilots"`
}

// SpeciesResponse is a species with its eagerly loaded relations.
type SpeciesResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Classification  string `json:"classification"`
	Designation     string `json:"designation"`
	AverageHeight   string `json:"average_height"`
	SkinColors      string `json:"skin_colors"`
	HairColors      string `json:"hair_colors"`
	EyeColors       string `json:"eye_colors"`
	AverageLifespan string `json:"average_lifespan"`
	Language        string `json:"language"`

	People []CharacterSummary `json:"people"`
}
