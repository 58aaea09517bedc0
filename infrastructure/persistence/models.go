// Package persistence provides database storage implementations.
package persistence

import "time"

// PlanetModel is the GORM model for the planets table. The primary key is
// the upstream numeric id; rows are never renumbered locally.
type PlanetModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"not null;index"`
	RotationPeriod string
	OrbitalPeriod  string
	Diameter       string
	Climate        string
	Gravity        string
	Terrain        string
	SurfaceWater   string
	Population     string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Residents []CharacterModel `gorm:"foreignKey:PlanetID"`
	Films     []FilmModel      `gorm:"many2many:film_planet;joinForeignKey:PlanetID;joinReferences:FilmID"`
}

// TableName returns the planets table name.
func (PlanetModel) TableName() string { return "planets" }

// CharacterModel is the GORM model for the characters table.
type CharacterModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"not null;index"`
	Height    string
	Mass      string
	HairColor string
	SkinColor string
	EyeColor  string
	BirthYear string
	Gender    string
	PlanetID  *int64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Planet   *PlanetModel   `gorm:"foreignKey:PlanetID"`
	Films    []FilmModel    `gorm:"many2many:character_film;joinForeignKey:CharacterID;joinReferences:FilmID"`
	Vehicles []VehicleModel `gorm:"many2many:character_vehicle;joinForeignKey:CharacterID;joinReferences:VehicleID"`
	Species  []SpeciesModel `gorm:"many2many:character_species;joinForeignKey:CharacterID;joinReferences:SpeciesID"`
}

// TableName returns the characters table name.
func (CharacterModel) TableName() string { return "characters" }

// FilmModel is the GORM model for the films table.
type FilmModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Title        string `gorm:"not null;index"`
	OpeningCrawl string `gorm:"type:text"`
	Director     string
	Producer     string
	ReleaseDate  string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Characters []CharacterModel `gorm:"many2many:character_film;joinForeignKey:FilmID;joinReferences:CharacterID"`
	Planets    []PlanetModel    `gorm:"many2many:film_planet;joinForeignKey:FilmID;joinReferences:PlanetID"`
}

// TableName returns the films table name.
func (FilmModel) TableName() string { return "films" }

// VehicleModel is the GORM model for the vehicles table.
type VehicleModel struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name                 string `gorm:"not null;index"`
	Model                string
	Manufacturer         string
	CostInCredits        string
	Length               string
	MaxAtmospheringSpeed string
	Crew                 string
	Passengers           string
	CargoCapacity        string
	Consumables          string
	VehicleClass         string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Pilots []CharacterModel `gorm:"many2many:character_vehicle;joinForeignKey:VehicleID;joinReferences:CharacterID"`
}

// TableName returns the vehicles table name.
func (VehicleModel) TableName() string { return "vehicles" }

// SpeciesModel is the GORM model for the species table.
type SpeciesModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	Name            string `gorm:"not null;index"`
	Classification  string
	Designation     string
	AverageHeight   string
	SkinColors      string
	HairColors      string
	EyeColors       string
	AverageLifespan string
	Language        string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Members []CharacterModel `gorm:"many2many:character_species;joinForeignKey:SpeciesID;joinReferences:CharacterID"`
}

// TableName returns the species table name.
func (SpeciesModel) TableName() string { return "species" }

// CharacterFilmModel is the character_film join table. The composite primary
// key makes association inserts naturally idempotent under OnConflict.
type CharacterFilmModel struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false"`
	FilmID      int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the character_film join table name.
func (CharacterFilmModel) TableName() string { return "character_film" }

// FilmPlanetModel is the film_planet join table.
type FilmPlanetModel struct {
	FilmID   int64 `gorm:"primaryKey;autoIncrement:false"`
	PlanetID int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the film_planet join table name.
func (FilmPlanetModel) TableName() string { return "film_planet" }

// CharacterVehicleModel is the character_vehicle join table.
type CharacterVehicleModel struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false"`
	VehicleID   int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the character_vehicle join table name.
func (CharacterVehicleModel) TableName() string { return "character_vehicle" }

// CharacterSpeciesModel is the character_species join table.
type CharacterSpeciesModel struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false"`
	SpeciesID   int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the character_species join table name.
func (CharacterSpeciesModel) TableName() string { return "character_species" }

// SearchLogModel is the GORM model for the append-only search_logs table.
type SearchLogModel struct {
	ID         int64  `gorm:"primaryKey"`
	Requester  string `gorm:"not null;index"`
	SearchType string `gorm:"not null"`
	SearchID   int64  `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName returns the search_logs table name.
func (SearchLogModel) TableName() string { return "search_logs" }
