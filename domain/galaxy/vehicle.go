package galaxy

// VehicleAttributes holds the descriptive fields of a vehicle.
type VehicleAttributes struct {
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
}

// Vehicle is a vehicle from the catalog together with its eagerly loaded
// pilots.
type Vehicle struct {
	id     int64
	name   string
	attrs  VehicleAttributes
	pilots []Character
}

// NewVehicle creates a Vehicle with the given upstream id, name, and attributes.
func NewVehicle(id int64, name string, attrs VehicleAttributes) Vehicle {
	return Vehicle{id: id, name: name, attrs: attrs}
}

// ID returns the upstream numeric id.
func (v Vehicle) ID() int64 { return v.id }

// Name returns the vehicle name.
func (v Vehicle) Name() string { return v.name }

// Attributes returns the descriptive fields.
func (v Vehicle) Attributes() VehicleAttributes { return v.attrs }

// Pilots returns the characters who pilot the vehicle.
func (v Vehicle) Pilots() []Character {
	result := make([]Character, len(v.pilots))
	copy(result, v.pilots)
	return result
}

// WithPilots returns a copy with the pilot relations set.
func (v Vehicle) WithPilots(pilots []Character) Vehicle {
	v.pilots = pilots
	return v
}
