package search

type Occupancy string

const (
	Vacant   Occupancy = "vacant"
	Occupied Occupancy = "occupied"
)

type Neighborhood string

const (
	Manhattan    Neighborhood = "Manhattan"
	Brooklyn     Neighborhood = "Brooklyn"
	Queens       Neighborhood = "Queens"
	Bronx        Neighborhood = "Bronx"
	StatenIsland Neighborhood = "Staten Island"
)

// Laundry, Parking and Doorman are tier fields. Listings store a tier or
// "none"; searches request a tier and match that tier or better.
type Laundry string

const (
	LaundryInUnit     Laundry = "in-unit"
	LaundryInBuilding Laundry = "in-building"
	LaundryNone       Laundry = "none"
)

type Parking string

const (
	ParkingPrivate Parking = "private"
	ParkingStreet  Parking = "street"
	ParkingNone    Parking = "none"
)

type Doorman string

const (
	DoormanFullTime Doorman = "full-time"
	DoormanPartTime Doorman = "part-time"
	DoormanVirtual  Doorman = "virtual"
	DoormanNone     Doorman = "none"
)

// Params is a validated property search. A nil field means "no constraint".
//
// The struct tags are the field schema: `param` is the wire name, `validate`
// holds the rules (go-playground/validator syntax) and `desc` the
// human/model-facing description. Parsing, serialization and the exported
// JSON Schema are all derived from these tags.
type Params struct {
	Occupancy *Occupancy `json:"occupancy,omitempty" param:"occupancy" validate:"omitempty,oneof=vacant occupied" desc:"Whether the property is vacant or occupied."`

	MinRent *float64 `json:"minRent,omitempty" param:"minRent" validate:"omitempty,gt=0" desc:"The minimum monthly rent in dollars."`
	MaxRent *float64 `json:"maxRent,omitempty" param:"maxRent" validate:"omitempty,gt=0" desc:"The maximum monthly rent in dollars."`

	Bedrooms  *int `json:"bedrooms,omitempty" param:"bedrooms" validate:"omitempty,min=0,max=4" desc:"The minimum number of bedrooms to search for. Studio = 0, 1bdr = 1, etc. Maximum 4."`
	Bathrooms *int `json:"bathrooms,omitempty" param:"bathrooms" validate:"omitempty,min=1,max=3" desc:"The minimum number of bathrooms to search for. Maximum 3."`

	Neighborhood *Neighborhood `json:"neighborhood,omitempty" param:"neighborhood" validate:"omitempty,oneof=Manhattan Brooklyn Queens Bronx 'Staten Island'" desc:"The neighborhood."`

	MinFloor *int64 `json:"minFloor,omitempty" param:"minFloor" desc:"The minimum floor number. 'Garden floor' is a synonym for 'basement' which is floor 0. 'Ground floor' is the first floor, floor 1. etc."`
	MaxFloor *int64 `json:"maxFloor,omitempty" param:"maxFloor" desc:"The maximum floor number. 'Garden floor' is a synonym for 'basement' which is floor 0. 'Ground floor' is the first floor, floor 1. etc."`

	Laundry *Laundry `json:"laundry,omitempty" param:"laundry" validate:"omitempty,oneof=in-unit in-building" desc:"Laundry facilities location."`
	Parking *Parking `json:"parking,omitempty" param:"parking" validate:"omitempty,oneof=private street" desc:"Type of parking available."`
	Doorman *Doorman `json:"doorman,omitempty" param:"doorman" validate:"omitempty,oneof=full-time part-time virtual" desc:"Doorman service availability."`

	Garden          *bool `json:"garden,omitempty" param:"garden" desc:"Whether the property has a garden."`
	Balcony         *bool `json:"balcony,omitempty" param:"balcony" desc:"Whether the property has a balcony."`
	Roof            *bool `json:"roof,omitempty" param:"roof" desc:"Whether the property has roof access."`
	Furnished       *bool `json:"furnished,omitempty" param:"furnished" desc:"Whether the property is furnished."`
	AirConditioning *bool `json:"airConditioning,omitempty" param:"airConditioning" desc:"Whether the property has air conditioning."`
	Dishwasher      *bool `json:"dishwasher,omitempty" param:"dishwasher" desc:"Whether the property has a dishwasher."`

	CatsAllowed *bool `json:"catsAllowed,omitempty" param:"catsAllowed" desc:"Whether cats are allowed."`
	DogsAllowed *bool `json:"dogsAllowed,omitempty" param:"dogsAllowed" desc:"Whether dogs are allowed."`
}

// Len reports how many filters are set.
func (p Params) Len() int {
	n := 0
	v := paramsValue(&p)
	for _, f := range fields {
		if !v.Field(f.index).IsNil() {
			n++
		}
	}
	return n
}

// Raw is the string form of a search, as found in a URL query string or
// produced from tool-call arguments. Keys outside the schema are ignored.
type Raw map[string]string
