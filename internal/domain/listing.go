package domain

import "rental_agency/internal/search"

// Listing is a rentable unit ("properties" table). Listings are written by
// the seed import only.
type Listing struct {
	ID            int64               `db:"id" json:"id" validate:"required"`
	StreetAddress string              `db:"street_address" json:"streetAddress" validate:"required"`
	Neighborhood  search.Neighborhood `db:"neighborhood" json:"neighborhood" validate:"oneof=Manhattan Brooklyn Queens Bronx 'Staten Island'"`
	City          string              `db:"city" json:"city" validate:"required"`
	State         string              `db:"state" json:"state" validate:"required"`
	Description   string              `db:"description" json:"description"`
	RentAmount    float64             `db:"rent_amount" json:"rentAmount" validate:"gt=0"`
	Bedrooms      int                 `db:"bedrooms" json:"bedrooms" validate:"min=0"`
	Bathrooms     int                 `db:"bathrooms" json:"bathrooms" validate:"min=0"`
	FloorNumber   int                 `db:"floor_number" json:"floorNumber"`

	Laundry search.Laundry `db:"laundry" json:"laundry" validate:"oneof=in-unit in-building none"`
	Parking search.Parking `db:"parking" json:"parking" validate:"oneof=private street none"`
	Doorman search.Doorman `db:"doorman" json:"doorman" validate:"oneof=full-time part-time virtual none"`

	Garden          bool `db:"garden" json:"garden"`
	Balcony         bool `db:"balcony" json:"balcony"`
	Roof            bool `db:"roof" json:"roof"`
	CatsAllowed     bool `db:"cats_allowed" json:"catsAllowed"`
	DogsAllowed     bool `db:"dogs_allowed" json:"dogsAllowed"`
	Furnished       bool `db:"furnished" json:"furnished"`
	AirConditioning bool `db:"air_conditioning" json:"airConditioning"`
	Dishwasher      bool `db:"dishwasher" json:"dishwasher"`
}

// Tenancy links a contact to a listing. A nil EndDate means the tenancy is
// active. Dates are ISO 8601 (YYYY-MM-DD).
type Tenancy struct {
	ID         int64   `db:"id" json:"id" validate:"required"`
	ContactID  int64   `db:"contact_id" json:"contactId" validate:"required"`
	PropertyID int64   `db:"property_id" json:"propertyId" validate:"required"`
	StartDate  string  `db:"start_date" json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    *string `db:"end_date" json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentAmount float64 `db:"rent_amount" json:"rentAmount" validate:"gt=0"`
}

func (t Tenancy) Active() bool { return t.EndDate == nil }

type Contact struct {
	ID    int64  `db:"id" json:"id" validate:"required"`
	Name  string `db:"name" json:"name" validate:"required"`
	Email string `db:"email" json:"email" validate:"required,email"`
}

// ListingRow is one search result: a listing and its active tenancy, if any.
type ListingRow struct {
	Listing Listing  `json:"property"`
	Tenancy *Tenancy `json:"tenancy"`
}

// Seed is the import file format read by the CLI.
type Seed struct {
	Contacts   []Contact `json:"contacts" validate:"dive"`
	Properties []Listing `json:"properties" validate:"dive"`
	Tenancies  []Tenancy `json:"tenancies" validate:"dive"`
}
