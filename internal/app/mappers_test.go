package app_test

import (
	"reflect"
	"testing"

	"rental_agency/internal/app"
	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

func TestToCard(t *testing.T) {
	row := domain.ListingRow{
		Listing: domain.Listing{
			ID: 7, Neighborhood: search.Brooklyn, City: "New York",
			RentAmount: 12500, Bedrooms: 0, Bathrooms: 1, FloorNumber: 0,
			Laundry: search.LaundryInBuilding, Parking: search.ParkingNone, Doorman: search.DoormanNone,
			Garden: true, AirConditioning: true, DogsAllowed: true,
		},
	}
	c := app.ToCard(row)

	if c.Status != "vacant" || c.Rooms != "Studio, 1 bath" || c.Floor != "Garden floor" {
		t.Fatalf("unexpected labels: %+v", c)
	}
	if c.Rent != "$12,500" || c.Location != "Brooklyn, New York" {
		t.Fatalf("unexpected rent/location: %q %q", c.Rent, c.Location)
	}
	if !reflect.DeepEqual(c.Badges, []string{"Building Laundry", "No Parking"}) {
		t.Fatalf("unexpected badges: %v", c.Badges)
	}
	if !reflect.DeepEqual(c.Features, []string{"Garden", "AC"}) || !reflect.DeepEqual(c.Pets, []string{"Dogs OK"}) {
		t.Fatalf("unexpected features/pets: %v %v", c.Features, c.Pets)
	}

	row.Tenancy = &domain.Tenancy{ID: 1}
	row.Listing.Bedrooms, row.Listing.FloorNumber = 3, 4
	row.Listing.RentAmount = 2450.5
	row.Listing.Doorman = search.DoormanVirtual
	c = app.ToCard(row)
	if c.Status != "occupied" || c.Rooms != "3 bed, 1 bath" || c.Floor != "Floor 4" || c.Rent != "$2,450.50" {
		t.Fatalf("unexpected labels: %+v", c)
	}
	if c.Badges[len(c.Badges)-1] != "Virtual Doorman" {
		t.Fatalf("expected doorman badge: %v", c.Badges)
	}
}
