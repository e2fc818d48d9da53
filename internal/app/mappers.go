package app

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

// ListingCard is a search result with its display labels.
type ListingCard struct {
	domain.ListingRow
	Status   string   `json:"status"` // vacant|occupied
	Rent     string   `json:"rent"`
	Location string   `json:"location"`
	Rooms    string   `json:"rooms"`
	Floor    string   `json:"floor"`
	Badges   []string `json:"badges"`
	Features []string `json:"features"`
	Pets     []string `json:"pets"`
}

var printer = message.NewPrinter(language.AmericanEnglish)

var laundryLabels = map[search.Laundry]string{
	search.LaundryInUnit:     "In-Unit Laundry",
	search.LaundryInBuilding: "Building Laundry",
	search.LaundryNone:       "No Laundry",
}

var parkingLabels = map[search.Parking]string{
	search.ParkingPrivate: "Private Parking",
	search.ParkingStreet:  "Street Parking",
	search.ParkingNone:    "No Parking",
}

// no badge when there is no doorman
var doormanLabels = map[search.Doorman]string{
	search.DoormanFullTime: "Full-Time Doorman",
	search.DoormanPartTime: "Part-Time Doorman",
	search.DoormanVirtual:  "Virtual Doorman",
}

func ToCard(r domain.ListingRow) ListingCard {
	l := r.Listing
	c := ListingCard{
		ListingRow: r,
		Status:     string(search.Vacant),
		Rent:       formatRent(l.RentAmount),
		Location:   fmt.Sprintf("%s, %s", l.Neighborhood, l.City),
		Rooms:      fmt.Sprintf("%s, %d bath", bedroomsLabel(l.Bedrooms), l.Bathrooms),
		Floor:      floorLabel(l.FloorNumber),
		Badges:     []string{},
		Features:   []string{},
		Pets:       []string{},
	}
	if r.Tenancy != nil {
		c.Status = string(search.Occupied)
	}

	if s, ok := laundryLabels[l.Laundry]; ok {
		c.Badges = append(c.Badges, s)
	}
	if s, ok := parkingLabels[l.Parking]; ok {
		c.Badges = append(c.Badges, s)
	}
	if s, ok := doormanLabels[l.Doorman]; ok {
		c.Badges = append(c.Badges, s)
	}

	for _, f := range []struct {
		on    bool
		label string
	}{
		{l.Garden, "Garden"},
		{l.Balcony, "Balcony"},
		{l.Roof, "Roof Access"},
		{l.Furnished, "Furnished"},
		{l.AirConditioning, "AC"},
		{l.Dishwasher, "Dishwasher"},
	} {
		if f.on {
			c.Features = append(c.Features, f.label)
		}
	}
	if l.CatsAllowed {
		c.Pets = append(c.Pets, "Cats OK")
	}
	if l.DogsAllowed {
		c.Pets = append(c.Pets, "Dogs OK")
	}
	return c
}

func ToCards(rows []domain.ListingRow) []ListingCard {
	out := make([]ListingCard, len(rows))
	for i, r := range rows {
		out[i] = ToCard(r)
	}
	return out
}

func bedroomsLabel(n int) string {
	if n == 0 {
		return "Studio"
	}
	return fmt.Sprintf("%d bed", n)
}

func floorLabel(n int) string {
	if n == 0 {
		return "Garden floor"
	}
	return fmt.Sprintf("Floor %d", n)
}

func formatRent(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("$%d", int64(v))
	}
	return printer.Sprintf("$%.2f", v)
}
