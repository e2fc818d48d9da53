package sqlstore_test

import (
	"context"
	"errors"
	"testing"

	"rental_agency/internal/domain"
	"rental_agency/internal/search"
	"rental_agency/internal/storage/sqlstore"
)

// ---------- fixtures ----------

func pstr(s string) *string { return &s }

func listing(id int64, rent float64, beds int, laundry search.Laundry, doorman search.Doorman) domain.Listing {
	return domain.Listing{
		ID:            id,
		StreetAddress: "1 Test St",
		Neighborhood:  search.Brooklyn,
		City:          "New York",
		State:         "NY",
		Description:   "test listing",
		RentAmount:    rent,
		Bedrooms:      beds,
		Bathrooms:     1,
		FloorNumber:   int(id),
		Laundry:       laundry,
		Parking:       search.ParkingNone,
		Doorman:       doorman,
	}
}

func newRepo(t *testing.T) *sqlstore.Repo {
	t.Helper()
	ctx := context.Background()
	db, err := sqlstore.Open(ctx, sqlstore.SQLite, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlstore.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Migrations are idempotent.
	if err := sqlstore.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate twice: %v", err)
	}

	repo := sqlstore.New(db)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	must(repo.UpsertContact(ctx, domain.Contact{ID: 1, Name: "Ada", Email: "ada@example.com"}))
	must(repo.UpsertContact(ctx, domain.Contact{ID: 2, Name: "Bo", Email: "bo@example.com"}))

	// (a) $2500 2-bed in-unit, (b) $1800 2-bed in-building, (c) $2200 1-bed in-building
	must(repo.UpsertListing(ctx, listing(1, 2500, 2, search.LaundryInUnit, search.DoormanFullTime)))
	must(repo.UpsertListing(ctx, listing(2, 1800, 2, search.LaundryInBuilding, search.DoormanPartTime)))
	must(repo.UpsertListing(ctx, listing(3, 2200, 1, search.LaundryInBuilding, search.DoormanVirtual)))
	must(repo.UpsertListing(ctx, listing(4, 3000, 3, search.LaundryNone, search.DoormanNone)))

	// Listing 1 is occupied; listing 2 had a tenancy that ended.
	must(repo.UpsertTenancy(ctx, domain.Tenancy{ID: 1, ContactID: 1, PropertyID: 1, StartDate: "2024-01-01", RentAmount: 2500}))
	must(repo.UpsertTenancy(ctx, domain.Tenancy{ID: 2, ContactID: 2, PropertyID: 2, StartDate: "2022-01-01", EndDate: pstr("2023-01-01"), RentAmount: 1700}))
	return repo
}

func ids(rows []domain.ListingRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.Listing.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func searchRaw(t *testing.T, repo *sqlstore.Repo, raw search.Raw) []domain.ListingRow {
	t.Helper()
	rows, err := repo.Search(context.Background(), search.Build(search.Parse(raw)))
	if err != nil {
		t.Fatalf("search %v: %v", raw, err)
	}
	return rows
}

// ---------- tests ----------

func TestSearch_NoFiltersReturnsEverything(t *testing.T) {
	repo := newRepo(t)
	rows := searchRaw(t, repo, search.Raw{})
	if got := ids(rows); !equalIDs(got, []int64{1, 2, 3, 4}) {
		t.Fatalf("unexpected ids %v", got)
	}
	if rows[0].Tenancy == nil || rows[0].Tenancy.ID != 1 || !rows[0].Tenancy.Active() {
		t.Fatalf("listing 1 should carry its active tenancy: %+v", rows[0].Tenancy)
	}
	if rows[1].Tenancy != nil {
		t.Fatalf("ended tenancy must not be joined: %+v", rows[1].Tenancy)
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	repo := newRepo(t)
	rows := searchRaw(t, repo, search.Raw{"minRent": "2000", "bedrooms": "2", "laundry": "in-building"})
	if got := ids(rows); !equalIDs(got, []int64{1}) {
		t.Fatalf("expected only listing 1, got %v", got)
	}
	l := rows[0].Listing
	if l.RentAmount != 2500 || l.Laundry != search.LaundryInUnit || l.Neighborhood != search.Brooklyn {
		t.Fatalf("listing not scanned correctly: %+v", l)
	}
}

func TestSearch_Occupancy(t *testing.T) {
	repo := newRepo(t)
	if got := ids(searchRaw(t, repo, search.Raw{"occupancy": "occupied"})); !equalIDs(got, []int64{1}) {
		t.Fatalf("occupied: got %v", got)
	}
	if got := ids(searchRaw(t, repo, search.Raw{"occupancy": "vacant"})); !equalIDs(got, []int64{2, 3, 4}) {
		t.Fatalf("vacant: got %v", got)
	}
}

func TestSearch_TierRelaxation(t *testing.T) {
	repo := newRepo(t)
	if got := ids(searchRaw(t, repo, search.Raw{"doorman": "part-time"})); !equalIDs(got, []int64{1, 2}) {
		t.Fatalf("doorman=part-time: got %v", got)
	}
	if got := ids(searchRaw(t, repo, search.Raw{"doorman": "virtual"})); !equalIDs(got, []int64{1, 2, 3}) {
		t.Fatalf("doorman=virtual: got %v", got)
	}
	if got := ids(searchRaw(t, repo, search.Raw{"laundry": "in-unit"})); !equalIDs(got, []int64{1}) {
		t.Fatalf("laundry=in-unit: got %v", got)
	}
}

func TestSearch_FlagsAndFloors(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	l := listing(5, 2100, 0, search.LaundryNone, search.DoormanNone)
	l.FloorNumber = 0
	l.Garden = true
	if err := repo.UpsertListing(ctx, l); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if got := ids(searchRaw(t, repo, search.Raw{"garden": "true"})); !equalIDs(got, []int64{5}) {
		t.Fatalf("garden: got %v", got)
	}
	if got := ids(searchRaw(t, repo, search.Raw{"maxFloor": "0"})); !equalIDs(got, []int64{5}) {
		t.Fatalf("maxFloor=0: got %v", got)
	}
	if got := ids(searchRaw(t, repo, search.Raw{"minRent": "3000", "maxRent": "1000"})); len(got) != 0 {
		t.Fatalf("unsatisfiable range should be empty, got %v", got)
	}
}

func TestSearch_RejectsUnknownColumn(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.Search(context.Background(), []search.Predicate{{Column: "password", Op: search.OpEQ, Values: []any{"x"}}})
	if err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestUpsertListing_Updates(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	l := listing(3, 2600, 1, search.LaundryInBuilding, search.DoormanVirtual)
	if err := repo.UpsertListing(ctx, l); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	row, err := repo.GetListing(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Listing.RentAmount != 2600 {
		t.Fatalf("expected updated rent, got %v", row.Listing.RentAmount)
	}
}

func TestGetListing_NotFound(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.GetListing(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
