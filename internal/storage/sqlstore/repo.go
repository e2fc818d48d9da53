package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

// Dialect is also the database/sql driver name.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(s)); d {
	case MySQL, SQLite:
		return d, nil
	}
	return "", fmt.Errorf("unsupported db driver %q", s)
}

// Open connects and pings. In-memory SQLite databases are limited to one
// connection since each connection would otherwise get its own database.
func Open(ctx context.Context, d Dialect, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}
	if d == SQLite && (strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")) {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}
	return db, nil
}

type Repo struct {
	db      *sqlx.DB
	dialect Dialect
}

func New(db *sqlx.DB) *Repo { return &Repo{db: db, dialect: Dialect(db.DriverName())} }

func (r *Repo) UpsertContact(ctx context.Context, c domain.Contact) error {
	_, err := r.db.ExecContext(ctx, upsertContactSQL[r.dialect], c.ID, c.Name, c.Email)
	return err
}

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	_, err := r.db.ExecContext(ctx, upsertListingSQL[r.dialect],
		l.ID,
		l.StreetAddress,
		string(l.Neighborhood),
		l.City,
		l.State,
		l.Description,
		l.RentAmount,
		l.Bedrooms,
		l.Bathrooms,
		l.FloorNumber,
		string(l.Laundry),
		string(l.Parking),
		string(l.Doorman),
		l.Garden,
		l.Balcony,
		l.Roof,
		l.CatsAllowed,
		l.DogsAllowed,
		l.Furnished,
		l.AirConditioning,
		l.Dishwasher,
	)
	return err
}

func (r *Repo) UpsertTenancy(ctx context.Context, t domain.Tenancy) error {
	var end any
	if t.EndDate != nil {
		end = *t.EndDate
	}
	_, err := r.db.ExecContext(ctx, upsertTenancySQL[r.dialect],
		t.ID, t.ContactID, t.PropertyID, t.StartDate, end, t.RentAmount)
	return err
}

// listingRecord is one row of selectListingRowsSQL.
type listingRecord struct {
	domain.Listing
	TenancyID   sql.NullInt64   `db:"t_id"`
	ContactID   sql.NullInt64   `db:"t_contact_id"`
	StartDate   sql.NullString  `db:"t_start_date"`
	EndDate     sql.NullString  `db:"t_end_date"`
	TenancyRent sql.NullFloat64 `db:"t_rent_amount"`
}

func (rec listingRecord) row() domain.ListingRow {
	out := domain.ListingRow{Listing: rec.Listing}
	if rec.TenancyID.Valid {
		t := &domain.Tenancy{
			ID:         rec.TenancyID.Int64,
			ContactID:  rec.ContactID.Int64,
			PropertyID: rec.Listing.ID,
			StartDate:  rec.StartDate.String,
			RentAmount: rec.TenancyRent.Float64,
		}
		if rec.EndDate.Valid {
			t.EndDate = &rec.EndDate.String
		}
		out.Tenancy = t
	}
	return out
}

// Search returns every listing matching all preds, paired with its active
// tenancy. No predicates means no filtering.
func (r *Repo) Search(ctx context.Context, preds []search.Predicate) ([]domain.ListingRow, error) {
	where, args, err := buildWhere(preds)
	if err != nil {
		return nil, err
	}

	var recs []listingRecord
	if err := r.db.SelectContext(ctx, &recs, selectListingRowsSQL+where+orderByListingSQL, args...); err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	rows := make([]domain.ListingRow, len(recs))
	for i, rec := range recs {
		rows[i] = rec.row()
	}
	return rows, nil
}

func (r *Repo) GetListing(ctx context.Context, id int64) (domain.ListingRow, error) {
	var rec listingRecord
	err := r.db.GetContext(ctx, &rec, selectListingRowsSQL+" WHERE p.id = ?"+orderByListingSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ListingRow{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ListingRow{}, fmt.Errorf("get listing %d: %w", id, err)
	}
	return rec.row(), nil
}
