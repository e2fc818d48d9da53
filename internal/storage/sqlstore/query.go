package sqlstore

import (
	"fmt"
	"strings"

	"rental_agency/internal/search"
)

// columnSQL is the whitelist of filterable columns. Predicates naming
// anything else are rejected.
var columnSQL = map[search.Column]string{
	search.ColRent:            "p.rent_amount",
	search.ColBedrooms:        "p.bedrooms",
	search.ColBathrooms:       "p.bathrooms",
	search.ColNeighborhood:    "p.neighborhood",
	search.ColFloor:           "p.floor_number",
	search.ColLaundry:         "p.laundry",
	search.ColParking:         "p.parking",
	search.ColDoorman:         "p.doorman",
	search.ColGarden:          "p.garden",
	search.ColBalcony:         "p.balcony",
	search.ColRoof:            "p.roof",
	search.ColFurnished:       "p.furnished",
	search.ColAirConditioning: "p.air_conditioning",
	search.ColDishwasher:      "p.dishwasher",
	search.ColCatsAllowed:     "p.cats_allowed",
	search.ColDogsAllowed:     "p.dogs_allowed",
	search.ColActiveTenancy:   "t.id",
}

type queryBuilder struct {
	conditions []string
	args       []any
}

func (qb *queryBuilder) add(p search.Predicate) error {
	col, ok := columnSQL[p.Column]
	if !ok {
		return fmt.Errorf("unknown column %q", p.Column)
	}
	switch p.Op {
	case search.OpGTE, search.OpLTE, search.OpEQ:
		if len(p.Values) != 1 {
			return fmt.Errorf("%s %s: want 1 value, got %d", p.Column, p.Op, len(p.Values))
		}
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s %s ?", col, p.Op))
		qb.args = append(qb.args, p.Values[0])
	case search.OpIn:
		if len(p.Values) == 0 {
			return fmt.Errorf("%s IN: no values", p.Column)
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(p.Values)), ", ")
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s IN (%s)", col, marks))
		qb.args = append(qb.args, p.Values...)
	case search.OpNull, search.OpNotNull:
		if len(p.Values) != 0 {
			return fmt.Errorf("%s %s takes no values", p.Column, p.Op)
		}
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s %s", col, p.Op))
	default:
		return fmt.Errorf("unsupported operator %q", p.Op)
	}
	return nil
}

// build returns the WHERE clause (empty when there are no conditions, which
// matches every row) and its arguments.
func (qb *queryBuilder) build() (string, []any) {
	if len(qb.conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

func buildWhere(preds []search.Predicate) (string, []any, error) {
	qb := &queryBuilder{}
	for _, p := range preds {
		if err := qb.add(p); err != nil {
			return "", nil, fmt.Errorf("build where: %w", err)
		}
	}
	where, args := qb.build()
	return where, args, nil
}
