package search

import (
	"fmt"
	"strings"
)

// Column names a filterable attribute. Storage adapters map each column to
// their own schema.
type Column string

const (
	ColRent            Column = "rent"
	ColBedrooms        Column = "bedrooms"
	ColBathrooms       Column = "bathrooms"
	ColNeighborhood    Column = "neighborhood"
	ColFloor           Column = "floor"
	ColLaundry         Column = "laundry"
	ColParking         Column = "parking"
	ColDoorman         Column = "doorman"
	ColGarden          Column = "garden"
	ColBalcony         Column = "balcony"
	ColRoof            Column = "roof"
	ColFurnished       Column = "furnished"
	ColAirConditioning Column = "air_conditioning"
	ColDishwasher      Column = "dishwasher"
	ColCatsAllowed     Column = "cats_allowed"
	ColDogsAllowed     Column = "dogs_allowed"
	// ColActiveTenancy is the key of the joined active tenancy, null when
	// the listing has none.
	ColActiveTenancy Column = "active_tenancy"
)

type Op string

const (
	OpGTE     Op = ">="
	OpLTE     Op = "<="
	OpEQ      Op = "="
	OpIn      Op = "IN"
	OpNull    Op = "IS NULL"
	OpNotNull Op = "IS NOT NULL"
)

// Predicate is one conjunct of a search. In takes one or more Values, Null
// and NotNull take none, the rest exactly one.
type Predicate struct {
	Column Column
	Op     Op
	Values []any
}

func (p Predicate) String() string {
	switch p.Op {
	case OpNull, OpNotNull:
		return fmt.Sprintf("%s %s", p.Column, p.Op)
	case OpIn:
		vs := make([]string, len(p.Values))
		for i, v := range p.Values {
			vs[i] = fmt.Sprint(v)
		}
		return fmt.Sprintf("%s IN (%s)", p.Column, strings.Join(vs, ", "))
	}
	if len(p.Values) != 1 {
		return fmt.Sprintf("%s %s <%d values>", p.Column, p.Op, len(p.Values))
	}
	return fmt.Sprintf("%s %s %v", p.Column, p.Op, p.Values[0])
}

var flagColumns = []struct {
	get func(Params) *bool
	col Column
}{
	{func(p Params) *bool { return p.Garden }, ColGarden},
	{func(p Params) *bool { return p.Balcony }, ColBalcony},
	{func(p Params) *bool { return p.Roof }, ColRoof},
	{func(p Params) *bool { return p.Furnished }, ColFurnished},
	{func(p Params) *bool { return p.AirConditioning }, ColAirConditioning},
	{func(p Params) *bool { return p.Dishwasher }, ColDishwasher},
	{func(p Params) *bool { return p.CatsAllowed }, ColCatsAllowed},
	{func(p Params) *bool { return p.DogsAllowed }, ColDogsAllowed},
}

// Build turns a validated search into predicates to be ANDed together. An
// empty result matches every listing.
func Build(p Params) []Predicate {
	var out []Predicate
	cmp := func(c Column, op Op, v any) {
		out = append(out, Predicate{Column: c, Op: op, Values: []any{v}})
	}

	if p.Occupancy != nil {
		switch *p.Occupancy {
		case Vacant:
			out = append(out, Predicate{Column: ColActiveTenancy, Op: OpNull})
		case Occupied:
			out = append(out, Predicate{Column: ColActiveTenancy, Op: OpNotNull})
		}
	}
	if p.MinRent != nil {
		cmp(ColRent, OpGTE, *p.MinRent)
	}
	if p.MaxRent != nil {
		cmp(ColRent, OpLTE, *p.MaxRent)
	}
	if p.Bedrooms != nil {
		cmp(ColBedrooms, OpGTE, *p.Bedrooms)
	}
	if p.Bathrooms != nil {
		cmp(ColBathrooms, OpGTE, *p.Bathrooms)
	}
	if p.Neighborhood != nil {
		cmp(ColNeighborhood, OpEQ, string(*p.Neighborhood))
	}
	if p.MinFloor != nil {
		cmp(ColFloor, OpGTE, *p.MinFloor)
	}
	if p.MaxFloor != nil {
		cmp(ColFloor, OpLTE, *p.MaxFloor)
	}
	if p.Laundry != nil {
		out = append(out, in(ColLaundry, "laundry", string(*p.Laundry)))
	}
	if p.Parking != nil {
		out = append(out, in(ColParking, "parking", string(*p.Parking)))
	}
	if p.Doorman != nil {
		out = append(out, in(ColDoorman, "doorman", string(*p.Doorman)))
	}
	for _, fc := range flagColumns {
		if b := fc.get(p); b != nil && *b {
			cmp(fc.col, OpEQ, true)
		}
	}
	return out
}

func in(c Column, field, tier string) Predicate {
	accepted := Hierarchy(field, tier)
	vals := make([]any, len(accepted))
	for i, t := range accepted {
		vals[i] = t
	}
	return Predicate{Column: c, Op: OpIn, Values: vals}
}
