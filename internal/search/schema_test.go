package search_test

import (
	"encoding/json"
	"testing"

	"rental_agency/internal/search"
)

func TestJSONSchema_MatchesFields(t *testing.T) {
	s := search.JSONSchema()
	props, ok := s["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties missing: %+v", s)
	}
	if _, ok := s["required"]; ok {
		t.Fatalf("no field should be required")
	}
	if len(props) != len(search.Fields()) {
		t.Fatalf("expected %d properties, got %d", len(search.Fields()), len(props))
	}

	nb := props["neighborhood"].(map[string]any)
	enum := nb["enum"].([]any)
	if len(enum) != 5 || enum[4] != "Staten Island" {
		t.Fatalf("unexpected neighborhood enum: %v", enum)
	}
	beds := props["bedrooms"].(map[string]any)
	if beds["type"] != "integer" || beds["minimum"] != 0.0 || beds["maximum"] != 4.0 {
		t.Fatalf("unexpected bedrooms schema: %v", beds)
	}
	rent := props["minRent"].(map[string]any)
	if rent["type"] != "number" || rent["exclusiveMinimum"] != 0.0 {
		t.Fatalf("unexpected minRent schema: %v", rent)
	}
	if props["garden"].(map[string]any)["type"] != "boolean" {
		t.Fatalf("garden must be boolean")
	}
}

func TestLookup(t *testing.T) {
	f, ok := search.Lookup("bathrooms")
	if !ok || f.Kind != search.KindInteger || f.Minimum == nil || *f.Minimum != 1 {
		t.Fatalf("unexpected field: %+v", f)
	}
	if _, ok := search.Lookup("pool"); ok {
		t.Fatalf("pool is not a search field")
	}
}

func TestCompileSchema_ChecksArguments(t *testing.T) {
	sch, err := search.CompileSchema()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	decode := func(s string) any {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return v
	}

	if err := sch.Validate(decode(`{"bedrooms":2,"neighborhood":"Staten Island","garden":true}`)); err != nil {
		t.Fatalf("expected valid args, got %v", err)
	}
	for _, bad := range []string{
		`{"bedrooms":7}`,
		`{"minRent":0}`,
		`{"neighborhood":"Atlantis"}`,
		`{"garden":"yes"}`,
	} {
		if err := sch.Validate(decode(bad)); err == nil {
			t.Fatalf("expected %s to be rejected", bad)
		}
	}
}
