package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const testSeed = `{
  "contacts": [{"id": 1, "name": "Ada", "email": "ada@example.com"}],
  "properties": [
    {"id": 1, "streetAddress": "1 Main St", "neighborhood": "Brooklyn", "city": "New York", "state": "NY",
     "rentAmount": 2500, "bedrooms": 2, "bathrooms": 1, "laundry": "in-unit", "parking": "none", "doorman": "none"},
    {"id": 2, "streetAddress": "2 Main St", "neighborhood": "Queens", "city": "New York", "state": "NY",
     "rentAmount": 1800, "bedrooms": 2, "bathrooms": 1, "laundry": "in-building", "parking": "street", "doorman": "virtual"}
  ],
  "tenancies": [{"id": 1, "contactId": 1, "propertyId": 2, "startDate": "2024-01-01", "rentAmount": 1800}]
}`

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rentalctl %v: %v", args, err)
	}
	return out.String()
}

func TestSeedThenSearch(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:"+filepath.Join(dir, "rental.db")+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	t.Setenv("LLM_API_KEY", "")

	seedPath := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(seedPath, []byte(testSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	run(t, "migrate")
	run(t, "seed", "--file", seedPath)

	var cards []struct {
		Property struct {
			ID int64 `json:"id"`
		} `json:"property"`
		Status string `json:"status"`
	}
	out := run(t, "search", "laundry=in-building", "occupancy=occupied")
	if err := json.Unmarshal([]byte(out), &cards); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(cards) != 1 || cards[0].Property.ID != 2 || cards[0].Status != "occupied" {
		t.Fatalf("unexpected cards: %+v", cards)
	}
}

func TestSearch_RejectsMalformedArgument(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"search", "bedrooms"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for argument without '='")
	}
}

func TestSchemaCommand(t *testing.T) {
	var schema map[string]any
	if err := json.Unmarshal([]byte(run(t, "schema")), &schema); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := schema["properties"].(map[string]any)["doorman"]; !ok {
		t.Fatalf("schema missing doorman: %v", schema)
	}
}
