package domain

import (
	"context"

	"rental_agency/internal/search"
)

type ListingRepository interface {
	// Write paths
	UpsertContact(ctx context.Context, c Contact) error
	UpsertListing(ctx context.Context, l Listing) error
	UpsertTenancy(ctx context.Context, t Tenancy) error

	// Read paths
	Search(ctx context.Context, preds []search.Predicate) ([]ListingRow, error)
	GetListing(ctx context.Context, id int64) (ListingRow, error)
}

// ToolCaller asks a model to turn a natural-language query into arguments
// for the property search tool.
type ToolCaller interface {
	SearchArguments(ctx context.Context, query string) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
