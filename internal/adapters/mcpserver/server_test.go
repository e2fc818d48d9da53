package mcpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"rental_agency/internal/adapters/mcpserver"
	"rental_agency/internal/app"
	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

// ---- fakes ----

type fakeRepo struct {
	rows  []domain.ListingRow
	preds []search.Predicate
	err   error
}

func (f *fakeRepo) UpsertContact(ctx context.Context, c domain.Contact) error { return nil }
func (f *fakeRepo) UpsertListing(ctx context.Context, l domain.Listing) error { return nil }
func (f *fakeRepo) UpsertTenancy(ctx context.Context, t domain.Tenancy) error { return nil }
func (f *fakeRepo) Search(ctx context.Context, preds []search.Predicate) ([]domain.ListingRow, error) {
	f.preds = preds
	return f.rows, f.err
}
func (f *fakeRepo) GetListing(ctx context.Context, id int64) (domain.ListingRow, error) {
	return domain.ListingRow{}, domain.ErrNotFound
}

func newService(repo *fakeRepo) *app.SearchService {
	return app.NewSearchService(repo, search.NewParser(search.Strict, zerolog.Nop()))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = mcpserver.ToolName
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

// ---- tests ----

func TestSearchHandler_ReturnsCards(t *testing.T) {
	repo := &fakeRepo{rows: []domain.ListingRow{
		{Listing: domain.Listing{ID: 7, Neighborhood: search.Brooklyn, RentAmount: 3100, Bedrooms: 2, Bathrooms: 1}},
	}}
	h := mcpserver.SearchHandler(newService(repo))

	res, err := h(context.Background(), callRequest(map[string]any{
		"neighborhood": "Brooklyn",
		"bedrooms":     2.0,
		"doorman":      "virtual",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res)
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Here are the properties we found:\n") {
		t.Fatalf("unexpected text: %q", text)
	}

	var cards []map[string]any
	if err := json.Unmarshal([]byte(strings.SplitN(text, "\n", 2)[1]), &cards); err != nil {
		t.Fatalf("decode cards: %v", err)
	}
	if len(cards) != 1 || cards[0]["status"] != "vacant" {
		t.Fatalf("unexpected cards: %v", cards)
	}
	if len(repo.preds) != 3 {
		t.Fatalf("expected 3 predicates, got %v", repo.preds)
	}
}

func TestSearchHandler_InvalidArgumentsSearchEverything(t *testing.T) {
	repo := &fakeRepo{}
	res, err := mcpserver.SearchHandler(newService(repo))(context.Background(), callRequest(map[string]any{"bedrooms": 9.0}))
	if err != nil || res.IsError {
		t.Fatalf("invalid args must not fail the call: %v %+v", err, res)
	}
	if len(repo.preds) != 0 {
		t.Fatalf("expected no predicates, got %v", repo.preds)
	}
	if got := resultText(t, res); !strings.HasSuffix(got, "[]") {
		t.Fatalf("expected empty list, got %q", got)
	}
}

func TestSearchHandler_StoreError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	res, err := mcpserver.SearchHandler(newService(repo))(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("store errors are tool errors, got %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error result")
	}
}

func TestNew_ListsSearchTool(t *testing.T) {
	s := mcpserver.New(newService(&fakeRepo{}))
	msg := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(out), `"name":"searchForProperty"`) || !strings.Contains(string(out), `"Staten Island"`) {
		t.Fatalf("tool not listed with its schema: %s", out)
	}
}
