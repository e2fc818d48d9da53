package app

import (
	"context"

	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

type SearchService struct {
	repo   domain.ListingRepository
	parser *search.Parser
}

func NewSearchService(r domain.ListingRepository, p *search.Parser) *SearchService {
	return &SearchService{repo: r, parser: p}
}

// Search parses raw and runs it. Invalid params never fail the call; they
// reduce the filters applied, which the returned Params reports.
func (s *SearchService) Search(ctx context.Context, raw search.Raw) (search.Params, []domain.ListingRow, error) {
	p := s.parser.Parse(raw)
	rows, err := s.Execute(ctx, p)
	return p, rows, err
}

// SearchArguments runs a search from decoded tool-call arguments.
func (s *SearchService) SearchArguments(ctx context.Context, args map[string]any) (search.Params, []domain.ListingRow, error) {
	checkArguments("mcp", args)
	p := s.parser.ParseArguments(args)
	rows, err := s.Execute(ctx, p)
	return p, rows, err
}

func (s *SearchService) Execute(ctx context.Context, p search.Params) ([]domain.ListingRow, error) {
	return s.repo.Search(ctx, search.Build(p))
}

func (s *SearchService) GetListing(ctx context.Context, id int64) (domain.ListingRow, error) {
	return s.repo.GetListing(ctx, id)
}
