package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

// AIService turns a natural-language query into search filters through a
// tool-calling model.
type AIService struct {
	caller   domain.ToolCaller
	parser   *search.Parser
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewAIService accepts a nil caller (AI search disabled) and a nil cache.
func NewAIService(c domain.ToolCaller, p *search.Parser, cache domain.Cache, ttl time.Duration) *AIService {
	return &AIService{caller: c, parser: p, cache: cache, cacheTTL: ttl}
}

func (s *AIService) Enabled() bool { return s.caller != nil }

// Filters returns the validated filters for query. The model's arguments go
// through Serialize/Parse like any other raw input. Results are cached by
// normalized query; cache failures are ignored.
func (s *AIService) Filters(ctx context.Context, query string) (search.Params, error) {
	if s.caller == nil {
		return search.Params{}, domain.ErrAIDisabled
	}

	key := cacheKey(query)
	if s.cache != nil {
		var raw search.Raw
		if ok, _ := s.cache.Get(ctx, key, &raw); ok {
			return s.parser.Parse(raw), nil
		}
	}

	args, err := s.caller.SearchArguments(ctx, query)
	if err != nil {
		return search.Params{}, err
	}
	checkArguments("ai", args)
	p := s.parser.ParseArguments(args)
	log.Debug().Str("query", query).Str("filters", search.Serialize(p).Encode()).Msg("ai search filters")

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, search.Serialize(p), int(s.cacheTTL.Seconds()))
	}
	return p, nil
}

// cacheKey folds case and whitespace so trivially different phrasings of
// the same query share an entry.
func cacheKey(query string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha1.Sum([]byte(norm))
	return "ai:" + hex.EncodeToString(sum[:])
}
