package usecase

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// AirportSearchUseCase defines the interface for airport lookup operations.
type AirportSearchUseCase interface {
	// Search resolves a raw query and limit into a ranked, truncated result.
	// It never returns an error for upstream store failures; those degrade to
	// an empty result carrying an error message, because the endpoint feeds a
	// live-typing UI that must never hard-fail.
	Search(ctx context.Context, rawQuery string, limit int) (*domain.SearchResult, error)
}

// airportSearchUseCase implements the search pipeline. The stages run strictly
// in sequence; there is no fan-out within a request, and no cross-request
// state beyond the read-only ranking policy.
type airportSearchUseCase struct {
	store domain.AirportStore
	cache domain.ResponseCache
	cfg   Config
	log   zerolog.Logger
}

// NewAirportSearchUseCase creates the use case with the given store, cache,
// and configuration. If config is nil, defaults are used; zero-valued fields
// of a non-nil config fall back to their defaults individually.
func NewAirportSearchUseCase(store domain.AirportStore, cache domain.ResponseCache, config *Config, log zerolog.Logger) AirportSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.HomeCountry != "" {
			cfg.HomeCountry = config.HomeCountry
		}
		if config.FacilityWeights != nil {
			cfg.FacilityWeights = config.FacilityWeights
		}
		if config.OverfetchLimit > 0 {
			cfg.OverfetchLimit = config.OverfetchLimit
		}
		if config.CacheTTL > 0 {
			cfg.CacheTTL = config.CacheTTL
		}
	}

	return &airportSearchUseCase{
		store: store,
		cache: cache,
		cfg:   cfg,
		log:   log,
	}
}

// Search implements AirportSearchUseCase.
func (uc *airportSearchUseCase) Search(ctx context.Context, rawQuery string, limit int) (*domain.SearchResult, error) {
	q := domain.NormalizeQuery(rawQuery, limit)

	// Guard against firing expensive searches on single keystrokes: no cache
	// lookup, no fetch.
	if q.TooShort() {
		return domain.EmptyResult(), nil
	}

	key := q.CacheKey()
	if payload, ok := uc.cache.TryGet(ctx, key); ok {
		var cached domain.SearchResult
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.log.Debug().Str("cache_key", key).Msg("Airport search cache hit")
			return &cached, nil
		}
		// Corrupt entry: treat as a miss and let the write below replace it.
		uc.log.Warn().Str("cache_key", key).Msg("Discarding undecodable cache entry")
	}

	records, err := uc.store.Search(ctx, domain.AirportFilter{
		Text:       q.Text,
		Code:       q.Code,
		MatchCodes: q.CodeShaped(),
	}, uc.cfg.OverfetchLimit)
	if err != nil {
		// Soft failure: the UI degrades to "no results" instead of an error page.
		uc.log.Error().Err(err).Str("query", q.Text).Msg("Airport reference store fetch failed")
		return domain.FailedResult(err.Error()), nil
	}

	scored := ScoreCandidates(records, q, uc.cfg.FacilityWeights)
	ranked := RankCandidates(scored, uc.cfg)
	result := shapeResult(ranked, q.Limit)

	if payload, err := json.Marshal(result); err == nil {
		uc.cache.TrySet(ctx, key, payload, uc.cfg.CacheTTL)
	}

	return result, nil
}

// shapeResult truncates the ranked candidates to the clamped limit and maps
// each survivor to its public item shape.
func shapeResult(ranked []domain.ScoredCandidate, limit int) *domain.SearchResult {
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	items := make([]domain.AirportItem, len(ranked))
	for i, c := range ranked {
		items[i] = domain.ItemFromRecord(c.Record)
	}

	return &domain.SearchResult{Items: items}
}

// Ensure airportSearchUseCase implements AirportSearchUseCase at compile time.
var _ AirportSearchUseCase = (*airportSearchUseCase)(nil)
