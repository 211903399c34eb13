package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// RankCandidates stably sorts candidates by the fixed multi-key priority:
//
//  1. home-market country code first (binary, not graded)
//  2. facility-size weight, descending
//  3. relevance score, descending
//  4. display label, ascending, locale-aware (full-determinism tie-break)
//
// The ordering intentionally overrides raw text relevance with business
// priority: the overwhelming majority of lookups target major domestic
// airports, so a domestic hub outranks a text-heavier minor or foreign match.
//
// Does not mutate the input slice.
func RankCandidates(candidates []domain.ScoredCandidate, cfg Config) []domain.ScoredCandidate {
	if len(candidates) <= 1 {
		return candidates
	}

	result := make([]domain.ScoredCandidate, len(candidates))
	copy(result, candidates)

	// A collator is not safe for concurrent use, so each ranking pass gets
	// its own instance.
	collator := collate.New(language.English)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := &result[i], &result[j]

		aHome := a.Record.CountryCode == cfg.HomeCountry
		bHome := b.Record.CountryCode == cfg.HomeCountry
		if aHome != bHome {
			return aHome
		}

		aWeight := cfg.FacilityWeights.Weight(a.Record.AirportType)
		bWeight := cfg.FacilityWeights.Weight(b.Record.AirportType)
		if aWeight != bWeight {
			return aWeight > bWeight
		}

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		return collator.CompareString(a.Record.Label(), b.Record.Label()) < 0
	})

	return result
}
