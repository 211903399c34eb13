package usecase

import (
	"strings"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// Relevance signal weights.
// Signals are evaluated independently and summed; no signal suppresses another.
const (
	// scoreExactCode is awarded when any code field equals the query code.
	scoreExactCode = 100

	// scorePrefixCode is awarded when any code field starts with the query code.
	// An exact match also earns this, by addition.
	scorePrefixCode = 50

	// scoreTextMatch is awarded when the normalized query appears in the
	// display name, municipality, or country name.
	scoreTextMatch = 10

	// facilityBoostFactor multiplies the facility-size weight into the score.
	facilityBoostFactor = 2
)

// ScoreCandidates computes the relevance score for each candidate record.
//
// The score is the sum of four independent signals:
//   - exact code match (+100)
//   - prefix code match (+50)
//   - text containment in name, municipality, or country name (+10)
//   - facility-size weight x 2 (0-6 with the default table)
//
// Scoring does not reorder; the ranker owns ordering. Performance is O(n)
// over the candidate set.
func ScoreCandidates(records []domain.AirportRecord, q domain.Query, weights domain.FacilityWeights) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, len(records))
	for i, r := range records {
		scored[i] = domain.ScoredCandidate{
			Record: r,
			Score:  scoreRecord(&r, q, weights),
		}
	}
	return scored
}

func scoreRecord(r *domain.AirportRecord, q domain.Query, weights domain.FacilityWeights) int {
	score := 0

	if q.Code != "" {
		exact, prefix := false, false
		for _, code := range r.Codes() {
			upper := strings.ToUpper(code)
			if upper == q.Code {
				exact = true
			}
			if strings.HasPrefix(upper, q.Code) {
				prefix = true
			}
		}
		if exact {
			score += scoreExactCode
		}
		if prefix {
			score += scorePrefixCode
		}
	}

	if q.Text != "" && textMatches(r, q.Text) {
		score += scoreTextMatch
	}

	score += weights.Weight(r.AirportType) * facilityBoostFactor

	return score
}

// textMatches reports whether the normalized query token appears in the
// record's display name, municipality, or country name.
func textMatches(r *domain.AirportRecord, text string) bool {
	if strings.Contains(strings.ToLower(r.Name), text) {
		return true
	}
	if r.Municipality != nil && strings.Contains(strings.ToLower(*r.Municipality), text) {
		return true
	}
	return strings.Contains(strings.ToLower(r.CountryName), text)
}
