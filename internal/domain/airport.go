// Package domain contains the core business entities and rules for airport lookup.
// These entities are storage-agnostic and form the foundation upon which the search
// pipeline (normalize, fetch, score, rank, shape) is built.
package domain

// AirportRecord represents a single airport from the reference dataset.
// The dataset is externally sourced and read-only to this service; none of the
// identity codes is guaranteed to be present, but at least one usually is.
type AirportRecord struct {
	// ID is the primary key of the record in the reference store
	ID int64

	// Name is the display name of the airport (e.g., "Teterboro Airport")
	Name string

	// Municipality is the city the airport serves (may be absent)
	Municipality *string

	// Region is the ISO region code (e.g., "US-NJ")
	Region *string

	// Continent is the two-letter continent code (e.g., "NA")
	Continent *string

	// CountryCode is the ISO 3166-1 alpha-2 country code (e.g., "US")
	CountryCode string

	// CountryName is the full country name (e.g., "United States")
	CountryName string

	// IATACode is the IATA-style code (e.g., "TEB")
	IATACode *string

	// ICAOCode is the ICAO/GPS-style code (e.g., "KTEB")
	ICAOCode *string

	// LocalCode is the local authority code
	LocalCode *string

	// AirportCode is the generic airport code maintained alongside the record
	AirportCode *string

	// AdjustedCode is the operator-adjusted variant of the generic code
	AdjustedCode *string

	// AirportType is the facility-size category (e.g., "large_airport")
	AirportType string

	// Latitude and Longitude are the airport coordinates (may be absent)
	Latitude  *float64
	Longitude *float64

	// Dropdown is a precomputed display label for pickers (may be absent)
	Dropdown *string

	// SearchTags is a set of precomputed free-text search tags
	SearchTags []string
}

// Codes returns the non-empty identity codes of the record.
// The order matches the best-code priority used by BestCode.
func (r *AirportRecord) Codes() []string {
	codes := make([]string, 0, 5)
	for _, c := range []*string{r.AdjustedCode, r.AirportCode, r.IATACode, r.ICAOCode, r.LocalCode} {
		if c != nil && *c != "" {
			codes = append(codes, *c)
		}
	}
	return codes
}

// BestCode returns the single most presentable code for the record, by priority:
// adjusted code, generic airport code, IATA, ICAO/GPS, local code.
// Returns nil when the record carries no code at all.
func (r *AirportRecord) BestCode() *string {
	for _, c := range []*string{r.AdjustedCode, r.AirportCode, r.IATACode, r.ICAOCode, r.LocalCode} {
		if c != nil && *c != "" {
			return c
		}
	}
	return nil
}

// Label returns the display label used in pickers and as the deterministic
// ranking tie-break. The precomputed dropdown field wins when present;
// otherwise the label is synthesized as "{name} ({code}), {municipality}, {country}"
// with the municipality segment omitted when absent.
func (r *AirportRecord) Label() string {
	if r.Dropdown != nil && *r.Dropdown != "" {
		return *r.Dropdown
	}

	label := r.Name
	if code := r.BestCode(); code != nil {
		label += " (" + *code + ")"
	}
	if r.Municipality != nil && *r.Municipality != "" {
		label += ", " + *r.Municipality
	}
	if r.CountryCode != "" {
		label += ", " + r.CountryCode
	}
	return label
}

// ScoredCandidate pairs an AirportRecord with its relevance score.
// Candidates are request-scoped: created by the scorer, consumed by the ranker,
// and discarded once the response is built.
type ScoredCandidate struct {
	Record AirportRecord
	Score  int
}

// FacilityWeights maps a facility-size category to its ranking weight.
// The table is injected into the scoring and ranking policy rather than
// hard-coded so the policy stays testable in isolation.
type FacilityWeights map[string]int

// DefaultFacilityWeights returns the standard weight table:
// large airports dominate, unknown categories weigh nothing.
func DefaultFacilityWeights() FacilityWeights {
	return FacilityWeights{
		"large_airport":  3,
		"medium_airport": 2,
		"small_airport":  1,
	}
}

// Weight returns the weight of the given facility-size category.
// Unknown categories weigh zero.
func (w FacilityWeights) Weight(airportType string) int {
	return w[airportType]
}
