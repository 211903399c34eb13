package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// AirportFilter describes the disjunctive candidate filter sent to the
// reference store. Every populated clause widens the match ("match any of").
type AirportFilter struct {
	// Text is the display-normalized token for substring matching against
	// name, municipality, and country name
	Text string

	// Code is the upper-cased raw query, used for exact and prefix code
	// matching and for containment against the precomputed search-tag set
	Code string

	// MatchCodes enables the code clauses; set only when the raw query is
	// shaped like an airport code (2-5 alphanumerics)
	MatchCodes bool
}

// AirportStore is the outbound port for the reference search store.
// Search returns an unranked, overfetched candidate set of at most limit rows;
// relevance ordering is applied by the caller, never by the store.
type AirportStore interface {
	Search(ctx context.Context, filter AirportFilter, limit int) ([]AirportRecord, error)
}
