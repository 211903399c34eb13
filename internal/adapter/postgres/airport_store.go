// Package postgres implements the airport reference store on PostgreSQL.
// The airports table is read-only reference data loaded out of band; this
// adapter only ever issues a single bounded SELECT per search.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// searchColumns is the fixed column set scanned into domain.AirportRecord.
const searchColumns = `id, name, municipality, region, continent, country_code, country_name,
	iata_code, icao_code, local_code, airport_code, adjusted_code,
	airport_type, latitude, longitude, dropdown, search_tags`

// codeColumns are the five identity-code columns matched when the query is
// shaped like an airport code.
var codeColumns = []string{"airport_code", "icao_code", "iata_code", "local_code", "adjusted_code"}

// AirportStore queries the airports reference table through a pgx pool.
type AirportStore struct {
	pool *pgxpool.Pool
}

// NewAirportStore creates an AirportStore backed by the given pool.
func NewAirportStore(pool *pgxpool.Pool) *AirportStore {
	return &AirportStore{pool: pool}
}

// Search implements domain.AirportStore. It issues one disjunctive query and
// returns an unranked candidate set of at most limit rows. The relevance
// ordering (code priority, locale, facility size, text score) cannot be
// expressed as a store-native ORDER BY, so ranking happens after retrieval.
func (s *AirportStore) Search(ctx context.Context, filter domain.AirportFilter, limit int) ([]domain.AirportRecord, error) {
	sql, args := buildSearchQuery(filter, limit)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []domain.AirportRecord
	for rows.Next() {
		var r domain.AirportRecord
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Municipality, &r.Region, &r.Continent,
			&r.CountryCode, &r.CountryName,
			&r.IATACode, &r.ICAOCode, &r.LocalCode, &r.AirportCode, &r.AdjustedCode,
			&r.AirportType, &r.Latitude, &r.Longitude, &r.Dropdown, &r.SearchTags,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return records, nil
}

// buildSearchQuery assembles the disjunctive filter ("match any of"):
//   - case-insensitive substring match on name, municipality, country name
//   - containment of the upper-cased query in the search-tag set
//   - when the query is code-shaped, exact-equals and prefix-match against
//     every code column
func buildSearchQuery(filter domain.AirportFilter, limit int) (string, []any) {
	args := []any{filter.Text, filter.Code}

	clauses := []string{
		`name ILIKE '%' || $1 || '%'`,
		`municipality ILIKE '%' || $1 || '%'`,
		`country_name ILIKE '%' || $1 || '%'`,
		`$2 = ANY(search_tags)`,
	}

	if filter.MatchCodes {
		for _, col := range codeColumns {
			clauses = append(clauses,
				col+` = $2`,
				col+` LIKE $2 || '%'`,
			)
		}
	}

	args = append(args, limit)
	sql := fmt.Sprintf(
		"SELECT %s FROM airports WHERE %s LIMIT $%d",
		searchColumns,
		strings.Join(clauses, " OR "),
		len(args),
	)
	return sql, args
}

// Ensure AirportStore implements domain.AirportStore at compile time.
var _ domain.AirportStore = (*AirportStore)(nil)
