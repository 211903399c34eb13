// Package testutil provides test helper functions and fixtures for unit and
// integration tests.
package testutil

import (
	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Airport builds a minimal airport record with the given identity.
// Optional fields are left absent; tests set what they care about.
func Airport(id int64, name, iata, countryCode, airportType string) domain.AirportRecord {
	r := domain.AirportRecord{
		ID:          id,
		Name:        name,
		CountryCode: countryCode,
		CountryName: countryCode,
		AirportType: airportType,
	}
	if iata != "" {
		r.IATACode = Ptr(iata)
	}
	return r
}

// SampleAirports returns a realistic candidate set covering the ranking
// dimensions: a home-market match, foreign matches, and the three facility
// sizes. IDs are stable so tests can assert on ordering.
func SampleAirports() []domain.AirportRecord {
	return []domain.AirportRecord{
		{
			ID:           1,
			Name:         "Teterboro Airport",
			Municipality: Ptr("Teterboro"),
			Region:       Ptr("US-NJ"),
			Continent:    Ptr("NA"),
			CountryCode:  "US",
			CountryName:  "United States",
			IATACode:     Ptr("TEB"),
			ICAOCode:     Ptr("KTEB"),
			AirportType:  "medium_airport",
			Latitude:     Ptr(40.85010147),
			Longitude:    Ptr(-74.060798645),
			SearchTags:   []string{"TEB", "KTEB"},
		},
		{
			ID:           2,
			Name:         "Tbilisi International Airport",
			Municipality: Ptr("Tbilisi"),
			Region:       Ptr("GE-TB"),
			Continent:    Ptr("AS"),
			CountryCode:  "GE",
			CountryName:  "Georgia",
			IATACode:     Ptr("TBS"),
			ICAOCode:     Ptr("UGTB"),
			AirportType:  "large_airport",
			Latitude:     Ptr(41.6692008972),
			Longitude:    Ptr(44.95470047),
			SearchTags:   []string{"TBS", "UGTB"},
		},
		{
			ID:           3,
			Name:         "Teniente Coronel Luis A. Mantilla International Airport",
			Municipality: Ptr("Tulcán"),
			Region:       Ptr("EC-C"),
			Continent:    Ptr("SA"),
			CountryCode:  "EC",
			CountryName:  "Ecuador",
			IATACode:     Ptr("TUA"),
			ICAOCode:     Ptr("SETU"),
			AirportType:  "small_airport",
			Latitude:     Ptr(0.809505999088),
			Longitude:    Ptr(-77.7080993652),
			SearchTags:   []string{"TUA", "SETU"},
		},
		{
			ID:           4,
			Name:         "Newark Liberty International Airport",
			Municipality: Ptr("Newark"),
			Region:       Ptr("US-NJ"),
			Continent:    Ptr("NA"),
			CountryCode:  "US",
			CountryName:  "United States",
			IATACode:     Ptr("EWR"),
			ICAOCode:     Ptr("KEWR"),
			AirportType:  "large_airport",
			Latitude:     Ptr(40.692501068115),
			Longitude:    Ptr(-74.168701171875),
			SearchTags:   []string{"EWR", "KEWR"},
		},
	}
}

// LondonAirports returns a candidate set of same-country airports of mixed
// facility sizes, for exercising facility-weight ordering in isolation.
func LondonAirports() []domain.AirportRecord {
	return []domain.AirportRecord{
		{
			ID:           10,
			Name:         "London Biggin Hill Airport",
			Municipality: Ptr("London"),
			CountryCode:  "GB",
			CountryName:  "United Kingdom",
			IATACode:     Ptr("BQH"),
			ICAOCode:     Ptr("EGKB"),
			AirportType:  "medium_airport",
		},
		{
			ID:           11,
			Name:         "London Heathrow Airport",
			Municipality: Ptr("London"),
			CountryCode:  "GB",
			CountryName:  "United Kingdom",
			IATACode:     Ptr("LHR"),
			ICAOCode:     Ptr("EGLL"),
			AirportType:  "large_airport",
		},
		{
			ID:           12,
			Name:         "London Heliport",
			Municipality: Ptr("London"),
			CountryCode:  "GB",
			CountryName:  "United Kingdom",
			ICAOCode:     Ptr("EGLW"),
			AirportType:  "heliport",
		},
		{
			ID:           13,
			Name:         "London Gatwick Airport",
			Municipality: Ptr("London"),
			CountryCode:  "GB",
			CountryName:  "United Kingdom",
			IATACode:     Ptr("LGW"),
			ICAOCode:     Ptr("EGKK"),
			AirportType:  "large_airport",
		},
	}
}
