package domain

// SearchResult is the public response document for an airport search.
// It is also the unit of caching: the marshalled form of this struct is what
// gets stored, so a cache hit reproduces the original response exactly.
type SearchResult struct {
	// Items is the ranked, truncated list of airports (never null)
	Items []AirportItem `json:"items"`

	// Error carries the upstream failure message on a soft failure.
	// The endpoint still responds 200 in that case; the calling UI degrades
	// to "no results" rather than surfacing a hard error.
	Error string `json:"error,omitempty"`
}

// AirportItem is the public shape of a single airport in a search response.
type AirportItem struct {
	ID           int64    `json:"id"`
	Label        string   `json:"label"`
	Code         *string  `json:"code"`
	IATA         *string  `json:"iata"`
	ICAO         *string  `json:"icao"`
	Name         string   `json:"name"`
	Municipality *string  `json:"municipality"`
	CountryCode  string   `json:"country_code"`
	CountryName  string   `json:"country_name"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	AirportType  string   `json:"airport_type"`
}

// EmptyResult returns a result with no items and no error.
// Used for short queries, which resolve without any network calls.
func EmptyResult() *SearchResult {
	return &SearchResult{Items: []AirportItem{}}
}

// FailedResult returns an empty result carrying the given error message.
func FailedResult(message string) *SearchResult {
	return &SearchResult{Items: []AirportItem{}, Error: message}
}

// ItemFromRecord maps a reference record to its public item shape.
func ItemFromRecord(r AirportRecord) AirportItem {
	return AirportItem{
		ID:           r.ID,
		Label:        r.Label(),
		Code:         r.BestCode(),
		IATA:         r.IATACode,
		ICAO:         r.ICAOCode,
		Name:         r.Name,
		Municipality: r.Municipality,
		CountryCode:  r.CountryCode,
		CountryName:  r.CountryName,
		Lat:          r.Latitude,
		Lon:          r.Longitude,
		AirportType:  r.AirportType,
	}
}
