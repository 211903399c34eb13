package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAirportRecord_BestCode(t *testing.T) {
	tests := []struct {
		name   string
		record AirportRecord
		want   *string
	}{
		{
			name: "adjusted code wins",
			record: AirportRecord{
				AdjustedCode: strPtr("TEB"),
				AirportCode:  strPtr("KTEB"),
				IATACode:     strPtr("TEB"),
			},
			want: strPtr("TEB"),
		},
		{
			name: "generic code before iata",
			record: AirportRecord{
				AirportCode: strPtr("KTEB"),
				IATACode:    strPtr("TEB"),
			},
			want: strPtr("KTEB"),
		},
		{
			name: "iata before icao",
			record: AirportRecord{
				IATACode: strPtr("JFK"),
				ICAOCode: strPtr("KJFK"),
			},
			want: strPtr("JFK"),
		},
		{
			name: "icao before local",
			record: AirportRecord{
				ICAOCode:  strPtr("KJFK"),
				LocalCode: strPtr("JFK"),
			},
			want: strPtr("KJFK"),
		},
		{
			name:   "no codes at all",
			record: AirportRecord{Name: "Grass Strip"},
			want:   nil,
		},
		{
			name: "empty strings are skipped",
			record: AirportRecord{
				AdjustedCode: strPtr(""),
				LocalCode:    strPtr("7AK2"),
			},
			want: strPtr("7AK2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.record.BestCode()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestAirportRecord_Codes(t *testing.T) {
	r := AirportRecord{
		IATACode:  strPtr("TEB"),
		ICAOCode:  strPtr("KTEB"),
		LocalCode: strPtr("TEB"),
	}
	assert.Equal(t, []string{"TEB", "KTEB", "TEB"}, r.Codes())

	empty := AirportRecord{}
	assert.Empty(t, empty.Codes())
}

func TestAirportRecord_Label(t *testing.T) {
	tests := []struct {
		name   string
		record AirportRecord
		want   string
	}{
		{
			name: "precomputed dropdown wins",
			record: AirportRecord{
				Name:        "Teterboro Airport",
				Dropdown:    strPtr("Teterboro (TEB), Teterboro, NJ"),
				IATACode:    strPtr("TEB"),
				CountryCode: "US",
			},
			want: "Teterboro (TEB), Teterboro, NJ",
		},
		{
			name: "synthesized with municipality",
			record: AirportRecord{
				Name:         "Teterboro Airport",
				IATACode:     strPtr("TEB"),
				Municipality: strPtr("Teterboro"),
				CountryCode:  "US",
			},
			want: "Teterboro Airport (TEB), Teterboro, US",
		},
		{
			name: "municipality omitted when absent",
			record: AirportRecord{
				Name:        "Somewhere Field",
				IATACode:    strPtr("SMW"),
				CountryCode: "US",
			},
			want: "Somewhere Field (SMW), US",
		},
		{
			name: "no code at all",
			record: AirportRecord{
				Name:         "Grass Strip",
				Municipality: strPtr("Nowhere"),
				CountryCode:  "US",
			},
			want: "Grass Strip, Nowhere, US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Label())
		})
	}
}

func TestFacilityWeights_Weight(t *testing.T) {
	w := DefaultFacilityWeights()

	assert.Equal(t, 3, w.Weight("large_airport"))
	assert.Equal(t, 2, w.Weight("medium_airport"))
	assert.Equal(t, 1, w.Weight("small_airport"))
	assert.Equal(t, 0, w.Weight("heliport"))
	assert.Equal(t, 0, w.Weight(""))
}

func TestItemFromRecord(t *testing.T) {
	lat, lon := 40.85010147, -74.060798645
	r := AirportRecord{
		ID:           42,
		Name:         "Teterboro Airport",
		Municipality: strPtr("Teterboro"),
		CountryCode:  "US",
		CountryName:  "United States",
		IATACode:     strPtr("TEB"),
		ICAOCode:     strPtr("KTEB"),
		AirportType:  "medium_airport",
		Latitude:     &lat,
		Longitude:    &lon,
	}

	item := ItemFromRecord(r)

	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "Teterboro Airport (TEB), Teterboro, US", item.Label)
	if assert.NotNil(t, item.Code) {
		assert.Equal(t, "TEB", *item.Code)
	}
	assert.Equal(t, r.IATACode, item.IATA)
	assert.Equal(t, r.ICAOCode, item.ICAO)
	assert.Equal(t, "United States", item.CountryName)
	assert.Equal(t, &lat, item.Lat)
	assert.Equal(t, &lon, item.Lon)
	assert.Equal(t, "medium_airport", item.AirportType)
}

func TestEmptyResult(t *testing.T) {
	r := EmptyResult()
	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.Empty(t, r.Error)
}

func TestFailedResult(t *testing.T) {
	r := FailedResult("store unreachable")
	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.Equal(t, "store unreachable", r.Error)
}
