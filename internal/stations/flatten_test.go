package stations_test

import (
	"encoding/json"
	"testing"

	"github.com/nlrail/ns-stations/internal/stations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		resp *stations.Response

		wantRows int
	}{
		"Nil response": {
			resp:     nil,
			wantRows: 0,
		},
		"Absent payload": {
			resp:     &stations.Response{},
			wantRows: 0,
		},
		"Empty payload": {
			resp:     &stations.Response{Payload: []stations.Station{}},
			wantRows: 0,
		},
		"One empty station": {
			resp:     &stations.Response{Payload: []stations.Station{{}}},
			wantRows: 1,
		},
		"Multiple stations": {
			resp: &stations.Response{Payload: []stations.Station{
				{ID: &stations.ID{UICCode: ptr("8400058")}},
				{},
				{Country: ptr("NL")},
			}},
			wantRows: 3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rows := stations.Flatten(tc.resp)

			require.NotNil(t, rows, "Flatten should never return nil")
			assert.Len(t, rows, tc.wantRows, "Flatten should return one row per station")
			for _, r := range rows {
				assert.Len(t, r.Values(), len(stations.Columns()), "Every row should carry the full fixed column set")
				assert.NotNil(t, r.Synonyms, "Synonyms should default to an empty list")
				assert.NotNil(t, r.Tracks, "Tracks should default to an empty list")
			}
		})
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	t.Parallel()

	resp := &stations.Response{Payload: []stations.Station{
		{ID: &stations.ID{Code: ptr("UT")}},
		{ID: &stations.ID{Code: ptr("ASD")}},
		{ID: &stations.ID{Code: ptr("GVC")}},
	}}

	rows := stations.Flatten(resp)
	require.Len(t, rows, 3)
	assert.Equal(t, "UT", *rows[0].Code)
	assert.Equal(t, "ASD", *rows[1].Code)
	assert.Equal(t, "GVC", *rows[2].Code)
}

func TestFlattenMissingSubObjects(t *testing.T) {
	t.Parallel()

	rows := stations.Flatten(&stations.Response{Payload: []stations.Station{
		{Names: &stations.Names{Long: ptr("Arnhem Centraal")}},
	}})
	require.Len(t, rows, 1)
	r := rows[0]

	// No id or location sub-object: the columns exist but stay unset.
	assert.Nil(t, r.UICCode, "uicCode should be nil without an id sub-object")
	assert.Nil(t, r.EVACode, "evaCode should be nil without an id sub-object")
	assert.Nil(t, r.Lat, "lat should be nil without a location sub-object")
	assert.Nil(t, r.Lng, "lng should be nil without a location sub-object")
	assert.Nil(t, r.NearbyMeLocationIDValue, "nearbyMeLocationId_value should be nil without the sub-object")
	require.NotNil(t, r.NameLong)
	assert.Equal(t, "Arnhem Centraal", *r.NameLong)
}

func TestFlattenPreservesSynonyms(t *testing.T) {
	t.Parallel()

	synonyms := []string{"Den Bosch", "'s-Hertogenbosch CS"}
	rows := stations.Flatten(&stations.Response{Payload: []stations.Station{
		{Names: &stations.Names{Synonyms: synonyms}},
	}})
	require.Len(t, rows, 1)
	assert.Equal(t, synonyms, rows[0].Synonyms, "Synonyms should pass through unchanged")
}

func TestFlattenEndToEnd(t *testing.T) {
	t.Parallel()

	body := `{"payload": [{"id": {"uicCode": "8400058"}, "names": {"long": "Utrecht Centraal"}, "location": {"lat": 52.09, "lng": 5.11}}]}`

	var resp stations.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp), "Setup: could not decode body")

	rows := stations.Flatten(&resp)
	require.Len(t, rows, 1, "One station should flatten to one row")
	r := rows[0]

	require.NotNil(t, r.UICCode)
	assert.Equal(t, "8400058", *r.UICCode)
	require.NotNil(t, r.NameLong)
	assert.Equal(t, "Utrecht Centraal", *r.NameLong)
	require.NotNil(t, r.Lat)
	assert.Equal(t, 52.09, *r.Lat)
	require.NotNil(t, r.Lng)
	assert.Equal(t, 5.11, *r.Lng)

	// Everything the record did not carry defaults per its type.
	assert.Nil(t, r.EVACode)
	assert.Nil(t, r.CDCode)
	assert.Nil(t, r.Code)
	assert.Nil(t, r.StationType)
	assert.Nil(t, r.NameMedium)
	assert.Nil(t, r.NameShort)
	assert.Nil(t, r.NameFestive)
	assert.Empty(t, r.Synonyms)
	assert.Empty(t, r.Tracks)
	assert.Nil(t, r.HasKnownFacilities)
	assert.Nil(t, r.AvailableForAccessibleTravel)
	assert.Nil(t, r.HasTravelAssistance)
	assert.Nil(t, r.AreTracksIndependentlyAccessible)
	assert.Nil(t, r.IsBorderStop)
	assert.Nil(t, r.Country)
	assert.Nil(t, r.Radius)
	assert.Nil(t, r.ApproachingRadius)
	assert.Nil(t, r.Distance)
	assert.Nil(t, r.StartDate)
	assert.Nil(t, r.EndDate)
	assert.Nil(t, r.NearbyMeLocationIDValue)
	assert.Nil(t, r.NearbyMeLocationIDType)
}

func TestColumns(t *testing.T) {
	t.Parallel()

	cols := stations.Columns()
	assert.Len(t, cols, 26, "The fixed column set should be complete")
	assert.Equal(t, "uicCode", cols[0])
	assert.Equal(t, "nearbyMeLocationId_type", cols[len(cols)-1])

	// Mutating the returned slice must not affect later callers.
	cols[0] = "mutated"
	assert.Equal(t, "uicCode", stations.Columns()[0])
}

func TestValues(t *testing.T) {
	t.Parallel()

	rows := stations.Flatten(&stations.Response{Payload: []stations.Station{
		{
			ID:       &stations.ID{UICCode: ptr("8400058"), CDCode: ptr(58)},
			Location: &stations.Location{Lat: ptr(52.09)},
			Names:    &stations.Names{Synonyms: []string{"Utrecht CS"}},
			Tracks:   []string{"1", "2"},

			IsBorderStop: ptr(false),
		},
	}})
	require.Len(t, rows, 1)

	values := rows[0].Values()
	require.Len(t, values, len(stations.Columns()))

	cells := map[string]string{}
	for i, c := range stations.Columns() {
		cells[c] = values[i]
	}

	assert.Equal(t, "8400058", cells["uicCode"])
	assert.Equal(t, "58", cells["cdCode"])
	assert.Equal(t, "52.09", cells["lat"])
	assert.Equal(t, "Utrecht CS", cells["synonyms"])
	assert.Equal(t, "1,2", cells["tracks"])
	assert.Equal(t, "false", cells["isBorderStop"])
	assert.Equal(t, "", cells["lng"], "Nil cells should render empty")
	assert.Equal(t, "", cells["country"], "Nil cells should render empty")
}
