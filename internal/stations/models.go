// Package stations implements the NS stations API client and the flattening
// of its nested payload into fixed-column rows.
package stations

// Response is the decoded body of the stations endpoint.
type Response struct {
	Payload []Station `json:"payload"`
}

// Station is a single station record as returned by the API.
// Every sub-object and scalar may be absent, hence the pointer fields.
type Station struct {
	ID       *ID       `json:"id"`
	Names    *Names    `json:"names"`
	Location *Location `json:"location"`

	StationType                      *string  `json:"stationType"`
	Tracks                           []string `json:"tracks"`
	HasKnownFacilities               *bool    `json:"hasKnownFacilities"`
	AvailableForAccessibleTravel     *bool    `json:"availableForAccessibleTravel"`
	HasTravelAssistance              *bool    `json:"hasTravelAssistance"`
	AreTracksIndependentlyAccessible *bool    `json:"areTracksIndependentlyAccessible"`
	IsBorderStop                     *bool    `json:"isBorderStop"`
	Country                          *string  `json:"country"`
	Radius                           *int     `json:"radius"`
	ApproachingRadius                *int     `json:"approachingRadius"`
	Distance                         *float64 `json:"distance"`
	StartDate                        *string  `json:"startDate"`
	EndDate                          *string  `json:"endDate"`

	NearbyMeLocationID *NearbyMeLocationID `json:"nearbyMeLocationId"`
}

// ID groups the station identifiers.
type ID struct {
	UICCode *string `json:"uicCode"`
	EVACode *string `json:"evaCode"`
	CDCode  *int    `json:"cdCode"`
	Code    *string `json:"code"`
}

// Names groups the station display names.
type Names struct {
	Long     *string  `json:"long"`
	Medium   *string  `json:"medium"`
	Short    *string  `json:"short"`
	Festive  *string  `json:"festive"`
	Synonyms []string `json:"synonyms"`
}

// Location is the station geolocation.
type Location struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// NearbyMeLocationID is the identifier used by the NS app nearby-me feature.
type NearbyMeLocationID struct {
	Value *string `json:"value"`
	Type  *string `json:"type"`
}
