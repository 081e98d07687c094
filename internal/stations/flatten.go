package stations

import (
	"strconv"
	"strings"
)

// Row is one station with every nested path resolved to a top-level column.
// Nil means the source record did not carry the field; the list-valued
// columns are never nil.
type Row struct {
	UICCode *string `json:"uicCode" yaml:"uicCode"`
	EVACode *string `json:"evaCode" yaml:"evaCode"`
	CDCode  *int    `json:"cdCode" yaml:"cdCode"`
	Code    *string `json:"code" yaml:"code"`

	StationType *string `json:"stationType" yaml:"stationType"`

	NameLong    *string  `json:"name_long" yaml:"name_long"`
	NameMedium  *string  `json:"name_medium" yaml:"name_medium"`
	NameShort   *string  `json:"name_short" yaml:"name_short"`
	NameFestive *string  `json:"name_festive" yaml:"name_festive"`
	Synonyms    []string `json:"synonyms" yaml:"synonyms"`

	Lat *float64 `json:"lat" yaml:"lat"`
	Lng *float64 `json:"lng" yaml:"lng"`

	Tracks []string `json:"tracks" yaml:"tracks"`

	HasKnownFacilities               *bool `json:"hasKnownFacilities" yaml:"hasKnownFacilities"`
	AvailableForAccessibleTravel     *bool `json:"availableForAccessibleTravel" yaml:"availableForAccessibleTravel"`
	HasTravelAssistance              *bool `json:"hasTravelAssistance" yaml:"hasTravelAssistance"`
	AreTracksIndependentlyAccessible *bool `json:"areTracksIndependentlyAccessible" yaml:"areTracksIndependentlyAccessible"`
	IsBorderStop                     *bool `json:"isBorderStop" yaml:"isBorderStop"`

	Country           *string  `json:"country" yaml:"country"`
	Radius            *int     `json:"radius" yaml:"radius"`
	ApproachingRadius *int     `json:"approachingRadius" yaml:"approachingRadius"`
	Distance          *float64 `json:"distance" yaml:"distance"`
	StartDate         *string  `json:"startDate" yaml:"startDate"`
	EndDate           *string  `json:"endDate" yaml:"endDate"`

	NearbyMeLocationIDValue *string `json:"nearbyMeLocationId_value" yaml:"nearbyMeLocationId_value"`
	NearbyMeLocationIDType  *string `json:"nearbyMeLocationId_type" yaml:"nearbyMeLocationId_type"`
}

// columns is the fixed, ordered column set shared by every row.
var columns = []string{
	"uicCode",
	"evaCode",
	"cdCode",
	"code",
	"stationType",
	"name_long",
	"name_medium",
	"name_short",
	"name_festive",
	"synonyms",
	"lat",
	"lng",
	"tracks",
	"hasKnownFacilities",
	"availableForAccessibleTravel",
	"hasTravelAssistance",
	"areTracksIndependentlyAccessible",
	"isBorderStop",
	"country",
	"radius",
	"approachingRadius",
	"distance",
	"startDate",
	"endDate",
	"nearbyMeLocationId_value",
	"nearbyMeLocationId_type",
}

// Columns returns the ordered column names, identical for every row.
func Columns() []string {
	c := make([]string, len(columns))
	copy(c, columns)
	return c
}

// Flatten converts the decoded response into one row per station, preserving
// input order. A nil response or an absent payload yields zero rows. It never
// fails: missing fields at any level default to nil, or to an empty list for
// the list-valued columns.
func Flatten(resp *Response) []Row {
	if resp == nil {
		return []Row{}
	}

	rows := make([]Row, 0, len(resp.Payload))
	for _, s := range resp.Payload {
		rows = append(rows, flattenStation(s))
	}
	return rows
}

func flattenStation(s Station) Row {
	r := Row{
		StationType:                      s.StationType,
		Tracks:                           s.Tracks,
		HasKnownFacilities:               s.HasKnownFacilities,
		AvailableForAccessibleTravel:     s.AvailableForAccessibleTravel,
		HasTravelAssistance:              s.HasTravelAssistance,
		AreTracksIndependentlyAccessible: s.AreTracksIndependentlyAccessible,
		IsBorderStop:                     s.IsBorderStop,
		Country:                          s.Country,
		Radius:                           s.Radius,
		ApproachingRadius:                s.ApproachingRadius,
		Distance:                         s.Distance,
		StartDate:                        s.StartDate,
		EndDate:                          s.EndDate,

		Synonyms: []string{},
	}
	if r.Tracks == nil {
		r.Tracks = []string{}
	}

	if s.ID != nil {
		r.UICCode = s.ID.UICCode
		r.EVACode = s.ID.EVACode
		r.CDCode = s.ID.CDCode
		r.Code = s.ID.Code
	}
	if s.Names != nil {
		r.NameLong = s.Names.Long
		r.NameMedium = s.Names.Medium
		r.NameShort = s.Names.Short
		r.NameFestive = s.Names.Festive
		if s.Names.Synonyms != nil {
			r.Synonyms = s.Names.Synonyms
		}
	}
	if s.Location != nil {
		r.Lat = s.Location.Lat
		r.Lng = s.Location.Lng
	}
	if s.NearbyMeLocationID != nil {
		r.NearbyMeLocationIDValue = s.NearbyMeLocationID.Value
		r.NearbyMeLocationIDType = s.NearbyMeLocationID.Type
	}

	return r
}

// Values renders the row cells as strings in Columns order.
// Nil cells render empty.
func (r Row) Values() []string {
	return []string{
		stringCell(r.UICCode),
		stringCell(r.EVACode),
		intCell(r.CDCode),
		stringCell(r.Code),
		stringCell(r.StationType),
		stringCell(r.NameLong),
		stringCell(r.NameMedium),
		stringCell(r.NameShort),
		stringCell(r.NameFestive),
		strings.Join(r.Synonyms, ","),
		floatCell(r.Lat),
		floatCell(r.Lng),
		strings.Join(r.Tracks, ","),
		boolCell(r.HasKnownFacilities),
		boolCell(r.AvailableForAccessibleTravel),
		boolCell(r.HasTravelAssistance),
		boolCell(r.AreTracksIndependentlyAccessible),
		boolCell(r.IsBorderStop),
		stringCell(r.Country),
		intCell(r.Radius),
		intCell(r.ApproachingRadius),
		floatCell(r.Distance),
		stringCell(r.StartDate),
		stringCell(r.EndDate),
		stringCell(r.NearbyMeLocationIDValue),
		stringCell(r.NearbyMeLocationIDType),
	}
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
