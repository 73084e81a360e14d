package business

// LocalRateSummary is the flat per-location rate summary produced by the
// ZIP lookup collaborator.
type LocalRateSummary struct {
	StateTaxRate        float64 `json:"state_tax_rate"`
	CountyRate          float64 `json:"county_rate"`
	CityRate            float64 `json:"city_rate"`
	SpecialDistrictRate float64 `json:"special_district_rate"`
}

// JurisdictionType classifies one entry of a detailed rate breakdown.
type JurisdictionType string

const (
	JurisdictionState           JurisdictionType = "STATE"
	JurisdictionCounty          JurisdictionType = "COUNTY"
	JurisdictionCity            JurisdictionType = "CITY"
	JurisdictionSpecialDistrict JurisdictionType = "SPECIAL_DISTRICT"
)

// JurisdictionRate is one entry of a detailed jurisdiction rate breakdown,
// e.g. a named transit district.
type JurisdictionRate struct {
	Type JurisdictionType `json:"type"`
	Name string           `json:"name"`
	Rate float64          `json:"rate"`
}
