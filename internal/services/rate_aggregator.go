package services

import (
	"strings"

	"github.com/dealerstack/dealertax-api/internal/constants"
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// ComponentsFromSummary builds an ordered rate-component list from a flat
// local-tax summary. STATE is always present, even at a zero rate; the local
// components are included only when non-zero.
func ComponentsFromSummary(summary business.LocalRateSummary) []business.RateComponent {
	components := []business.RateComponent{
		{Label: constants.StateRateLabel, Rate: summary.StateTaxRate},
	}
	if summary.CountyRate != 0 {
		components = append(components, business.RateComponent{
			Label: constants.CountyRateLabel,
			Rate:  summary.CountyRate,
		})
	}
	if summary.CityRate != 0 {
		components = append(components, business.RateComponent{
			Label: constants.CityRateLabel,
			Rate:  summary.CityRate,
		})
	}
	if summary.SpecialDistrictRate != 0 {
		components = append(components, business.RateComponent{
			Label: constants.SpecialDistrictRateLabel,
			Rate:  summary.SpecialDistrictRate,
		})
	}
	return components
}

// ComponentsFromJurisdictions builds an ordered rate-component list from a
// detailed jurisdiction breakdown, preserving input order. Special districts
// get a synthesized DISTRICT_<NAME> label so multiple districts stay
// distinguishable in the output breakdown.
func ComponentsFromJurisdictions(breakdown []business.JurisdictionRate) []business.RateComponent {
	components := make([]business.RateComponent, 0, len(breakdown))
	for _, j := range breakdown {
		var label string
		switch j.Type {
		case business.JurisdictionState:
			label = constants.StateRateLabel
		case business.JurisdictionCounty:
			label = constants.CountyRateLabel
		case business.JurisdictionCity:
			label = constants.CityRateLabel
		case business.JurisdictionSpecialDistrict:
			label = constants.DistrictLabelPrefix + districtSuffix(j.Name)
		default:
			label = string(j.Type)
		}
		components = append(components, business.RateComponent{Label: label, Rate: j.Rate})
	}
	return components
}

func districtSuffix(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	return strings.Join(strings.Fields(upper), "_")
}
