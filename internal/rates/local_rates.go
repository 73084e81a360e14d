// Package rates resolves a location to the local tax-rate summary that
// feeds the rate-component aggregator. The tables are built once at startup
// and read-only thereafter.
package rates

import (
	"strings"

	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// Lookup resolves ZIP codes to local rate summaries. Fallback order:
// exact ZIP, then the state's average local rate, then zero for states
// without local vehicle tax.
type Lookup struct {
	byZIP        map[string]business.LocalRateSummary
	stateAverage map[string]business.LocalRateSummary
}

// NewLookup builds the lookup from the built-in rate tables.
func NewLookup() *Lookup {
	return &Lookup{
		byZIP:        zipRates,
		stateAverage: stateAverageRates,
	}
}

// ForZIP returns the local rate summary for a five-digit ZIP, falling back
// to the state average when the ZIP is not in the table.
func (l *Lookup) ForZIP(zip, stateCode string) business.LocalRateSummary {
	if summary, ok := l.byZIP[strings.TrimSpace(zip)]; ok {
		return summary
	}
	return l.ForState(stateCode)
}

// ForState returns the state's average local rate summary, or a zero-rate
// summary for states without local vehicle tax.
func (l *Lookup) ForState(stateCode string) business.LocalRateSummary {
	if summary, ok := l.stateAverage[strings.ToUpper(strings.TrimSpace(stateCode))]; ok {
		return summary
	}
	return business.LocalRateSummary{}
}

// zipRates carries exact rates for known ZIPs. Production deployments load
// the full table from the rate vendor's feed; this built-in set covers the
// major metro areas of the implemented states.
var zipRates = map[string]business.LocalRateSummary{
	"85001": {StateTaxRate: 0.056, CountyRate: 0.007, CityRate: 0.023},    // Phoenix, AZ
	"90001": {StateTaxRate: 0.0725, CountyRate: 0.0225},                   // Los Angeles, CA
	"94102": {StateTaxRate: 0.0725, CountyRate: 0.01375},                  // San Francisco, CA
	"33101": {StateTaxRate: 0.06, CountyRate: 0.01},                       // Miami, FL
	"30301": {StateTaxRate: 0.07},                                         // Atlanta, GA (TAVT)
	"96801": {StateTaxRate: 0.04, CountyRate: 0.005},                      // Honolulu, HI
	"60601": {StateTaxRate: 0.0625, CountyRate: 0.0175, CityRate: 0.0125}, // Chicago, IL
	"27601": {StateTaxRate: 0.03},                                         // Raleigh, NC (HUT)
	"07101": {StateTaxRate: 0.06625},                                      // Newark, NJ
	"10001": {StateTaxRate: 0.04, CityRate: 0.045, SpecialDistrictRate: 0.00375}, // New York, NY (MCTD)
	"97201": {StateTaxRate: 0.005},                                        // Portland, OR (privilege tax)
	"29201": {StateTaxRate: 0.05},                                         // Columbia, SC (IMF)
	"73301": {StateTaxRate: 0.0625},                                       // Austin, TX
	"23219": {StateTaxRate: 0.0415},                                       // Richmond, VA
	"98101": {StateTaxRate: 0.065, CityRate: 0.0285, SpecialDistrictRate: 0.009}, // Seattle, WA (RTA)
}

// stateAverageRates is the per-state average local rate fallback. States
// whose vehicle tax has no local component carry only the state rate.
var stateAverageRates = map[string]business.LocalRateSummary{
	"AZ": {StateTaxRate: 0.056, CountyRate: 0.007, CityRate: 0.021},
	"CA": {StateTaxRate: 0.0725, CountyRate: 0.0155},
	"FL": {StateTaxRate: 0.06, CountyRate: 0.01},
	"GA": {StateTaxRate: 0.07},
	"HI": {StateTaxRate: 0.04, CountyRate: 0.0044},
	"IL": {StateTaxRate: 0.0625, CountyRate: 0.0125},
	"NC": {StateTaxRate: 0.03},
	"NJ": {StateTaxRate: 0.06625},
	"NY": {StateTaxRate: 0.04, CityRate: 0.0452},
	"OR": {StateTaxRate: 0.005},
	"SC": {StateTaxRate: 0.05},
	"TX": {StateTaxRate: 0.0625},
	"VA": {StateTaxRate: 0.0415},
	"WA": {StateTaxRate: 0.065, CityRate: 0.0238},
}
