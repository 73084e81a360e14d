package services

import (
	"fmt"

	"github.com/dealerstack/dealertax-api/internal/constants"
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// ApplyVehicleTaxScheme filters or annotates the rate-component list
// according to the jurisdiction's overall scheme. The behavioral differences
// of the named special schemes (TAVT's assessed-value base, privilege tax
// rate tables) are resolved by the caller choosing the rate inputs; here
// they only pass through with an identifying note.
//
// Unknown scheme tags fail open: all rates pass through, with a note
// flagging the unrecognized scheme.
func ApplyVehicleTaxScheme(scheme business.VehicleTaxScheme, rates []business.RateComponent) ([]business.RateComponent, []string) {
	switch scheme {
	case business.SchemeStateOnly:
		filtered := make([]business.RateComponent, 0, 1)
		for _, r := range rates {
			if r.Label == constants.StateRateLabel {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) < len(rates) {
			return filtered, []string{"local rate components excluded: state-only vehicle tax"}
		}
		return filtered, nil
	case business.SchemeStatePlusLocal:
		return rates, nil
	case business.SchemeSpecialHUT:
		return rates, []string{"highway use tax (HUT) scheme in effect"}
	case business.SchemeSpecialTAVT:
		return rates, []string{"title ad valorem tax (TAVT) scheme in effect; base follows the higher of price or assessed value as supplied"}
	case business.SchemeSpecialGET:
		return rates, []string{"general excise tax (GET) scheme in effect"}
	case business.SchemeSpecialIMF:
		return rates, []string{"infrastructure maintenance fee (IMF) scheme in effect"}
	case business.SchemeSpecialVLT:
		return rates, []string{"vehicle license tax (VLT) assessed separately from point-of-sale tax"}
	case business.SchemeDMVPrivilegeTax:
		return rates, []string{"DMV vehicle privilege tax scheme in effect"}
	default:
		return rates, []string{fmt.Sprintf("unknown vehicle tax scheme %q, applying all rate components", scheme)}
	}
}
