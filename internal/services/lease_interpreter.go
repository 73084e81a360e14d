package services

import (
	"fmt"

	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// LeaseSchemeAdjustment is the output of the lease special-scheme
// interpreter: base adjustments plus any flat scheme fees.
type LeaseSchemeAdjustment struct {
	UpfrontBaseAdjustment float64
	MonthlyBaseAdjustment float64
	SpecialFees           []business.Fee
	Notes                 []string
}

// ApplyLeaseSpecialScheme computes scheme-specific upfront/monthly base
// adjustments and extra fees for a lease. Threshold schemes use a strict
// comparison: a cap cost exactly at the threshold does not trigger the fee.
// Unknown schemes fail open with zero adjustments.
func ApplyLeaseSpecialScheme(cfg business.LeaseSpecialSchemeConfig, grossCapCost float64) LeaseSchemeAdjustment {
	switch cfg.Scheme {
	case business.LeaseSchemeNone, "":
		return LeaseSchemeAdjustment{Notes: []string{"standard lease taxation, no special scheme"}}
	case business.LeaseSchemeLuxurySurcharge:
		if grossCapCost > cfg.Threshold {
			excess := grossCapCost - cfg.Threshold
			fee := excess * cfg.SurchargeRate
			code := cfg.FeeCode
			if code == "" {
				code = "LUXURY_SURCHARGE"
			}
			return LeaseSchemeAdjustment{
				SpecialFees: []business.Fee{{Code: code, Amount: fee}},
				Notes: []string{fmt.Sprintf(
					"luxury surcharge of %.2f applied: cap cost %.2f exceeds threshold %.2f",
					fee, grossCapCost, cfg.Threshold)},
			}
		}
		return LeaseSchemeAdjustment{Notes: []string{fmt.Sprintf(
			"cap cost %.2f within luxury threshold %.2f, no surcharge", grossCapCost, cfg.Threshold)}}
	case business.LeaseSchemeDistrictMarker:
		// Numeric effect is already carried by the rate components chosen
		// upstream.
		return LeaseSchemeAdjustment{Notes: []string{"named-district lease regime; rates already reflect the district"}}
	default:
		return LeaseSchemeAdjustment{Notes: []string{fmt.Sprintf(
			"unknown lease special scheme %q, no adjustment applied", cfg.Scheme)}}
	}
}
