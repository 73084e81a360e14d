package services

import (
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// FeeTaxable looks a fee code up in the given rule list. Unknown codes are
// not taxable rather than an error, so callers can pass novel fee codes
// without crashing.
func FeeTaxable(code string, rules []business.FeeTaxRule) (taxable bool, matched bool) {
	for _, r := range rules {
		if r.Code == code {
			return r.Taxable, true
		}
	}
	return false, false
}

// DocFeeTaxableLease resolves the lease doc-fee treatment.
// ONLY_UPFRONT means taxed once at signing, never re-taxed monthly, so it
// resolves to taxable here.
func DocFeeTaxableLease(taxability business.DocFeeTaxability, retailDocFeeTaxable bool) bool {
	switch taxability {
	case business.DocFeeAlways:
		return true
	case business.DocFeeNever:
		return false
	case business.DocFeeFollowRetailRule:
		return retailDocFeeTaxable
	case business.DocFeeOnlyUpfront:
		return true
	default:
		return retailDocFeeTaxable
	}
}
