package services

import (
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// RebateTaxable decides whether a rebate from the given party stays in the
// taxable base. Lookup order: exact party match first, then an ANY wildcard
// rule. When no rule matches, the rebate defaults to non-taxable (reduces
// the base); matched reports whether an explicit rule was found so the
// caller can record the fallback.
func RebateTaxable(party business.RebateParty, rules []business.RebateRule) (taxable bool, matched bool) {
	for _, r := range rules {
		if r.AppliesTo == party {
			return r.Taxable, true
		}
	}
	for _, r := range rules {
		if r.AppliesTo == business.RebateAny {
			return r.Taxable, true
		}
	}
	return false, false
}
