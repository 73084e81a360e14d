package services

import (
	"fmt"
	"strings"

	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// ReciprocityCredit computes the credit against this jurisdiction's tax for
// tax already paid elsewhere on the same vehicle. taxDue is the tax computed
// in this jurisdiction before the credit. Origin-state overrides are checked
// first and replace the generic computation entirely when matched.
func ReciprocityCredit(
	rules business.ReciprocityRules,
	dealType business.DealType,
	originState string,
	taxAlreadyCollected float64,
	proofOfTaxPaid bool,
	taxDue float64,
) (float64, []string) {
	if !rules.Enabled {
		return 0, nil
	}
	if !rules.Scope.Covers(dealType) {
		return 0, []string{fmt.Sprintf("reciprocity does not extend to %s deals here", dealType)}
	}
	if dealType == business.DealTypeLease && rules.HasLeaseException {
		return 0, []string{"lease exception: no reciprocity credit on leases in this jurisdiction"}
	}

	if originState != "" {
		for _, o := range rules.Overrides {
			if strings.EqualFold(o.OriginState, originState) {
				return applyOverride(o, taxDue)
			}
		}
	}

	switch rules.HomeStateBehavior {
	case business.HomeStateNone:
		return 0, []string{"no credit for tax paid in other jurisdictions"}
	case business.HomeStateCreditUpToStateTax:
		if taxAlreadyCollected <= 0 {
			return 0, nil
		}
		if rules.RequireProofOfTaxPaid && !proofOfTaxPaid {
			return 0, []string{"reciprocity credit withheld: proof of tax paid required"}
		}
		credit := taxAlreadyCollected
		if rules.CapAtThisStatesTax && credit > taxDue {
			credit = taxDue
		}
		return credit, []string{fmt.Sprintf(
			"reciprocity credit of %.2f for tax already paid (%.2f collected)", credit, taxAlreadyCollected)}
	default:
		return 0, []string{fmt.Sprintf("unknown reciprocity behavior %q, no credit applied", rules.HomeStateBehavior)}
	}
}

func applyOverride(o business.ReciprocityOverride, taxDue float64) (float64, []string) {
	note := o.Note
	switch o.Treatment {
	case business.OverrideFullExemption:
		if note == "" {
			note = fmt.Sprintf("origin %s fully exempt, tax offset in full", o.OriginState)
		}
		return taxDue, []string{note}
	case business.OverrideNoCredit:
		if note == "" {
			note = fmt.Sprintf("origin %s not eligible for reciprocity credit", o.OriginState)
		}
		return 0, []string{note}
	default:
		return 0, []string{fmt.Sprintf("unknown reciprocity override treatment %q for origin %s", o.Treatment, o.OriginState)}
	}
}
