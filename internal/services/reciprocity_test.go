package services_test

import (
	"testing"

	"github.com/dealerstack/dealertax-api/internal/services"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func reciprocityRules() business.ReciprocityRules {
	return business.ReciprocityRules{
		Enabled:            true,
		Scope:              business.ReciprocityBoth,
		HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
		Basis:              business.BasisTaxPaid,
		CapAtThisStatesTax: true,
	}
}

func TestReciprocityCredit_Disabled(t *testing.T) {
	rules := reciprocityRules()
	rules.Enabled = false
	credit, notes := services.ReciprocityCredit(rules, business.DealTypeRetail, "", 500, false, 1000)
	assert.Zero(t, credit)
	assert.Empty(t, notes)
}

func TestReciprocityCredit_ScopeExcludesDealType(t *testing.T) {
	rules := reciprocityRules()
	rules.Scope = business.ReciprocityRetail
	credit, notes := services.ReciprocityCredit(rules, business.DealTypeLease, "", 500, false, 1000)
	assert.Zero(t, credit)
	assert.Contains(t, notes, "reciprocity does not extend to LEASE deals here")
}

func TestReciprocityCredit_LeaseException(t *testing.T) {
	rules := reciprocityRules()
	rules.HasLeaseException = true
	credit, _ := services.ReciprocityCredit(rules, business.DealTypeLease, "", 500, false, 1000)
	assert.Zero(t, credit)
}

func TestReciprocityCredit_CappedAtTaxDue(t *testing.T) {
	credit, _ := services.ReciprocityCredit(reciprocityRules(), business.DealTypeRetail, "", 900, false, 600)
	assert.Equal(t, 600.0, credit)
}

func TestReciprocityCredit_FullWhenBelowTaxDue(t *testing.T) {
	credit, _ := services.ReciprocityCredit(reciprocityRules(), business.DealTypeRetail, "", 400, false, 600)
	assert.Equal(t, 400.0, credit)
}

func TestReciprocityCredit_UncappedWhenFlagOff(t *testing.T) {
	rules := reciprocityRules()
	rules.CapAtThisStatesTax = false
	credit, _ := services.ReciprocityCredit(rules, business.DealTypeRetail, "", 900, false, 600)
	assert.Equal(t, 900.0, credit)
}

func TestReciprocityCredit_ProofRequired(t *testing.T) {
	rules := reciprocityRules()
	rules.RequireProofOfTaxPaid = true

	credit, notes := services.ReciprocityCredit(rules, business.DealTypeRetail, "", 500, false, 1000)
	assert.Zero(t, credit)
	assert.Contains(t, notes, "reciprocity credit withheld: proof of tax paid required")

	credit, _ = services.ReciprocityCredit(rules, business.DealTypeRetail, "", 500, true, 1000)
	assert.Equal(t, 500.0, credit)
}

func TestReciprocityCredit_BehaviorNone(t *testing.T) {
	rules := reciprocityRules()
	rules.HomeStateBehavior = business.HomeStateNone
	credit, notes := services.ReciprocityCredit(rules, business.DealTypeRetail, "", 500, false, 1000)
	assert.Zero(t, credit)
	assert.Contains(t, notes, "no credit for tax paid in other jurisdictions")
}

func TestReciprocityCredit_OverrideFullExemption(t *testing.T) {
	rules := reciprocityRules()
	rules.Overrides = []business.ReciprocityOverride{
		{OriginState: "TRIBAL", Treatment: business.OverrideFullExemption},
	}

	// Override replaces the generic computation entirely: the credit equals
	// the tax due here regardless of what was collected elsewhere.
	credit, _ := services.ReciprocityCredit(rules, business.DealTypeRetail, "tribal", 0, false, 1234.5)
	assert.Equal(t, 1234.5, credit)
}

func TestReciprocityCredit_OverrideNoCredit(t *testing.T) {
	rules := reciprocityRules()
	rules.Overrides = []business.ReciprocityOverride{
		{OriginState: "ZZ", Treatment: business.OverrideNoCredit},
	}

	credit, _ := services.ReciprocityCredit(rules, business.DealTypeRetail, "ZZ", 800, true, 1000)
	assert.Zero(t, credit)
}
