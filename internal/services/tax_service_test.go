package services_test

import (
	"testing"

	"github.com/dealerstack/dealertax-api/internal/logger"
	"github.com/dealerstack/dealertax-api/internal/services"
	"github.com/dealerstack/dealertax-api/internal/types/api/params"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func stateRate(rate float64) []business.RateComponent {
	return []business.RateComponent{{Label: "STATE", Rate: rate}}
}

// baseRules returns a plain full-trade-in, state-only jurisdiction that the
// individual tests override per axis.
func baseRules() *business.TaxRulesConfig {
	return &business.TaxRulesConfig{
		StateCode:        "XX",
		Version:          "test",
		TradeInPolicy:    business.TradeInPolicy{Kind: business.TradeInFull},
		DocFeeTaxable:    true,
		TaxOnAccessories: true,
		VehicleTaxScheme: business.SchemeStateOnly,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
	}
}

func TestCalculateTax_FullTradeIn(t *testing.T) {
	service := services.NewTaxService()

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeRetail,
		VehiclePrice: 30000,
		TradeInValue: 10000,
		Rates:        stateRate(0.06),
	}, baseRules())

	assert.Equal(t, business.DealTypeRetail, result.Mode)
	assert.Equal(t, 10000.0, result.Debug.AppliedTradeIn)
	assert.Equal(t, 20000.0, result.Bases.VehicleBase)
	assert.InDelta(t, 1200.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_NonTaxableManufacturerRebate(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.Rebates = []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}}

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:           business.DealTypeRetail,
		VehiclePrice:       30000,
		RebateManufacturer: 2000,
		Rates:              stateRate(0.06),
	}, rules)

	assert.Equal(t, 2000.0, result.Debug.AppliedRebatesNonTaxable)
	assert.Equal(t, 28000.0, result.Bases.VehicleBase)
	assert.InDelta(t, 1680.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_TaxableRebateKeepsBase(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.Rebates = []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: true}}

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:           business.DealTypeRetail,
		VehiclePrice:       30000,
		RebateManufacturer: 2000,
		Rates:              stateRate(0.06),
	}, rules)

	assert.Equal(t, 2000.0, result.Debug.AppliedRebatesTaxable)
	assert.Equal(t, 0.0, result.Debug.AppliedRebatesNonTaxable)
	assert.Equal(t, 30000.0, result.Bases.VehicleBase)
}

func TestCalculateTax_StatutoryCap(t *testing.T) {
	// SC-style IMF: 5% of 100000 computes to 5000, clamped to the $500 cap.
	service := services.NewTaxService()
	rules := baseRules()
	rules.VehicleTaxScheme = business.SchemeSpecialIMF
	rules.TaxCapAmount = 500

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeRetail,
		VehiclePrice: 100000,
		Rates:        stateRate(0.05),
	}, rules)

	require.Len(t, result.Taxes.ComponentTaxes, 1)
	assert.InDelta(t, 5000.0, result.Taxes.ComponentTaxes[0].Amount, 1e-9)
	assert.Equal(t, 500.0, result.Taxes.TotalTax)
}

func TestCalculateTax_StateOnlyFiltersLocalRates(t *testing.T) {
	service := services.NewTaxService()

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeRetail,
		VehiclePrice: 10000,
		Rates: []business.RateComponent{
			{Label: "STATE", Rate: 0.06},
			{Label: "COUNTY", Rate: 0.01},
			{Label: "CITY", Rate: 0.005},
		},
	}, baseRules())

	require.Len(t, result.Taxes.ComponentTaxes, 1)
	assert.Equal(t, "STATE", result.Taxes.ComponentTaxes[0].Label)
	assert.InDelta(t, 600.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_UnknownFeeCodeExcluded(t *testing.T) {
	service := services.NewTaxService()

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeRetail,
		VehiclePrice: 10000,
		OtherFees:    []business.Fee{{Code: "WIDGET", Amount: 250}},
		Rates:        stateRate(0.06),
	}, baseRules())

	assert.Equal(t, 0.0, result.Bases.FeesBase)
	assert.Contains(t, result.Debug.Notes, "no tax rule for fee WIDGET, excluded from base")
}

func TestCalculateTax_VehicleBaseNeverNegative(t *testing.T) {
	service := services.NewTaxService()

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeRetail,
		VehiclePrice: 5000,
		TradeInValue: 20000,
		Rates:        stateRate(0.06),
	}, baseRules())

	assert.Equal(t, 0.0, result.Bases.VehicleBase)
	assert.Equal(t, 0.0, result.Taxes.TotalTax)
	// FULL policy still reports the full value as applied credit.
	assert.Equal(t, 20000.0, result.Debug.AppliedTradeIn)
}

func TestCalculateTax_BasesSumInvariant(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.TaxOnServiceContracts = true
	rules.TaxOnGap = true
	rules.FeeTaxRules = []business.FeeTaxRule{{Code: "ELECTRONIC_FILING", Taxable: true}}

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:          business.DealTypeRetail,
		VehiclePrice:      25000,
		AccessoriesAmount: 1200,
		DocFee:            150,
		OtherFees:         []business.Fee{{Code: "ELECTRONIC_FILING", Amount: 30}},
		ServiceContracts:  2400,
		Gap:               800,
		Rates:             stateRate(0.0625),
	}, rules)

	assert.Equal(t, result.Bases.TotalTaxableBase,
		result.Bases.VehicleBase+result.Bases.FeesBase+result.Bases.ProductsBase)
	assert.Equal(t, 26200.0, result.Bases.VehicleBase)
	assert.Equal(t, 180.0, result.Bases.FeesBase)
	assert.Equal(t, 3200.0, result.Bases.ProductsBase)

	var sum float64
	for _, ct := range result.Taxes.ComponentTaxes {
		sum += ct.Amount
	}
	assert.InDelta(t, sum, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_Deterministic(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.Rebates = []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: false}}

	p := params.TaxCalculationParams{
		DealType:           business.DealTypeRetail,
		VehiclePrice:       31999.99,
		TradeInValue:       7500,
		RebateManufacturer: 1000,
		DocFee:             299,
		Rates:              stateRate(0.0625),
	}

	first := service.CalculateTax(p, rules)
	second := service.CalculateTax(p, rules)
	assert.Equal(t, first, second)
}

func TestCalculateTax_ReciprocityCreditCapped(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.Reciprocity = business.ReciprocityRules{
		Enabled:            true,
		Scope:              business.ReciprocityBoth,
		HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
		Basis:              business.BasisTaxPaid,
		CapAtThisStatesTax: true,
	}

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:            business.DealTypeRetail,
		VehiclePrice:        10000,
		TaxAlreadyCollected: 900, // more than the 600 due here
		Rates:               stateRate(0.06),
	}, rules)

	assert.InDelta(t, 600.0, result.Debug.ReciprocityCredit, 1e-9)
	assert.Equal(t, 0.0, result.Taxes.TotalTax)
}

func TestCalculateTax_LeaseMonthly(t *testing.T) {
	service := services.NewTaxService()

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:         business.DealTypeLease,
		GrossCapCost:     30000,
		CapCostReduction: 2000,
		MonthlyPayment:   400,
		TermMonths:       36,
		Rates:            stateRate(0.06),
	}, baseRules())

	require.NotNil(t, result.LeaseBreakdown)
	assert.Equal(t, business.LeaseMonthly, result.LeaseBreakdown.Method)
	// Cap cost reduction taxed upfront, payments taxed over the term.
	assert.Equal(t, 16400.0, result.Bases.VehicleBase)
	assert.InDelta(t, 120.0, result.LeaseBreakdown.UpfrontTax, 1e-9)
	assert.InDelta(t, 24.0, result.LeaseBreakdown.MonthlyTaxPerPayment, 1e-9)
	assert.InDelta(t, 984.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_LeaseFullUpfront(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = business.LeaseFullUpfront

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:         business.DealTypeLease,
		GrossCapCost:     30000,
		CapCostReduction: 2000,
		MonthlyPayment:   400,
		TermMonths:       36,
		Rates:            stateRate(0.06),
	}, rules)

	require.NotNil(t, result.LeaseBreakdown)
	// Whole adjusted cap cost taxed at signing, nothing monthly.
	assert.Equal(t, 28000.0, result.Bases.VehicleBase)
	assert.Equal(t, 0.0, result.LeaseBreakdown.MonthlyTaxPerPayment)
	assert.InDelta(t, 1680.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_LeaseFullUpfrontFeesStayAtSigning(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = business.LeaseFullUpfront
	rules.LeaseRules.TaxFeesUpfront = false

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:       business.DealTypeLease,
		GrossCapCost:   30000,
		DocFee:         150,
		MonthlyPayment: 400,
		TermMonths:     36,
		Rates:          stateRate(0.0625),
	}, rules)

	require.NotNil(t, result.LeaseBreakdown)
	// There is no payment stream to amortize the doc fee onto: everything,
	// fees included, is taxed once at signing.
	assert.Equal(t, 0.0, result.LeaseBreakdown.MonthlyTaxPerPayment)
	assert.Equal(t, 0.0, result.LeaseBreakdown.MonthlyTaxableBase)
	assert.Equal(t, 30150.0, result.LeaseBreakdown.UpfrontTaxableBase)
	assert.InDelta(t, 30150*0.0625, result.LeaseBreakdown.UpfrontTax, 1e-9)
	assert.InDelta(t, result.Taxes.TotalTax, result.LeaseBreakdown.UpfrontTax, 1e-9)
	assert.NotContains(t, result.Debug.Notes, "fees and products amortized across the payment stream")
}

func TestCalculateTax_LeaseHybrid(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = business.LeaseHybrid

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:         business.DealTypeLease,
		GrossCapCost:     30000,
		CapCostReduction: 2000,
		MonthlyPayment:   400,
		TermMonths:       36,
		Rates:            stateRate(0.06),
	}, rules)

	// Cap cost reduction upfront plus the payment stream.
	assert.Equal(t, 16400.0, result.Bases.VehicleBase)
	assert.InDelta(t, 984.0, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_LeaseLuxurySurcharge(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = business.LeaseFullUpfront
	rules.LeaseRules.SpecialScheme = business.LeaseSpecialSchemeConfig{
		Scheme:        business.LeaseSchemeLuxurySurcharge,
		Threshold:     45000,
		SurchargeRate: 0.004,
		FeeCode:       "LUXURY_SURCHARGE",
	}

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeLease,
		GrossCapCost: 50000,
		TermMonths:   36,
		Rates:        stateRate(0.06),
	}, rules)

	require.Len(t, result.Taxes.ComponentTaxes, 2)
	assert.Equal(t, "LUXURY_SURCHARGE", result.Taxes.ComponentTaxes[1].Label)
	assert.InDelta(t, 20.0, result.Taxes.ComponentTaxes[1].Amount, 1e-9)
	assert.InDelta(t, 50000*0.06+20, result.Taxes.TotalTax, 1e-9)
}

func TestCalculateTax_LeaseTradeInReducesUpfront(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = business.LeaseFullUpfront

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:     business.DealTypeLease,
		GrossCapCost: 30000,
		TradeInValue: 8000,
		TermMonths:   36,
		Rates:        stateRate(0.06),
	}, rules)

	assert.Equal(t, 8000.0, result.Debug.AppliedTradeIn)
	assert.Equal(t, 22000.0, result.Bases.VehicleBase)
}

func TestCalculateTax_UnknownLeaseMethodDegradesToMonthly(t *testing.T) {
	service := services.NewTaxService()
	rules := baseRules()
	rules.LeaseRules.Method = "QUARTERLY"

	result := service.CalculateTax(params.TaxCalculationParams{
		DealType:       business.DealTypeLease,
		MonthlyPayment: 500,
		TermMonths:     24,
		Rates:          stateRate(0.05),
	}, rules)

	assert.Equal(t, 12000.0, result.Bases.VehicleBase)
	assert.Contains(t, result.Debug.Notes, `unknown lease method "QUARTERLY", taxing the monthly payment stream`)
}
