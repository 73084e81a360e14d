package responses

import (
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// TaxBases breaks the taxable base into its constituent parts.
// TotalTaxableBase is always the sum of the other three.
type TaxBases struct {
	VehicleBase      float64 `json:"vehicle_base"`
	FeesBase         float64 `json:"fees_base"`
	ProductsBase     float64 `json:"products_base"`
	TotalTaxableBase float64 `json:"total_taxable_base"`
}

// ComponentTax is the tax raised by one rate component.
type ComponentTax struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// TaxTotals holds the per-component breakdown and the summed tax.
// TotalTax is net of any reciprocity credit and any jurisdiction cap;
// ComponentTaxes are the pre-credit amounts.
type TaxTotals struct {
	ComponentTaxes []ComponentTax `json:"component_taxes"`
	TotalTax       float64        `json:"total_tax"`
}

// LeaseBreakdown reports the upfront/monthly split for lease deals.
type LeaseBreakdown struct {
	Method               business.LeaseMethod `json:"method"`
	UpfrontTaxableBase   float64              `json:"upfront_taxable_base"`
	MonthlyTaxableBase   float64              `json:"monthly_taxable_base"` // per payment
	TermMonths           int                  `json:"term_months"`
	UpfrontTax           float64              `json:"upfront_tax"`
	MonthlyTaxPerPayment float64              `json:"monthly_tax_per_payment"`
	SpecialFees          []business.Fee       `json:"special_fees,omitempty"`
}

// TaxDebug is the audit trail for one calculation: every non-default
// decision the engine took, in the order it took them.
type TaxDebug struct {
	AppliedTradeIn           float64  `json:"applied_trade_in"`
	AppliedRebatesTaxable    float64  `json:"applied_rebates_taxable"`
	AppliedRebatesNonTaxable float64  `json:"applied_rebates_non_taxable"`
	TaxableDocFee            float64  `json:"taxable_doc_fee"`
	TaxableFees              float64  `json:"taxable_fees"`
	TaxableServiceContracts  float64  `json:"taxable_service_contracts"`
	TaxableGap               float64  `json:"taxable_gap"`
	ReciprocityCredit        float64  `json:"reciprocity_credit"`
	Notes                    []string `json:"notes"`
}

// TaxCalculationResult contains the calculated tax information for one
// transaction under one jurisdiction's rules.
type TaxCalculationResult struct {
	Mode           business.DealType `json:"mode"`
	StateCode      string            `json:"state_code"`
	RulesVersion   string            `json:"rules_version"`
	Bases          TaxBases          `json:"bases"`
	Taxes          TaxTotals         `json:"taxes"`
	LeaseBreakdown *LeaseBreakdown   `json:"lease_breakdown,omitempty"`
	Debug          TaxDebug          `json:"debug"`
}
