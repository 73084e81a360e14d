package params

import (
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// TaxCalculationParams contains one transaction's line items. Created by the
// caller per calculation and never mutated by the engine.
type TaxCalculationParams struct {
	DealType           business.DealType
	VehiclePrice       float64
	AccessoriesAmount  float64
	TradeInValue       float64
	RebateManufacturer float64
	RebateDealer       float64
	DocFee             float64
	OtherFees          []business.Fee
	ServiceContracts   float64
	Gap                float64
	NegativeEquity     float64

	// Reciprocity inputs
	TaxAlreadyCollected float64
	OriginState         string
	ProofOfTaxPaid      bool

	// Lease inputs, ignored for retail deals
	GrossCapCost     float64
	CapCostReduction float64
	MonthlyPayment   float64
	TermMonths       int

	// Ordered rate components for the taxing jurisdiction
	Rates []business.RateComponent
}
