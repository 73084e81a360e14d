package rules

import (
	"github.com/dealerstack/dealertax-api/internal/types/business"
)

const rulesVersion = "2025.1"

// stateConfigs is the built-in jurisdiction policy table. Each entry encodes
// one state's statutory treatment of trade-ins, rebates, fees, products,
// tax scheme, lease method, and reciprocity. Amounts are dollars, rates are
// fractions.
var stateConfigs = []business.TaxRulesConfig{
	{
		// Arizona: TPT applies state plus local; the annual VLT is assessed
		// separately at registration, not at point of sale.
		StateCode:                "AZ",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      false,
		TaxOnServiceContracts:    false,
		TaxOnGap:                 false,
		VehicleTaxScheme:         business.SchemeSpecialVLT,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// California: no trade-in credit; manufacturer rebates stay in the
		// taxable base.
		StateCode:                "CA",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInNone},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: true}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}, {Code: "SMOG", Taxable: false}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    false,
		TaxOnGap:                 false,
		VehicleTaxScheme:         business.SchemeStatePlusLocal,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInNone},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:               true,
			Scope:                 business.ReciprocityRetail,
			HomeStateBehavior:     business.HomeStateCreditUpToStateTax,
			RequireProofOfTaxPaid: true,
			Basis:                 business.BasisTaxPaid,
			CapAtThisStatesTax:    true,
		},
	},
	{
		// Florida: full trade-in credit; county surtax rides on top of the
		// state rate.
		StateCode:                "FL",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}, {Code: "ELECTRONIC_FILING", Taxable: true}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    true,
		TaxOnGap:                 false,
		VehicleTaxScheme:         business.SchemeStatePlusLocal,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// Georgia: one-time TAVT replaces sales tax; no local sales tax on
		// vehicles and leases are settled at signing.
		StateCode:             "GA",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}, {AppliesTo: business.RebateDealer, Taxable: true}},
		DocFeeTaxable:         false,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   false,
		TaxOnServiceContracts: false,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeSpecialTAVT,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseFullUpfront,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeNever,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityRetail,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
			HasLeaseException:  true,
		},
	},
	{
		// Hawaii: general excise tax on the seller's gross receipts, with a
		// county surcharge carried as a local component.
		StateCode:                "HI",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: true}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: true}, {Code: "REG", Taxable: true}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    true,
		TaxOnGap:                 true,
		VehicleTaxScheme:         business.SchemeSpecialGET,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorTaxable,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:           false,
			Scope:             business.ReciprocityBoth,
			HomeStateBehavior: business.HomeStateNone,
			Basis:             business.BasisTaxPaid,
		},
	},
	{
		// Illinois: trade-in credit capped at $10,000 on passenger vehicles.
		StateCode:                "IL",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInCapped, CapAmount: 10000},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    false,
		TaxOnGap:                 false,
		VehicleTaxScheme:         business.SchemeStatePlusLocal,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseHybrid,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeOnlyUpfront,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInCapped, CapAmount: 10000},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityRetail,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// North Carolina: 3% highway use tax in place of sales tax; full
		// trade-in credit.
		StateCode:             "NC",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: true}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:         true,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   false,
		TaxOnServiceContracts: true,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeSpecialHUT,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  false,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// New Jersey: leases taxed in full at inception; a luxury surcharge
		// applies to the cap cost above the statutory threshold.
		StateCode:             "NJ",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: false}},
		DocFeeTaxable:         true,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}, {Code: "TIRE", Taxable: true}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   true,
		TaxOnServiceContracts: true,
		TaxOnGap:              true,
		VehicleTaxScheme:      business.SchemeStateOnly,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseFullUpfront,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme: business.LeaseSpecialSchemeConfig{
				Scheme:        business.LeaseSchemeLuxurySurcharge,
				Threshold:     45000,
				SurchargeRate: 0.004,
				FeeCode:       "LUXURY_SURCHARGE",
			},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:               true,
			Scope:                 business.ReciprocityBoth,
			HomeStateBehavior:     business.HomeStateCreditUpToStateTax,
			RequireProofOfTaxPaid: true,
			Basis:                 business.BasisTaxPaid,
			CapAtThisStatesTax:    true,
		},
	},
	{
		// New York: all lease payments taxed at inception.
		StateCode:                "NY",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}, {Code: "INSPECTION", Taxable: false}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    true,
		TaxOnGap:                 false,
		VehicleTaxScheme:         business.SchemeStatePlusLocal,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseFullUpfront,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:               true,
			Scope:                 business.ReciprocityRetail,
			HomeStateBehavior:     business.HomeStateCreditUpToStateTax,
			RequireProofOfTaxPaid: true,
			Basis:                 business.BasisTaxPaid,
			CapAtThisStatesTax:    true,
			HasLeaseException:     true,
		},
	},
	{
		// Oregon: no general sales tax; a half-percent DMV privilege tax on
		// dealer sales, state component only.
		StateCode:             "OR",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInNone},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: true}},
		DocFeeTaxable:         false,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   false,
		TaxOnServiceContracts: false,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeDMVPrivilegeTax,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			RebateBehavior:   business.RebateBehaviorTaxable,
			DocFeeTaxability: business.DocFeeNever,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInNone},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:           false,
			Scope:             business.ReciprocityBoth,
			HomeStateBehavior: business.HomeStateNone,
			Basis:             business.BasisTaxPaid,
		},
	},
	{
		// South Carolina: infrastructure maintenance fee of 5% capped at a
		// $500 statutory maximum.
		StateCode:             "SC",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: false}},
		DocFeeTaxable:         true,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   false,
		TaxOnServiceContracts: false,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeSpecialIMF,
		TaxCapAmount:          500,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseFullUpfront,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// Texas: 6.25% motor vehicle sales tax, state component only; full
		// trade-in credit. Leases are taxed as a purchase by the lessor, so
		// the full cap cost is due at signing.
		StateCode:             "TX",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: false}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:         true,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}, {Code: "INSPECTION", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   true,
		TaxOnServiceContracts: false,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeStateOnly,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseFullUpfront,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// Virginia: motor vehicle sales and use tax, state component only.
		StateCode:             "VA",
		Version:               rulesVersion,
		TradeInPolicy:         business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:               []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: true}, {AppliesTo: business.RebateDealer, Taxable: false}},
		DocFeeTaxable:         true,
		FeeTaxRules:           []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:      true,
		TaxOnNegativeEquity:   false,
		TaxOnServiceContracts: true,
		TaxOnGap:              false,
		VehicleTaxScheme:      business.SchemeStateOnly,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  false,
			RebateBehavior:   business.RebateBehaviorFollowRetailRule,
			DocFeeTaxability: business.DocFeeFollowRetailRule,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
		},
	},
	{
		// Washington: state plus stacked local components; tribal-member
		// sales delivered on reservation land are fully exempt.
		StateCode:                "WA",
		Version:                  rulesVersion,
		TradeInPolicy:            business.TradeInPolicy{Kind: business.TradeInFull},
		Rebates:                  []business.RebateRule{{AppliesTo: business.RebateAny, Taxable: false}},
		DocFeeTaxable:            true,
		FeeTaxRules:              []business.FeeTaxRule{{Code: "TITLE", Taxable: false}, {Code: "REG", Taxable: false}},
		TaxOnAccessories:         true,
		TaxOnNegativeEquity:      true,
		TaxOnServiceContracts:    true,
		TaxOnGap:                 true,
		VehicleTaxScheme:         business.SchemeStatePlusLocal,
		VehicleUsesLocalSalesTax: true,
		LeaseRules: business.LeaseRules{
			Method:           business.LeaseMonthly,
			TaxCapReduction:  true,
			RebateBehavior:   business.RebateBehaviorReducesBase,
			DocFeeTaxability: business.DocFeeAlways,
			TradeInCredit:    business.TradeInPolicy{Kind: business.TradeInFull},
			TaxFeesUpfront:   true,
			SpecialScheme:    business.LeaseSpecialSchemeConfig{Scheme: business.LeaseSchemeNone},
		},
		Reciprocity: business.ReciprocityRules{
			Enabled:            true,
			Scope:              business.ReciprocityBoth,
			HomeStateBehavior:  business.HomeStateCreditUpToStateTax,
			Basis:              business.BasisTaxPaid,
			CapAtThisStatesTax: true,
			Overrides: []business.ReciprocityOverride{
				{
					OriginState: "TRIBAL",
					Treatment:   business.OverrideFullExemption,
					Note:        "tribal exemption: sale delivered on reservation land, tax offset in full",
				},
			},
		},
	},
}
