package business

// DealType distinguishes a retail purchase from a lease.
type DealType string

const (
	DealTypeRetail DealType = "RETAIL"
	DealTypeLease  DealType = "LEASE"
)

// IsValid checks if the deal type is a known value.
func (d DealType) IsValid() bool {
	switch d {
	case DealTypeRetail, DealTypeLease:
		return true
	}
	return false
}

// String returns the string representation of the deal type.
func (d DealType) String() string {
	return string(d)
}

// RateComponent is one named tax-rate component (state, county, city,
// special district). Order matters: components are applied and reported in
// the order they were supplied.
type RateComponent struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"` // e.g., 0.0625 for 6.25%
}

// Fee is a single fee line item on a deal.
type Fee struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// TradeInPolicyKind identifies how a jurisdiction credits a trade-in
// against the taxable base.
type TradeInPolicyKind string

const (
	TradeInNone    TradeInPolicyKind = "NONE"
	TradeInFull    TradeInPolicyKind = "FULL"
	TradeInCapped  TradeInPolicyKind = "CAPPED"
	TradeInPercent TradeInPolicyKind = "PERCENT"
)

// IsValid checks if the trade-in policy kind is a known value.
func (k TradeInPolicyKind) IsValid() bool {
	switch k {
	case TradeInNone, TradeInFull, TradeInCapped, TradeInPercent:
		return true
	}
	return false
}

// TradeInPolicy is the tagged trade-in credit variant. CapAmount is only
// meaningful for CAPPED, Percent (in [0,1]) only for PERCENT.
type TradeInPolicy struct {
	Kind      TradeInPolicyKind `json:"kind"`
	CapAmount float64           `json:"cap_amount,omitempty"`
	Percent   float64           `json:"percent,omitempty"`
}

// RebateParty identifies who funds a rebate.
type RebateParty string

const (
	RebateManufacturer RebateParty = "MANUFACTURER"
	RebateDealer       RebateParty = "DEALER"
	RebateAny          RebateParty = "ANY"
)

// RebateRule decides whether a rebate from a given party stays in the
// taxable base (taxable) or reduces it.
type RebateRule struct {
	AppliesTo RebateParty `json:"applies_to"`
	Taxable   bool        `json:"taxable"`
}

// FeeTaxRule decides whether a fee with the given code enters the taxable base.
type FeeTaxRule struct {
	Code    string `json:"code"`
	Taxable bool   `json:"taxable"`
}

// VehicleTaxScheme is the jurisdiction's overall vehicle tax structure.
type VehicleTaxScheme string

const (
	SchemeStateOnly       VehicleTaxScheme = "STATE_ONLY"
	SchemeStatePlusLocal  VehicleTaxScheme = "STATE_PLUS_LOCAL"
	SchemeSpecialHUT      VehicleTaxScheme = "SPECIAL_HUT"
	SchemeSpecialTAVT     VehicleTaxScheme = "SPECIAL_TAVT"
	SchemeSpecialGET      VehicleTaxScheme = "SPECIAL_GET"
	SchemeSpecialIMF      VehicleTaxScheme = "SPECIAL_IMF"
	SchemeSpecialVLT      VehicleTaxScheme = "SPECIAL_VLT"
	SchemeDMVPrivilegeTax VehicleTaxScheme = "DMV_PRIVILEGE_TAX"
)

// LeaseMethod identifies when lease tax is collected.
type LeaseMethod string

const (
	LeaseMonthly     LeaseMethod = "MONTHLY"
	LeaseFullUpfront LeaseMethod = "FULL_UPFRONT"
	LeaseHybrid      LeaseMethod = "HYBRID"
)

// DocFeeTaxability controls doc-fee treatment on a lease.
type DocFeeTaxability string

const (
	DocFeeAlways           DocFeeTaxability = "ALWAYS"
	DocFeeNever            DocFeeTaxability = "NEVER"
	DocFeeFollowRetailRule DocFeeTaxability = "FOLLOW_RETAIL_RULE"
	DocFeeOnlyUpfront      DocFeeTaxability = "ONLY_UPFRONT"
)

// RebateBehavior controls rebate treatment on a lease.
type RebateBehavior string

const (
	RebateBehaviorTaxable          RebateBehavior = "TAXABLE"
	RebateBehaviorReducesBase      RebateBehavior = "REDUCES_BASE"
	RebateBehaviorFollowRetailRule RebateBehavior = "FOLLOW_RETAIL_RULE"
)

// LeaseSpecialScheme names a scheme-specific lease adjustment.
type LeaseSpecialScheme string

const (
	LeaseSchemeNone LeaseSpecialScheme = "NONE"
	// LeaseSchemeLuxurySurcharge adds a flat surcharge on the portion of cap
	// cost above a threshold (e.g., NJ's luxury and fuel-inefficient fee).
	LeaseSchemeLuxurySurcharge LeaseSpecialScheme = "LUXURY_SURCHARGE"
	// LeaseSchemeDistrictMarker identifies a named-district lease regime whose
	// numeric effect is already carried by the rate components.
	LeaseSchemeDistrictMarker LeaseSpecialScheme = "DISTRICT_MARKER"
)

// LeaseSpecialSchemeConfig carries the numeric parameters for a lease
// special scheme. Threshold and SurchargeRate apply to LUXURY_SURCHARGE only.
type LeaseSpecialSchemeConfig struct {
	Scheme        LeaseSpecialScheme `json:"scheme"`
	Threshold     float64            `json:"threshold,omitempty"`
	SurchargeRate float64            `json:"surcharge_rate,omitempty"`
	FeeCode       string             `json:"fee_code,omitempty"`
}

// LeaseRules is a jurisdiction's lease taxation policy.
type LeaseRules struct {
	Method                LeaseMethod              `json:"method"`
	TaxCapReduction       bool                     `json:"tax_cap_reduction"`
	RebateBehavior        RebateBehavior           `json:"rebate_behavior"`
	DocFeeTaxability      DocFeeTaxability         `json:"doc_fee_taxability"`
	TradeInCredit         TradeInPolicy            `json:"trade_in_credit"`
	NegativeEquityTaxable bool                     `json:"negative_equity_taxable"`
	FeeTaxRules           []FeeTaxRule             `json:"fee_tax_rules,omitempty"`
	TitleFeeRules         []FeeTaxRule             `json:"title_fee_rules,omitempty"`
	TaxFeesUpfront        bool                     `json:"tax_fees_upfront"`
	SpecialScheme         LeaseSpecialSchemeConfig `json:"special_scheme"`
}

// ReciprocityScope limits reciprocity credit to a deal type.
type ReciprocityScope string

const (
	ReciprocityRetail ReciprocityScope = "RETAIL"
	ReciprocityLease  ReciprocityScope = "LEASE"
	ReciprocityBoth   ReciprocityScope = "BOTH"
)

// Covers reports whether the scope includes the given deal type.
func (s ReciprocityScope) Covers(d DealType) bool {
	switch s {
	case ReciprocityBoth:
		return true
	case ReciprocityRetail:
		return d == DealTypeRetail
	case ReciprocityLease:
		return d == DealTypeLease
	}
	return false
}

// HomeStateBehavior controls how tax paid elsewhere is credited here.
type HomeStateBehavior string

const (
	HomeStateNone               HomeStateBehavior = "NONE"
	HomeStateCreditUpToStateTax HomeStateBehavior = "CREDIT_UP_TO_STATE_RATE"
)

// ReciprocityBasis is what the credit is measured against.
type ReciprocityBasis string

const (
	BasisTaxPaid ReciprocityBasis = "TAX_PAID"
)

// OverrideTreatment replaces the generic reciprocity computation for a
// matched origin.
type OverrideTreatment string

const (
	OverrideFullExemption OverrideTreatment = "FULL_EXEMPTION"
	OverrideNoCredit      OverrideTreatment = "NO_CREDIT"
)

// ReciprocityOverride is an origin-specific exception, e.g. a tribal
// exemption marker. Checked before the generic computation.
type ReciprocityOverride struct {
	OriginState string            `json:"origin_state"`
	Treatment   OverrideTreatment `json:"treatment"`
	Note        string            `json:"note,omitempty"`
}

// ReciprocityRules is a jurisdiction's policy for crediting tax already
// paid to another jurisdiction on the same vehicle.
type ReciprocityRules struct {
	Enabled               bool                  `json:"enabled"`
	Scope                 ReciprocityScope      `json:"scope"`
	HomeStateBehavior     HomeStateBehavior     `json:"home_state_behavior"`
	RequireProofOfTaxPaid bool                  `json:"require_proof_of_tax_paid"`
	Basis                 ReciprocityBasis      `json:"basis"`
	CapAtThisStatesTax    bool                  `json:"cap_at_this_states_tax"`
	HasLeaseException     bool                  `json:"has_lease_exception"`
	Overrides             []ReciprocityOverride `json:"overrides,omitempty"`
}

// TaxRulesConfig is one jurisdiction's complete vehicle tax policy. It is
// read-only external configuration: the engine never mutates it.
type TaxRulesConfig struct {
	StateCode                string           `json:"state_code"`
	Version                  string           `json:"version"`
	TradeInPolicy            TradeInPolicy    `json:"trade_in_policy"`
	Rebates                  []RebateRule     `json:"rebates,omitempty"`
	DocFeeTaxable            bool             `json:"doc_fee_taxable"`
	FeeTaxRules              []FeeTaxRule     `json:"fee_tax_rules,omitempty"`
	TaxOnAccessories         bool             `json:"tax_on_accessories"`
	TaxOnNegativeEquity      bool             `json:"tax_on_negative_equity"`
	TaxOnServiceContracts    bool             `json:"tax_on_service_contracts"`
	TaxOnGap                 bool             `json:"tax_on_gap"`
	VehicleTaxScheme         VehicleTaxScheme `json:"vehicle_tax_scheme"`
	VehicleUsesLocalSalesTax bool             `json:"vehicle_uses_local_sales_tax"`
	// TaxCapAmount clamps the summed tax for capped schemes such as the SC
	// IMF. Zero means no cap.
	TaxCapAmount float64          `json:"tax_cap_amount,omitempty"`
	LeaseRules   LeaseRules       `json:"lease_rules"`
	Reciprocity  ReciprocityRules `json:"reciprocity"`
}
