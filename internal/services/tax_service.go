package services

import (
	"fmt"

	"github.com/dealerstack/dealertax-api/internal/constants"
	"github.com/dealerstack/dealertax-api/internal/logger"
	"github.com/dealerstack/dealertax-api/internal/types/api/params"
	"github.com/dealerstack/dealertax-api/internal/types/api/responses"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"go.uber.org/zap"
)

// TaxService computes the sales/use tax owed on a motor-vehicle retail sale
// or lease under one jurisdiction's policy. The calculation is a pure
// function of its arguments: identical inputs yield identical results, and
// there is no fatal error path. Configuration gaps and input anomalies
// degrade to conservative fallbacks recorded in the debug notes.
type TaxService struct {
	logger *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService() *TaxService {
	return &TaxService{
		logger: logger.Log,
	}
}

// CalculateTax turns one transaction plus one jurisdiction's rules into a
// full tax result with bases, per-component taxes, and an audit trace.
func (s *TaxService) CalculateTax(p params.TaxCalculationParams, rules *business.TaxRulesConfig) *responses.TaxCalculationResult {
	if s.logger != nil {
		s.logger.Debug("Calculating tax",
			zap.String("state", rules.StateCode),
			zap.String("deal_type", string(p.DealType)),
			zap.Float64("vehicle_price", p.VehiclePrice))
	}

	if p.DealType == business.DealTypeLease {
		return s.calculateLease(p, rules)
	}
	return s.calculateRetail(p, rules)
}

func (s *TaxService) calculateRetail(p params.TaxCalculationParams, rules *business.TaxRulesConfig) *responses.TaxCalculationResult {
	result := &responses.TaxCalculationResult{
		Mode:         business.DealTypeRetail,
		StateCode:    rules.StateCode,
		RulesVersion: rules.Version,
		Debug:        responses.TaxDebug{Notes: []string{}},
	}
	notes := &result.Debug.Notes

	// Trade-in credit
	appliedTradeIn, tradeInNotes := ApplyTradeInPolicy(rules.TradeInPolicy, p.TradeInValue)
	*notes = append(*notes, tradeInNotes...)
	result.Debug.AppliedTradeIn = appliedTradeIn

	// Rebates
	rebatesTaxable, rebatesNonTaxable := s.resolveRebates(p, rules.Rebates, notes)
	result.Debug.AppliedRebatesTaxable = rebatesTaxable
	result.Debug.AppliedRebatesNonTaxable = rebatesNonTaxable

	// Vehicle base
	subtotal := p.VehiclePrice
	subtotal += s.addIfTaxable(p.AccessoriesAmount, rules.TaxOnAccessories, "accessories", notes)
	subtotal += s.addIfTaxable(p.NegativeEquity, rules.TaxOnNegativeEquity, "negative equity", notes)

	vehicleBase := subtotal - appliedTradeIn - rebatesNonTaxable
	if vehicleBase < 0 {
		*notes = append(*notes, fmt.Sprintf(
			"vehicle base clamped to 0 (reductions exceed subtotal %.2f)", subtotal))
		vehicleBase = 0
	}

	// Fees base
	feesBase := s.retailFeesBase(p, rules, result)

	// Products base
	productsBase := s.productsBase(p, rules, result)

	result.Bases = responses.TaxBases{
		VehicleBase:      vehicleBase,
		FeesBase:         feesBase,
		ProductsBase:     productsBase,
		TotalTaxableBase: vehicleBase + feesBase + productsBase,
	}

	// Rate components and per-component taxes
	effectiveRates, schemeNotes := ApplyVehicleTaxScheme(rules.VehicleTaxScheme, p.Rates)
	*notes = append(*notes, schemeNotes...)

	componentTaxes, totalTax := s.componentTaxes(effectiveRates, result.Bases.TotalTaxableBase)
	result.Taxes.ComponentTaxes = componentTaxes

	totalTax = s.applyTaxCap(totalTax, rules.TaxCapAmount, notes)
	totalTax = s.applyReciprocity(p, rules, business.DealTypeRetail, totalTax, result)

	result.Taxes.TotalTax = totalTax
	return result
}

func (s *TaxService) calculateLease(p params.TaxCalculationParams, rules *business.TaxRulesConfig) *responses.TaxCalculationResult {
	lease := rules.LeaseRules
	result := &responses.TaxCalculationResult{
		Mode:         business.DealTypeLease,
		StateCode:    rules.StateCode,
		RulesVersion: rules.Version,
		Debug:        responses.TaxDebug{Notes: []string{}},
	}
	notes := &result.Debug.Notes

	// Trade-in credit under the lease policy
	appliedTradeIn, tradeInNotes := ApplyTradeInPolicy(lease.TradeInCredit, p.TradeInValue)
	*notes = append(*notes, tradeInNotes...)
	result.Debug.AppliedTradeIn = appliedTradeIn

	// Rebates under the lease behavior
	rebatesTaxable, rebatesNonTaxable := s.resolveLeaseRebates(p, rules, notes)
	result.Debug.AppliedRebatesTaxable = rebatesTaxable
	result.Debug.AppliedRebatesNonTaxable = rebatesNonTaxable

	// Special-scheme adjustments and fees
	adj := ApplyLeaseSpecialScheme(lease.SpecialScheme, p.GrossCapCost)
	*notes = append(*notes, adj.Notes...)

	// Upfront and monthly vehicle bases per lease method
	var rawUpfront, monthlyBase float64
	switch lease.Method {
	case business.LeaseMonthly:
		monthlyBase = p.MonthlyPayment + adj.MonthlyBaseAdjustment
		rawUpfront = adj.UpfrontBaseAdjustment
		if lease.TaxCapReduction {
			rawUpfront += p.CapCostReduction
			if p.CapCostReduction > 0 {
				*notes = append(*notes, fmt.Sprintf("cap cost reduction of %.2f taxed upfront", p.CapCostReduction))
			}
		}
	case business.LeaseFullUpfront:
		adjustedCapCost := p.GrossCapCost - p.CapCostReduction
		if adjustedCapCost < 0 {
			adjustedCapCost = 0
		}
		rawUpfront = adjustedCapCost + adj.UpfrontBaseAdjustment
		*notes = append(*notes, fmt.Sprintf("full lease tax due at signing on adjusted cap cost %.2f", adjustedCapCost))
	case business.LeaseHybrid:
		rawUpfront = p.CapCostReduction + adj.UpfrontBaseAdjustment
		monthlyBase = p.MonthlyPayment + adj.MonthlyBaseAdjustment
		*notes = append(*notes, "hybrid method: cap cost reduction taxed upfront plus the monthly payment stream")
	default:
		// Degrade to the monthly method rather than fail.
		monthlyBase = p.MonthlyPayment
		*notes = append(*notes, fmt.Sprintf("unknown lease method %q, taxing the monthly payment stream", lease.Method))
	}

	if lease.NegativeEquityTaxable && p.NegativeEquity > 0 {
		rawUpfront += p.NegativeEquity
	} else if p.NegativeEquity > 0 {
		*notes = append(*notes, "negative equity excluded from lease taxable base")
	}

	// Trade-in and non-taxable rebates reduce the upfront portion only; cap
	// cost reductions are upfront economics and do not offset the payment
	// stream.
	upfrontBase := rawUpfront - appliedTradeIn - rebatesNonTaxable
	if upfrontBase < 0 {
		*notes = append(*notes, fmt.Sprintf(
			"upfront lease base clamped to 0 (reductions exceed %.2f)", rawUpfront))
		upfrontBase = 0
	}

	vehicleBase := upfrontBase + monthlyBase*float64(p.TermMonths)

	feesBase := s.leaseFeesBase(p, rules, result)
	productsBase := s.productsBase(p, rules, result)

	result.Bases = responses.TaxBases{
		VehicleBase:      vehicleBase,
		FeesBase:         feesBase,
		ProductsBase:     productsBase,
		TotalTaxableBase: vehicleBase + feesBase + productsBase,
	}

	effectiveRates, schemeNotes := ApplyVehicleTaxScheme(rules.VehicleTaxScheme, p.Rates)
	*notes = append(*notes, schemeNotes...)

	componentTaxes, totalTax := s.componentTaxes(effectiveRates, result.Bases.TotalTaxableBase)

	// Scheme fees are flat components appended after the rate components.
	for _, fee := range adj.SpecialFees {
		componentTaxes = append(componentTaxes, responses.ComponentTax{Label: fee.Code, Amount: fee.Amount})
		totalTax += fee.Amount
	}
	result.Taxes.ComponentTaxes = componentTaxes

	var combinedRate float64
	for _, r := range effectiveRates {
		combinedRate += r.Rate
	}
	// FULL_UPFRONT settles everything at signing; only methods with a
	// payment stream can carry fees on the payments.
	upfrontExtras := feesBase + productsBase
	if !lease.TaxFeesUpfront && upfrontExtras > 0 && p.TermMonths > 0 &&
		lease.Method != business.LeaseFullUpfront {
		// Fees and products ride the payment stream instead of the signing
		// invoice. Total tax is unchanged, only the split moves.
		monthlyBase += upfrontExtras / float64(p.TermMonths)
		upfrontExtras = 0
		*notes = append(*notes, "fees and products amortized across the payment stream")
	}
	upfrontTaxable := upfrontBase + upfrontExtras
	upfrontTax := upfrontTaxable * combinedRate
	for _, fee := range adj.SpecialFees {
		upfrontTax += fee.Amount
	}
	result.LeaseBreakdown = &responses.LeaseBreakdown{
		Method:               lease.Method,
		UpfrontTaxableBase:   upfrontTaxable,
		MonthlyTaxableBase:   monthlyBase,
		TermMonths:           p.TermMonths,
		UpfrontTax:           upfrontTax,
		MonthlyTaxPerPayment: monthlyBase * combinedRate,
		SpecialFees:          adj.SpecialFees,
	}

	totalTax = s.applyTaxCap(totalTax, rules.TaxCapAmount, notes)
	totalTax = s.applyReciprocity(p, rules, business.DealTypeLease, totalTax, result)

	result.Taxes.TotalTax = totalTax
	return result
}

// resolveRebates splits the manufacturer and dealer rebates into the amounts
// that stay in the base and the amounts that reduce it.
func (s *TaxService) resolveRebates(p params.TaxCalculationParams, rules []business.RebateRule, notes *[]string) (taxable, nonTaxable float64) {
	for _, rebate := range []struct {
		party  business.RebateParty
		amount float64
		name   string
	}{
		{business.RebateManufacturer, p.RebateManufacturer, "manufacturer"},
		{business.RebateDealer, p.RebateDealer, "dealer"},
	} {
		if rebate.amount <= 0 {
			continue
		}
		isTaxable, matched := RebateTaxable(rebate.party, rules)
		if !matched {
			*notes = append(*notes, fmt.Sprintf(
				"no rebate rule for %s, defaulting to non-taxable", rebate.name))
		}
		if isTaxable {
			taxable += rebate.amount
			*notes = append(*notes, fmt.Sprintf(
				"%s rebate of %.2f is taxable, base not reduced", rebate.name, rebate.amount))
		} else {
			nonTaxable += rebate.amount
			*notes = append(*notes, fmt.Sprintf(
				"%s rebate of %.2f reduces the taxable base", rebate.name, rebate.amount))
		}
	}
	return taxable, nonTaxable
}

func (s *TaxService) resolveLeaseRebates(p params.TaxCalculationParams, rules *business.TaxRulesConfig, notes *[]string) (taxable, nonTaxable float64) {
	total := p.RebateManufacturer + p.RebateDealer
	if total <= 0 {
		return 0, 0
	}
	switch rules.LeaseRules.RebateBehavior {
	case business.RebateBehaviorTaxable:
		*notes = append(*notes, fmt.Sprintf("rebates of %.2f are taxable on leases, base not reduced", total))
		return total, 0
	case business.RebateBehaviorReducesBase:
		*notes = append(*notes, fmt.Sprintf("rebates of %.2f reduce the lease taxable base", total))
		return 0, total
	case business.RebateBehaviorFollowRetailRule:
		return s.resolveRebates(p, rules.Rebates, notes)
	default:
		return s.resolveRebates(p, rules.Rebates, notes)
	}
}

func (s *TaxService) addIfTaxable(amount float64, taxed bool, label string, notes *[]string) float64 {
	if amount <= 0 {
		return 0
	}
	if !taxed {
		*notes = append(*notes, fmt.Sprintf("%s of %.2f excluded from taxable base", label, amount))
		return 0
	}
	return amount
}

func (s *TaxService) retailFeesBase(p params.TaxCalculationParams, rules *business.TaxRulesConfig, result *responses.TaxCalculationResult) float64 {
	notes := &result.Debug.Notes
	var feesBase float64

	if p.DocFee > 0 {
		if rules.DocFeeTaxable {
			feesBase += p.DocFee
			result.Debug.TaxableDocFee = p.DocFee
		} else {
			*notes = append(*notes, fmt.Sprintf("doc fee of %.2f not taxable", p.DocFee))
		}
	}

	for _, fee := range p.OtherFees {
		taxable, matched := FeeTaxable(fee.Code, rules.FeeTaxRules)
		switch {
		case taxable:
			feesBase += fee.Amount
			result.Debug.TaxableFees += fee.Amount
		case matched:
			*notes = append(*notes, fmt.Sprintf("fee %s of %.2f not taxable", fee.Code, fee.Amount))
		default:
			*notes = append(*notes, fmt.Sprintf("no tax rule for fee %s, excluded from base", fee.Code))
		}
	}
	return feesBase
}

func (s *TaxService) leaseFeesBase(p params.TaxCalculationParams, rules *business.TaxRulesConfig, result *responses.TaxCalculationResult) float64 {
	lease := rules.LeaseRules
	notes := &result.Debug.Notes
	var feesBase float64

	if p.DocFee > 0 {
		if DocFeeTaxableLease(lease.DocFeeTaxability, rules.DocFeeTaxable) {
			feesBase += p.DocFee
			result.Debug.TaxableDocFee = p.DocFee
			if lease.DocFeeTaxability == business.DocFeeOnlyUpfront {
				*notes = append(*notes, "doc fee taxed once at signing")
			}
		} else {
			*notes = append(*notes, fmt.Sprintf("doc fee of %.2f not taxable on leases", p.DocFee))
		}
	}

	for _, fee := range p.OtherFees {
		ruleList := lease.FeeTaxRules
		if fee.Code == constants.TitleFeeCode && len(lease.TitleFeeRules) > 0 {
			ruleList = lease.TitleFeeRules
		}
		taxable, matched := FeeTaxable(fee.Code, ruleList)
		switch {
		case taxable:
			feesBase += fee.Amount
			result.Debug.TaxableFees += fee.Amount
		case matched:
			*notes = append(*notes, fmt.Sprintf("fee %s of %.2f not taxable on leases", fee.Code, fee.Amount))
		default:
			*notes = append(*notes, fmt.Sprintf("no lease tax rule for fee %s, excluded from base", fee.Code))
		}
	}
	return feesBase
}

func (s *TaxService) productsBase(p params.TaxCalculationParams, rules *business.TaxRulesConfig, result *responses.TaxCalculationResult) float64 {
	notes := &result.Debug.Notes
	var base float64

	if amount := s.addIfTaxable(p.ServiceContracts, rules.TaxOnServiceContracts, "service contracts", notes); amount > 0 {
		base += amount
		result.Debug.TaxableServiceContracts = amount
	}
	if amount := s.addIfTaxable(p.Gap, rules.TaxOnGap, "GAP coverage", notes); amount > 0 {
		base += amount
		result.Debug.TaxableGap = amount
	}
	return base
}

func (s *TaxService) componentTaxes(rates []business.RateComponent, base float64) ([]responses.ComponentTax, float64) {
	taxes := make([]responses.ComponentTax, 0, len(rates))
	var total float64
	for _, r := range rates {
		amount := base * r.Rate
		taxes = append(taxes, responses.ComponentTax{Label: r.Label, Amount: amount})
		total += amount
	}
	return taxes, total
}

func (s *TaxService) applyTaxCap(totalTax, cap float64, notes *[]string) float64 {
	if cap > 0 && totalTax > cap {
		*notes = append(*notes, fmt.Sprintf(
			"calculated tax %.2f capped at the statutory maximum %.2f", totalTax, cap))
		return cap
	}
	return totalTax
}

func (s *TaxService) applyReciprocity(p params.TaxCalculationParams, rules *business.TaxRulesConfig, dealType business.DealType, totalTax float64, result *responses.TaxCalculationResult) float64 {
	credit, creditNotes := ReciprocityCredit(
		rules.Reciprocity, dealType, p.OriginState, p.TaxAlreadyCollected, p.ProofOfTaxPaid, totalTax)
	result.Debug.Notes = append(result.Debug.Notes, creditNotes...)
	result.Debug.ReciprocityCredit = credit

	totalTax -= credit
	if totalTax < 0 {
		totalTax = 0
	}
	return totalTax
}
