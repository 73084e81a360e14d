package services

import (
	"fmt"

	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// ApplyTradeInPolicy converts a raw trade-in value into the credit the
// jurisdiction allows against the taxable base. Clamping against the vehicle
// subtotal is the orchestrator's job; FULL returns the full value even when
// it exceeds the vehicle price.
func ApplyTradeInPolicy(policy business.TradeInPolicy, tradeInValue float64) (float64, []string) {
	if tradeInValue <= 0 {
		return 0, nil
	}

	switch policy.Kind {
	case business.TradeInNone:
		return 0, []string{"trade-in credit not allowed in this jurisdiction"}
	case business.TradeInFull:
		return tradeInValue, []string{fmt.Sprintf("full trade-in credit of %.2f applied", tradeInValue)}
	case business.TradeInCapped:
		if tradeInValue > policy.CapAmount {
			return policy.CapAmount, []string{fmt.Sprintf("trade-in credit capped at %.2f (value %.2f)", policy.CapAmount, tradeInValue)}
		}
		return tradeInValue, []string{fmt.Sprintf("trade-in credit of %.2f applied, within the %.2f cap", tradeInValue, policy.CapAmount)}
	case business.TradeInPercent:
		credit := tradeInValue * policy.Percent
		return credit, []string{fmt.Sprintf("trade-in credit of %.0f%% applied (%.2f of %.2f)", policy.Percent*100, credit, tradeInValue)}
	default:
		// Unknown variants are a configuration bug, not a runtime failure.
		return 0, []string{fmt.Sprintf("unknown trade-in policy %q, no credit applied", policy.Kind)}
	}
}
