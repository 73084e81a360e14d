package services_test

import (
	"testing"

	"github.com/dealerstack/dealertax-api/internal/services"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func TestRebateTaxable(t *testing.T) {
	tests := []struct {
		name            string
		party           business.RebateParty
		rules           []business.RebateRule
		expectedTaxable bool
		expectedMatched bool
	}{
		{
			name:  "exact party match wins over wildcard",
			party: business.RebateManufacturer,
			rules: []business.RebateRule{
				{AppliesTo: business.RebateAny, Taxable: false},
				{AppliesTo: business.RebateManufacturer, Taxable: true},
			},
			expectedTaxable: true,
			expectedMatched: true,
		},
		{
			name:  "wildcard used when no exact match",
			party: business.RebateDealer,
			rules: []business.RebateRule{
				{AppliesTo: business.RebateManufacturer, Taxable: true},
				{AppliesTo: business.RebateAny, Taxable: true},
			},
			expectedTaxable: true,
			expectedMatched: true,
		},
		{
			name:            "no rule defaults to non-taxable",
			party:           business.RebateDealer,
			rules:           []business.RebateRule{{AppliesTo: business.RebateManufacturer, Taxable: true}},
			expectedTaxable: false,
			expectedMatched: false,
		},
		{
			name:            "empty rule list defaults to non-taxable",
			party:           business.RebateManufacturer,
			rules:           nil,
			expectedTaxable: false,
			expectedMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable, matched := services.RebateTaxable(tt.party, tt.rules)
			assert.Equal(t, tt.expectedTaxable, taxable)
			assert.Equal(t, tt.expectedMatched, matched)
		})
	}
}

func TestFeeTaxable(t *testing.T) {
	rules := []business.FeeTaxRule{
		{Code: "TITLE", Taxable: false},
		{Code: "ELECTRONIC_FILING", Taxable: true},
	}

	taxable, matched := services.FeeTaxable("ELECTRONIC_FILING", rules)
	assert.True(t, taxable)
	assert.True(t, matched)

	taxable, matched = services.FeeTaxable("TITLE", rules)
	assert.False(t, taxable)
	assert.True(t, matched)

	taxable, matched = services.FeeTaxable("WIDGET", rules)
	assert.False(t, taxable)
	assert.False(t, matched)
}

func TestDocFeeTaxableLease(t *testing.T) {
	tests := []struct {
		name       string
		taxability business.DocFeeTaxability
		retailRule bool
		expected   bool
	}{
		{"always", business.DocFeeAlways, false, true},
		{"never", business.DocFeeNever, true, false},
		{"follow retail true", business.DocFeeFollowRetailRule, true, true},
		{"follow retail false", business.DocFeeFollowRetailRule, false, false},
		{"only upfront taxes once", business.DocFeeOnlyUpfront, false, true},
		{"unknown falls back to retail rule", business.DocFeeTaxability("SOMETIMES"), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.DocFeeTaxableLease(tt.taxability, tt.retailRule))
		})
	}
}
