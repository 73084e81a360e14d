package rules_test

import (
	"sort"
	"testing"

	"github.com/dealerstack/dealertax-api/internal/rules"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRulesForState_CaseInsensitive(t *testing.T) {
	registry := rules.NewRegistry()

	for _, code := range []string{"CA", "ca", " Ca "} {
		cfg, ok := registry.GetRulesForState(code)
		require.True(t, ok, "lookup for %q", code)
		assert.Equal(t, "CA", cfg.StateCode)
	}
}

func TestGetRulesForState_Unknown(t *testing.T) {
	registry := rules.NewRegistry()

	cfg, ok := registry.GetRulesForState("ZZ")
	assert.False(t, ok)
	assert.Nil(t, cfg)
	assert.False(t, registry.IsStateImplemented("ZZ"))
}

func TestImplementedStates_Sorted(t *testing.T) {
	registry := rules.NewRegistry()

	states := registry.ImplementedStates()
	require.NotEmpty(t, states)
	assert.True(t, sort.StringsAreSorted(states))
	assert.Contains(t, states, "TX")
	assert.Contains(t, states, "NY")
}

func TestStateConfigs_Coverage(t *testing.T) {
	registry := rules.NewRegistry()

	for _, code := range registry.ImplementedStates() {
		cfg, ok := registry.GetRulesForState(code)
		require.True(t, ok)
		assert.Equal(t, code, cfg.StateCode)
		assert.NotEmpty(t, cfg.Version, "state %s missing rules version", code)
		assert.NotEmpty(t, cfg.VehicleTaxScheme, "state %s missing tax scheme", code)
	}
}

func TestStateConfigs_SpotChecks(t *testing.T) {
	registry := rules.NewRegistry()

	ca, ok := registry.GetRulesForState("CA")
	require.True(t, ok)
	assert.Equal(t, business.TradeInNone, ca.TradeInPolicy.Kind)

	il, ok := registry.GetRulesForState("IL")
	require.True(t, ok)
	assert.Equal(t, business.TradeInCapped, il.TradeInPolicy.Kind)
	assert.Equal(t, 10000.0, il.TradeInPolicy.CapAmount)

	ga, ok := registry.GetRulesForState("GA")
	require.True(t, ok)
	assert.Equal(t, business.SchemeSpecialTAVT, ga.VehicleTaxScheme)

	sc, ok := registry.GetRulesForState("SC")
	require.True(t, ok)
	assert.Equal(t, 500.0, sc.TaxCapAmount)

	or, ok := registry.GetRulesForState("OR")
	require.True(t, ok)
	assert.Equal(t, business.SchemeDMVPrivilegeTax, or.VehicleTaxScheme)
	assert.False(t, or.Reciprocity.Enabled)
}
