// Package rules holds the per-jurisdiction tax policy tables and the lookup
// layer that resolves a state code to its TaxRulesConfig. The registry is
// built once at startup and read-only thereafter.
package rules

import (
	"sort"
	"strings"

	"github.com/dealerstack/dealertax-api/internal/types/business"
)

// Provider resolves state codes to tax rule configurations.
type Provider interface {
	GetRulesForState(code string) (*business.TaxRulesConfig, bool)
	IsStateImplemented(code string) bool
	ImplementedStates() []string
}

// Registry is an immutable in-memory rules table. Lookups are
// case-insensitive.
type Registry struct {
	byState map[string]*business.TaxRulesConfig
}

// NewRegistry builds the registry from the built-in state tables.
func NewRegistry() *Registry {
	byState := make(map[string]*business.TaxRulesConfig, len(stateConfigs))
	for i := range stateConfigs {
		cfg := stateConfigs[i]
		byState[strings.ToUpper(cfg.StateCode)] = &cfg
	}
	return &Registry{byState: byState}
}

// GetRulesForState returns the rule set for a state code, or false when the
// state is unknown or not yet implemented.
func (r *Registry) GetRulesForState(code string) (*business.TaxRulesConfig, bool) {
	cfg, ok := r.byState[strings.ToUpper(strings.TrimSpace(code))]
	return cfg, ok
}

// IsStateImplemented reports whether a rule set exists for the state code.
func (r *Registry) IsStateImplemented(code string) bool {
	_, ok := r.GetRulesForState(code)
	return ok
}

// ImplementedStates returns the sorted list of implemented state codes.
func (r *Registry) ImplementedStates() []string {
	codes := make([]string, 0, len(r.byState))
	for code := range r.byState {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
