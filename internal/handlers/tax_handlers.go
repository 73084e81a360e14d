package handlers

import (
	"net/http"
	"time"

	"github.com/dealerstack/dealertax-api/internal/services"
	"github.com/dealerstack/dealertax-api/internal/types/api/params"
	"github.com/dealerstack/dealertax-api/internal/types/api/responses"
	"github.com/dealerstack/dealertax-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type TaxHandler struct {
	common *CommonServices
}

func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{common: common}
}

// CalculateTaxRequest represents the request body for a tax calculation
type CalculateTaxRequest struct {
	State              string         `json:"state" binding:"required"`
	ZIP                string         `json:"zip,omitempty"`
	DealType           string         `json:"deal_type" binding:"required,oneof=RETAIL LEASE"`
	VehiclePrice       float64        `json:"vehicle_price" binding:"required"`
	AccessoriesAmount  float64        `json:"accessories_amount,omitempty"`
	TradeInValue       float64        `json:"trade_in_value,omitempty"`
	RebateManufacturer float64        `json:"rebate_manufacturer,omitempty"`
	RebateDealer       float64        `json:"rebate_dealer,omitempty"`
	DocFee             float64        `json:"doc_fee,omitempty"`
	OtherFees          []FeeRequest   `json:"other_fees,omitempty"`
	ServiceContracts   float64        `json:"service_contracts,omitempty"`
	Gap                float64        `json:"gap,omitempty"`
	NegativeEquity     float64        `json:"negative_equity,omitempty"`

	TaxAlreadyCollected float64 `json:"tax_already_collected,omitempty"`
	OriginState         string  `json:"origin_state,omitempty"`
	ProofOfTaxPaid      bool    `json:"proof_of_tax_paid,omitempty"`

	GrossCapCost     float64 `json:"gross_cap_cost,omitempty"`
	CapCostReduction float64 `json:"cap_cost_reduction,omitempty"`
	MonthlyPayment   float64 `json:"monthly_payment,omitempty"`
	TermMonths       int     `json:"term_months,omitempty"`

	// Rates overrides the jurisdiction rate lookup when supplied.
	Rates []RateComponentRequest `json:"rates,omitempty"`
}

// FeeRequest is one fee line item in a calculation request
type FeeRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount"`
}

// RateComponentRequest is one caller-supplied rate component
type RateComponentRequest struct {
	Label string  `json:"label" binding:"required"`
	Rate  float64 `json:"rate"`
}

// CalculateTaxResponse wraps the engine result in an API envelope
type CalculateTaxResponse struct {
	CalculationID string                          `json:"calculation_id"`
	Result        *responses.TaxCalculationResult `json:"result"`
}

// StatesResponse lists the implemented state codes
type StatesResponse struct {
	States []string `json:"states"`
}

// CalculateTax godoc
// @Summary Calculate vehicle tax
// @Description Computes sales/use tax for a motor-vehicle retail sale or lease under the named state's rules
// @Tags tax
// @Accept json
// @Produce json
// @Param request body CalculateTaxRequest true "Transaction line items"
// @Success 200 {object} CalculateTaxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax/calculate [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	start := time.Now()

	var req CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rulesConfig, ok := h.common.rules.GetRulesForState(req.State)
	if !ok {
		h.common.metrics.IncrementUnknownState()
		sendError(c, http.StatusNotFound, "State not implemented",
			errors.Errorf("no tax rules for state %q", req.State))
		return
	}

	result := h.common.tax.CalculateTax(h.buildParams(req, rulesConfig), rulesConfig)

	h.common.metrics.IncrementCalculation(rulesConfig.StateCode, string(result.Mode))
	h.common.metrics.ObserveCalculation(start)

	sendSuccess(c, http.StatusOK, CalculateTaxResponse{
		CalculationID: uuid.New().String(),
		Result:        result,
	})
}

// ListStates godoc
// @Summary List implemented states
// @Tags tax
// @Produce json
// @Success 200 {object} StatesResponse
// @Router /tax/states [get]
func (h *TaxHandler) ListStates(c *gin.Context) {
	sendSuccess(c, http.StatusOK, StatesResponse{States: h.common.rules.ImplementedStates()})
}

// GetStateRules godoc
// @Summary Get a state's tax rules
// @Tags tax
// @Produce json
// @Param code path string true "State code"
// @Success 200 {object} business.TaxRulesConfig
// @Failure 404 {object} ErrorResponse
// @Router /tax/states/{code}/rules [get]
func (h *TaxHandler) GetStateRules(c *gin.Context) {
	code := c.Param("code")
	rulesConfig, ok := h.common.rules.GetRulesForState(code)
	if !ok {
		h.common.metrics.IncrementUnknownState()
		sendError(c, http.StatusNotFound, "State not implemented",
			errors.Errorf("no tax rules for state %q", code))
		return
	}
	sendSuccess(c, http.StatusOK, rulesConfig)
}

// buildParams maps the request onto engine params, resolving rate components
// from the request, or from the ZIP/state lookup when none are supplied.
func (h *TaxHandler) buildParams(req CalculateTaxRequest, rulesConfig *business.TaxRulesConfig) params.TaxCalculationParams {
	var rateComponents []business.RateComponent
	if len(req.Rates) > 0 {
		rateComponents = make([]business.RateComponent, 0, len(req.Rates))
		for _, r := range req.Rates {
			rateComponents = append(rateComponents, business.RateComponent{Label: r.Label, Rate: r.Rate})
		}
	} else {
		summary := h.common.rates.ForZIP(req.ZIP, rulesConfig.StateCode)
		if !rulesConfig.VehicleUsesLocalSalesTax {
			summary = business.LocalRateSummary{StateTaxRate: summary.StateTaxRate}
		}
		rateComponents = services.ComponentsFromSummary(summary)
	}

	fees := make([]business.Fee, 0, len(req.OtherFees))
	for _, f := range req.OtherFees {
		fees = append(fees, business.Fee{Code: f.Code, Amount: f.Amount})
	}

	return params.TaxCalculationParams{
		DealType:            business.DealType(req.DealType),
		VehiclePrice:        req.VehiclePrice,
		AccessoriesAmount:   req.AccessoriesAmount,
		TradeInValue:        req.TradeInValue,
		RebateManufacturer:  req.RebateManufacturer,
		RebateDealer:        req.RebateDealer,
		DocFee:              req.DocFee,
		OtherFees:           fees,
		ServiceContracts:    req.ServiceContracts,
		Gap:                 req.Gap,
		NegativeEquity:      req.NegativeEquity,
		TaxAlreadyCollected: req.TaxAlreadyCollected,
		OriginState:         req.OriginState,
		ProofOfTaxPaid:      req.ProofOfTaxPaid,
		GrossCapCost:        req.GrossCapCost,
		CapCostReduction:    req.CapCostReduction,
		MonthlyPayment:      req.MonthlyPayment,
		TermMonths:          req.TermMonths,
		Rates:               rateComponents,
	}
}
