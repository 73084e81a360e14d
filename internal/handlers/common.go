package handlers

import (
	"github.com/dealerstack/dealertax-api/internal/logger"
	"github.com/dealerstack/dealertax-api/internal/metrics"
	"github.com/dealerstack/dealertax-api/internal/rates"
	"github.com/dealerstack/dealertax-api/internal/rules"
	"github.com/dealerstack/dealertax-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	rules   rules.Provider
	rates   *rates.Lookup
	tax     *services.TaxService
	metrics *metrics.Metrics
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(rulesProvider rules.Provider, rateLookup *rates.Lookup, m *metrics.Metrics) *CommonServices {
	return &CommonServices{
		rules:   rulesProvider,
		rates:   rateLookup,
		tax:     services.NewTaxService(),
		metrics: m,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
