package server

import (
	"os"
	"strings"

	_ "github.com/dealerstack/dealertax-api/docs" // swagger docs, generated by swag
	"github.com/dealerstack/dealertax-api/internal/config"
	"github.com/dealerstack/dealertax-api/internal/handlers"
	"github.com/dealerstack/dealertax-api/internal/metrics"
	"github.com/dealerstack/dealertax-api/internal/rates"
	"github.com/dealerstack/dealertax-api/internal/rules"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server wires the rule registry, rate lookup, and handlers into a gin
// router. All rule and rate tables are built once here and read-only
// afterwards.
type Server struct {
	config     *config.Config
	router     *gin.Engine
	taxHandler *handlers.TaxHandler
}

func New(cfg *config.Config) *Server {
	registry := rules.NewRegistry()
	rateLookup := rates.NewLookup()
	m := metrics.New()

	common := handlers.NewCommonServices(registry, rateLookup, m)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())

	s := &Server{
		config:     cfg,
		router:     router,
		taxHandler: handlers.NewTaxHandler(common),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		tax := v1.Group("/tax")
		{
			tax.POST("/calculate", s.taxHandler.CalculateTax)
			tax.GET("/states", s.taxHandler.ListStates)
			tax.GET("/states/:code/rules", s.taxHandler.GetStateRules)
		}
	}
}

// Router exposes the underlying gin engine, primarily for tests and for the
// http.Server in cmd/api.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cors.New(corsConfig)
}
