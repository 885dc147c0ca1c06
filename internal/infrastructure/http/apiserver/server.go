// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dishcovery/v1/internal/infrastructure/config"
	"github.com/dishcovery/v1/internal/infrastructure/http/handlers"
	"github.com/dishcovery/v1/internal/infrastructure/http/middleware"
	"github.com/dishcovery/v1/internal/ports/inbound"
)

// APIServer serves the JSON API over HTTP
type APIServer struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	metrics *middleware.Metrics

	recipeService     inbound.RecipeService
	profileService    inbound.ProfileService
	eateryService     inbound.EateryService
	ingredientService inbound.IngredientService
}

// New creates a new API server instance
func New(
	cfg *config.Config,
	log *zap.Logger,
	recipeService inbound.RecipeService,
	profileService inbound.ProfileService,
	eateryService inbound.EateryService,
	ingredientService inbound.IngredientService,
) *APIServer {
	s := &APIServer{
		config:            cfg,
		logger:            log,
		metrics:           middleware.NewMetrics(),
		recipeService:     recipeService,
		profileService:    profileService,
		eateryService:     eateryService,
		ingredientService: ingredientService,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the router and all API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS(s.config))
	r.Use(s.metrics.Instrument())

	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5))
	}

	r.Get("/health", s.handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.APIKey(s.config))
		r.Use(middleware.RateLimit(s.config))
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	profileH := handlers.NewProfileHandlers(s.profileService, s.logger)
	eateryH := handlers.NewEateryHandlers(s.eateryService, s.logger)
	ingredientH := handlers.NewIngredientHandlers(s.ingredientService, s.logger)

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Get("/recommended", recipeH.RecommendRecipe)
		r.Post("/search", recipeH.SearchRecipe)
		r.Post("/by-ingredients", recipeH.GenerateByIngredients)
		r.Post("/by-image", recipeH.GenerateByImage)
	})

	r.Post("/dishes/rating", recipeH.RateDish)

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", profileH.GetProfile)
		r.Put("/", profileH.UpdateProfile)
		r.Post("/referral", profileH.RedeemReferral)
	})

	r.Get("/eateries/nearby", eateryH.Nearby)
	r.Get("/ingredients", ingredientH.Search)
}

// Start starts the HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured router, used by tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// handleHealthCheck provides the health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
