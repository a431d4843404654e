// Package api wires configuration, storage, and services into the HTTP surface.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/playdex/game-curator/internal/api/handler"
	customMiddleware "github.com/playdex/game-curator/internal/api/middleware"
	"github.com/playdex/game-curator/internal/config"
	"github.com/playdex/game-curator/internal/igdb"
	"github.com/playdex/game-curator/internal/llm/gemini"
	"github.com/playdex/game-curator/internal/repository/postgres"
	"github.com/playdex/game-curator/internal/repository/redis"
	"github.com/playdex/game-curator/internal/security"
	"github.com/playdex/game-curator/internal/service"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)

	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)

	// External clients
	provider := gemini.NewProvider(cfg.Gemini)
	if !provider.IsConfigured() {
		log.Warn().Msg("Gemini provider not configured, recommendations will be empty")
	}
	catalogClient := igdb.NewClient(cfg.IGDB.ClientID, cfg.IGDB.ClientSecret)
	resolver := igdb.NewResolver(catalogClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	recommendService := service.NewRecommendService(provider, resolver)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	recommendHandler := handler.NewRecommendHandler(recommendService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Get("/auth/me", authHandler.Me)
			r.Patch("/auth/username", authHandler.UpdateUsername)

			r.Post("/recommendations", recommendHandler.Recommend)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favoriteHandler.List)
				r.Post("/toggle", favoriteHandler.Toggle)
			})
		})
	})

	return r
}
