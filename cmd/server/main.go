package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fizzquiz/internal/config"
	"fizzquiz/internal/database"
	"fizzquiz/internal/game"
	"fizzquiz/internal/handlers"
	"fizzquiz/internal/metrics"
	"fizzquiz/internal/repository"
	"fizzquiz/internal/security"
	"fizzquiz/internal/service"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Services
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize email service")
	}

	userService := service.NewUserService(userRepo, tokens, emailService)
	gameService := service.NewGameService(gameRepo)
	ruleService := service.NewRuleService(ruleRepo, gameRepo)
	attemptService := service.NewAttemptService(attemptRepo, questionRepo, gameRepo, game.NewRandSource())

	// Handlers
	limiter := security.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	mw := handlers.NewMiddleware(tokens, limiter)
	userHandler := handlers.NewUserHandler(userService)
	gameHandler := handlers.NewGameHandler(gameService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	oauthHandler := handlers.NewOAuthHandler(userService, cfg)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(handlers.CORS(cfg.ClientOrigin))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	if oauthHandler.Enabled() {
		r.Get("/auth/google/start", oauthHandler.Start)
		r.Get("/auth/google/callback", oauthHandler.Callback)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit)
				userHandler.RegisterPublicRoutes(r)
			})
			userHandler.RegisterReadRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				userHandler.RegisterProtectedRoutes(r)
			})
		})

		r.Route("/game", func(r chi.Router) {
			gameHandler.RegisterPublicRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				gameHandler.RegisterProtectedRoutes(r)
			})
		})

		r.Route("/game-rule", func(r chi.Router) {
			r.Use(mw.RequireAuth)
			ruleHandler.RegisterRoutes(r)
		})

		r.Route("/game-attempt", func(r chi.Router) {
			r.Use(mw.RequireAuth)
			attemptHandler.RegisterRoutes(r)
		})
	})

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
