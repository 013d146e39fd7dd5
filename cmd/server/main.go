package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taralog/internal/ai"
	"taralog/internal/auth"
	"taralog/internal/cache"
	"taralog/internal/config"
	"taralog/internal/db"
	"taralog/internal/handler"
	"taralog/internal/logger"
	"taralog/internal/model"
	"taralog/internal/repository"
	"taralog/internal/router"
	"taralog/internal/service"
	"taralog/internal/tarot"
)

// @title AI Taralog API
// @version 1.0
// @description Tarot and astrology reading API with AI interpretations, prompt template administration and usage analytics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Reading{},
		&model.Prompt{},
		&model.EmailLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	readingRepo := repository.NewReadingRepository(gormDB)
	promptRepo := repository.NewPromptRepository(gormDB)
	emailLogRepo := repository.NewEmailLogRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// External collaborators
	cardSource := tarot.NewClient(cfg.TarotAPIBaseURL)
	interpreter := ai.NewGrokClient(cfg.XAIBaseURL, cfg.XAIAPIKey, cfg.XAIModel)

	// Services
	contextBuilder := service.NewContextBuilder(promptRepo)
	emailService := service.NewEmailService(cfg, emailLogRepo, log)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, emailService)
	userService := service.NewUserService(userRepo, cacheClient)
	promptService := service.NewPromptService(promptRepo)
	readingService := service.NewReadingService(userRepo, readingRepo, contextBuilder, cardSource, interpreter, log)
	statsService := service.NewStatsService(userRepo, readingRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	readingHandler := handler.NewReadingHandler(readingService)
	promptHandler := handler.NewPromptHandler(promptService)
	adminHandler := handler.NewAdminHandler(userService, readingService, statsService)
	emailHandler := handler.NewEmailHandler(emailService)

	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		readingHandler,
		promptHandler,
		adminHandler,
		emailHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
