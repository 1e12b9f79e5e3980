package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"psisite/docs" // swagger docs
	"psisite/internal/auth"
	"psisite/internal/cache"
	"psisite/internal/config"
	"psisite/internal/db"
	"psisite/internal/handler"
	"psisite/internal/logging"
	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/router"
	"psisite/internal/seed"
	"psisite/internal/service"
)

// @title Psychologist Site API
// @version 1.0
// @description Content management API for a psychologist's marketing site.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database init", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range model.All() {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn("drop table failed (may not exist)", zap.Error(err))
			}
		}
	}

	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	ctx := context.Background()
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "psisite:")
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, serving without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	adminRepo := repository.NewAdminUserRepository(gormDB)
	configRepo := repository.NewSiteConfigRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	configService := service.NewSiteConfigService(configRepo, cacheClient, logger)
	content := service.Content{
		Testimonials: service.NewContentService("testimonials", repository.NewContentRepository[model.Testimonial](gormDB), cacheClient),
		Faq:          service.NewContentService("faq", repository.NewContentRepository[model.FaqItem](gormDB), cacheClient),
		Services:     service.NewContentService("services", repository.NewContentRepository[model.Service](gormDB), cacheClient),
		Photos:       service.NewContentService("photo-carousel", repository.NewContentRepository[model.PhotoCarouselItem](gormDB), cacheClient),
		Expertise:    service.NewContentService("expertise-cards", repository.NewContentRepository[model.ExpertiseCard](gormDB), cacheClient),
	}
	authService := service.NewAuthService(adminRepo, jwtService, tokenStore, logger)
	uploadService := service.NewUploadService(cfg.UploadDir, cfg.MaxUploadBytes, configService, logger)
	pageService := service.NewPageService(configService, content, cacheClient)

	if _, err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("ensure admin account", zap.Error(err))
	}

	seedContent, err := seed.Load(cfg.SeedFile)
	if err != nil {
		logger.Fatal("load seed content", zap.String("file", cfg.SeedFile), zap.Error(err))
	}
	seeder := seed.NewSeeder(configService, content, logger)
	if cfg.SeedOnStart {
		if _, err := seeder.Apply(ctx, seedContent); err != nil {
			logger.Fatal("seed defaults", zap.Error(err))
		}
	}

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, logger, router.Auth{JWT: jwtService, Tokens: tokenStore}, router.Handlers{
		Testimonials:   handler.NewTestimonialHandler(content.Testimonials),
		Faq:            handler.NewFaqHandler(content.Faq),
		Services:       handler.NewServiceHandler(content.Services),
		PhotoCarousel:  handler.NewPhotoCarouselHandler(content.Photos),
		ExpertiseCards: handler.NewExpertiseCardHandler(content.Expertise),
		Config:         handler.NewConfigHandler(configService),
		Upload:         handler.NewUploadHandler(uploadService),
		Auth:           handler.NewAuthHandler(authService),
		Site:           handler.NewSiteHandler(pageService, configService, logger),
		Seed:           handler.NewSeedHandler(seeder, seedContent),
	})

	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
	}
	logger.Info("swagger documentation available",
		zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	addr := ":" + cfg.ServerPort
	logger.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
