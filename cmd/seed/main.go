package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"psisite/internal/auth"
	"psisite/internal/cache"
	"psisite/internal/config"
	"psisite/internal/db"
	"psisite/internal/logging"
	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/seed"
	"psisite/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting seed script")

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database migrations completed")

	content, err := seed.Load(cfg.SeedFile)
	if err != nil {
		logger.Fatal("failed to load seed content", zap.String("file", cfg.SeedFile), zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "psisite:")
	defer cacheClient.Close()

	ctx := context.Background()
	authService := service.NewAuthService(repository.NewAdminUserRepository(gormDB), auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(cacheClient), logger)
	created, err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}

	configService := service.NewSiteConfigService(repository.NewSiteConfigRepository(gormDB), cacheClient, logger)
	seeder := seed.NewSeeder(configService, service.Content{
		Testimonials: service.NewContentService("testimonials", repository.NewContentRepository[model.Testimonial](gormDB), cacheClient),
		Faq:          service.NewContentService("faq", repository.NewContentRepository[model.FaqItem](gormDB), cacheClient),
		Services:     service.NewContentService("services", repository.NewContentRepository[model.Service](gormDB), cacheClient),
		Photos:       service.NewContentService("photo-carousel", repository.NewContentRepository[model.PhotoCarouselItem](gormDB), cacheClient),
		Expertise:    service.NewContentService("expertise-cards", repository.NewContentRepository[model.ExpertiseCard](gormDB), cacheClient),
	}, logger)

	result, err := seeder.Apply(ctx, content)
	if err != nil {
		logger.Fatal("failed to seed content", zap.Error(err))
	}

	logger.Info("seed completed successfully",
		zap.Bool("admin_created", created),
		zap.Int("config_keys", result.ConfigKeys),
		zap.Int("faq", result.Faq),
		zap.Int("services", result.Services),
		zap.Int("expertise_cards", result.ExpertiseCards),
	)
}
