package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpadapter "activevacancy/internal/adapter/http"
	repo "activevacancy/internal/adapter/repository"
	"activevacancy/internal/auth"
	"activevacancy/internal/cache"
	"activevacancy/internal/config"
	"activevacancy/internal/infrastructure/migration"
	"activevacancy/internal/logger"
	"activevacancy/internal/referral"
	"activevacancy/internal/usecase"
	infra "activevacancy/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zl.Sync()

	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database not available", zap.Error(err))
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, zl); err != nil {
		zl.Fatal("migrations failed", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		zl.Fatal("uploads dir", zap.Error(err))
	}

	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	jobsCache := cache.NewVisaJobs(redisClient, cfg.CacheTTL)

	renderer, err := referral.NewTemplateRenderer(cfg.TemplatesDir)
	if err != nil {
		zl.Fatal("referral template", zap.Error(err))
	}
	exporter := referral.NewExporter(renderer, infra.NewChromedpRasterizer(cfg.ChromePath))

	visaJobs := repo.NewVisaJobsRepo(pool)
	visaApps := repo.NewVisaApplicationsRepo(pool)
	jobs := repo.NewJobsRepo(pool)

	listing := usecase.NewListing(visaJobs, jobsCache, zl)
	submission := usecase.NewSubmission(visaJobs, visaApps, zl)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	h := httpadapter.NewHandler(listing, submission, exporter, jobs, cfg.UploadsDir, zl)
	admin := httpadapter.NewAdminHandler(visaJobs, visaApps, jobs, jobsCache, tokens,
		cfg.AdminUsername, cfg.AdminPassword, cfg.TemplatesDir, zl)

	app := fiber.New(fiber.Config{AppName: "activevacancy"})
	httpadapter.Register(app, h, admin, tokens)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()
	zl.Info("server started", zap.String("port", cfg.Port))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	_ = app.Shutdown()
	_ = redisClient.Close()
}
