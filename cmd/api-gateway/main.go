package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/painel-adm/revendas-api/api/swagger"
	"github.com/painel-adm/revendas-api/internal/middleware"
	"github.com/painel-adm/revendas-api/internal/repository"
	"github.com/painel-adm/revendas-api/internal/router"
	"github.com/painel-adm/revendas-api/internal/service"
	"github.com/painel-adm/revendas-api/pkg/cache"
	"github.com/painel-adm/revendas-api/pkg/config"
	"github.com/painel-adm/revendas-api/pkg/database"
	"github.com/painel-adm/revendas-api/pkg/logger"
)

// @title Painel de Revendas API
// @version 1.0.0
// @description API administrativa do painel de revendas
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var counter middleware.CounterStore
	var dashCache *service.DashboardCache

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, falling back to in-memory rate limiting", "error", err)
		counter = middleware.NewMemoryCounterStore()
	} else {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
		counter = cacheRepo
		dashCache = service.NewDashboardCache(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr)
	}

	validate := validator.New()

	adminRepo := repository.NewAdminRepository(db)
	revendaRepo := repository.NewRevendaRepository(db)
	logRepo := repository.NewLogRepository(db)

	authSvc := service.NewAuthService(adminRepo, logRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	revendaSvc := service.NewRevendaService(revendaRepo, logRepo, dashCache, validate, logr)
	adminSvc := service.NewAdminService(adminRepo, logRepo, dashCache, validate, logr)
	logSvc := service.NewLogService(logRepo, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Revendas: revendaRepo,
		Admins:   adminRepo,
		Logs:     logRepo,
		Cache:    dashCache,
		Logger:   logr,
	})

	r := router.New(router.Deps{
		Config:    cfg,
		Logger:    logr,
		Auth:      authSvc,
		Revendas:  revendaSvc,
		Admins:    adminSvc,
		Logs:      logSvc,
		Dashboard: dashboardSvc,
		Metrics:   metrics,
		Counter:   counter,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
