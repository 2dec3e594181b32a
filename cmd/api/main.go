package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/psycheverse/creator-admin-api/api/swagger"
	"github.com/psycheverse/creator-admin-api/internal/handler"
	"github.com/psycheverse/creator-admin-api/internal/middleware"
	"github.com/psycheverse/creator-admin-api/internal/repository"
	"github.com/psycheverse/creator-admin-api/internal/service"
	"github.com/psycheverse/creator-admin-api/pkg/cache"
	"github.com/psycheverse/creator-admin-api/pkg/config"
	"github.com/psycheverse/creator-admin-api/pkg/database"
	"github.com/psycheverse/creator-admin-api/pkg/logger"
	corsmiddleware "github.com/psycheverse/creator-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/psycheverse/creator-admin-api/pkg/middleware/requestid"
	"github.com/psycheverse/creator-admin-api/pkg/storage"
)

// @title Psycheverse Creator Admin API
// @version 1.0.0
// @description Administrative API for the creator directory
// @BasePath /api/v1
// @schemes http

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		logr.Fatal("failed to ensure schema", zap.Error(err))
	}
	cancelSchema()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Analytics.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, stats cache disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Analytics.CacheTTL, logr, cfg.Analytics.CacheEnabled && cacheRepo != nil)

	uploadStorage, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Fatal("failed to init upload storage", zap.Error(err))
	}
	exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to init export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	validate := validator.New()

	creatorRepo := repository.NewCreatorRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	creatorSvc := service.NewCreatorService(creatorRepo, uploadStorage, cacheSvc, validate, logr, service.CreatorServiceConfig{
		AvatarPublicPath: cfg.Uploads.PublicPath,
		MaxAvatarBytes:   cfg.Uploads.MaxFileSizeBytes,
		AllowedMIMEs:     cfg.Uploads.AllowedMIMEs,
	})
	settingSvc := service.NewSettingService(settingRepo, validate, logr)
	statsSvc := service.NewStatsService(statsRepo, cacheSvc, metricsSvc, cfg.Analytics.CacheTTL, logr)
	exportSvc := service.NewExportService(creatorRepo, exportStorage, signer, logr, service.ExportServiceConfig{
		DownloadBasePath: cfg.APIPrefix + "/export/creators/download",
		PruneAfter:       cfg.Exports.SignedURLTTL,
	})

	creatorHandler := handler.NewCreatorHandler(creatorSvc)
	settingHandler := handler.NewSettingHandler(settingSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.Static(cfg.Uploads.PublicPath, cfg.Uploads.StorageDir)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/creators", creatorHandler.List)
		api.POST("/creators", creatorHandler.Create)
		api.GET("/creators/:id", creatorHandler.Get)
		api.PATCH("/creators/:id", creatorHandler.Update)
		api.DELETE("/creators/:id", creatorHandler.Delete)
		api.POST("/creators/:id/avatar", creatorHandler.UploadAvatar)

		api.GET("/settings", settingHandler.List)
		api.PUT("/settings", settingHandler.Update)

		api.GET("/analytics/stats", statsHandler.GetStats)

		api.GET("/export/creators", exportHandler.CreatorsJSON)
		api.POST("/export/creators", exportHandler.GenerateFile)
		api.GET("/export/creators/download", exportHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
